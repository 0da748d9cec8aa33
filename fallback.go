package messages

// Fallback happens at two levels. Inside a group, a query with no exact
// variant can generalize toward a catch-all key (resolvePolicy below). Across
// locales, a registry walks a locale chain until one of them answers
// (FallbackResolver at the bottom of this file). Both orders are fixed and
// observable, never heuristic.

// GroupOption tunes variant resolution for one group.
type GroupOption func(*resolvePolicy)

// defaultCatchAllValue is the selector value treated as the catch-all
// variant, matching the conventional spelling of the residual plural and
// gender category.
const defaultCatchAllValue = "OTHER"

// resolvePolicy controls how Group.Resolve generalizes a query that has no
// exact variant.
type resolvePolicy struct {
	fallback   bool
	catchAll   string
	precedence []string
}

func defaultResolvePolicy() resolvePolicy {
	return resolvePolicy{catchAll: defaultCatchAllValue}
}

func (p resolvePolicy) clone() resolvePolicy {
	out := p
	if len(p.precedence) > 0 {
		out.precedence = append([]string(nil), p.precedence...)
	}
	return out
}

// WithCatchAllFallback enables variant fallback. Candidates are tried in a
// fixed order: the query itself, then the query with one selector at a time
// rewritten to the catch-all value (cumulatively), then the original query
// with one selector at a time dropped, ending at the empty set.
func WithCatchAllFallback() GroupOption {
	return func(p *resolvePolicy) {
		p.fallback = true
	}
}

// WithCatchAllValue overrides the catch-all selector value. An empty value is
// ignored.
func WithCatchAllValue(value string) GroupOption {
	return func(p *resolvePolicy) {
		if value == "" {
			return
		}
		p.catchAll = value
	}
}

// WithPrecedence fixes the generalization order: the first name listed is
// rewritten and dropped first. Query names not listed follow in the default
// order.
func WithPrecedence(names ...string) GroupOption {
	return func(p *resolvePolicy) {
		p.precedence = append([]string(nil), names...)
	}
}

// generalizationOrder returns the query's selector names in the order they
// give way. Without explicit precedence the reverse-alphabetical name goes
// first, which keeps the walk deterministic without guessing at selector
// semantics.
func (p resolvePolicy) generalizationOrder(query SelectorSet) []string {
	names := query.Names()
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	if len(p.precedence) == 0 {
		return names
	}

	ordered := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range p.precedence {
		if _, ok := query.Value(name); !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	return ordered
}

// candidates returns every key Resolve tries, in order. The query itself
// always comes first; with fallback disabled it is also the only candidate.
func (p resolvePolicy) candidates(query SelectorSet) []SelectorSet {
	out := []SelectorSet{query}
	if !p.fallback {
		return out
	}

	order := p.generalizationOrder(query)

	current := query
	for _, name := range order {
		value, ok := current.Value(name)
		if !ok || value == p.catchAll {
			continue
		}
		current = current.With(name, p.catchAll)
		out = append(out, current)
	}

	current = query
	for _, name := range order {
		current = current.Without(name)
		out = append(out, current)
	}

	return out
}

// FallbackResolver resolves the locale fallback chain consulted when a
// locale's own catalog cannot answer.
type FallbackResolver interface {
	Resolve(locale string) []string
}

var _ FallbackResolver = (*StaticFallbackResolver)(nil)

// StaticFallbackResolver keeps explicitly configured chains. The zero value
// is usable and resolves nothing.
type StaticFallbackResolver struct {
	chains map[string][]string
}

// NewStaticFallbackResolver builds an empty resolver.
func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set records the fallback chain for locale, replacing any previous one.
// Entries are normalized and deduplicated; the locale itself is dropped from
// its own chain.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	code := normalizeLocale(locale)
	if code == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}

	seen := map[string]struct{}{code: {}}
	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		normalized := normalizeLocale(fallback)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		chain = append(chain, normalized)
	}
	s.chains[code] = chain
}

// Resolve returns a copy of the configured chain for locale, nil when none
// was set.
func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
