package messages

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// defaultIDGenerator mints ids for anonymous messages.
var defaultIDGenerator = uuid.NewString

// Registry owns global message id uniqueness and the locale to group index.
// Hand it every message and group you build and ids never collide. Reads and
// writes may interleave freely across goroutines.
type Registry struct {
	mu            sync.RWMutex
	defaultLocale string
	idGen         func() string
	groupOpts     []GroupOption
	resolver      FallbackResolver
	hooks         []ResolveHook

	messages map[string]Message
	locales  map[string]*LocaleMessages
}

// RegistryOption adjusts a registry during construction.
type RegistryOption func(*Registry)

// WithRegistryIDGenerator overrides the id generator used for anonymous
// messages (default uuid).
func WithRegistryIDGenerator(gen func() string) RegistryOption {
	return func(r *Registry) {
		if gen == nil {
			return
		}
		r.idGen = gen
	}
}

// WithRegistryDefaultLocale sets the last-resort locale consulted when every
// other candidate fails.
func WithRegistryDefaultLocale(locale string) RegistryOption {
	return func(r *Registry) {
		r.defaultLocale = normalizeLocale(locale)
	}
}

// WithRegistryGroupOptions sets the resolution policy applied to every group
// the registry creates.
func WithRegistryGroupOptions(opts ...GroupOption) RegistryOption {
	return func(r *Registry) {
		r.groupOpts = append(r.groupOpts, opts...)
	}
}

// WithRegistryFallbackResolver sets the locale fallback chain source.
func WithRegistryFallbackResolver(resolver FallbackResolver) RegistryOption {
	return func(r *Registry) {
		r.resolver = resolver
	}
}

// WithRegistryResolveHooks registers hooks observing every Resolve call.
func WithRegistryResolveHooks(hooks ...ResolveHook) RegistryOption {
	return func(r *Registry) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			r.hooks = append(r.hooks, hook)
		}
	}
}

// NewRegistry builds an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		idGen:    defaultIDGenerator,
		messages: make(map[string]Message),
		locales:  make(map[string]*LocaleMessages),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Registry) nextID() string {
	if r.idGen != nil {
		return r.idGen()
	}
	return defaultIDGenerator()
}

// DefaultLocale returns the configured last-resort locale.
func (r *Registry) DefaultLocale() string {
	if r == nil {
		return ""
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultLocale
}

// NewMessage mints an id, builds the message and registers it in one step.
func (r *Registry) NewMessage(locale string, pattern Pattern, selectors SelectorSet) (Message, error) {
	if r == nil {
		return Message{}, fmt.Errorf("messages: nil registry")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	msg := NewMessage(r.nextID(), locale, pattern, selectors)
	if err := r.register(msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// RegisterMessage records msg under its id. Anonymous messages are rejected;
// mint ids through NewMessage, InsertVariant or LoadCatalog instead.
func (r *Registry) RegisterMessage(msg Message) error {
	if r == nil {
		return fmt.Errorf("messages: nil registry")
	}
	if msg.ID() == "" {
		return fmt.Errorf("messages: register message without id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.register(msg)
}

// register runs under the write lock.
func (r *Registry) register(msg Message) error {
	if _, exists := r.messages[msg.ID()]; exists {
		return fmt.Errorf("messages: message id %q: %w", msg.ID(), ErrDuplicateID)
	}
	r.messages[msg.ID()] = msg
	return nil
}

// Message returns the registered message for id.
func (r *Registry) Message(id string) (Message, bool) {
	if r == nil {
		return Message{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	msg, ok := r.messages[id]
	return msg, ok
}

// Group returns the group registered under locale/groupID.
func (r *Registry) Group(locale, groupID string) (*Group, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	lm := r.locales[normalizeLocale(locale)]
	if lm == nil || lm.Groups == nil {
		return nil, false
	}
	g, ok := lm.Groups[groupID]
	return g, g != nil && ok
}

// EnsureGroup returns the group for locale/groupID, creating it with the
// registry's group options when absent.
func (r *Registry) EnsureGroup(locale, groupID string) *Group {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureGroup(locale, groupID)
}

// ensureGroup runs under the write lock.
func (r *Registry) ensureGroup(locale, groupID string) *Group {
	code := normalizeLocale(locale)
	lm := r.locales[code]
	if lm == nil {
		lm = &LocaleMessages{
			Locale: newLocale(code),
			Groups: make(map[string]*Group),
		}
		r.locales[code] = lm
	}
	g := lm.Groups[groupID]
	if g == nil {
		g = NewGroup(groupID, r.groupOpts...)
		lm.Groups[groupID] = g
	}
	return g
}

// InsertVariant registers msg and inserts it into the group for its locale,
// minting an id when msg is anonymous. The call either fully succeeds or
// leaves the registry unchanged.
func (r *Registry) InsertVariant(groupID string, msg Message) error {
	if r == nil {
		return fmt.Errorf("messages: nil registry")
	}

	r.mu.Lock()
	if msg.ID() == "" {
		msg = msg.withID(r.nextID())
	}
	if err := r.register(msg); err != nil {
		r.mu.Unlock()
		return err
	}
	g := r.ensureGroup(msg.Locale(), groupID)
	r.mu.Unlock()

	if err := g.Insert(msg); err != nil {
		r.mu.Lock()
		delete(r.messages, msg.ID())
		r.mu.Unlock()
		return err
	}
	return nil
}

// LoadCatalog ingests every group and variant in c. Groups are rebuilt with
// the registry's own options, anonymous variants get minted ids, and every
// message lands in the id index. Iteration over the catalog is sorted so a
// bad document fails on the same entry every run.
func (r *Registry) LoadCatalog(c Catalog) error {
	if r == nil {
		return fmt.Errorf("messages: nil registry")
	}

	for _, code := range c.Locales() {
		lm := c[code]
		if lm == nil {
			continue
		}

		groupIDs := make([]string, 0, len(lm.Groups))
		for groupID := range lm.Groups {
			groupIDs = append(groupIDs, groupID)
		}
		sort.Strings(groupIDs)

		for _, groupID := range groupIDs {
			g := lm.Groups[groupID]
			if g == nil {
				continue
			}
			for _, msg := range g.Variants() {
				if err := r.InsertVariant(groupID, msg); err != nil {
					return fmt.Errorf("messages: load %s/%s: %w", code, groupID, err)
				}
			}
		}
	}
	return nil
}

// Locales returns every locale code known to the registry, sorted.
func (r *Registry) Locales() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.locales) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.locales))
	for code := range r.locales {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether the registry carries any groups for locale.
func (r *Registry) HasLocale(locale string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	lm := r.locales[normalizeLocale(locale)]
	return lm != nil && len(lm.Groups) > 0
}

// Resolve selects a variant for locale/groupID, walking the locale fallback
// chain until one locale answers: the locale itself, its derived parents,
// the configured fallback chain with their parents, then the default locale.
// Registered hooks observe each group consulted.
func (r *Registry) Resolve(locale, groupID string, query SelectorSet) (Message, error) {
	if r == nil {
		return Message{}, ErrGroupNotFound
	}

	code := normalizeLocale(locale)

	var (
		lastErr error
		found   bool
	)
	for _, candidate := range r.localeCandidates(code) {
		g, ok := r.Group(candidate, groupID)
		if !ok {
			continue
		}
		found = true

		var resolver Resolver = g
		if len(r.hooks) > 0 {
			resolver = WrapResolverWithHooks(g, r.hooks...)
		}

		msg, err := resolver.Resolve(query)
		if err == nil {
			return msg, nil
		}
		lastErr = err
	}

	if !found {
		return Message{}, fmt.Errorf("messages: group %q for locale %q: %w", groupID, code, ErrGroupNotFound)
	}
	return Message{}, lastErr
}

// localeCandidates returns the locale walk order for code.
func (r *Registry) localeCandidates(code string) []string {
	r.mu.RLock()
	resolver := r.resolver
	def := r.defaultLocale
	r.mu.RUnlock()

	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	add := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}

	add(code)
	for _, parent := range localeParentChain(code) {
		add(parent)
	}
	if resolver != nil {
		for _, fallback := range resolver.Resolve(code) {
			normalized := normalizeLocale(fallback)
			add(normalized)
			for _, parent := range localeParentChain(normalized) {
				add(parent)
			}
		}
	}
	add(def)

	return out
}
