package messages

// Metadata keys populated by HookedResolver during resolution.
const (
	metadataResolveMatched  = "resolve.matched"
	metadataResolveFallback = "resolve.fallback"
)

// ResolveHook observes a resolution around a Resolver. BeforeResolve may
// rewrite the query; AfterResolve may rewrite the result or error.
type ResolveHook interface {
	BeforeResolve(ctx *ResolveHookContext)
	AfterResolve(ctx *ResolveHookContext)
}

// ResolveHookContext carries one resolution through its hooks.
type ResolveHookContext struct {
	GroupID  string
	Query    SelectorSet
	Result   Message
	Error    error
	Metadata map[string]any
}

func (ctx *ResolveHookContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *ResolveHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *ResolveHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// MatchedKey returns the candidate key that satisfied the query, when the
// underlying resolver reported one.
func (ctx *ResolveHookContext) MatchedKey() (SelectorSet, bool) {
	value, ok := ctx.MetadataValue(metadataResolveMatched)
	if !ok {
		return SelectorSet{}, false
	}
	key, ok := value.(SelectorSet)
	return key, ok
}

// FallbackEvent records a resolution that matched a key other than the one
// requested.
type FallbackEvent struct {
	Requested SelectorSet
	Matched   SelectorSet
}

// FallbackMetadata returns fallback info recorded during resolution, if any.
func (ctx *ResolveHookContext) FallbackMetadata() (FallbackEvent, bool) {
	value, ok := ctx.MetadataValue(metadataResolveFallback)
	if !ok {
		return FallbackEvent{}, false
	}

	switch event := value.(type) {
	case FallbackEvent:
		return event, true
	case *FallbackEvent:
		if event == nil {
			return FallbackEvent{}, false
		}
		return *event, true
	default:
		return FallbackEvent{}, false
	}
}

// ResolveHookFuncs adapts bare functions to ResolveHook. Either field may be
// nil.
type ResolveHookFuncs struct {
	Before func(ctx *ResolveHookContext)
	After  func(ctx *ResolveHookContext)
}

func (h ResolveHookFuncs) BeforeResolve(ctx *ResolveHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ResolveHookFuncs) AfterResolve(ctx *ResolveHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

var _ Resolver = &HookedResolver{}

// HookedResolver decorates a Resolver with observation hooks.
type HookedResolver struct {
	next  Resolver
	hooks []ResolveHook
}

// keyedResolver is satisfied by resolvers that can report which candidate
// key matched; *Group implements it.
type keyedResolver interface {
	resolveWithKey(query SelectorSet) (Message, SelectorSet, error)
}

// WrapResolverWithHooks layers hooks around next. Nil hooks are dropped;
// with none left, next is returned untouched.
func WrapResolverWithHooks(next Resolver, hooks ...ResolveHook) Resolver {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := hooks[:0]
	for _, hook := range hooks {
		if hook == nil {
			continue
		}

		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedResolver{next: next, hooks: filtered}
}

func (r *HookedResolver) Resolve(query SelectorSet) (Message, error) {
	if r == nil || r.next == nil {
		return Message{}, ErrNoVariantFound
	}

	ctx := &ResolveHookContext{Query: query}
	if g, ok := r.next.(*Group); ok {
		ctx.GroupID = g.ID()
	}

	for _, hook := range r.hooks {
		hook.BeforeResolve(ctx)
	}

	var (
		result  Message
		matched SelectorSet
		err     error
	)

	if kr, ok := r.next.(keyedResolver); ok {
		result, matched, err = kr.resolveWithKey(ctx.Query)
		if err == nil {
			ctx.SetMetadata(metadataResolveMatched, matched)
			if !matched.Equal(ctx.Query) {
				ctx.SetMetadata(metadataResolveFallback, FallbackEvent{
					Requested: ctx.Query,
					Matched:   matched,
				})
			}
		}
	} else {
		result, err = r.next.Resolve(ctx.Query)
	}

	ctx.Result = result
	ctx.Error = err

	for _, hook := range r.hooks {
		hook.AfterResolve(ctx)
	}

	return ctx.Result, ctx.Error
}
