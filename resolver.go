package messages

// Resolver selects the message variant answering a selector query.
type Resolver interface {
	Resolve(query SelectorSet) (Message, error)
}

// ResolverFunc adapts a bare function to Resolver.
type ResolverFunc func(query SelectorSet) (Message, error)

func (fn ResolverFunc) Resolve(query SelectorSet) (Message, error) {
	return fn(query)
}
