package messages

import "strings"

// Message is one concrete rendition: a pattern bound to a locale and, when it
// lives inside a group, the selector set it answers to. Messages are
// immutable once constructed. Global id uniqueness is the registry's job, not
// the message's.
type Message struct {
	id        string
	locale    string
	pattern   Pattern
	selectors SelectorSet
}

// NewMessage builds a message. An empty id marks it anonymous until a
// registry mints one. The locale is normalized the same way catalog keys are.
func NewMessage(id, locale string, pattern Pattern, selectors SelectorSet) Message {
	return Message{
		id:        strings.TrimSpace(id),
		locale:    normalizeLocale(locale),
		pattern:   pattern,
		selectors: selectors,
	}
}

func (m Message) ID() string { return m.id }

func (m Message) Locale() string { return m.locale }

func (m Message) Pattern() Pattern { return m.pattern }

// Selectors returns the selector set the message is keyed under; empty for
// standalone messages.
func (m Message) Selectors() SelectorSet { return m.selectors }

// Render substitutes values into the message pattern.
func (m Message) Render(values map[string]string) (string, error) {
	return m.pattern.Render(values)
}

// Equal reports whether both messages carry the same id, locale, pattern and
// selectors.
func (m Message) Equal(other Message) bool {
	return m.id == other.id &&
		m.locale == other.locale &&
		m.pattern.Equal(other.pattern) &&
		m.selectors.Equal(other.selectors)
}

func (m Message) String() string { return m.pattern.String() }

// withID returns a copy carrying id. Registries use it to mint ids for
// anonymous messages.
func (m Message) withID(id string) Message {
	m.id = id
	return m
}
