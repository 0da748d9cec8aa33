package messages

import "strings"

// PlaceholderKind names the closed set of placeholder categories.
type PlaceholderKind string

const (
	// KindUnknown marks placeholders whose category was never declared.
	KindUnknown PlaceholderKind = "unknown"
	// KindGender marks placeholders selected by grammatical gender.
	KindGender PlaceholderKind = "gender"
	// KindPlural marks placeholders selected by plural category.
	KindPlural PlaceholderKind = "plural"
	// KindOther marks placeholders carrying a free-form tag.
	KindOther PlaceholderKind = "other"
)

// PlaceholderType tags a placeholder with its selection semantics. The kind
// set is closed; KindOther carries a tag so new categories stay a naming
// convention instead of a code change.
type PlaceholderType struct {
	Kind PlaceholderKind
	Tag  string
}

// The well known placeholder types. The zero PlaceholderType compares equal
// to none of them and renders as unknown.
var (
	UnknownType = PlaceholderType{Kind: KindUnknown}
	GenderType  = PlaceholderType{Kind: KindGender}
	PluralType  = PlaceholderType{Kind: KindPlural}
)

// OtherType builds the open-ended placeholder type carrying tag.
func OtherType(tag string) PlaceholderType {
	return PlaceholderType{Kind: KindOther, Tag: strings.TrimSpace(tag)}
}

func (t PlaceholderType) String() string {
	if t.Kind == KindOther && t.Tag != "" {
		return string(KindOther) + "(" + t.Tag + ")"
	}
	if t.Kind == "" {
		return string(KindUnknown)
	}
	return string(t.Kind)
}

// ParsePlaceholderType maps a document value onto a placeholder type. Known
// kinds match case-insensitively; an empty value means unknown; anything else
// becomes OtherType with the value preserved as its tag.
func ParsePlaceholderType(raw string) PlaceholderType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(KindUnknown):
		return UnknownType
	case string(KindGender):
		return GenderType
	case string(KindPlural):
		return PluralType
	default:
		return OtherType(raw)
	}
}

// TypeAttributes carries advisory metadata about a placeholder type. Nothing
// in this package enforces it; tooling layered on top reads it to decide how
// to treat values.
type TypeAttributes struct {
	// Enumerated marks types whose values come from a recognized category set
	// rather than free-form input.
	Enumerated bool
}

// TypeAttributesMap returns the attribute table for the well known types.
// Callers extend the returned copy to describe their own OtherType tags.
func TypeAttributesMap() map[PlaceholderType]TypeAttributes {
	return map[PlaceholderType]TypeAttributes{
		GenderType: {Enumerated: true},
		PluralType: {Enumerated: true},
	}
}

// Placeholder is a named slot inside a pattern. Ids are opaque to this
// package; whether one is reused across parts is the pattern author's call.
type Placeholder struct {
	id          string
	phType      PlaceholderType
	defaultText string
	hasDefault  bool
}

// NewPlaceholder builds a placeholder with no default text.
func NewPlaceholder(id string, phType PlaceholderType) Placeholder {
	return Placeholder{id: strings.TrimSpace(id), phType: phType}
}

// WithDefaultText returns a copy carrying default text, used when rendering
// finds no runtime value for the placeholder.
func (p Placeholder) WithDefaultText(text string) Placeholder {
	p.defaultText = text
	p.hasDefault = true
	return p
}

func (p Placeholder) ID() string { return p.id }

func (p Placeholder) Type() PlaceholderType { return p.phType }

// DefaultText returns the default text and whether one was ever set. An empty
// default set on purpose still reports true.
func (p Placeholder) DefaultText() (string, bool) {
	return p.defaultText, p.hasDefault
}

func (p Placeholder) String() string {
	return "{" + p.id + "}"
}

func (Placeholder) isPatternPart() {}
