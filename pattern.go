package messages

import "strings"

// PatternPart is one ordered segment of a pattern, either literal text or a
// placeholder. The implementations are closed over this package.
type PatternPart interface {
	String() string
	isPatternPart()
}

// TextPart is an opaque literal segment rendered verbatim. Whitespace is
// significant and nothing inside it is ever interpreted.
type TextPart struct {
	text string
}

// Text builds a literal pattern part.
func Text(text string) TextPart {
	return TextPart{text: text}
}

func (t TextPart) Value() string { return t.text }

func (t TextPart) String() string { return t.text }

func (TextPart) isPatternPart() {}

// Pattern is an ordered part sequence forming one renderable template.
// Rendering concatenates every part in order with no implicit separators, so
// any spacing between parts must live inside the text parts themselves.
type Pattern struct {
	parts []PatternPart
}

// NewPattern copies parts into a pattern; nil entries are dropped. The
// pattern owns the copy, so later changes to the argument slice never leak
// in.
func NewPattern(parts ...PatternPart) Pattern {
	owned := make([]PatternPart, 0, len(parts))
	for _, part := range parts {
		if part == nil {
			continue
		}
		owned = append(owned, part)
	}
	if len(owned) == 0 {
		return Pattern{}
	}
	return Pattern{parts: owned}
}

// Parts returns a copy of the ordered part list.
func (p Pattern) Parts() []PatternPart {
	if len(p.parts) == 0 {
		return nil
	}
	out := make([]PatternPart, len(p.parts))
	copy(out, p.parts)
	return out
}

// Len returns the number of parts.
func (p Pattern) Len() int { return len(p.parts) }

// Placeholders returns the placeholder parts in pattern order, repeated ids
// included.
func (p Pattern) Placeholders() []Placeholder {
	var out []Placeholder
	for _, part := range p.parts {
		if ph, ok := part.(Placeholder); ok {
			out = append(out, ph)
		}
	}
	return out
}

// Equal reports whether both patterns hold equal parts in the same order.
func (p Pattern) Equal(other Pattern) bool {
	if len(p.parts) != len(other.parts) {
		return false
	}
	for i, part := range p.parts {
		if part != other.parts[i] {
			return false
		}
	}
	return true
}

// Render substitutes values into the pattern. Text parts contribute their
// literal text. A placeholder takes values[id] when the id is present (a
// supplied empty string counts), falls back to its default text, and fails
// with MissingValueError when it has neither.
func (p Pattern) Render(values map[string]string) (string, error) {
	var b strings.Builder
	for _, part := range p.parts {
		switch v := part.(type) {
		case TextPart:
			b.WriteString(v.text)
		case Placeholder:
			if value, ok := values[v.id]; ok {
				b.WriteString(value)
				continue
			}
			if v.hasDefault {
				b.WriteString(v.defaultText)
				continue
			}
			return "", &MissingValueError{PlaceholderID: v.id}
		}
	}
	return b.String(), nil
}

// String renders the diagnostic form: every part concatenated inside
// brackets, placeholders shown as {ID}.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString("[")
	for _, part := range p.parts {
		b.WriteString(part.String())
	}
	b.WriteString("]")
	return b.String()
}
