package messages

import (
	"errors"
	"testing"
)

func TestPatternRender(t *testing.T) {
	pattern := NewPattern(
		Text("Dear "),
		NewPlaceholder("name", GenderType),
		Text(", you have "),
		NewPlaceholder("count", PluralType).WithDefaultText("some"),
		Text(" items"),
	)

	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name:   "all values supplied",
			values: map[string]string{"name": "Alice", "count": "3"},
			want:   "Dear Alice, you have 3 items",
		},
		{
			name:   "default fills the gap",
			values: map[string]string{"name": "Alice"},
			want:   "Dear Alice, you have some items",
		},
		{
			name:   "supplied empty string wins over default",
			values: map[string]string{"name": "Alice", "count": ""},
			want:   "Dear Alice, you have  items",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pattern.Render(tc.values)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Render() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestPatternRenderMissingValue(t *testing.T) {
	pattern := NewPattern(Text("Hello "), NewPlaceholder("name", UnknownType))

	_, err := pattern.Render(nil)
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("expected ErrMissingValue, got %v", err)
	}

	var missing *MissingValueError
	if !errors.As(err, &missing) || missing.PlaceholderID != "name" {
		t.Fatalf("expected MissingValueError for name, got %v", err)
	}
}

func TestPatternRenderNoImplicitSeparators(t *testing.T) {
	pattern := NewPattern(Text("a"), Text("b"), NewPlaceholder("x", UnknownType))

	got, err := pattern.Render(map[string]string{"x": "c"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "abc" {
		t.Fatalf("Render() = %q want abc", got)
	}
}

func TestPatternOrderPreserved(t *testing.T) {
	pattern := NewPattern(NewPlaceholder("count", PluralType), Text(" new messages"))

	got, err := pattern.Render(map[string]string{"count": "5"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "5 new messages" {
		t.Fatalf("Render() = %q want %q", got, "5 new messages")
	}

	parts := pattern.Parts()
	if len(parts) != 2 {
		t.Fatalf("Parts() returned %d parts", len(parts))
	}
	if _, ok := parts[0].(Placeholder); !ok {
		t.Fatalf("parts[0] = %T want Placeholder", parts[0])
	}
	if _, ok := parts[1].(TextPart); !ok {
		t.Fatalf("parts[1] = %T want TextPart", parts[1])
	}
}

func TestPatternPlaceholdersKeepsDuplicates(t *testing.T) {
	name := NewPlaceholder("name", GenderType)
	pattern := NewPattern(Text("hi "), name, Text(" and "), name)

	phs := pattern.Placeholders()
	if len(phs) != 2 || phs[0].ID() != "name" || phs[1].ID() != "name" {
		t.Fatalf("Placeholders() = %v", phs)
	}
}

func TestPatternEqual(t *testing.T) {
	a := NewPattern(Text("hi "), NewPlaceholder("name", GenderType))
	b := NewPattern(Text("hi "), NewPlaceholder("name", GenderType))
	c := NewPattern(NewPlaceholder("name", GenderType), Text("hi "))

	if !a.Equal(b) {
		t.Fatal("expected identical part sequences to compare equal")
	}
	if a.Equal(c) {
		t.Fatal("expected part order to matter")
	}
	if a.Equal(NewPattern(Text("hi "))) {
		t.Fatal("expected length to matter")
	}
}

func TestPatternString(t *testing.T) {
	pattern := NewPattern(Text("You have "), NewPlaceholder("count", PluralType), Text(" items"))

	want := "[You have {count} items]"
	if got := pattern.String(); got != want {
		t.Fatalf("String() = %q want %q", got, want)
	}
}

func TestPatternEmpty(t *testing.T) {
	var pattern Pattern

	got, err := pattern.Render(nil)
	if err != nil || got != "" {
		t.Fatalf("Render() = %q,%v want empty", got, err)
	}
	if pattern.Len() != 0 || pattern.Parts() != nil {
		t.Fatalf("empty pattern reports %d parts", pattern.Len())
	}
	if pattern.String() != "[]" {
		t.Fatalf("String() = %q want []", pattern.String())
	}
}

func TestNewPatternDropsNilParts(t *testing.T) {
	pattern := NewPattern(nil, Text("a"), nil)

	if pattern.Len() != 1 {
		t.Fatalf("Len() = %d want 1", pattern.Len())
	}
}
