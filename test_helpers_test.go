package messages

import (
	"fmt"
	"testing"
)

func newTestMessage(id, locale string, selectors map[string]string, parts ...PatternPart) Message {
	return NewMessage(id, locale, NewPattern(parts...), NewSelectorSet(selectors))
}

// newCountGroup builds the usual plural-shaped group: ONE and OTHER variants
// keyed by COUNT.
func newCountGroup(t *testing.T, opts ...GroupOption) *Group {
	t.Helper()

	g := NewGroup("items", opts...)
	mustInsert(t, g, newTestMessage("items-one", "en", map[string]string{"COUNT": "ONE"},
		Text("You have one item")))
	mustInsert(t, g, newTestMessage("items-other", "en", map[string]string{"COUNT": "OTHER"},
		Text("You have "), NewPlaceholder("count", PluralType), Text(" items")))
	return g
}

func mustInsert(t *testing.T, g *Group, msg Message) {
	t.Helper()
	if err := g.Insert(msg); err != nil {
		t.Fatalf("Insert(%s): %v", msg.Selectors(), err)
	}
}

// sequentialIDs returns a deterministic id generator for tests that assert
// on minted ids.
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
