package messages

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var _ Resolver = (*Group)(nil)

// Group collects every variant of one logical message, keyed by selector set.
// Keys are compared structurally, so two sets built in different orders still
// address the same variant. Inserts serialize behind a write lock and
// resolves share a read lock; a lookup never observes a half-updated index.
type Group struct {
	id     string
	policy resolvePolicy

	mu    sync.RWMutex
	index map[uint64][]groupEntry
	size  int
}

// groupEntry pins the key next to its message. The index buckets by selector
// hash, so equality still has to be confirmed per entry.
type groupEntry struct {
	key SelectorSet
	msg Message
}

// NewGroup builds an empty group. The default policy resolves exact key
// matches only; see WithCatchAllFallback.
func NewGroup(id string, opts ...GroupOption) *Group {
	g := &Group{
		id:     strings.TrimSpace(id),
		policy: defaultResolvePolicy(),
		index:  make(map[uint64][]groupEntry),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&g.policy)
	}
	return g
}

func (g *Group) ID() string {
	if g == nil {
		return ""
	}
	return g.id
}

// Len returns the number of stored variants.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.size
}

// Insert stores msg under its selector set. A key equal to an existing one
// fails with DuplicateVariantError and leaves the group unchanged; the caller
// decides whether to drop, rename or merge.
func (g *Group) Insert(msg Message) error {
	if g == nil {
		return errors.New("messages: insert into nil group")
	}
	key := msg.Selectors()
	hash := key.Hash()

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, entry := range g.index[hash] {
		if entry.key.Equal(key) {
			return &DuplicateVariantError{GroupID: g.id, Key: key}
		}
	}

	g.index[hash] = append(g.index[hash], groupEntry{key: key, msg: msg})
	g.size++
	return nil
}

// ResolveExact looks up query by key equality alone, ignoring the group's
// fallback policy.
func (g *Group) ResolveExact(query SelectorSet) (Message, error) {
	if g == nil {
		return Message{}, &NoVariantFoundError{Query: query}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if msg, ok := g.lookup(query); ok {
		return msg, nil
	}
	return Message{}, &NoVariantFoundError{GroupID: g.id, Query: query}
}

// Resolve looks up query, walking the group's fallback candidates when the
// exact key misses. Once every candidate is exhausted it fails with
// NoVariantFoundError; there is no implicit last resort beyond what the
// policy generates.
func (g *Group) Resolve(query SelectorSet) (Message, error) {
	msg, _, err := g.resolveWithKey(query)
	return msg, err
}

// resolveWithKey also reports which candidate key matched; the hook layer
// uses it to surface fallback decisions.
func (g *Group) resolveWithKey(query SelectorSet) (Message, SelectorSet, error) {
	if g == nil {
		return Message{}, SelectorSet{}, &NoVariantFoundError{Query: query}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, candidate := range g.policy.candidates(query) {
		if msg, ok := g.lookup(candidate); ok {
			return msg, candidate, nil
		}
	}
	return Message{}, SelectorSet{}, &NoVariantFoundError{GroupID: g.id, Query: query}
}

// lookup runs under at least a read lock.
func (g *Group) lookup(key SelectorSet) (Message, bool) {
	for _, entry := range g.index[key.Hash()] {
		if entry.key.Equal(key) {
			return entry.msg, true
		}
	}
	return Message{}, false
}

// Variants returns every stored message sorted by rendered key. The group
// keeps no insertion order; sorting only makes listings deterministic.
func (g *Group) Variants() []Message {
	entries := g.sortedEntries()
	if entries == nil {
		return nil
	}
	out := make([]Message, len(entries))
	for i, entry := range entries {
		out[i] = entry.msg
	}
	return out
}

// Keys returns every variant key, ordered the same way Variants orders
// messages.
func (g *Group) Keys() []SelectorSet {
	entries := g.sortedEntries()
	if entries == nil {
		return nil
	}
	out := make([]SelectorSet, len(entries))
	for i, entry := range entries {
		out[i] = entry.key
	}
	return out
}

func (g *Group) sortedEntries() []groupEntry {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	entries := make([]groupEntry, 0, g.size)
	for _, bucket := range g.index {
		entries = append(entries, bucket...)
	}
	g.mu.RUnlock()

	if len(entries) == 0 {
		return nil
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key.String() < entries[j].key.String()
	})
	return entries
}

// Clone returns a deep copy sharing no index state with the receiver.
func (g *Group) Clone() *Group {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Group{
		id:     g.id,
		policy: g.policy.clone(),
		index:  make(map[uint64][]groupEntry, len(g.index)),
		size:   g.size,
	}
	for hash, bucket := range g.index {
		copied := make([]groupEntry, len(bucket))
		copy(copied, bucket)
		out.index[hash] = copied
	}
	return out
}

// String renders "id{key: pattern, ...}" with keys sorted.
func (g *Group) String() string {
	if g == nil {
		return "<nil>"
	}
	entries := g.sortedEntries()

	var b strings.Builder
	b.WriteString(g.id)
	b.WriteString("{")
	for i, entry := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.key.String())
		b.WriteString(": ")
		b.WriteString(entry.msg.String())
	}
	b.WriteString("}")
	return b.String()
}
