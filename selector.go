package messages

import (
	"hash/fnv"
	"sort"
	"strings"
)

// SelectorSet is an unordered selector-name to selector-value mapping. It
// serves double duty as the key a variant is stored under and as the runtime
// query used to pick one. The zero value is the valid empty set.
type SelectorSet struct {
	pairs map[string]string
}

// NewSelectorSet copies pairs into a set; the set owns the copy. Names and
// values are case significant and never normalized.
func NewSelectorSet(pairs map[string]string) SelectorSet {
	if len(pairs) == 0 {
		return SelectorSet{}
	}
	owned := make(map[string]string, len(pairs))
	for name, value := range pairs {
		owned[name] = value
	}
	return SelectorSet{pairs: owned}
}

// Len returns the number of selector pairs.
func (s SelectorSet) Len() int { return len(s.pairs) }

// IsEmpty reports whether the set holds no pairs.
func (s SelectorSet) IsEmpty() bool { return len(s.pairs) == 0 }

// Value returns the value stored under name and whether name is present.
func (s SelectorSet) Value(name string) (string, bool) {
	value, ok := s.pairs[name]
	return value, ok
}

// Names returns the selector names sorted alphabetically.
func (s SelectorSet) Names() []string {
	if len(s.pairs) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.pairs))
	for name := range s.pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pairs returns a copy of the underlying mapping.
func (s SelectorSet) Pairs() map[string]string {
	if len(s.pairs) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.pairs))
	for name, value := range s.pairs {
		out[name] = value
	}
	return out
}

// With returns a copy of the set with name bound to value.
func (s SelectorSet) With(name, value string) SelectorSet {
	out := make(map[string]string, len(s.pairs)+1)
	for k, v := range s.pairs {
		out[k] = v
	}
	out[name] = value
	return SelectorSet{pairs: out}
}

// Without returns the set with name removed; the receiver when name is
// absent.
func (s SelectorSet) Without(name string) SelectorSet {
	if _, ok := s.pairs[name]; !ok {
		return s
	}
	if len(s.pairs) == 1 {
		return SelectorSet{}
	}
	out := make(map[string]string, len(s.pairs)-1)
	for k, v := range s.pairs {
		if k == name {
			continue
		}
		out[k] = v
	}
	return SelectorSet{pairs: out}
}

// Equal reports whether both sets hold exactly the same pairs. Construction
// order never matters; case always does.
func (s SelectorSet) Equal(other SelectorSet) bool {
	if len(s.pairs) != len(other.pairs) {
		return false
	}
	for name, value := range s.pairs {
		if got, ok := other.pairs[name]; !ok || got != value {
			return false
		}
	}
	return true
}

// Hash folds a per-pair FNV-1a digest with wrapping addition, making the
// result a pure function of the pair set: equal sets hash equal regardless
// of map iteration order. Colliding unequal sets are allowed; indexes must
// confirm with Equal.
func (s SelectorSet) Hash() uint64 {
	var sum uint64
	for name, value := range s.pairs {
		h := fnv.New64a()
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(value))
		sum += h.Sum64()
	}
	return sum
}

// String renders {NAME:VALUE, ...} with pairs sorted by name.
func (s SelectorSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, name := range s.Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(s.pairs[name])
	}
	b.WriteString("}")
	return b.String()
}
