package interval

import (
	"maps"
	"slices"
)

// Tags is an unordered, duplicate-free collection of tag names. Tag names
// are opaque; they carry no semantics beyond value equality.
type Tags map[string]struct{}

// NewTags builds a tag set from the given names. Duplicates collapse.
func NewTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, name := range names {
		t[name] = struct{}{}
	}
	return t
}

// Contains reports whether name is a member of the set.
func (t Tags) Contains(name string) bool {
	_, ok := t[name]
	return ok
}

// Equal reports whether both sets hold exactly the same names.
func (t Tags) Equal(other Tags) bool {
	if len(t) != len(other) {
		return false
	}
	for name := range t {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (t Tags) Clone() Tags {
	return maps.Clone(t)
}

// Diff returns the names present in t but absent from other.
func (t Tags) Diff(other Tags) Tags {
	out := make(Tags, len(t))
	for name := range t {
		if _, ok := other[name]; !ok {
			out[name] = struct{}{}
		}
	}
	return out
}

// Sorted returns the member names in ascending order.
func (t Tags) Sorted() []string {
	names := slices.Collect(maps.Keys(t))
	slices.Sort(names)
	return names
}

// list flattens the set into a slice in unspecified order.
func (t Tags) list() []string {
	return slices.Collect(maps.Keys(t))
}

// setOf collapses a tag multiset into its set view.
func setOf(names []string) Tags {
	return NewTags(names...)
}
