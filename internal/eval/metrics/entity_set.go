package metrics

import (
	"sort"
	"strings"
)

// EntitySet is one interpretation as compared during evaluation.
type EntitySet map[string]struct{}

func NewEntitySet(entities ...string) EntitySet {
	s := make(EntitySet, len(entities))
	for _, en := range entities {
		s[en] = struct{}{}
	}
	return s
}

func (s EntitySet) Equal(other EntitySet) bool {
	if len(s) != len(other) {
		return false
	}
	for en := range s {
		if _, ok := other[en]; !ok {
			return false
		}
	}
	return true
}

func (s EntitySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for en := range s {
		out = append(out, en)
	}
	sort.Strings(out)
	return out
}

func (s EntitySet) String() string {
	return "{" + strings.Join(s.Sorted(), ", ") + "}"
}

// Flatten puts every entity of the given sets into one set, dropping
// interpretation borders.
func Flatten(sets []EntitySet) EntitySet {
	out := make(EntitySet)
	for _, s := range sets {
		for en := range s {
			out[en] = struct{}{}
		}
	}
	return out
}

// Singletons splits s into one set per entity, in ascending entity order.
func Singletons(s EntitySet) []EntitySet {
	out := make([]EntitySet, 0, len(s))
	for _, en := range s.Sorted() {
		out = append(out, NewEntitySet(en))
	}
	return out
}

func findSet(item EntitySet, sets []EntitySet) bool {
	for _, s := range sets {
		if item.Equal(s) {
			return true
		}
	}
	return false
}
