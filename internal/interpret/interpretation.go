package interpret

import (
	"sort"
	"strings"
)

// Interpretation assigns entities to mentions of one query. No word is shared
// between two of its mentions.
type Interpretation map[string]string

func (in Interpretation) Mentions() []string {
	mentions := make([]string, 0, len(in))
	for m := range in {
		mentions = append(mentions, m)
	}
	sort.Strings(mentions)
	return mentions
}

// Entities returns the distinct linked entities in ascending order.
func (in Interpretation) Entities() []string {
	seen := make(map[string]struct{}, len(in))
	entities := make([]string, 0, len(in))
	for _, en := range in {
		if _, ok := seen[en]; ok {
			continue
		}
		seen[en] = struct{}{}
		entities = append(entities, en)
	}
	sort.Strings(entities)
	return entities
}

// IsOverlapping reports whether any word occurs in more than one mention.
// Repeated words inside a single mention do not count.
//
// E.g. {"the", "music man"} is not overlapping, {"the", "the man", "music"} is.
func IsOverlapping(mentions []string) bool {
	var total int
	union := make(map[string]struct{})
	for _, men := range mentions {
		words := make(map[string]struct{})
		for _, w := range strings.Fields(men) {
			words[w] = struct{}{}
		}
		total += len(words)
		for w := range words {
			union[w] = struct{}{}
		}
	}
	return total != len(union)
}

// contains reports whether either mention is a substring of the other. This is a
// character-level test, unlike IsOverlapping.
func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
