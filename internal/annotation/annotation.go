package annotation

import (
	"sort"
)

// Key identifies a candidate link inside one query.
type Key struct {
	Mention string
	Entity  string
}

// Table maps each (mention, entity) candidate of a query to its ranking score.
type Table map[Key]float64

// Set holds the annotation tables of all queries, keyed by query id.
type Set map[string]Table

type Entry struct {
	Key
	Score float64
}

// Sorted returns the entries ordered by score descending, then mention and entity
// ascending.
func (t Table) Sorted() []Entry {
	entries := make([]Entry, 0, len(t))
	for k, score := range t {
		entries = append(entries, Entry{Key: k, Score: score})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if entries[i].Mention != entries[j].Mention {
			return entries[i].Mention < entries[j].Mention
		}
		return entries[i].Entity < entries[j].Entity
	})
	return entries
}

// QueryIDs returns the query ids in ascending order.
func (s Set) QueryIDs() []string {
	ids := make([]string, 0, len(s))
	for qid := range s {
		ids = append(ids, qid)
	}
	sort.Strings(ids)
	return ids
}

func (s Set) Add(qid, mention, entity string, score float64) {
	t, ok := s[qid]
	if !ok {
		t = make(Table)
		s[qid] = t
	}
	t[Key{Mention: mention, Entity: entity}] = score
}
