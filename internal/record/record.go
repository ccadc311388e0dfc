package record

import (
	"sort"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/interpret"
)

// DefaultConfidence is written for every formed record.
const DefaultConfidence = "1"

// Record is one interpretation reduced to its distinct entities, sorted.
type Record struct {
	Confidence string
	Entities   []string
}

func (r Record) key() string {
	return strings.Join(r.Entities, "\x1f")
}

// Results holds the canonical records of each query.
type Results map[string][]Record

// Canonicalize turns interpretations into deduplicated entity records. Empty
// interpretations are skipped and records keep the order of first occurrence.
func Canonicalize(interprets map[string][]interpret.Interpretation) Results {
	out := make(Results, len(interprets))
	for qid, qInterprets := range interprets {
		seen := make(map[string]struct{}, len(qInterprets))
		var records []Record
		for _, in := range qInterprets {
			if len(in) == 0 {
				continue
			}
			rec := Record{Confidence: DefaultConfidence, Entities: in.Entities()}
			if _, ok := seen[rec.key()]; ok {
				continue
			}
			seen[rec.key()] = struct{}{}
			records = append(records, rec)
		}
		out[qid] = records
	}
	return out
}

// QueryIDs returns the query ids in ascending order.
func (r Results) QueryIDs() []string {
	ids := make([]string, 0, len(r))
	for qid := range r {
		ids = append(ids, qid)
	}
	sort.Strings(ids)
	return ids
}

func (r Results) RecordCount() int {
	var n int
	for _, records := range r {
		n += len(records)
	}
	return n
}
