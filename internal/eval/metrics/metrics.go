package metrics

import (
	"fmt"
	"slices"
	"strings"
)

type Scores struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Add returns the component-wise sum of s and o.
func (s Scores) Add(o Scores) Scores {
	return Scores{
		Precision: s.Precision + o.Precision,
		Recall:    s.Recall + o.Recall,
		F1:        s.F1 + o.F1,
	}
}

// Scale returns s with every component multiplied by f.
func (s Scores) Scale(f float64) Scores {
	return Scores{
		Precision: s.Precision * f,
		Recall:    s.Recall * f,
		F1:        s.F1 * f,
	}
}

// QueryFunc scores the result interpretations of one query against its qrels.
type QueryFunc func(qrels, results []EntitySet) Scores

const (
	MetricLean   = "lean"
	MetricInter  = "inter"
	MetricEntity = "entity"

	// Per-entity variants match every entity as its own set, the way the ERD
	// lean evaluator scores entities.
	MetricPerEntity     = "per-entity"
	MetricLeanPerEntity = "lean-per-entity"
)

var queryFuncs = map[string]QueryFunc{
	MetricLean:          ScoreQueryLean,
	MetricInter:         ScoreQuery,
	MetricEntity:        ScoreQueryEntity,
	MetricPerEntity:     ScoreQueryPerEntity,
	MetricLeanPerEntity: ScoreQueryLeanPerEntity,
}

// Names lists the known metric names in ascending order.
func Names() []string {
	names := make([]string, 0, len(queryFuncs))
	for name := range queryFuncs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName resolves a metric name to its per-query function.
func ByName(name string) (QueryFunc, error) {
	fn, ok := queryFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// ScoreQuery matches interpretation sets as whole units. A qrel set is a true
// positive when an equal set was returned.
//
// A query without qrel sets scores 1 when nothing was returned and 0 otherwise.
func ScoreQuery(qrels, results []EntitySet) Scores {
	if len(qrels) == 0 {
		if len(results) == 0 {
			return Scores{Precision: 1, Recall: 1, F1: 1}
		}
		return Scores{}
	}

	var tp, fn, fp int
	for _, q := range qrels {
		if findSet(q, results) {
			tp++
		} else {
			fn++
		}
	}
	for _, r := range results {
		if !findSet(r, qrels) {
			fp++
		}
	}

	p := ratio(tp, tp+fp)
	r := ratio(tp, tp+fn)
	return Scores{Precision: p, Recall: r, F1: f1(p, r)}
}

// ScoreQueryEntity ignores interpretation borders: the union of all qrel sets is
// compared with the union of all result sets as a single unit.
func ScoreQueryEntity(qrels, results []EntitySet) Scores {
	return ScoreQuery([]EntitySet{Flatten(qrels)}, []EntitySet{Flatten(results)})
}

// ScoreQueryPerEntity ignores interpretation borders and matches single entities.
func ScoreQueryPerEntity(qrels, results []EntitySet) Scores {
	return ScoreQuery(Singletons(Flatten(qrels)), Singletons(Flatten(results)))
}

// ScoreQueryLean averages the interpretation-based and entity-based scores. F1 is
// the mean of the two F1 values, not the harmonic mean of the averaged P and R.
func ScoreQueryLean(qrels, results []EntitySet) Scores {
	return blend(ScoreQuery(qrels, results), ScoreQueryEntity(qrels, results))
}

// ScoreQueryLeanPerEntity is ScoreQueryLean with the entity half matched entity
// by entity.
func ScoreQueryLeanPerEntity(qrels, results []EntitySet) Scores {
	return blend(ScoreQuery(qrels, results), ScoreQueryPerEntity(qrels, results))
}

func blend(inter, entity Scores) Scores {
	return Scores{
		Precision: (inter.Precision + entity.Precision) / 2,
		Recall:    (inter.Recall + entity.Recall) / 2,
		F1:        (inter.F1 + entity.F1) / 2,
	}
}

func ratio(num, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func f1(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
