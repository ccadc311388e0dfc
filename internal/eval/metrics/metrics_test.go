package metrics

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sets(groups ...[]string) []EntitySet {
	out := make([]EntitySet, 0, len(groups))
	for _, g := range groups {
		out = append(out, NewEntitySet(g...))
	}
	return out
}

func assertScores(t *testing.T, want, got Scores) {
	t.Helper()
	assert.InDelta(t, want.Precision, got.Precision, 1e-9, "precision")
	assert.InDelta(t, want.Recall, got.Recall, 1e-9, "recall")
	assert.InDelta(t, want.F1, got.F1, 1e-9, "f1")
}

func TestScoreQuery(t *testing.T) {
	tests := []struct {
		name    string
		qrels   []EntitySet
		results []EntitySet
		want    Scores
	}{
		{
			name:    "no qrels and no results",
			qrels:   nil,
			results: nil,
			want:    Scores{Precision: 1, Recall: 1, F1: 1},
		},
		{
			name:    "no qrels but results",
			qrels:   nil,
			results: sets([]string{"m.1"}),
			want:    Scores{},
		},
		{
			name:    "qrels but no results",
			qrels:   sets([]string{"m.1"}),
			results: nil,
			want:    Scores{},
		},
		{
			name:    "exact match",
			qrels:   sets([]string{"m.1", "m.2"}, []string{"m.3"}),
			results: sets([]string{"m.2", "m.1"}, []string{"m.3"}),
			want:    Scores{Precision: 1, Recall: 1, F1: 1},
		},
		{
			name:    "sets compared as units",
			qrels:   sets([]string{"m.1", "m.2"}),
			results: sets([]string{"m.1"}),
			want:    Scores{},
		},
		{
			name:    "partial",
			qrels:   sets([]string{"m.1"}, []string{"m.2"}),
			results: sets([]string{"m.1"}, []string{"m.3"}, []string{"m.4"}),
			want:    Scores{Precision: 1.0 / 3, Recall: 0.5, F1: 0.4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertScores(t, tt.want, ScoreQuery(tt.qrels, tt.results))
		})
	}
}

func TestScoreQueryEntity(t *testing.T) {
	t.Run("flattened sets compared as one unit", func(t *testing.T) {
		qrels := sets([]string{"m.1", "m.2"})
		results := sets([]string{"m.1"}, []string{"m.3"})

		// {m.1, m.2} vs {m.1, m.3}
		assertScores(t, Scores{}, ScoreQueryEntity(qrels, results))
	})

	t.Run("borders ignored", func(t *testing.T) {
		qrels := sets([]string{"m.1"}, []string{"m.2"})
		results := sets([]string{"m.2", "m.1"})

		assertScores(t, Scores{Precision: 1, Recall: 1, F1: 1}, ScoreQueryEntity(qrels, results))
	})

	t.Run("empty sides", func(t *testing.T) {
		assertScores(t, Scores{Precision: 1, Recall: 1, F1: 1}, ScoreQueryEntity(nil, nil))
		assertScores(t, Scores{}, ScoreQueryEntity(nil, sets([]string{"m.1"})))
		assertScores(t, Scores{}, ScoreQueryEntity(sets([]string{"m.1"}), nil))
	})
}

func TestScoreQueryPerEntity(t *testing.T) {
	qrels := sets([]string{"m.1", "m.2"})
	results := sets([]string{"m.1"}, []string{"m.3"})

	// entities m.1, m.2 vs m.1, m.3 one by one
	assertScores(t, Scores{Precision: 0.5, Recall: 0.5, F1: 0.5}, ScoreQueryPerEntity(qrels, results))
	assertScores(t, Scores{Precision: 1, Recall: 1, F1: 1}, ScoreQueryPerEntity(nil, nil))
}

func TestScoreQueryLean(t *testing.T) {
	t.Run("differing flattened sets score zero", func(t *testing.T) {
		qrels := sets([]string{"m.1", "m.2"})
		results := sets([]string{"m.1"}, []string{"m.3"})

		assertScores(t, Scores{}, ScoreQueryLean(qrels, results))
	})

	t.Run("equal flattened sets", func(t *testing.T) {
		qrels := sets([]string{"m.1"}, []string{"m.2"})
		results := sets([]string{"m.1", "m.2"})

		// interpretation level: 0/0/0; entity level: 1/1/1
		assertScores(t, Scores{Precision: 0.5, Recall: 0.5, F1: 0.5}, ScoreQueryLean(qrels, results))
	})

	t.Run("f1 is averaged, not recomputed", func(t *testing.T) {
		qrels := sets([]string{"m.1"}, []string{"m.2"}, []string{"m.3"})
		results := sets([]string{"m.1"}, []string{"m.2", "m.3"})

		// interpretation level: 0.5/0.333/0.4; entity level: 1/1/1
		got := ScoreQueryLean(qrels, results)
		assertScores(t, Scores{Precision: 0.75, Recall: 2.0 / 3, F1: 0.7}, got)
		assert.Greater(t, f1(got.Precision, got.Recall)-got.F1, 1e-3)
	})
}

func TestScoreQueryLeanPerEntity(t *testing.T) {
	qrels := sets([]string{"m.1", "m.2"})
	results := sets([]string{"m.1"}, []string{"m.3"})

	// interpretation level: 0/0/0; per entity: 0.5/0.5/0.5
	assertScores(t, Scores{Precision: 0.25, Recall: 0.25, F1: 0.25}, ScoreQueryLeanPerEntity(qrels, results))
}

func TestScoreQueryLean_IsAverageProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	entities := []string{"m.1", "m.2", "m.3", "m.4", "m.5"}

	randomSets := func() []EntitySet {
		var out []EntitySet
		for i := rng.Intn(4); i > 0; i-- {
			s := make(EntitySet)
			for j := 1 + rng.Intn(3); j > 0; j-- {
				s[entities[rng.Intn(len(entities))]] = struct{}{}
			}
			out = append(out, s)
		}
		return out
	}

	for i := 0; i < 500; i++ {
		qrels, results := randomSets(), randomSets()
		inter := ScoreQuery(qrels, results)

		entity := ScoreQuery([]EntitySet{Flatten(qrels)}, []EntitySet{Flatten(results)})
		assertScores(t, inter.Add(entity).Scale(0.5), ScoreQueryLean(qrels, results))

		perEntity := ScoreQuery(Singletons(Flatten(qrels)), Singletons(Flatten(results)))
		assertScores(t, inter.Add(perEntity).Scale(0.5), ScoreQueryLeanPerEntity(qrels, results))
	}
}

func TestByName(t *testing.T) {
	assert.Equal(t, []string{MetricEntity, MetricInter, MetricLean, MetricLeanPerEntity, MetricPerEntity}, Names())

	for _, name := range Names() {
		fn, err := ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, fn)
	}

	_, err := ByName("ndcg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MetricLeanPerEntity)
}

func TestFlatten(t *testing.T) {
	got := Flatten(sets([]string{"m.2", "m.1"}, []string{"m.1", "m.3"}))
	assert.Equal(t, []string{"m.1", "m.2", "m.3"}, got.Sorted())
	assert.Empty(t, Flatten(nil))

	assert.Equal(t, sets([]string{"m.1"}, []string{"m.3"}), Singletons(NewEntitySet("m.3", "m.1")))
	assert.Equal(t, "{m.1, m.3}", NewEntitySet("m.3", "m.1").String())
}
