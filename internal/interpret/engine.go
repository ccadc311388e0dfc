package interpret

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/elq-eval/internal/annotation"
	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"golang.org/x/sync/errgroup"
)

// Engine finds query interpretations greedily from ranked entity annotations.
type Engine struct {
	threshold *float64
}

// NewEngine creates an engine pruning at threshold. A nil threshold is accepted here
// and rejected by Process.
func NewEngine(threshold *float64) *Engine {
	return &Engine{threshold: threshold}
}

// Process prunes the annotations, removes contained mentions and forms the
// interpretations of one query. The input table is left untouched.
func (e *Engine) Process(table annotation.Table) ([]Interpretation, error) {
	if e.threshold == nil {
		return nil, apperr.NewConfig("score threshold is required")
	}

	pruned := Prune(table, *e.threshold)
	valid := RemoveContained(pruned)
	return Form(valid), nil
}

// ProcessAll runs Process for every query. Queries share no state, so with
// workers > 1 they are processed concurrently.
func (e *Engine) ProcessAll(ctx context.Context, set annotation.Set, workers int) (map[string][]Interpretation, error) {
	if e.threshold == nil {
		return nil, apperr.NewConfig("score threshold is required")
	}

	out := make(map[string][]Interpretation, len(set))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, qid := range set.QueryIDs() {
		table := set[qid]
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			interprets, err := e.Process(table)
			if err != nil {
				return fmt.Errorf("query %s: %w", qid, err)
			}
			slog.Debug("query processed", "qid", qid, "candidates", len(table), "interpretations", len(interprets))

			mu.Lock()
			out[qid] = interprets
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune keeps the annotations scoring at least threshold.
func Prune(table annotation.Table, threshold float64) annotation.Table {
	valid := make(annotation.Table)
	for k, score := range table {
		if score >= threshold {
			valid[k] = score
		}
	}
	return valid
}

// RemoveContained drops every annotation whose mention contains, or is contained
// in, the mention of a higher ranked annotation already kept.
func RemoveContained(table annotation.Table) annotation.Table {
	valid := make(annotation.Table)
	var accepted []string

	for _, entry := range table.Sorted() {
		containment := false
		for _, men := range accepted {
			if contains(entry.Mention, men) {
				containment = true
				break
			}
		}
		if containment {
			continue
		}
		valid[entry.Key] = entry.Score
		accepted = append(accepted, entry.Mention)
	}
	return valid
}

// Form builds interpretations greedily. Each annotation joins every interpretation
// it does not overlap with, so one annotation usually lands in several of them. An
// annotation that fits nowhere starts a new interpretation.
func Form(table annotation.Table) []Interpretation {
	interprets := []Interpretation{{}}

	for _, entry := range table.Sorted() {
		added := false
		for _, in := range interprets {
			mentions := append(in.Mentions(), entry.Mention)
			if !IsOverlapping(mentions) {
				in[entry.Mention] = entry.Entity
				added = true
			}
		}
		if !added {
			interprets = append(interprets, Interpretation{entry.Mention: entry.Entity})
		}
	}
	return interprets
}
