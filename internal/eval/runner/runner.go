package runner

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
	"github.com/DjordjeVuckovic/elq-eval/internal/record"
)

// Evaluator macro-averages a per-query metric over the queries of a qrel file.
type Evaluator struct {
	qrels   record.Interpretations
	results record.Interpretations
}

func New(qrels, results record.Interpretations) *Evaluator {
	return &Evaluator{qrels: qrels, results: results}
}

// RunConfig resolves cfg.Metric and runs it.
func (e *Evaluator) RunConfig(cfg Config) (*Result, error) {
	fn, err := metrics.ByName(cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("resolve metric: %w", err)
	}
	res := e.Run(fn)
	res.Config = cfg
	return res, nil
}

// Run scores every qrel query with fn. A query without results scores zero.
// Queries that appear only in the results are ignored.
func (e *Evaluator) Run(fn metrics.QueryFunc) *Result {
	start := time.Now()
	res := &Result{Config: DefaultConfig()}

	qids := make([]string, 0, len(e.qrels))
	for qid := range e.qrels {
		qids = append(qids, qid)
	}
	sort.Strings(qids)

	var sum metrics.Scores
	for _, qid := range qids {
		qrelSets := e.qrels[qid]
		qr := QueryResult{QueryID: qid, QrelSets: len(qrelSets)}

		resultSets, ok := e.results[qid]
		if !ok {
			qr.Missing = true
			res.MissingCount++
			slog.Warn("query missing from results, scoring zero", "qid", qid)
		} else {
			qr.ResultSets = len(resultSets)
			qr.Scores = fn(qrelSets, resultSets)
		}

		sum = sum.Add(qr.Scores)
		res.PerQuery = append(res.PerQuery, qr)
	}

	res.QueryCount = len(qids)
	if res.QueryCount > 0 {
		res.Mean = sum.Scale(1 / float64(res.QueryCount))
	}

	if extra := len(e.results) - (res.QueryCount - res.MissingCount); extra > 0 {
		slog.Debug("result queries without qrels ignored", "count", extra)
	}
	res.Elapsed = time.Since(start)

	return res
}
