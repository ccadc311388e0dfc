package runner

import (
	"time"

	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
)

type QueryResult struct {
	QueryID    string
	Scores     metrics.Scores
	QrelSets   int
	ResultSets int
	Missing    bool
}

// Result is the outcome of one evaluation run. Mean is the macro average over
// every qrel query, missing ones included.
type Result struct {
	Config       Config
	PerQuery     []QueryResult
	Mean         metrics.Scores
	QueryCount   int
	MissingCount int
	Elapsed      time.Duration
}
