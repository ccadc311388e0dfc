package report

import (
	"time"

	"github.com/DjordjeVuckovic/elq-eval/internal/eval/runner"
	"github.com/google/uuid"
)

// Source names the files an evaluation run compared.
type Source struct {
	QrelPath   string
	ResultPath string
}

func Generate(res *runner.Result, src Source) *Report {
	r := &Report{
		Meta: Meta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			Metric:      res.Config.Metric,
			QrelPath:    src.QrelPath,
			ResultPath:  src.ResultPath,
			Elapsed:     res.Elapsed,
			Environment: NewEnvironmentInfo(),
		},
		Aggregated: Aggregated{
			Scores:       res.Mean,
			QueryCount:   res.QueryCount,
			MissingCount: res.MissingCount,
		},
	}

	for _, qr := range res.PerQuery {
		r.PerQuery = append(r.PerQuery, Entry{
			QueryID:    qr.QueryID,
			Scores:     qr.Scores,
			QrelSets:   qr.QrelSets,
			ResultSets: qr.ResultSets,
			Missing:    qr.Missing,
		})
	}

	return r
}
