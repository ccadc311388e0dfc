package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
	"github.com/google/uuid"
)

type Report struct {
	Meta       Meta       `json:"meta"`
	Aggregated Aggregated `json:"aggregated"`
	PerQuery   []Entry    `json:"per_query"`
}

type Meta struct {
	RunID       uuid.UUID       `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Metric      string          `json:"metric"`
	QrelPath    string          `json:"qrel_path,omitempty"`
	ResultPath  string          `json:"result_path,omitempty"`
	Elapsed     time.Duration   `json:"elapsed"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Aggregated struct {
	metrics.Scores
	QueryCount   int `json:"query_count"`
	MissingCount int `json:"missing_count"`
}

type Entry struct {
	QueryID    string `json:"qid"`
	metrics.Scores
	QrelSets   int  `json:"qrel_sets"`
	ResultSets int  `json:"result_sets"`
	Missing    bool `json:"missing,omitempty"`
}
