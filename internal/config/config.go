package config

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
)

const DefaultWorkers = 1

// FormConfig drives interpretation finding for one annotation file.
type FormConfig struct {
	InputPath         string   `yaml:"input"`
	Threshold         *float64 `yaml:"threshold"`
	OutputPath        string   `yaml:"output"`
	Workers           int      `yaml:"workers"`
	NormalizeMentions bool     `yaml:"normalize_mentions"`
}

// Merge returns c with every field set in override replacing its own.
func (c FormConfig) Merge(override FormConfig) FormConfig {
	if override.InputPath != "" {
		c.InputPath = override.InputPath
	}
	if override.Threshold != nil {
		c.Threshold = override.Threshold
	}
	if override.OutputPath != "" {
		c.OutputPath = override.OutputPath
	}
	if override.Workers != 0 {
		c.Workers = override.Workers
	}
	if override.NormalizeMentions {
		c.NormalizeMentions = true
	}
	return c
}

func (c FormConfig) Validate() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return apperr.NewConfig("input annotation file is required")
	}
	if c.Threshold == nil {
		return apperr.NewConfig("score threshold is required")
	}
	if c.Workers < 0 {
		return apperr.NewConfig("workers must not be negative")
	}
	return nil
}

// EvalConfig drives the evaluation of a result file against qrels.
type EvalConfig struct {
	QrelPath   string `yaml:"qrels"`
	ResultPath string `yaml:"results"`
	Metric     string `yaml:"metric"`
	ReportPath string `yaml:"report"`
	PerQuery   bool   `yaml:"per_query"`
}

func (c EvalConfig) Merge(override EvalConfig) EvalConfig {
	if override.QrelPath != "" {
		c.QrelPath = override.QrelPath
	}
	if override.ResultPath != "" {
		c.ResultPath = override.ResultPath
	}
	if override.Metric != "" {
		c.Metric = override.Metric
	}
	if override.ReportPath != "" {
		c.ReportPath = override.ReportPath
	}
	if override.PerQuery {
		c.PerQuery = true
	}
	return c
}

func (c EvalConfig) Validate() error {
	if strings.TrimSpace(c.QrelPath) == "" {
		return apperr.NewConfig("qrel file is required")
	}
	if strings.TrimSpace(c.ResultPath) == "" {
		return apperr.NewConfig("result file is required")
	}
	if _, err := metrics.ByName(c.Metric); err != nil {
		return apperr.NewValidationWrap("invalid metric", err)
	}
	return nil
}

// ParseThreshold parses a threshold given as text. An empty value means the
// threshold was not provided.
func ParseThreshold(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, apperr.NewConfigWrap("threshold must be a number", err)
	}
	return &v, nil
}
