package runner

import "github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"

const DefaultMetric = metrics.MetricLean

type Config struct {
	Metric string
}

func DefaultConfig() Config {
	return Config{
		Metric: DefaultMetric,
	}
}
