package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/config"
	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
)

type cliConfig struct {
	QrelPath   string
	ResultPath string
	Metric     string
	ReportPath string
	PerQuery   bool
	ConfigPath string
	LogLevel   string
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs.StringVar(&cfg.Metric, "metric", "", fmt.Sprintf("Per-query metric: %s (default %s)",
		strings.Join(metrics.Names(), ", "), metrics.MetricLean))
	fs.StringVar(&cfg.ReportPath, "report", "", "Optional JSON report output path")
	fs.BoolVar(&cfg.PerQuery, "per-query", false, "Print per-query scores")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML run file")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options] <qrel_file> <result_file>\n\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch fs.NArg() {
	case 0:
	case 2:
		cfg.QrelPath = strings.TrimSpace(fs.Arg(0))
		cfg.ResultPath = strings.TrimSpace(fs.Arg(1))
	default:
		err := fmt.Errorf("expected <qrel_file> <result_file>, got %d arguments", fs.NArg())
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return cfg, err
	}
	return cfg, nil
}

func (c cliConfig) eval() config.EvalConfig {
	return config.EvalConfig{
		QrelPath:   c.QrelPath,
		ResultPath: c.ResultPath,
		Metric:     c.Metric,
		ReportPath: c.ReportPath,
		PerQuery:   c.PerQuery,
	}
}
