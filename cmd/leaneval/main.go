package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"github.com/DjordjeVuckovic/elq-eval/internal/config"
	"github.com/DjordjeVuckovic/elq-eval/internal/eval/report"
	"github.com/DjordjeVuckovic/elq-eval/internal/eval/runner"
	"github.com/DjordjeVuckovic/elq-eval/internal/record"
	"github.com/DjordjeVuckovic/elq-eval/pkg/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("leaneval", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cli, err := parseFlags(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperr.ExitOK
		}
		return apperr.ExitUsage
	}

	envCfg, err := config.LoadEnv()
	if err != nil {
		return apperr.Handle(err)
	}

	var file config.File
	if cli.ConfigPath != "" {
		f, err := config.LoadFile(cli.ConfigPath)
		if err != nil {
			return apperr.Handle(err)
		}
		file = *f
	}

	logging.Setup(stderr, logging.Options{Level: firstNonEmpty(cli.LogLevel, file.LogLevel, envCfg.LogLevel)})

	cfg := config.EvalConfig{Metric: runner.DefaultMetric}.Merge(file.Eval).Merge(cli.eval())
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return apperr.Handle(err)
	}

	rpt, err := evaluate(cfg)
	if err != nil {
		return apperr.Handle(err)
	}

	if err := report.WriteTable(rpt, stdout, report.TableOptions{PerQuery: cfg.PerQuery}); err != nil {
		return apperr.Handle(fmt.Errorf("write summary: %w", err))
	}

	if cfg.ReportPath != "" {
		if err := report.WriteJSON(rpt, cfg.ReportPath); err != nil {
			return apperr.Handle(err)
		}
		slog.Info("report written", "path", cfg.ReportPath)
	}
	return apperr.ExitOK
}

func evaluate(cfg config.EvalConfig) (*report.Report, error) {
	qrels, err := record.ParseFile(cfg.QrelPath)
	if err != nil {
		return nil, fmt.Errorf("load qrels: %w", err)
	}
	results, err := record.ParseFile(cfg.ResultPath)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	res, err := runner.New(qrels, results).RunConfig(runner.Config{Metric: cfg.Metric})
	if err != nil {
		return nil, err
	}
	if res.MissingCount > 0 {
		slog.Warn("queries missing from results", "missing", res.MissingCount, "total", res.QueryCount)
	}

	return report.Generate(res, report.Source{QrelPath: cfg.QrelPath, ResultPath: cfg.ResultPath}), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
