package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/elq-eval/internal/annotation"
	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"github.com/DjordjeVuckovic/elq-eval/internal/config"
	"github.com/DjordjeVuckovic/elq-eval/internal/interpret"
	"github.com/DjordjeVuckovic/elq-eval/internal/record"
	"github.com/DjordjeVuckovic/elq-eval/pkg/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gif", flag.ContinueOnError)
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

	flagCfg, err := cli.form()
	if err != nil {
		fs.Usage()
		return apperr.Handle(err)
	}
	cfg := envCfg.Form().Merge(file.Form).Merge(flagCfg)
	if err := cfg.Validate(); err != nil {
		fs.Usage()
		return apperr.Handle(err)
	}

	out, err := formInterpretations(ctx, cfg)
	if err != nil {
		return apperr.Handle(err)
	}

	fmt.Fprintln(stdout, "Output file:", out)
	return apperr.ExitOK
}

func formInterpretations(ctx context.Context, cfg config.FormConfig) (string, error) {
	start := time.Now()

	var opts []annotation.ReaderOption
	if cfg.NormalizeMentions {
		opts = append(opts, annotation.WithNormalizedMentions())
	}
	set, err := annotation.ReadFile(cfg.InputPath, opts...)
	if err != nil {
		return "", err
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = config.DefaultWorkers
	}
	interprets, err := interpret.NewEngine(cfg.Threshold).ProcessAll(ctx, set, workers)
	if err != nil {
		return "", fmt.Errorf("form interpretations: %w", err)
	}

	results := record.Canonicalize(interprets)

	out := cfg.OutputPath
	if out == "" {
		out = record.OutputPath(cfg.InputPath, *cfg.Threshold)
	}
	if err := record.WriteFile(out, results); err != nil {
		return "", err
	}

	slog.Info("interpretations written",
		"queries", len(results),
		"records", results.RecordCount(),
		"threshold", *cfg.Threshold,
		"elapsed", time.Since(start),
	)
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
