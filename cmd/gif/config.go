package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/config"
)

type cliConfig struct {
	Input      string
	Threshold  string
	Output     string
	Workers    int
	Normalize  bool
	ConfigPath string
	LogLevel   string
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	cfg := cliConfig{}

	fs.StringVar(&cfg.Input, "in", "", "TSV file containing entity ranking results (qid, freebase_id, mention, score)")
	fs.StringVar(&cfg.Input, "input", "", "Alias for -in")
	fs.StringVar(&cfg.Threshold, "th", "", "Score threshold for the greedy approach (required)")
	fs.StringVar(&cfg.Threshold, "threshold", "", "Alias for -th")
	fs.StringVar(&cfg.Output, "out", "", "Output path (default: <input without extension>-GIF-th<threshold>.txt)")
	fs.IntVar(&cfg.Workers, "workers", 0, "Number of queries processed concurrently")
	fs.BoolVar(&cfg.Normalize, "normalize", false, "Apply Unicode NFC to mentions before matching")
	fs.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML run file")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -in <tsv_file> -th <score_threshold> [options]\n\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		err := errors.New("unexpected arguments: " + strings.Join(fs.Args(), " "))
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return cfg, err
	}
	return cfg, nil
}

func (c cliConfig) form() (config.FormConfig, error) {
	th, err := config.ParseThreshold(c.Threshold)
	if err != nil {
		return config.FormConfig{}, err
	}
	return config.FormConfig{
		InputPath:         strings.TrimSpace(c.Input),
		Threshold:         th,
		OutputPath:        strings.TrimSpace(c.Output),
		Workers:           c.Workers,
		NormalizeMentions: c.Normalize,
	}, nil
}
