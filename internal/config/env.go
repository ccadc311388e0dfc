package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"github.com/DjordjeVuckovic/elq-eval/pkg/config/env"
)

const (
	EnvThreshold = "ELQ_THRESHOLD"
	EnvWorkers   = "ELQ_WORKERS"
	EnvLogLevel  = "ELQ_LOG_LEVEL"

	defaultEnvPath = ".env"
)

// Env holds settings taken from the process environment.
type Env struct {
	Threshold *float64
	Workers   int
	LogLevel  string
}

// LoadEnv reads an optional .env file and then the ELQ_* variables.
func LoadEnv() (Env, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), defaultEnvPath); err != nil {
		slog.Debug("no .env loaded, using process environment", "error", err)
	}
	return envFromLookup(os.LookupEnv)
}

func envFromLookup(lookup func(string) (string, bool)) (Env, error) {
	var e Env

	if v, ok := lookup(EnvThreshold); ok {
		th, err := ParseThreshold(v)
		if err != nil {
			return Env{}, apperr.NewConfigWrap(EnvThreshold, err)
		}
		e.Threshold = th
	}

	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Env{}, apperr.NewConfig(EnvWorkers + " must be a non-negative integer")
		}
		e.Workers = n
	}

	if v, ok := lookup(EnvLogLevel); ok {
		e.LogLevel = v
	}
	return e, nil
}

// Form returns the form settings carried by the environment.
func (e Env) Form() FormConfig {
	return FormConfig{Threshold: e.Threshold, Workers: e.Workers}
}
