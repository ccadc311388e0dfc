package config

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"gopkg.in/yaml.v3"
)

// File is an optional YAML run file holding defaults for both commands.
type File struct {
	LogLevel string     `yaml:"log_level"`
	Form     FormConfig `yaml:"form"`
	Eval     EvalConfig `yaml:"eval"`
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigWrap("read run file", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperr.NewConfigWrap("parse run file YAML", err)
	}
	if err := validate(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

var validLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func validate(f *File) error {
	if !validLogLevels[f.LogLevel] {
		return apperr.NewConfig(fmt.Sprintf("invalid log_level %q", f.LogLevel))
	}
	if f.Form.Workers < 0 {
		return apperr.NewConfig("form.workers must not be negative")
	}
	return nil
}
