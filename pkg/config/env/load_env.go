package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file without overriding ones already set.
// ENV_PATH selects the file; otherwise defaultPath is tried. A missing default
// file is not an error, except in the "local" environment.
func LoadDotEnv(env string, defaultPath string) error {
	envPath, explicit := os.LookupEnv("ENV_PATH")
	if !explicit || envPath == "" {
		envPath = defaultPath
		explicit = false
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("environment loaded", "path", envPath)
		return nil
	}

	if errors.Is(err, fs.ErrNotExist) && !explicit && env != "local" {
		return nil
	}
	return fmt.Errorf("load %s: %w", envPath, err)
}
