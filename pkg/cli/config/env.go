package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultEnvFile is loaded when --env-file is not given
const DefaultEnvFile = ".env"

// EnvFileFromArgs finds the --env-file value in raw arguments. Flags are
// resolved from the environment, so the file has to be loaded before the
// command line is parsed.
func EnvFileFromArgs(args []string, fallback string) string {
	for i, arg := range args {
		switch {
		case arg == "--":
			return fallback
		case arg == "--env-file" || arg == "-env-file":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--env-file="):
			return strings.TrimPrefix(arg, "--env-file=")
		case strings.HasPrefix(arg, "-env-file="):
			return strings.TrimPrefix(arg, "-env-file=")
		}
	}
	return fallback
}

// LoadEnvFile sets variables from a dotenv file without overriding the ones
// already present. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
