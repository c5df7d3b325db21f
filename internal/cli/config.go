package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/ib-77/xlist/pkg/xlist"
)

const (
	EnvOutput    = "XLIST_OUTPUT"
	EnvLogLevel  = "XLIST_LOG_LEVEL"
	EnvPattern   = "XLIST_PATTERN"
	EnvSeparator = "XLIST_SEPARATOR"
)

// Config holds the settings shared by every command. Flags override it.
type Config struct {
	Output    string
	LogLevel  string
	Pattern   string
	Separator string
}

func DefaultConfig() Config {
	return Config{
		Output:    FormatText,
		LogLevel:  "warn",
		Pattern:   xlist.DefaultTokenPattern,
		Separator: "",
	}
}

// LoadConfig loads the given env files (a missing file is skipped) and
// overlays any XLIST_* variables on the defaults. Variables already set in
// the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := DefaultConfig()
	if v, ok := os.LookupEnv(EnvOutput); ok {
		cfg.Output = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPattern); ok {
		cfg.Pattern = v
	}
	if v, ok := os.LookupEnv(EnvSeparator); ok {
		cfg.Separator = v
	}
	return cfg, nil
}
