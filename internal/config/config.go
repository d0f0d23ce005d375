// Package config provides configuration loading for rstfeat.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "RSTFEAT_"

// Config holds all rstfeat configuration.
type Config struct {
	CorpusDir string    `koanf:"corpus_dir"`
	OutDir    string    `koanf:"out_dir"`
	Live      bool      `koanf:"live"`
	Debug     bool      `koanf:"debug"`
	Log       LogConfig `koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		CorpusDir: "corpus",
		OutDir:    "out",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from RSTFEAT_* environment variables over
// the defaults.
//
//	RSTFEAT_CORPUS_DIR -> corpus_dir
//	RSTFEAT_LOG_LEVEL  -> log.level
func Load() (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", transformEnv), nil); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// transformEnv maps an environment variable name to a config path.
// Only the LOG_ group nests; everything else is a flat snake_case key.
func transformEnv(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(s, "log_"); ok {
		return "log." + rest
	}
	return s
}
