package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "EFFORTCAL_"

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. the YAML file named by EFFORTCAL_CONFIG, if set
//  3. EFFORTCAL_* environment variables
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.DB == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DB = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// envKey maps EFFORTCAL_LOG_LEVEL to log_level and
// EFFORTCAL_CATEGORIES_A_PALETTE to categories.a.palette.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, c := range []string{"a", "b"} {
		p := "categories_" + c + "_"
		if strings.HasPrefix(s, p) {
			return "categories." + c + "." + strings.TrimPrefix(s, p)
		}
	}
	return s
}
