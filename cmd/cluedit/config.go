package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CLUEDIT_"

// config holds the solver-facing settings of the CLI. Precedence, lowest
// to highest: built-in defaults, YAML config file, CLUEDIT_* environment
// variables, explicit command-line flags.
type config struct {
	Bundle  bool `koanf:"bundle"`
	Verbose bool `koanf:"verbose"`
	JSON    bool `koanf:"json"`
}

// loadConfig layers the configuration sources. path may be empty, in
// which case no file is read.
func loadConfig(path string) (config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"bundle":  true,
		"verbose": false,
		"json":    false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return config{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
