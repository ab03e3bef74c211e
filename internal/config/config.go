// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keyline Contributors

// Package config loads keyline configuration from YAML files and CLI flags.
package config

import (
	"errors"
	"io/fs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/keyline/keyline/internal/xdg"
)

// Config holds all keyline settings.
type Config struct {
	// PartialMatch enables unique-prefix command matching.
	PartialMatch bool `koanf:"partial-match"`
	// CommandsFile is the path of the command definitions file.
	CommandsFile string `koanf:"commands-file"`
	// Aliases maps alias names to replacement command lines.
	// Merged over aliases from the command definitions file.
	Aliases map[string]string `koanf:"aliases"`

	Logging       Logging       `koanf:"logging"`
	Observability Observability `koanf:"observability"`
}

// Logging holds log output settings.
type Logging struct {
	// Format is "json" or "text".
	Format string `koanf:"format"`
}

// Observability holds the metrics endpoint settings.
type Observability struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// Default returns the configuration used when no file or flags are present.
func Default() Config {
	return Config{
		PartialMatch: false,
		CommandsFile: xdg.CommandsFile(),
		Aliases:      map[string]string{},
		Logging: Logging{
			Format: "json",
		},
		Observability: Observability{
			Enabled: false,
			Addr:    "localhost:9090",
		},
	}
}

// Load reads configuration in precedence order: defaults, then the YAML
// file at path (skipped if path is empty or the default file is missing),
// then flags. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	k := koanf.New(".")

	explicit := path != ""
	if path == "" {
		path = xdg.ConfigFile()
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		// A missing default config file is not an error.
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, oops.
				Code("CONFIG_LOAD_FAILED").
				With("path", path).
				Wrapf(err, "loading config file")
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.
				Code("CONFIG_LOAD_FAILED").
				Wrapf(err, "loading flags")
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.
			Code("CONFIG_LOAD_FAILED").
			With("path", path).
			Wrapf(err, "unmarshaling config")
	}

	// Unset flag defaults can merge in as empty strings.
	if cfg.CommandsFile == "" {
		cfg.CommandsFile = xdg.CommandsFile()
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Format {
	case "", "json", "text":
	default:
		return oops.
			Code("CONFIG_INVALID").
			With("format", c.Logging.Format).
			Errorf("logging format must be json or text")
	}

	if c.Observability.Enabled && c.Observability.Addr == "" {
		return oops.
			Code("CONFIG_INVALID").
			Errorf("observability enabled but no addr configured")
	}

	return nil
}
