// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lightweight DDD Contributors

// Package config loads the sample service configuration from an optional
// YAML file layered under command-line flags.
package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Database holds connection settings.
type Database struct {
	URL string `koanf:"url"`
}

// Log holds logging settings.
type Log struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
}

// Config is the full service configuration.
type Config struct {
	Database Database `koanf:"database"`
	Log      Log      `koanf:"log"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Log: Log{Format: "json", Level: "info"},
	}
}

// Load merges, in order of increasing precedence: defaults, the YAML file at
// path (skipped when path is empty), and any set flags. Flag names use the
// same dotted keys as the file, e.g. --log.level maps to log.level.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, oops.Code("CONFIG_FILE_FAILED").With("path", path).Wrap(err)
		}
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_FLAGS_FAILED").Wrap(err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_PARSE_FAILED").Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that have a closed set of values. The database
// URL is validated by the commands that need one; read-only commands run
// without it.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "json", "text":
	default:
		return oops.Code("CONFIG_INVALID").
			With("log.format", c.Log.Format).
			Errorf("log format must be json or text")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return oops.Code("CONFIG_INVALID").
			With("log.level", c.Log.Level).
			Errorf("log level must be one of debug, info, warn, error")
	}
	return nil
}

// RequireDatabase fails when no database URL is configured.
func (c Config) RequireDatabase() error {
	if c.Database.URL == "" {
		return oops.Code("CONFIG_INVALID").
			Errorf("database.url is required (set it in the config file or with --database.url)")
	}
	return nil
}

// String renders the config for debug logging with secrets elided.
func (c Config) String() string {
	url := c.Database.URL
	if url != "" {
		url = "<set>"
	}
	return fmt.Sprintf("database.url=%s log.format=%s log.level=%s", url, c.Log.Format, c.Log.Level)
}
