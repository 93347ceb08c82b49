// Package config defines the defaults a stimrecord deployment can pin in
// a TOML file, mirroring the shape (and loading mechanism) of
// cmd/pilosa/config.go: a plain struct with toml tags, populated by
// spf13/viper.
package config

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/Greg8128/Stim/errors"
	"github.com/Greg8128/Stim/logger"
	"github.com/Greg8128/Stim/toml"
)

// Config holds the dump command's defaults when none are given on the
// command line.
type Config struct {
	DefaultFormat string        `toml:"default-format"`
	DefaultM      uint64        `toml:"default-m"`
	DefaultD      uint64        `toml:"default-d"`
	DefaultL      uint64        `toml:"default-l"`
	MaxShots      int           `toml:"max-shots"`
	Verbosity     int           `toml:"verbosity"`
	Timeout       toml.Duration `toml:"timeout"`
}

// NewConfig returns the compiled-in defaults, before any file is layered
// on top of them.
func NewConfig() *Config {
	return &Config{
		DefaultFormat: "01",
		MaxShots:      10000,
		Verbosity:     logger.LevelInfo,
		Timeout:       toml.Duration(30 * time.Second),
	}
}

// Load reads a TOML file at path into a fresh Config seeded with
// NewConfig's defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "reading configuration file")
	}
	// toml.Duration implements encoding.TextUnmarshaler; mapstructure
	// needs the hook spelled out explicitly to use it instead of trying
	// (and failing) to decode a string straight into a named int64 type.
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
	))
	useTomlTag := func(dc *mapstructure.DecoderConfig) { dc.TagName = "toml" }
	if err := v.Unmarshal(cfg, decodeHook, useTomlTag); err != nil {
		return nil, errors.Wrap(err, "parsing configuration file")
	}
	return cfg, nil
}
