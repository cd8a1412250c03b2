// Package config reads the optional TOML defaults file of the picture tool.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/picture/internal/codec"
)

// Config holds tool-wide defaults. Every key is optional.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Workers is the number of goroutines operators may use per picture.
	// Values <= 1 run operators on a single goroutine.
	Workers int `toml:"workers"`

	// JPEGQuality is used when the output path names a JPEG file.
	JPEGQuality int `toml:"jpeg_quality"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		LogLevel:    "info",
		Workers:     1,
		JPEGQuality: codec.DefaultOptions().JPEGQuality,
	}
}

// Load reads the TOML file at path on top of Default.
// An empty path yields the defaults; a named file must exist.
func Load(path string) (Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality %d out of range 1..100", c.JPEGQuality)
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
