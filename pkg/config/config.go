// Package config loads the optional YAML analysis settings for the
// tidegauge CLI. Every field has a sensible default; a missing file or an
// empty document yields the default configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds the tunable parts of an analysis run.
type Config struct {
	// Constituents are the tidal constituents reported by the harmonic
	// fit, in output order.
	Constituents []string `yaml:"constituents"`
	// Extension selects which files in the data directory are parsed.
	Extension string `yaml:"extension"`
	// HeaderLines is the number of leading lines skipped per file.
	HeaderLines int `yaml:"header_lines"`
	// FlagChars are the trailing quality-flag letters marking a reading
	// as missing.
	FlagChars string `yaml:"flag_chars"`
}

// Default returns the configuration for the UK gauge archive layout with
// the two principal semi-diurnal constituents.
func Default() *Config {
	return &Config{
		Constituents: []string{"M2", "S2"},
		Extension:    ".txt",
		HeaderLines:  11,
		FlagChars:    "NTM",
	}
}

// Load reads a YAML configuration file and fills any omitted field with
// its default. The file itself is optional only at the CLI layer; here a
// missing or unreadable file is an error with the path attached.
func Load(filename string) (*Config, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", filename, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", filename, err)
	}

	def := Default()
	if len(cfg.Constituents) == 0 {
		cfg.Constituents = def.Constituents
	}
	if cfg.Extension == "" {
		cfg.Extension = def.Extension
	}
	if cfg.HeaderLines == 0 {
		cfg.HeaderLines = def.HeaderLines
	}
	if cfg.FlagChars == "" {
		cfg.FlagChars = def.FlagChars
	}
	return cfg, nil
}
