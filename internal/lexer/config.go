package lexer

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the lexer's one configuration knob (spec §4.1 Tie-breaks):
// by default `@`, `$`, and `#` are unexpected-character lex errors, but a
// loaded config can widen the set of identifier-continuation characters
// to include them (or any other bytes a caller wants to treat that way).
type Config struct {
	// ExtraIdentChars lists additional bytes, beyond letters, digits, and
	// '_', that may start or appear inside an identifier. Given "@$", the
	// source `@name` lexes as a single IDENTIFIER token instead of an
	// unexpected-character error followed by an IDENTIFIER.
	ExtraIdentChars string `yaml:"extraIdentChars"`

	// TabWidth is loaded and defaulted but not read by the lexer: Column
	// advances by one per byte, tabs included, and no token boundary or
	// diagnostic depends on it.
	TabWidth int `yaml:"tabWidth"`
}

// DefaultConfig returns the zero-knob configuration: no extra identifier
// characters, an 8-column tab stop.
func DefaultConfig() Config {
	return Config{TabWidth: 8}
}

// LoadConfig reads a YAML config file and overlays it onto DefaultConfig.
// A missing TabWidth (zero) falls back to the default of 8.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.TabWidth == 0 {
		cfg.TabWidth = 8
	}
	return cfg, nil
}

// isExtraIdentChar reports whether b is one of this Config's additional
// identifier-continuation characters.
func (c Config) isExtraIdentChar(b byte) bool {
	for i := 0; i < len(c.ExtraIdentChars); i++ {
		if c.ExtraIdentChars[i] == b {
			return true
		}
	}
	return false
}
