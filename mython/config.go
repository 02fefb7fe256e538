package mython

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries the knobs the interpreter needs beyond raw source text.
type Config struct {
	RecursionLimit int  `toml:"recursion-limit"`
	TraceCalls     bool `toml:"trace-calls"`
}

// DefaultConfig returns the zero-tuned configuration: no recursion limit,
// no call tracing.
func DefaultConfig() Config {
	return Config{RecursionLimit: 0, TraceCalls: false}
}

// LoadConfig reads a TOML file at path into a Config seeded with
// DefaultConfig, so any field the file omits keeps its default. A missing
// file is not an error — callers that pass an explicit -config path should
// check os.Stat themselves first if they want that to be fatal.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
