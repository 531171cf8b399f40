// Package config loads netplan settings from a YAML file.
//
// Example .netplan.yaml:
//
//	method: prim
//	output: yaml
//	log_level: debug
//	strict: true
//
// Unknown keys are rejected. Missing keys keep their defaults.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = ".netplan.yaml"

// Config holds the settings that flags may override.
type Config struct {
	Method   string `yaml:"method"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
	Strict   bool   `yaml:"strict"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Method:   "kruskal",
		Output:   "text",
		LogLevel: "info",
	}
}

// Decode reads YAML from r on top of the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decoding")
	}

	return cfg, nil
}

// Load reads the file at path. A missing file yields the defaults unless
// required is set, in which case it is an error.
func Load(path string, required bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "config: opening %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.WithMessagef(err, "config: %s", path)
	}

	return cfg, nil
}
