// config.go: the loom.yaml config file format shared by cmd/loom's
// subcommands.
//
// What this file does
// --------------------
// A small typed config struct unmarshaled with github.com/goccy/go-yaml,
// the same dependency fsloader.go uses for manifest.yaml — the CLI reads
// one from the current directory (or a --config path) the way
// daios-ai-msg's cmd/msg locates its own tool config.
package loom

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	GeneratorPaths []string `yaml:"generatorPaths"`
	Seed           int64    `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{GeneratorPaths: []string{"."}, Seed: 0}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
