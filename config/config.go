package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration of the omloop service.
type Config struct {
	Optimize OptimizeConfig `json:"optimize"`
	Metrics  MetricsConfig  `json:"metrics"`
}

// Load reads the configuration file at path (yaml or json, chosen by
// extension) and applies OMLOOP_ environment overrides on top.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("OMLOOP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "omloop_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Optimize.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Optimize.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is supplied.
func Default() *Config {
	var cfg Config
	cfg.Optimize.SetDefaults()
	cfg.Metrics.SetDefaults()
	return &cfg
}
