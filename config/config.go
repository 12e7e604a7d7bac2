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

	"github.com/kilianp07/approx/core/bench"
	"github.com/kilianp07/approx/core/metrics"
)

// EnvPrefix marks the environment variables that override file values.
// Nested keys are separated by a double underscore, e.g.
// APPROX_LIMITS__MAX_EXACT_GROUPS=20.
const EnvPrefix = "APPROX_"

type Config struct {
	Limits  LimitsConfig      `json:"limits"`
	Suite   bench.SuiteConfig `json:"suite"`
	Logging LoggingConfig     `json:"logging"`
	Metrics metrics.Config    `json:"metrics"`
}

// Load reads the configuration at path, applies environment overrides and
// defaults, then validates it. An empty path loads defaults and environment
// only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
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
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies the defaults of every section.
func (c *Config) SetDefaults() {
	c.Limits.SetDefaults()
	c.Suite.SetDefaults()
	c.Logging.SetDefaults()
	c.Metrics.SetDefaults()
}

// Validate checks every section and the constraints between them.
func (c Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return fmt.Errorf("limits: %w", err)
	}
	if err := c.Suite.Validate(); err != nil {
		return fmt.Errorf("suite: %w", err)
	}
	if n := c.Suite.Attendance.Groups; c.Suite.Attendance.Runs > 0 && n > c.Limits.MaxExactGroups {
		return fmt.Errorf("suite: %d attendance groups exceed limits.max_exact_groups %d", n, c.Limits.MaxExactGroups)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
