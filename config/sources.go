package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"marketing-dashboard/util"
)

// SourcesConfig holds settings that differ between export files.
type SourcesConfig struct {
	DefaultDateOrder string                  `yaml:"default_date_order"`
	Sources          map[string]SourceConfig `yaml:"sources"`
}

type SourceConfig struct {
	DateOrder string `yaml:"date_order"`
}

// DefaultSourcesConfig reads every source month first.
func DefaultSourcesConfig() *SourcesConfig {
	return &SourcesConfig{
		DefaultDateOrder: string(util.MonthFirst),
		Sources:          map[string]SourceConfig{},
	}
}

// LoadSources reads a YAML sources file and merges it over the defaults.
func LoadSources(path string) (*SourcesConfig, error) {
	cfg := DefaultSourcesConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sources file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing sources file: %w", err)
	}
	if cfg.Sources == nil {
		cfg.Sources = map[string]SourceConfig{}
	}
	if _, err := util.ParseDateOrder(cfg.DefaultDateOrder); err != nil {
		return nil, fmt.Errorf("default_date_order: %w", err)
	}
	for name, src := range cfg.Sources {
		if _, err := util.ParseDateOrder(src.DateOrder); err != nil {
			return nil, fmt.Errorf("sources.%s.date_order: %w", name, err)
		}
	}
	return cfg, nil
}

// DateParsers builds one parser per configured source. Sources without an
// entry use the default order.
func (c *SourcesConfig) DateParsers() (map[string]*util.DateParser, *util.DateParser) {
	def, _ := util.ParseDateOrder(c.DefaultDateOrder)
	fallback := util.NewDateParser(def)
	out := make(map[string]*util.DateParser, len(c.Sources))
	for name, src := range c.Sources {
		if src.DateOrder == "" {
			out[name] = fallback
			continue
		}
		order, _ := util.ParseDateOrder(src.DateOrder)
		out[name] = util.NewDateParser(order)
	}
	return out, fallback
}
