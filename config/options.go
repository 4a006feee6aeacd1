package config

import (
	"time"

	goflags "github.com/jessevdk/go-flags"
)

// Options are the process flags. Each one falls back to an environment
// variable, so a .env file loaded beforehand can set them too.
type Options struct {
	Env         string `long:"env" env:"DASHBOARD_ENV" description:"Runtime environment (dev or prod)"`
	Address     string `long:"address" env:"HTTP_ADDRESS" description:"HTTP listen address"`
	DataDir     string `long:"data-dir" env:"DATA_DIR" description:"Directory holding the CSV exports"`
	SourceURL   string `long:"source-url" env:"SOURCE_BASE_URL" description:"Fetch CSV exports from this base URL instead of the data dir"`
	SourcesFile string `long:"sources" env:"SOURCES_FILE" description:"YAML file with per-source settings"`
	Redis       bool   `long:"redis" env:"REDIS_ENABLED" description:"Cache snapshots in Redis"`
	RefreshMins int    `long:"refresh-minutes" env:"REFRESH_INTERVAL_MINUTES" description:"Reload datasets every N minutes (0 disables)"`
}

// ParseOptions parses args into Options. Unknown flags are an error.
func ParseOptions(args []string) (*Options, error) {
	var opts Options
	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "marketing-dashboard"
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Apply overrides cfg with every option that was set.
func (o *Options) Apply(cfg *Config) {
	if o.Env != "" {
		cfg.Env = o.Env
	}
	if o.Address != "" {
		cfg.HTTPAddress = o.Address
	}
	if o.DataDir != "" {
		cfg.DataDir = o.DataDir
	}
	if o.SourceURL != "" {
		cfg.SourceBaseURL = o.SourceURL
	}
	if o.SourcesFile != "" {
		cfg.SourcesFile = o.SourcesFile
	}
	if o.Redis {
		cfg.RedisEnabled = true
	}
	if o.RefreshMins > 0 {
		cfg.RefreshInterval = time.Duration(o.RefreshMins) * time.Minute
	}
}
