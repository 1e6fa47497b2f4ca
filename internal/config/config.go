package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"foodnetwork/pkg/logger"
)

// EnvPrefix is prepended to every environment variable the CLI reads
const EnvPrefix = "FOODNET"

// Config holds all CLI configuration
type Config struct {
	API    APIConfig     `mapstructure:"api"`
	Log    logger.Config `mapstructure:"log"`
	Locale string        `mapstructure:"locale"`
}

// APIConfig contains account service connection settings
type APIConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	InsecureSkipVerify bool          `mapstructure:"insecure_skip_verify"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:            "http://localhost:3000",
			InsecureSkipVerify: false,
			Timeout:            30 * time.Second,
		},
		Log: logger.Config{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
		Locale: "en",
	}
}

// SetDefaults registers defaults and environment binding on v
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("api.base_url", d.API.BaseURL)
	v.SetDefault("api.insecure_skip_verify", d.API.InsecureSkipVerify)
	v.SetDefault("api.timeout", d.API.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.time_format", "")
	v.SetDefault("locale", d.Locale)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from v. Nothing is read from or written to disk.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the connection settings
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.API.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", c.API.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing host", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid api timeout %s: must be positive", c.API.Timeout)
	}
	return nil
}
