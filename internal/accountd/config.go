package accountd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"foodnetwork/pkg/logger"
)

// EnvPrefix is prepended to every environment variable the service reads
const EnvPrefix = "FOODNET_ACCOUNTD"

// Config holds account service settings
type Config struct {
	Addr            string        `mapstructure:"addr"`
	RateLimit       float64       `mapstructure:"rate_limit"` // requests per second per client IP
	Burst           int           `mapstructure:"burst"`
	BcryptCost      int           `mapstructure:"bcrypt_cost"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Seed            []string      `mapstructure:"seed"` // email:password accounts created at startup
	Log             logger.Config `mapstructure:"log"`
}

// DefaultConfig returns development defaults matching the CLI's default base URL
func DefaultConfig() Config {
	return Config{
		Addr:            ":3000",
		RateLimit:       5,
		Burst:           10,
		BcryptCost:      bcrypt.DefaultCost,
		ShutdownTimeout: 10 * time.Second,
		Log: logger.Config{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
	}
}

// LoadConfig reads FOODNET_ACCOUNTD_* variables over the defaults
func LoadConfig(v *viper.Viper) (Config, error) {
	d := DefaultConfig()
	v.SetDefault("addr", d.Addr)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("burst", d.Burst)
	v.SetDefault("bcrypt_cost", d.BcryptCost)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)
	v.SetDefault("seed", []string{})
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.time_format", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the service settings
func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if c.RateLimit <= 0 || c.Burst <= 0 {
		return fmt.Errorf("rate limit and burst must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
