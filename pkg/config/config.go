package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// DatabaseURL is the sqlite location, optionally prefixed with "sqlite:".
	DatabaseURL string `mapstructure:"database_url"`

	// Server settings
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// StaticDir is served under /static.
	StaticDir string `mapstructure:"static_dir"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`
}

const (
	DefaultDatabaseURL = "sqlite:redleaf.db"
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 3000
	DefaultStaticDir   = "static"
)

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the REDLEAF_ prefix; database_url is additionally
// read from the bare DATABASE_URL variable.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("host", DefaultHost)
	v.SetDefault("port", DefaultPort)
	v.SetDefault("static_dir", DefaultStaticDir)

	v.SetEnvPrefix("REDLEAF")
	v.AutomaticEnv()
	if err := v.BindEnv("database_url", "DATABASE_URL", "REDLEAF_DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("redleaf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// DatabasePath returns the sqlite file path with any "sqlite:" scheme removed.
func (c *Config) DatabasePath() string {
	return strings.TrimPrefix(c.DatabaseURL, "sqlite:")
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("REDLEAF_DEV_MODE") == "1"
}
