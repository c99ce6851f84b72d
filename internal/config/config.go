package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server
type Config struct {
	Port     string
	Provider ProviderConfig
	Redis    RedisConfig
}

// ProviderConfig holds the flight provider credentials and endpoints
type ProviderConfig struct {
	BaseURL        string
	TokenURL       string
	ClientID       string
	ClientSecret   string
	TimeoutSeconds int
}

// RedisConfig holds the local store connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("port", "8080")
	v.SetDefault("provider.timeout_seconds", 10)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath("/etc/gflights")
	v.AddConfigPath(".")

	if configPath := os.Getenv("GFLIGHTS_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Config file not found is OK, defaults plus env vars still apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("GFLIGHTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port: v.GetString("port"),
		Provider: ProviderConfig{
			BaseURL:        v.GetString("provider.base_url"),
			TokenURL:       v.GetString("provider.token_url"),
			ClientID:       v.GetString("provider.client_id"),
			ClientSecret:   v.GetString("provider.client_secret"),
			TimeoutSeconds: v.GetInt("provider.timeout_seconds"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetString("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("port is required")
	}

	if cfg.Provider.BaseURL == "" {
		return fmt.Errorf("provider.base_url is required")
	}

	if cfg.Provider.ClientID == "" || cfg.Provider.ClientSecret == "" {
		return fmt.Errorf("provider.client_id and provider.client_secret are required")
	}

	if cfg.Provider.TimeoutSeconds <= 0 {
		return fmt.Errorf("provider.timeout_seconds must be greater than 0")
	}

	return nil
}
