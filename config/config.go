package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/logging"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Content     ContentConfig
	Environment EnvironmentConfig
	Invocation  InvocationConfig
	Log         LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ContentConfig holds the persisted-query endpoints and transport settings
type ContentConfig struct {
	LegacyAuthorURL  string        `mapstructure:"legacy_author_url"`
	LegacyPublishURL string        `mapstructure:"legacy_publish_url"`
	AuthorURL        string        `mapstructure:"author_url"`
	PublishURL       string        `mapstructure:"publish_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
	RateLimit        float64       `mapstructure:"rate_limit"`
	RateBurst        int           `mapstructure:"rate_burst"`
}

// EnvironmentConfig decides which page hosts count as authoring
type EnvironmentConfig struct {
	AuthorHosts []string `mapstructure:"author_hosts"`
}

// InvocationConfig controls the per-container generation tokens
type InvocationConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cpl/")

	// CPL_CONTENT_PUBLISH_URL -> content.publish_url
	v.SetEnvPrefix("CPL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env when present. Variables already set in the
// environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Content API defaults
	v.SetDefault("content.legacy_author_url", "https://author-luma.adobeaemcloud.com/graphql/execute.json/luma3/productsList")
	v.SetDefault("content.legacy_publish_url", "https://publish-luma.adobeaemcloud.com/graphql/execute.json/luma3/productsList")
	v.SetDefault("content.author_url", "https://author-luma.adobeaemcloud.com/graphql/execute.json/luma/productsContentFragmentList")
	v.SetDefault("content.publish_url", "https://publish-luma.adobeaemcloud.com/graphql/execute.json/luma/productsContentFragmentList")
	v.SetDefault("content.timeout", "30s")
	v.SetDefault("content.rate_limit", 5)
	v.SetDefault("content.rate_burst", 10)

	v.SetDefault("environment.author_hosts", []string{"author-"})
	v.SetDefault("invocation.ttl", "10m")
	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	endpoints := map[string]string{
		"content.legacy_author_url":  config.Content.LegacyAuthorURL,
		"content.legacy_publish_url": config.Content.LegacyPublishURL,
		"content.author_url":         config.Content.AuthorURL,
		"content.publish_url":        config.Content.PublishURL,
	}
	for key, raw := range endpoints {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) URL, got: %q", key, raw)
		}
	}

	if config.Content.RateLimit <= 0 {
		return fmt.Errorf("content rate limit must be positive, got: %v", config.Content.RateLimit)
	}

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return err
	}

	return nil
}
