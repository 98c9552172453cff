package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	DefaultLanguage   string        `mapstructure:"default_language" yaml:"default_language"`
	ExecutorURL       string        `mapstructure:"executor_url" yaml:"executor_url"`
	ExecutorAPIKey    string        `mapstructure:"executor_api_key" yaml:"executor_api_key"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3001",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		DefaultLanguage:   "javascript",
		ExecutorURL:       "https://judge0-ce.p.rapidapi.com",
		ExecutorAPIKey:    "",
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.DefaultLanguage != "" {
		c.DefaultLanguage = other.DefaultLanguage
	}
	if other.ExecutorURL != "" {
		c.ExecutorURL = other.ExecutorURL
	}
	if other.ExecutorAPIKey != "" {
		c.ExecutorAPIKey = other.ExecutorAPIKey
	}
}
