// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. OUTFIT_SERVER_PORT.
const EnvPrefix = "OUTFIT"

// Defaults.
const (
	DefaultPort               = 8000
	DefaultRecommenderURL     = "http://127.0.0.1:8000"
	DefaultRecommenderTimeout = 30 * time.Second
	DefaultSubmitLimit        = 30
	DefaultRateLimitWindow    = time.Minute
)

// Config is the complete application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Recommender RecommenderConfig `mapstructure:"recommender"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Form        FormConfig        `mapstructure:"form"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// RecommenderConfig points at the external recommendation service.
type RecommenderConfig struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gt=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// FormConfig controls how submitted inventory is checked.
type FormConfig struct {
	StrictInventory bool `mapstructure:"strict_inventory"`
}

// RateLimitConfig limits how often a client may submit the form.
type RateLimitConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	SubmitLimit  int           `mapstructure:"submit_limit" validate:"gte=0"`
	SubmitBurst  int           `mapstructure:"submit_burst" validate:"gte=0"`
	DefaultLimit int           `mapstructure:"default_limit" validate:"gte=0"`
	Window       time.Duration `mapstructure:"window" validate:"gt=0"`
	Whitelist    []string      `mapstructure:"whitelist"`
	Blacklist    []string      `mapstructure:"blacklist"`
}

// ConfigError wraps a configuration failure with the file it came from.
type ConfigError struct {
	Path  string
	Cause error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config error (%s): %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("config error: %v", e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// setDefaults registers every key so environment overrides are seen by Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("recommender.base_url", DefaultRecommenderURL)
	v.SetDefault("recommender.timeout", DefaultRecommenderTimeout)
	v.SetDefault("recommender.user_agent", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("form.strict_inventory", false)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.submit_limit", DefaultSubmitLimit)
	v.SetDefault("rate_limit.submit_burst", 5)
	v.SetDefault("rate_limit.default_limit", 600)
	v.SetDefault("rate_limit.window", DefaultRateLimitWindow)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})
}

// LoadDotEnv loads environment variables from the given .env files, or from
// ./.env when none are given. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		_ = godotenv.Load(path)
	}
}

// LoadConfig reads configuration from path (YAML, JSON or TOML by extension),
// then applies OUTFIT_* environment overrides. With an empty path it looks for
// outfit_agent.{yaml,json,toml} in the working directory and ./configs, and
// falls back to defaults when none exists.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigError{Path: path, Cause: fmt.Errorf("failed to read config file: %w", err)}
		}
	} else {
		v.SetConfigName("outfit_agent")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, &ConfigError{Path: v.ConfigFileUsed(), Cause: fmt.Errorf("failed to read config file: %w", err)}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{Path: path, Cause: fmt.Errorf("failed to unmarshal config: %w", err)}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Cause: err}
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
