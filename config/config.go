package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/s0up4200/lolapi/ratelimit"
	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/resilience"
)

// EnvPrefix prefixes environment overrides, e.g. LOLAPI_RIOT_DEFAULT_PLATFORM.
const EnvPrefix = "LOLAPI"

// Backends for the rate limiter
const (
	BackendLocal = "local"
	BackendRedis = "redis"
)

// Load loads the configuration from file and environment. A .env file in the
// working directory is read first. Without an explicit configPath a missing
// config file is not an error; defaults and environment are used instead.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("riot.api_key", EnvPrefix+"_RIOT_API_KEY", "RIOT_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".lolapi"))
		}

		// Check /etc
		v.AddConfigPath("/etc/lolapi/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	def := resilience.DefaultConfig()

	// Riot defaults
	v.SetDefault("riot.api_key", "")
	v.SetDefault("riot.domain", "api.riotgames.com")
	v.SetDefault("riot.default_platform", "na1")
	v.SetDefault("riot.timeout", 10*time.Second)
	v.SetDefault("riot.credential_in_query", false)
	v.SetDefault("riot.user_agent", "")

	// Rate limit defaults
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.backend", BackendLocal)
	v.SetDefault("ratelimit.redis_url", "")

	// Retry defaults
	v.SetDefault("retry.attempts", def.Attempts)
	v.SetDefault("retry.delay", def.Delay)
	v.SetDefault("retry.max_delay", def.MaxDelay)
	v.SetDefault("retry.breaker_failures", def.BreakerFailures)
	v.SetDefault("retry.breaker_timeout", def.BreakerTimeout)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Riot.APIKey == "" || cfg.Riot.APIKey == "your-api-key-here" {
		return fmt.Errorf("riot.api_key must be set to a valid API key (or RIOT_API_KEY)")
	}

	if cfg.Riot.Domain == "" {
		return fmt.Errorf("riot.domain is required")
	}

	if _, err := region.Parse(cfg.Riot.DefaultPlatform); err != nil {
		return fmt.Errorf("invalid riot.default_platform: %w", err)
	}

	if cfg.Riot.Timeout <= 0 {
		return fmt.Errorf("riot.timeout must be positive")
	}

	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case BackendLocal:
		case BackendRedis:
			if cfg.RateLimit.RedisURL == "" {
				return fmt.Errorf("ratelimit.redis_url is required for the redis backend")
			}
		default:
			return fmt.Errorf("invalid ratelimit.backend: %s (must be 'local' or 'redis')", cfg.RateLimit.Backend)
		}

		if _, err := cfg.RateLimit.Options(); err != nil {
			return fmt.Errorf("invalid ratelimit rules: %w", err)
		}
	}

	if err := cfg.Retry.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid retry settings: %w", err)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}

// Platform returns the configured default platform.
func (c RiotConfig) Platform() (region.Platform, error) {
	return region.Parse(c.DefaultPlatform)
}

// Options converts the configured rules into limiter options.
func (c RateLimitConfig) Options() ([]ratelimit.Option, error) {
	var opts []ratelimit.Option

	if len(c.Application) > 0 {
		rules, err := toRules(c.Application)
		if err != nil {
			return nil, fmt.Errorf("application: %w", err)
		}
		opts = append(opts, ratelimit.WithApplicationRules(rules...))
	}

	for _, m := range c.Methods {
		if m.Resource == "" {
			return nil, fmt.Errorf("method rules need a resource")
		}
		rules, err := toRules(m.Rules)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Resource, err)
		}
		opts = append(opts, ratelimit.WithMethodRules(m.Resource, rules...))
	}

	return opts, nil
}

func toRules(in []RuleConfig) ([]ratelimit.Rule, error) {
	rules := make([]ratelimit.Rule, 0, len(in))
	for _, r := range in {
		if r.Requests <= 0 || r.Period <= 0 {
			return nil, fmt.Errorf("%w: %d/%s", ratelimit.ErrInvalidRule, r.Requests, r.Period)
		}
		rules = append(rules, ratelimit.Rule{Requests: r.Requests, Period: r.Period})
	}
	return rules, nil
}

// Policy returns the resilience settings.
func (c RetryConfig) Policy() resilience.Config {
	return resilience.Config{
		Attempts:        c.Attempts,
		Delay:           c.Delay,
		MaxDelay:        c.MaxDelay,
		BreakerFailures: c.BreakerFailures,
		BreakerTimeout:  c.BreakerTimeout,
		BreakerProbes:   1,
	}
}
