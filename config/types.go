package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Riot      RiotConfig      `mapstructure:"riot"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Retry     RetryConfig     `mapstructure:"retry"`
	Filter    FilterConfig    `mapstructure:"filter"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// RiotConfig holds Riot API connection details
type RiotConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	Domain            string        `mapstructure:"domain"`
	DefaultPlatform   string        `mapstructure:"default_platform"`
	Timeout           time.Duration `mapstructure:"timeout"`
	CredentialInQuery bool          `mapstructure:"credential_in_query"`
	UserAgent         string        `mapstructure:"user_agent"`
}

// RateLimitConfig selects and tunes the client-side limiter
type RateLimitConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Backend  string `mapstructure:"backend"`
	RedisURL string `mapstructure:"redis_url"`
	// Application rules apply per region to every resource. Empty means the
	// development key limits.
	Application []RuleConfig   `mapstructure:"application"`
	Methods     []MethodConfig `mapstructure:"methods"`
}

// RuleConfig allows Requests per Period
type RuleConfig struct {
	Requests int           `mapstructure:"requests"`
	Period   time.Duration `mapstructure:"period"`
}

// MethodConfig holds the rules for one resource, e.g. "match-v5.by-id"
type MethodConfig struct {
	Resource string       `mapstructure:"resource"`
	Rules    []RuleConfig `mapstructure:"rules"`
}

// RetryConfig contains caller-side retry and circuit breaker settings
type RetryConfig struct {
	Attempts        uint          `mapstructure:"attempts"`
	Delay           time.Duration `mapstructure:"delay"`
	MaxDelay        time.Duration `mapstructure:"max_delay"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"`
	BreakerTimeout  time.Duration `mapstructure:"breaker_timeout"`
}

// FilterConfig contains named filter expressions. Names are case-insensitive.
type FilterConfig struct {
	Entries      map[string]string `mapstructure:"entries"`
	Participants map[string]string `mapstructure:"participants"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
