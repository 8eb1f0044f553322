package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/lolapi/region"
)

// isolate runs the test in an empty directory with no Riot environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("RIOT_API_KEY", "")
	t.Setenv("LOLAPI_RIOT_API_KEY", "")
	os.Unsetenv("RIOT_API_KEY")
	os.Unsetenv("LOLAPI_RIOT_API_KEY")
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func validConfig() *Config {
	return &Config{
		Riot: RiotConfig{
			APIKey:          "RGAPI-valid",
			Domain:          "api.riotgames.com",
			DefaultPlatform: "euw",
			Timeout:         5 * time.Second,
		},
		RateLimit: RateLimitConfig{Enabled: true, Backend: BackendLocal},
		Retry: RetryConfig{
			Attempts:        3,
			Delay:           time.Second,
			MaxDelay:        10 * time.Second,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "lolapi.yaml")
	writeFile(t, path, `
riot:
  api_key: RGAPI-from-file
  default_platform: kr
  timeout: 3s
ratelimit:
  application:
    - requests: 10
      period: 1s
  methods:
    - resource: match-v5.by-id
      rules:
        - requests: 2000
          period: 10s
retry:
  attempts: 5
filter:
  entries:
    Climbers: hotStreak and winRate > 0.55
  participants:
    carry: kda >= 5
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-from-file", cfg.Riot.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Riot.Timeout)
	assert.Equal(t, "api.riotgames.com", cfg.Riot.Domain)
	assert.Equal(t, uint(5), cfg.Retry.Attempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.Delay)
	assert.Equal(t, "debug", cfg.Logging.Level)

	p, err := cfg.Riot.Platform()
	require.NoError(t, err)
	assert.Equal(t, region.KR, p)

	require.Len(t, cfg.RateLimit.Methods, 1)
	assert.Equal(t, "match-v5.by-id", cfg.RateLimit.Methods[0].Resource)
	opts, err := cfg.RateLimit.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	// viper lowercases map keys
	assert.Equal(t, "hotStreak and winRate > 0.55", cfg.Filter.Entries["climbers"])
	assert.Equal(t, "kda >= 5", cfg.Filter.Participants["carry"])
}

func TestLoadWithoutFileUsesEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("RIOT_API_KEY", "RGAPI-env")
	t.Setenv("LOLAPI_RIOT_DEFAULT_PLATFORM", "oce")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "RGAPI-env", cfg.Riot.APIKey)
	p, err := cfg.Riot.Platform()
	require.NoError(t, err)
	assert.Equal(t, region.OC1, p)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, BackendLocal, cfg.RateLimit.Backend)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadPrefixedKeyWins(t *testing.T) {
	isolate(t)
	t.Setenv("RIOT_API_KEY", "RGAPI-plain")
	t.Setenv("LOLAPI_RIOT_API_KEY", "RGAPI-prefixed")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "RGAPI-prefixed", cfg.Riot.APIKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "RIOT_API_KEY=RGAPI-dotenv\n")
	t.Cleanup(func() { os.Unsetenv("RIOT_API_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "RGAPI-dotenv", cfg.Riot.APIKey)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		dir := isolate(t)
		t.Setenv("RIOT_API_KEY", "RGAPI-env")
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("no api key", func(t *testing.T) {
		isolate(t)
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "riot.api_key")
	})

	t.Run("unknown platform", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.yaml")
		writeFile(t, path, "riot:\n  api_key: k\n  default_platform: atlantis\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_platform")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "placeholder key", mutate: func(c *Config) { c.Riot.APIKey = "your-api-key-here" }, errContains: "api_key"},
		{name: "empty domain", mutate: func(c *Config) { c.Riot.Domain = "" }, errContains: "riot.domain"},
		{name: "zero timeout", mutate: func(c *Config) { c.Riot.Timeout = 0 }, errContains: "riot.timeout"},
		{name: "unknown backend", mutate: func(c *Config) { c.RateLimit.Backend = "memcached" }, errContains: "ratelimit.backend"},
		{name: "redis without url", mutate: func(c *Config) { c.RateLimit.Backend = BackendRedis }, errContains: "redis_url"},
		{
			name: "redis with url",
			mutate: func(c *Config) {
				c.RateLimit.Backend = BackendRedis
				c.RateLimit.RedisURL = "redis://localhost:6379/0"
			},
		},
		{name: "disabled limiter ignores backend", mutate: func(c *Config) {
			c.RateLimit.Enabled = false
			c.RateLimit.Backend = "memcached"
		}},
		{name: "bad rule", mutate: func(c *Config) {
			c.RateLimit.Application = []RuleConfig{{Requests: 0, Period: time.Second}}
		}, errContains: "ratelimit rules"},
		{name: "method without resource", mutate: func(c *Config) {
			c.RateLimit.Methods = []MethodConfig{{Rules: []RuleConfig{{Requests: 1, Period: time.Second}}}}
		}, errContains: "resource"},
		{name: "zero attempts", mutate: func(c *Config) { c.Retry.Attempts = 0 }, errContains: "retry"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, errContains: "logging level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, errContains: "logging format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
