package resilience

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/s0up4200/lolapi/riot"
)

// ErrCircuitOpen is returned while the breaker for a host rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Config tunes a Policy.
type Config struct {
	// Attempts is the total number of tries, including the first one.
	Attempts uint
	Delay    time.Duration
	MaxDelay time.Duration

	// BreakerFailures is the number of consecutive failures that opens a
	// breaker. Zero disables breakers.
	BreakerFailures uint32
	// BreakerTimeout is how long an open breaker waits before letting a
	// probe call through.
	BreakerTimeout time.Duration
	// BreakerProbes is the number of calls allowed while half-open.
	BreakerProbes uint32
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Attempts:        3,
		Delay:           500 * time.Millisecond,
		MaxDelay:        10 * time.Second,
		BreakerFailures: 5,
		BreakerTimeout:  30 * time.Second,
		BreakerProbes:   1,
	}
}

// Validate checks that cfg can build a Policy.
func (c Config) Validate() error {
	if c.Attempts == 0 {
		return fmt.Errorf("retry attempts must be at least 1")
	}
	if c.Delay < 0 || c.MaxDelay < 0 {
		return fmt.Errorf("retry delays must not be negative")
	}
	if c.MaxDelay > 0 && c.Delay > c.MaxDelay {
		return fmt.Errorf("retry delay %s exceeds max delay %s", c.Delay, c.MaxDelay)
	}
	if c.BreakerFailures > 0 && c.BreakerTimeout <= 0 {
		return fmt.Errorf("breaker timeout must be positive when breakers are enabled")
	}
	return nil
}

// Policy runs calls with retries and a circuit breaker per key. A Policy is
// safe for concurrent use.
type Policy struct {
	cfg    Config
	logger zerolog.Logger

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

// New creates a Policy. Invalid settings fall back to DefaultConfig values.
func New(cfg Config, logger zerolog.Logger) *Policy {
	def := DefaultConfig()
	if cfg.Attempts == 0 {
		cfg.Attempts = def.Attempts
	}
	if cfg.BreakerFailures > 0 && cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = def.BreakerTimeout
	}
	if cfg.BreakerProbes == 0 {
		cfg.BreakerProbes = def.BreakerProbes
	}

	return &Policy{
		cfg:      cfg,
		logger:   logger.With().Str("component", "resilience").Logger(),
		breakers: make(map[string]*gobreaker.CircuitBreaker[any]),
	}
}

// Do runs fn for key, usually a host prefix such as "na1" or "americas".
// Retryable failures are tried again until the attempts are spent, ctx is
// done, or the breaker for key opens.
func Do[T any](ctx context.Context, p *Policy, key string, fn func(context.Context) (T, error)) (T, error) {
	var result T

	attempt := func() error {
		v, err := p.guard(key, func() (any, error) {
			return fn(ctx)
		})
		if err != nil {
			return err
		}
		result, _ = v.(T)
		return nil
	}

	err := retry.New(
		retry.Context(ctx),
		retry.Attempts(p.cfg.Attempts),
		retry.LastErrorOnly(true),
		retry.RetryIf(riot.IsRetryable),
		retry.DelayType(func(n uint, err error, _ retry.DelayContext) time.Duration {
			return p.backoff(n, err)
		}),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Debug().
				Err(err).
				Str("key", key).
				Uint("attempt", n+1).
				Msg("Retrying Riot API call")
		}),
	).Do(attempt)
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

// backoff doubles Delay for every attempt, capped by MaxDelay. A Retry-After
// carried by err replaces the computed value.
func (p *Policy) backoff(n uint, err error) time.Duration {
	if d := riot.RetryAfter(err); d > 0 {
		return d
	}

	d := p.cfg.Delay
	for i := uint(1); i < n && d > 0; i++ {
		d *= 2
		if p.cfg.MaxDelay > 0 && d >= p.cfg.MaxDelay {
			return p.cfg.MaxDelay
		}
	}
	if p.cfg.MaxDelay > 0 && d > p.cfg.MaxDelay {
		return p.cfg.MaxDelay
	}
	return d
}

func (p *Policy) guard(key string, fn func() (any, error)) (any, error) {
	cb := p.breaker(key)
	if cb == nil {
		return fn()
	}

	v, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w for %s: %w", ErrCircuitOpen, key, err)
	}
	return v, err
}

func (p *Policy) breaker(key string) *gobreaker.CircuitBreaker[any] {
	if p.cfg.BreakerFailures == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cb, ok := p.breakers[key]; ok {
		return cb
	}

	threshold := p.cfg.BreakerFailures
	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        key,
		MaxRequests: p.cfg.BreakerProbes,
		Timeout:     p.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: healthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			p.logger.Warn().
				Str("key", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
	p.breakers[key] = cb
	return cb
}

// State returns the breaker state for key. Keys that have not been used yet
// report closed.
func (p *Policy) State(key string) gobreaker.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cb, ok := p.breakers[key]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

// healthy reports whether err says nothing bad about the remote host.
func healthy(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *riot.Error
	if !errors.As(err, &apiErr) {
		return true
	}
	switch apiErr.Kind {
	case riot.KindTransport:
		return false
	case riot.KindHTTPStatus:
		return apiErr.StatusCode < 500
	default:
		return true
	}
}
