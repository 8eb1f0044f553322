package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Local is an in-process token bucket limiter. Buckets are created lazily per
// key and live for the lifetime of the Local.
type Local struct {
	rules ruleSet

	mu      sync.Mutex
	buckets map[Key][]*rate.Limiter
}

// NewLocal returns a Local enforcing DevelopmentKeyRules per region unless
// overridden by opts.
func NewLocal(opts ...Option) (*Local, error) {
	rules, err := newRuleSet(opts)
	if err != nil {
		return nil, err
	}
	return &Local{
		rules:   rules,
		buckets: make(map[Key][]*rate.Limiter),
	}, nil
}

// Wait blocks until every bucket for key has a token.
func (l *Local) Wait(ctx context.Context, key Key) error {
	for _, sc := range l.rules.scopesFor(key) {
		for _, b := range l.bucketsFor(sc) {
			if err := b.Wait(ctx); err != nil {
				return fmt.Errorf("rate limit %s: %w", sc.key, err)
			}
		}
	}
	return nil
}

func (l *Local) bucketsFor(sc scope) []*rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[sc.key]; ok {
		return b
	}

	b := make([]*rate.Limiter, 0, len(sc.rules))
	for _, r := range sc.rules {
		b = append(b, rate.NewLimiter(rate.Every(r.Period/time.Duration(r.Requests)), r.Requests))
	}
	l.buckets[sc.key] = b
	return b
}
