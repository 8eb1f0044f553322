package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "lolapi:ratelimit:"

// Redis shares quotas across processes through a Redis GCRA limiter.
type Redis struct {
	limiter *redis_rate.Limiter
	rules   ruleSet
	prefix  string
}

// NewRedis returns a Redis limiter enforcing DevelopmentKeyRules per region
// unless overridden by opts.
func NewRedis(rdb redis.UniversalClient, opts ...Option) (*Redis, error) {
	rules, err := newRuleSet(opts)
	if err != nil {
		return nil, err
	}
	return &Redis{
		limiter: redis_rate.NewLimiter(rdb),
		rules:   rules,
		prefix:  defaultKeyPrefix,
	}, nil
}

// Wait blocks until every rule for key admits one request. While a rule is
// exhausted it sleeps for the advised RetryAfter.
func (r *Redis) Wait(ctx context.Context, key Key) error {
	for _, sc := range r.rules.scopesFor(key) {
		for _, rule := range sc.rules {
			if err := r.take(ctx, r.redisKey(sc.key, rule), rule); err != nil {
				return fmt.Errorf("rate limit %s: %w", sc.key, err)
			}
		}
	}
	return nil
}

// Reset clears every counter tracked for key.
func (r *Redis) Reset(ctx context.Context, key Key) error {
	for _, sc := range r.rules.scopesFor(key) {
		for _, rule := range sc.rules {
			if err := r.limiter.Reset(ctx, r.redisKey(sc.key, rule)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Redis) take(ctx context.Context, name string, rule Rule) error {
	limit := redis_rate.Limit{
		Rate:   rule.Requests,
		Burst:  rule.Requests,
		Period: rule.Period,
	}

	for {
		res, err := r.limiter.AllowN(ctx, name, limit, 1)
		if err != nil {
			return err
		}
		if res.Allowed > 0 {
			return nil
		}

		wait := res.RetryAfter
		if wait <= 0 {
			wait = time.Millisecond
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (r *Redis) redisKey(key Key, rule Rule) string {
	var b strings.Builder
	b.WriteString(r.prefix)
	b.WriteString(key.String())
	b.WriteByte(':')
	b.WriteString(rule.Period.String())
	return b.String()
}
