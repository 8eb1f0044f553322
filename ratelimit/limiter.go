package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"
)

// ErrInvalidRule is returned for rules with a non-positive count or period.
var ErrInvalidRule = errors.New("invalid rate limit rule")

// Key identifies the quota a request draws from.
type Key struct {
	// Region is the host prefix, e.g. "na1" or "europe".
	Region string
	// Resource is the endpoint name, e.g. "match-v5.by-id".
	Resource string
}

func (k Key) String() string {
	if k.Resource == "" {
		return k.Region
	}
	return k.Region + ":" + k.Resource
}

// Limiter blocks until a request for key may be sent, or ctx is done.
type Limiter interface {
	Wait(ctx context.Context, key Key) error
}

// Rule allows Requests per Period.
type Rule struct {
	Requests int
	Period   time.Duration
}

func (r Rule) String() string {
	return fmt.Sprintf("%d/%s", r.Requests, r.Period)
}

func (r Rule) validate() error {
	if r.Requests <= 0 || r.Period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRule, r)
	}
	return nil
}

// DevelopmentKeyRules are the application limits of a development API key,
// enforced per region.
var DevelopmentKeyRules = []Rule{
	{Requests: 20, Period: time.Second},
	{Requests: 100, Period: 2 * time.Minute},
}

// Option configures a limiter.
type Option func(*ruleSet)

// WithApplicationRules sets the per-region rules shared by every resource.
// Passing no rules disables the application scope.
func WithApplicationRules(rules ...Rule) Option {
	return func(s *ruleSet) {
		s.application = slices.Clone(rules)
	}
}

// WithMethodRules sets per-region rules for a single resource.
func WithMethodRules(resource string, rules ...Rule) Option {
	return func(s *ruleSet) {
		s.methods[resource] = slices.Clone(rules)
	}
}

// ruleSet holds the application scope (keyed by region) and the method scope
// (keyed by region and resource).
type ruleSet struct {
	application []Rule
	methods     map[string][]Rule
}

func newRuleSet(opts []Option) (ruleSet, error) {
	s := ruleSet{
		application: slices.Clone(DevelopmentKeyRules),
		methods:     make(map[string][]Rule),
	}
	for _, opt := range opts {
		opt(&s)
	}

	for _, r := range s.application {
		if err := r.validate(); err != nil {
			return ruleSet{}, err
		}
	}
	for _, resource := range slices.Sorted(maps.Keys(s.methods)) {
		for _, r := range s.methods[resource] {
			if err := r.validate(); err != nil {
				return ruleSet{}, fmt.Errorf("resource %s: %w", resource, err)
			}
		}
	}
	return s, nil
}

// scope is one quota bucket group: the key it is tracked under and its rules.
type scope struct {
	key   Key
	rules []Rule
}

// scopesFor returns the method scope first, then the application scope.
func (s ruleSet) scopesFor(key Key) []scope {
	var out []scope
	if rules := s.methods[key.Resource]; len(rules) > 0 {
		out = append(out, scope{key: key, rules: rules})
	}
	if len(s.application) > 0 {
		out = append(out, scope{key: Key{Region: key.Region}, rules: s.application})
	}
	return out
}

// Nop never blocks.
type Nop struct{}

// Wait returns ctx.Err().
func (Nop) Wait(ctx context.Context, _ Key) error {
	return ctx.Err()
}
