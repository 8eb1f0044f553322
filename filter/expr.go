package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/s0up4200/lolapi/riot"
)

// Filter is a compiled boolean expression over values of type T. A Filter is
// safe for concurrent use.
type Filter[T any] struct {
	expression string
	program    *vm.Program
	env        func(T) map[string]any
	extra      map[string]any
	describe   func(T) string
}

// Expression returns the source expression.
func (f *Filter[T]) Expression() string {
	return f.expression
}

// Match reports whether v satisfies the filter.
func (f *Filter[T]) Match(v T) (bool, error) {
	env := f.env(v)
	maps.Copy(env, f.extra)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    f.describe(v),
			Reason:     "expression failed",
			Err:        err,
		}
	}

	// AsBool at compile time guarantees the type.
	return result.(bool), nil
}

// CompilerOption configures a Compiler
type CompilerOption func(*compilerOptions)

type compilerOptions struct {
	cacheSize int
	funcs     map[string]any
}

// WithCache keeps up to size compiled filters keyed by expression.
func WithCache(size int) CompilerOption {
	return func(o *compilerOptions) {
		o.cacheSize = size
	}
}

// WithCustomFunctions adds helper functions to every environment.
func WithCustomFunctions(funcs map[string]any) CompilerOption {
	return func(o *compilerOptions) {
		maps.Copy(o.funcs, funcs)
	}
}

// Compiler turns expressions into Filters for one value type.
type Compiler[T any] struct {
	env      func(T) map[string]any
	describe func(T) string
	funcs    map[string]any
	cache    *lru.Cache[string, *Filter[T]]
}

// NewCompiler creates a compiler whose expressions see the names env returns.
// The zero value of T is used to type-check expressions, so names not present
// in env fail at compile time.
func NewCompiler[T any](env func(T) map[string]any, describe func(T) string, opts ...CompilerOption) (*Compiler[T], error) {
	o := compilerOptions{funcs: make(map[string]any)}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compiler[T]{
		env:      env,
		describe: describe,
		funcs:    o.funcs,
	}

	if o.cacheSize > 0 {
		cache, err := lru.New[string, *Filter[T]](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create filter cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// NewEntryCompiler creates a compiler over league entries.
func NewEntryCompiler(opts ...CompilerOption) (*Compiler[riot.LeagueEntry], error) {
	return NewCompiler(EntryEnv, func(e riot.LeagueEntry) string {
		return fmt.Sprintf("entry %s", e.PUUID)
	}, opts...)
}

// NewParticipantCompiler creates a compiler over match participants.
func NewParticipantCompiler(opts ...CompilerOption) (*Compiler[riot.Participant], error) {
	return NewCompiler(ParticipantEnv, func(p riot.Participant) string {
		return fmt.Sprintf("participant %d (%s)", p.ParticipantID, p.ChampionName)
	}, opts...)
}

// Compile compiles an expression into a Filter.
func (c *Compiler[T]) Compile(expression string) (*Filter[T], error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	var zero T
	typeEnv := c.env(zero)
	maps.Copy(typeEnv, c.funcs)

	program, err := expr.Compile(expression,
		expr.Env(typeEnv),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter[T]{
		expression: expression,
		program:    program,
		env:        c.env,
		extra:      c.funcs,
		describe:   c.describe,
	}

	if c.cache != nil {
		c.cache.Add(expression, f)
	}

	return f, nil
}

// Clear removes all cached filters
func (c *Compiler[T]) Clear() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

// Size returns the number of cached filters
func (c *Compiler[T]) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}
