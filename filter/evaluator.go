package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an Evaluator
type EvaluatorOption func(*evaluatorOptions)

type evaluatorOptions struct {
	workers   int
	batchSize int
}

// WithWorkers sets the number of concurrent chunks
func WithWorkers(workers int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		if workers > 0 {
			o.workers = workers
		}
	}
}

// WithBatchSize sets the input size below which evaluation stays sequential
// and the minimum chunk size above it.
func WithBatchSize(size int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// Evaluate returns the items f matches, in input order. Large inputs are split
// into chunks that are evaluated concurrently. The first evaluation error
// cancels the remaining chunks.
func Evaluate[T any](ctx context.Context, f *Filter[T], items []T, opts ...EvaluatorOption) ([]T, error) {
	o := evaluatorOptions{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(items) == 0 {
		return []T{}, nil
	}

	// For small inputs, don't bother with concurrency
	if len(items) < o.batchSize || o.workers == 1 {
		return evaluateChunk(ctx, f, items)
	}

	chunkSize := max(len(items)/o.workers, o.batchSize)
	chunks := make([][]T, (len(items)+chunkSize-1)/chunkSize)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(items))
		g.Go(func() error {
			matches, err := evaluateChunk(gctx, f, items[start:end])
			if err != nil {
				return err
			}
			chunks[i] = matches
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	out := make([]T, 0, total)
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out, nil
}

func evaluateChunk[T any](ctx context.Context, f *Filter[T], items []T) ([]T, error) {
	matches := make([]T, 0, len(items)/4)
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, item)
		}
	}
	return matches, nil
}
