package riot

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/lolapi/region"
)

// Concurrency bounds for batch fetches
const (
	DefaultConcurrency = 5
	MaxConcurrency     = 20
)

// MatchResult is the outcome of fetching one match in a batch.
type MatchResult struct {
	ID    string
	Match *Match
	Err   error
}

// BatchMatchResult summarizes a batch fetch. Results are in input order.
type BatchMatchResult struct {
	Results []MatchResult
	Failed  int
}

// Matches returns the matches that were fetched successfully.
func (b BatchMatchResult) Matches() []*Match {
	out := make([]*Match, 0, len(b.Results)-b.Failed)
	for _, r := range b.Results {
		if r.Err == nil {
			out = append(out, r.Match)
		}
	}
	return out
}

// FetchMatches fetches matches concurrently with at most concurrency calls in
// flight. A failed match does not stop the others; each keeps its own error.
func (c *Client) FetchMatches(ctx context.Context, platform region.Platform, ids []string, concurrency int) BatchMatchResult {
	result := BatchMatchResult{Results: make([]MatchResult, len(ids))}
	if len(ids) == 0 {
		return result
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	concurrency = min(concurrency, MaxConcurrency)

	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, id := range ids {
		g.Go(func() error {
			m, err := c.MatchByID(ctx, platform, id)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("match_id", id).
					Msg("Failed to fetch match")
			}
			// Each goroutine owns index i.
			result.Results[i] = MatchResult{ID: id, Match: m, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	for _, r := range result.Results {
		if r.Err != nil {
			result.Failed++
		}
	}
	return result
}
