package riot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/s0up4200/lolapi/region"
)

var (
	matchByID = Endpoint[Match]{
		Name: "match-v5.by-id",
		Host: RoutingHost,
		Path: "/lol/match/v5/matches/{matchId}",
	}
	matchIDsByPUUID = Endpoint[[]string]{
		Name:  "match-v5.ids-by-puuid",
		Host:  RoutingHost,
		Path:  "/lol/match/v5/matches/by-puuid/{puuid}/ids",
		Query: []string{"startTime", "endTime", "queue", "type", "start", "count"},
	}
	timelineByMatchID = Endpoint[Timeline]{
		Name: "match-v5.timeline",
		Host: RoutingHost,
		Path: "/lol/match/v5/matches/{matchId}/timeline",
	}
)

// MaxMatchIDCount is the largest page MatchIDsByPUUID accepts.
const MaxMatchIDCount = 100

// MatchIDsOptions filter a match id list. Nil fields are left out of the request.
type MatchIDsOptions struct {
	StartTime *time.Time
	EndTime   *time.Time
	// Queue is a queue id, e.g. 420 for ranked solo.
	Queue *int
	Type  *MatchType
	// Start is the index of the first id to return.
	Start *int
	// Count is the page size, 0 to 100.
	Count *int
}

func (o MatchIDsOptions) query() (map[string]string, error) {
	q := make(map[string]string)
	if o.StartTime != nil {
		q["startTime"] = strconv.FormatInt(o.StartTime.Unix(), 10)
	}
	if o.EndTime != nil {
		q["endTime"] = strconv.FormatInt(o.EndTime.Unix(), 10)
	}
	if o.StartTime != nil && o.EndTime != nil && o.EndTime.Before(*o.StartTime) {
		return nil, fmt.Errorf("%w: endTime before startTime", ErrInvalidArgument)
	}
	if o.Queue != nil {
		q["queue"] = strconv.Itoa(*o.Queue)
	}
	if o.Type != nil {
		mt, err := ParseMatchType(string(*o.Type))
		if err != nil {
			return nil, err
		}
		q["type"] = string(mt)
	}
	if o.Start != nil {
		if *o.Start < 0 {
			return nil, fmt.Errorf("%w: negative start %d", ErrInvalidArgument, *o.Start)
		}
		q["start"] = strconv.Itoa(*o.Start)
	}
	if o.Count != nil {
		if *o.Count < 0 || *o.Count > MaxMatchIDCount {
			return nil, fmt.Errorf("%w: count %d outside 0..%d", ErrInvalidArgument, *o.Count, MaxMatchIDCount)
		}
		q["count"] = strconv.Itoa(*o.Count)
	}
	return q, nil
}

// MatchByID returns a match, e.g. "NA1_4923184093".
func (c *Client) MatchByID(ctx context.Context, platform region.Platform, matchID string) (*Match, error) {
	m, err := execute(ctx, c, matchByID, platform, []string{matchID}, nil)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// MatchIDsByPUUID returns the ids of a player's matches, most recent first.
func (c *Client) MatchIDsByPUUID(ctx context.Context, platform region.Platform, puuid string, opts MatchIDsOptions) ([]string, error) {
	query, err := opts.query()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", matchIDsByPUUID.Name, err)
	}
	return execute(ctx, c, matchIDsByPUUID, platform, []string{puuid}, query)
}

// TimelineByMatchID returns the timeline of a match.
func (c *Client) TimelineByMatchID(ctx context.Context, platform region.Platform, matchID string) (*Timeline, error) {
	t, err := execute(ctx, c, timelineByMatchID, platform, []string{matchID}, nil)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
