package riot

import (
	"context"
	"fmt"
	"strconv"

	"github.com/s0up4200/lolapi/region"
)

var (
	challengerLeague = Endpoint[LeagueList]{
		Name: "league-v4.challenger",
		Host: PlatformHost,
		Path: "/lol/league/v4/challengerleagues/by-queue/{queue}",
	}
	grandmasterLeague = Endpoint[LeagueList]{
		Name: "league-v4.grandmaster",
		Host: PlatformHost,
		Path: "/lol/league/v4/grandmasterleagues/by-queue/{queue}",
	}
	masterLeague = Endpoint[LeagueList]{
		Name: "league-v4.master",
		Host: PlatformHost,
		Path: "/lol/league/v4/masterleagues/by-queue/{queue}",
	}
	leagueByID = Endpoint[LeagueList]{
		Name: "league-v4.by-id",
		Host: PlatformHost,
		Path: "/lol/league/v4/leagues/{leagueId}",
	}
	leagueEntriesBySummoner = Endpoint[[]LeagueEntry]{
		Name: "league-v4.entries-by-summoner",
		Host: PlatformHost,
		Path: "/lol/league/v4/entries/by-summoner/{summonerId}",
	}
	leagueEntriesByPUUID = Endpoint[[]LeagueEntry]{
		Name: "league-v4.entries-by-puuid",
		Host: PlatformHost,
		Path: "/lol/league/v4/entries/by-puuid/{puuid}",
	}
	leagueEntries = Endpoint[[]LeagueEntry]{
		Name:  "league-v4.entries",
		Host:  PlatformHost,
		Path:  "/lol/league/v4/entries/{queue}/{tier}/{division}",
		Query: []string{"page"},
	}
)

// LeagueEntriesOptions are the optional parameters of LeagueEntries.
type LeagueEntriesOptions struct {
	// Page starts at 1. Zero leaves the parameter out.
	Page int
}

// ChallengerLeague returns the Challenger ladder of a queue.
func (c *Client) ChallengerLeague(ctx context.Context, platform region.Platform, queue Queue) (*LeagueList, error) {
	return c.apexLeague(ctx, challengerLeague, platform, queue)
}

// GrandmasterLeague returns the Grandmaster ladder of a queue.
func (c *Client) GrandmasterLeague(ctx context.Context, platform region.Platform, queue Queue) (*LeagueList, error) {
	return c.apexLeague(ctx, grandmasterLeague, platform, queue)
}

// MasterLeague returns the Master ladder of a queue.
func (c *Client) MasterLeague(ctx context.Context, platform region.Platform, queue Queue) (*LeagueList, error) {
	return c.apexLeague(ctx, masterLeague, platform, queue)
}

// ApexLeague returns the ladder of an apex tier (Master, Grandmaster or Challenger).
func (c *Client) ApexLeague(ctx context.Context, platform region.Platform, tier Tier, queue Queue) (*LeagueList, error) {
	switch tier {
	case TierChallenger:
		return c.ChallengerLeague(ctx, platform, queue)
	case TierGrandmaster:
		return c.GrandmasterLeague(ctx, platform, queue)
	case TierMaster:
		return c.MasterLeague(ctx, platform, queue)
	default:
		return nil, fmt.Errorf("%w: %q is not an apex tier", ErrInvalidArgument, tier)
	}
}

func (c *Client) apexLeague(ctx context.Context, ep Endpoint[LeagueList], platform region.Platform, queue Queue) (*LeagueList, error) {
	if !queue.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown ranked queue %q", ep.Name, ErrInvalidArgument, queue)
	}
	l, err := execute(ctx, c, ep, platform, []string{string(queue)}, nil)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// LeagueByID returns a league by its id.
func (c *Client) LeagueByID(ctx context.Context, platform region.Platform, leagueID string) (*LeagueList, error) {
	l, err := execute(ctx, c, leagueByID, platform, []string{leagueID}, nil)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// LeagueEntriesBySummoner returns the ranked entries of a summoner, one per
// queue played. An unranked summoner yields an empty slice.
func (c *Client) LeagueEntriesBySummoner(ctx context.Context, platform region.Platform, summonerID string) ([]LeagueEntry, error) {
	return execute(ctx, c, leagueEntriesBySummoner, platform, []string{summonerID}, nil)
}

// LeagueEntriesByPUUID returns the ranked entries of a player.
func (c *Client) LeagueEntriesByPUUID(ctx context.Context, platform region.Platform, puuid string) ([]LeagueEntry, error) {
	return execute(ctx, c, leagueEntriesByPUUID, platform, []string{puuid}, nil)
}

// LeagueEntries returns one page of the entries in a queue, tier and
// division. Apex tiers are served by ApexLeague instead.
func (c *Client) LeagueEntries(ctx context.Context, platform region.Platform, queue Queue, tier Tier, division Division, opts LeagueEntriesOptions) ([]LeagueEntry, error) {
	switch {
	case !queue.Valid():
		return nil, fmt.Errorf("%s: %w: unknown ranked queue %q", leagueEntries.Name, ErrInvalidArgument, queue)
	case !tier.Valid():
		return nil, fmt.Errorf("%s: %w: unknown tier %q", leagueEntries.Name, ErrInvalidArgument, tier)
	case tier.Apex():
		return nil, fmt.Errorf("%s: %w: apex tier %s has no divisions", leagueEntries.Name, ErrInvalidArgument, tier)
	case !division.Valid():
		return nil, fmt.Errorf("%s: %w: unknown division %q", leagueEntries.Name, ErrInvalidArgument, division)
	case opts.Page < 0:
		return nil, fmt.Errorf("%s: %w: negative page %d", leagueEntries.Name, ErrInvalidArgument, opts.Page)
	}

	query := map[string]string{}
	if opts.Page > 0 {
		query["page"] = strconv.Itoa(opts.Page)
	}
	return execute(ctx, c, leagueEntries, platform, []string{string(queue), string(tier), string(division)}, query)
}
