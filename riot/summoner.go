package riot

import (
	"context"

	"github.com/s0up4200/lolapi/region"
)

var (
	summonerByPUUID = Endpoint[Summoner]{
		Name: "summoner-v4.by-puuid",
		Host: PlatformHost,
		Path: "/lol/summoner/v4/summoners/by-puuid/{puuid}",
	}
	summonerByAccount = Endpoint[Summoner]{
		Name: "summoner-v4.by-account",
		Host: PlatformHost,
		Path: "/lol/summoner/v4/summoners/by-account/{accountId}",
	}
	summonerByID = Endpoint[Summoner]{
		Name: "summoner-v4.by-id",
		Host: PlatformHost,
		Path: "/lol/summoner/v4/summoners/{summonerId}",
	}
	summonerByRSOPUUID = Endpoint[Summoner]{
		Name: "summoner-v4.by-rso-puuid",
		Host: PlatformHost,
		Path: "/fulfillment/v1/summoners/by-puuid/{rsoPUUID}",
	}
)

// SummonerByPUUID looks up a summoner by puuid.
func (c *Client) SummonerByPUUID(ctx context.Context, platform region.Platform, puuid string) (*Summoner, error) {
	return c.summoner(ctx, summonerByPUUID, platform, puuid)
}

// SummonerByAccountID looks up a summoner by encrypted account id.
func (c *Client) SummonerByAccountID(ctx context.Context, platform region.Platform, accountID string) (*Summoner, error) {
	return c.summoner(ctx, summonerByAccount, platform, accountID)
}

// SummonerByID looks up a summoner by encrypted summoner id.
func (c *Client) SummonerByID(ctx context.Context, platform region.Platform, summonerID string) (*Summoner, error) {
	return c.summoner(ctx, summonerByID, platform, summonerID)
}

// SummonerByRSOPUUID looks up a summoner by an RSO-scoped puuid.
func (c *Client) SummonerByRSOPUUID(ctx context.Context, platform region.Platform, rsoPUUID string) (*Summoner, error) {
	return c.summoner(ctx, summonerByRSOPUUID, platform, rsoPUUID)
}

func (c *Client) summoner(ctx context.Context, ep Endpoint[Summoner], platform region.Platform, id string) (*Summoner, error) {
	s, err := execute(ctx, c, ep, platform, []string{id}, nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
