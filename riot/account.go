package riot

import (
	"context"

	"github.com/s0up4200/lolapi/region"
)

var (
	accountByPUUID = Endpoint[Account]{
		Name: "account-v1.by-puuid",
		Host: AccountHost,
		Path: "/riot/account/v1/accounts/by-puuid/{puuid}",
	}
	accountByRiotID = Endpoint[Account]{
		Name: "account-v1.by-riot-id",
		Host: AccountHost,
		Path: "/riot/account/v1/accounts/by-riot-id/{gameName}/{tagLine}",
	}
)

// AccountByPUUID looks up an account by its puuid.
func (c *Client) AccountByPUUID(ctx context.Context, platform region.Platform, puuid string) (*Account, error) {
	a, err := execute(ctx, c, accountByPUUID, platform, []string{puuid}, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// AccountByRiotID looks up an account by game name and tag line, e.g.
// "Hide on bush" and "KR1".
func (c *Client) AccountByRiotID(ctx context.Context, platform region.Platform, gameName, tagLine string) (*Account, error) {
	a, err := execute(ctx, c, accountByRiotID, platform, []string{gameName, tagLine}, nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
