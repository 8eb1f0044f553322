package riot

import (
	"context"

	"github.com/s0up4200/lolapi/region"
)

var platformStatus = Endpoint[PlatformData]{
	Name: "lol-status-v4.platform-data",
	Host: PlatformHost,
	Path: "/lol/status/v4/platform-data",
}

// PlatformStatus returns the maintenances and incidents of a platform. It is
// also the cheapest way to check that the API key is accepted.
func (c *Client) PlatformStatus(ctx context.Context, platform region.Platform) (*PlatformData, error) {
	d, err := execute(ctx, c, platformStatus, platform, nil, nil)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
