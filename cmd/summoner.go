package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/riot"
)

// summonerCmd groups the summoner-v4 lookups
var summonerCmd = &cobra.Command{
	Use:   "summoner",
	Short: "Look up summoner profiles",
}

type summonerLookup func(c *riot.Client, ctx context.Context, p region.Platform, id string) (*riot.Summoner, error)

func newSummonerCmd(use, short string, lookup summonerLookup) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchAndRender(cmd, platformHost, func(ctx context.Context, p region.Platform) (*riot.Summoner, error) {
				return lookup(client, ctx, p, args[0])
			}, printSummoner)
		},
	}
}

func init() {
	summonerCmd.AddCommand(newSummonerCmd("puuid <puuid>", "Look up a summoner by PUUID", (*riot.Client).SummonerByPUUID))
	summonerCmd.AddCommand(newSummonerCmd("account <accountId>", "Look up a summoner by encrypted account id", (*riot.Client).SummonerByAccountID))
	summonerCmd.AddCommand(newSummonerCmd("id <summonerId>", "Look up a summoner by encrypted summoner id", (*riot.Client).SummonerByID))
	summonerCmd.AddCommand(newSummonerCmd("rso <rsoPUUID>", "Look up a summoner by RSO PUUID", (*riot.Client).SummonerByRSOPUUID))
}
