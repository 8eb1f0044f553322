package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/filter"
	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/riot"
)

var (
	entryFilter string
	leaguePage  int
)

// leagueCmd groups the league-v4 lookups
var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "Look up ranked leagues and entries",
	Long: `Look up ranked leagues and entries.

--filter takes an expression or the name of a filter from the config file, e.g.
  --filter 'tierAtLeast("emerald") and winRate > 0.55'
Names available to expressions: queue, tier, rank, leaguePoints, wins, losses,
games, winRate, hotStreak, veteran, freshBlood, inactive, inPromos, puuid,
summonerId, leagueId, tierAtLeast(tier), rankAtLeast(tier, division).
Case-insensitive string helpers: containsFold, hasPrefix, hasSuffix, plus
lower, upper and tierOrder.`,
}

var leagueEntriesCmd = &cobra.Command{
	Use:   "entries <queue> <tier> <division>",
	Short: "List the entries of a tier and division (IRON to DIAMOND)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		queue, err := riot.ParseQueue(args[0])
		if err != nil {
			return err
		}
		tier, err := riot.ParseTier(args[1])
		if err != nil {
			return err
		}
		division, err := riot.ParseDivision(args[2])
		if err != nil {
			return err
		}
		return runEntries(cmd, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
			return client.LeagueEntries(ctx, p, queue, tier, division, riot.LeagueEntriesOptions{Page: leaguePage})
		})
	},
}

var leagueApexCmd = &cobra.Command{
	Use:       "apex <challenger|grandmaster|master> <queue>",
	Short:     "List an apex league",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"challenger", "grandmaster", "master"},
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, err := riot.ParseTier(args[0])
		if err != nil {
			return err
		}
		queue, err := riot.ParseQueue(args[1])
		if err != nil {
			return err
		}
		return runEntries(cmd, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
			list, err := client.ApexLeague(ctx, p, tier, queue)
			if err != nil {
				return nil, err
			}
			return byLeaguePoints(list.LeagueEntries()), nil
		})
	},
}

var leagueBySummonerCmd = &cobra.Command{
	Use:   "by-summoner <summonerId>",
	Short: "List the ranked entries of a summoner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEntries(cmd, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
			return client.LeagueEntriesBySummoner(ctx, p, args[0])
		})
	},
}

var leagueByPUUIDCmd = &cobra.Command{
	Use:   "by-puuid <puuid>",
	Short: "List the ranked entries of a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEntries(cmd, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
			return client.LeagueEntriesByPUUID(ctx, p, args[0])
		})
	},
}

var leagueIDCmd = &cobra.Command{
	Use:   "id <leagueId>",
	Short: "List a league by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEntries(cmd, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
			list, err := client.LeagueByID(ctx, p, args[0])
			if err != nil {
				return nil, err
			}
			return byLeaguePoints(list.LeagueEntries()), nil
		})
	},
}

func init() {
	leagueCmd.PersistentFlags().StringVarP(&entryFilter, "filter", "f", "", "filter expression or configured filter name")
	leagueEntriesCmd.Flags().IntVar(&leaguePage, "page", 0, "page number, starting at 1")

	leagueCmd.AddCommand(leagueEntriesCmd)
	leagueCmd.AddCommand(leagueApexCmd)
	leagueCmd.AddCommand(leagueBySummonerCmd)
	leagueCmd.AddCommand(leagueByPUUIDCmd)
	leagueCmd.AddCommand(leagueIDCmd)
}

func runEntries(cmd *cobra.Command, fetch func(context.Context, region.Platform) ([]riot.LeagueEntry, error)) error {
	// Compile before any request so a bad expression costs no quota
	var f *filter.Filter[riot.LeagueEntry]
	if entryFilter != "" {
		var err error
		f, err = entryFilters.Resolve(entryFilter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	return fetchAndRender(cmd, platformHost, func(ctx context.Context, p region.Platform) ([]riot.LeagueEntry, error) {
		entries, err := fetch(ctx, p)
		if err != nil || f == nil {
			return entries, err
		}

		matches, err := filter.Evaluate(ctx, f, entries)
		if err != nil {
			return nil, err
		}
		logger.Debug().
			Str("filter", f.Expression()).
			Int("total", len(entries)).
			Int("matched", len(matches)).
			Msg("Filtered league entries")
		return matches, nil
	}, printEntries)
}

func byLeaguePoints(entries []riot.LeagueEntry) []riot.LeagueEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LeaguePoints > entries[j].LeaguePoints
	})
	return entries
}
