package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/lolapi/filter"
	"github.com/s0up4200/lolapi/region"
	"github.com/s0up4200/lolapi/riot"
)

var (
	participantFilter string
	matchConcurrency  int

	idsStartTime string
	idsEndTime   string
	idsQueue     int
	idsType      string
	idsStart     int
	idsCount     int
)

// matchCmd groups the match-v5 lookups
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Look up matches and timelines",
}

var matchIDsCmd = &cobra.Command{
	Use:   "ids <puuid>",
	Short: "List match ids of a player, most recent first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := matchIDsOptions(cmd)
		if err != nil {
			return err
		}
		return fetchAndRender(cmd, routingHost, func(ctx context.Context, p region.Platform) ([]string, error) {
			return client.MatchIDsByPUUID(ctx, p, args[0], opts)
		}, func(w io.Writer, ids []string) {
			if len(ids) == 0 {
				fmt.Fprintln(w, "No matches found.")
			}
			for _, id := range ids {
				fmt.Fprintln(w, id)
			}
		})
	},
}

var matchGetCmd = &cobra.Command{
	Use:   "get <matchId>...",
	Short: "Fetch one or more matches",
	Long: `Fetch one or more matches concurrently.

--filter selects participants with an expression or the name of a filter from
the config file, e.g. --filter 'kda >= 4 and position == "JUNGLE"'.
Names available to expressions: champion, championId, puuid, riotId, teamId,
win, position, lane, role, level, kills, deaths, assists, kda, cs, gold,
visionScore, damage, damageTaken, pentaKills, firstBlood, hasItem(id),
played(champion). Case-insensitive string helpers: containsFold, hasPrefix,
hasSuffix.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatchGet,
}

var matchTimelineCmd = &cobra.Command{
	Use:   "timeline <matchId>",
	Short: "Fetch the timeline of a match",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchAndRender(cmd, routingHost, func(ctx context.Context, p region.Platform) (*riot.Timeline, error) {
			return client.TimelineByMatchID(ctx, p, args[0])
		}, printTimeline)
	},
}

func init() {
	matchIDsCmd.Flags().StringVar(&idsStartTime, "start-time", "", "earliest game start (RFC3339 or epoch seconds)")
	matchIDsCmd.Flags().StringVar(&idsEndTime, "end-time", "", "latest game start (RFC3339 or epoch seconds)")
	matchIDsCmd.Flags().IntVar(&idsQueue, "queue", 0, "queue id, e.g. 420 for ranked solo")
	matchIDsCmd.Flags().StringVar(&idsType, "type", "", "match type: ranked, normal, tourney or tutorial")
	matchIDsCmd.Flags().IntVar(&idsStart, "start", 0, "index of the first id")
	matchIDsCmd.Flags().IntVar(&idsCount, "count", 20, "number of ids, at most 100")

	matchGetCmd.Flags().IntVar(&matchConcurrency, "concurrency", riot.DefaultConcurrency, "matches fetched in parallel")
	matchGetCmd.Flags().StringVarP(&participantFilter, "filter", "f", "", "participant filter expression or configured filter name")

	matchCmd.AddCommand(matchIDsCmd)
	matchCmd.AddCommand(matchGetCmd)
	matchCmd.AddCommand(matchTimelineCmd)
}

// matchIDsOptions sets only the options whose flags were given.
func matchIDsOptions(cmd *cobra.Command) (riot.MatchIDsOptions, error) {
	var opts riot.MatchIDsOptions
	flags := cmd.Flags()

	if flags.Changed("start-time") {
		t, err := parseTime(idsStartTime)
		if err != nil {
			return opts, fmt.Errorf("invalid --start-time: %w", err)
		}
		opts.StartTime = &t
	}
	if flags.Changed("end-time") {
		t, err := parseTime(idsEndTime)
		if err != nil {
			return opts, fmt.Errorf("invalid --end-time: %w", err)
		}
		opts.EndTime = &t
	}
	if flags.Changed("queue") {
		opts.Queue = riot.Ptr(idsQueue)
	}
	if flags.Changed("type") {
		mt, err := riot.ParseMatchType(idsType)
		if err != nil {
			return opts, err
		}
		opts.Type = &mt
	}
	if flags.Changed("start") {
		opts.Start = riot.Ptr(idsStart)
	}
	if flags.Changed("count") {
		opts.Count = riot.Ptr(idsCount)
	}

	return opts, nil
}

func parseTime(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0), nil
	}
	return time.Parse(time.RFC3339, s)
}

// matchView is a match with the participants the filter kept.
type matchView struct {
	Match        *riot.Match        `json:"match"`
	Participants []riot.Participant `json:"participants"`
}

func runMatchGet(cmd *cobra.Command, args []string) error {
	var f *filter.Filter[riot.Participant]
	if participantFilter != "" {
		var err error
		f, err = participantFilters.Resolve(participantFilter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
	}

	p, err := targetPlatform()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	batch := client.FetchMatches(ctx, p, args, matchConcurrency)

	// Give transient failures another chance under the retry policy.
	for i, r := range batch.Results {
		if r.Err == nil || !riot.IsRetryable(r.Err) {
			continue
		}
		m, err := call(ctx, routingHost(p), func(ctx context.Context) (*riot.Match, error) {
			return client.MatchByID(ctx, p, r.ID)
		})
		batch.Results[i] = riot.MatchResult{ID: r.ID, Match: m, Err: err}
		if err == nil {
			batch.Failed--
		}
	}

	views := make([]matchView, 0, len(batch.Results))
	var errs []error
	for _, r := range batch.Results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.ID, r.Err))
			continue
		}

		participants := r.Match.Info.Participants
		if f != nil {
			participants, err = filter.Evaluate(ctx, f, participants)
			if err != nil {
				return err
			}
		}
		views = append(views, matchView{Match: r.Match, Participants: participants})
	}

	err = render(cmd.OutOrStdout(), views, func(w io.Writer) {
		for i, v := range views {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printMatch(w, v.Match, v.Participants)
		}
	})
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		logger.Warn().
			Int("failed", len(errs)).
			Int("total", len(args)).
			Msg("Some matches could not be fetched")
		return errors.Join(errs...)
	}
	return nil
}
