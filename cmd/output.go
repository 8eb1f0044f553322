package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/s0up4200/lolapi/riot"
)

// render writes v as indented JSON, or calls text for the text format.
func render(w io.Writer, v any, text func(io.Writer)) error {
	if outputFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	tw.Flush()
}

func printAccount(w io.Writer, a *riot.Account) {
	fmt.Fprintf(w, "PUUID:   %s\n", a.PUUID)
	if id := a.RiotID(); id != "" {
		fmt.Fprintf(w, "Riot ID: %s\n", id)
	}
}

func printSummoner(w io.Writer, s *riot.Summoner) {
	fmt.Fprintf(w, "PUUID:        %s\n", s.PUUID)
	if s.ID != nil {
		fmt.Fprintf(w, "Summoner ID:  %s\n", *s.ID)
	}
	if s.AccountID != nil {
		fmt.Fprintf(w, "Account ID:   %s\n", *s.AccountID)
	}
	fmt.Fprintf(w, "Level:        %d\n", s.SummonerLevel)
	fmt.Fprintf(w, "Profile icon: %d\n", s.ProfileIconID)
	fmt.Fprintf(w, "Updated:      %s\n", time.UnixMilli(s.RevisionDate).UTC().Format(time.RFC3339))
}

func printEntries(w io.Writer, entries []riot.LeagueEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No league entries found.")
		return
	}
	table(w, "QUEUE\tTIER\tLP\tW/L\tWIN%\tFLAGS\tPUUID", func(tw *tabwriter.Writer) {
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s %s\t%d\t%d/%d\t%.1f\t%s\t%s\n",
				e.QueueType, e.Tier, e.Rank, e.LeaguePoints, e.Wins, e.Losses,
				e.WinRate()*100, entryFlags(e), e.PUUID)
		}
	})
}

func entryFlags(e riot.LeagueEntry) string {
	var flags []string
	if e.HotStreak {
		flags = append(flags, "hot")
	}
	if e.Veteran {
		flags = append(flags, "veteran")
	}
	if e.FreshBlood {
		flags = append(flags, "new")
	}
	if e.Inactive {
		flags = append(flags, "inactive")
	}
	if e.MiniSeries != nil {
		flags = append(flags, "promos:"+e.MiniSeries.Progress)
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

func printMatch(w io.Writer, m *riot.Match, participants []riot.Participant) {
	info := m.Info
	duration := time.Duration(info.GameDuration) * time.Second
	fmt.Fprintf(w, "%s  %s queue %d  %s  patch %s\n",
		m.Metadata.MatchID, info.GameMode, info.QueueID, duration, info.GameVersion)

	table(w, "TEAM\tCHAMPION\tPOSITION\tK/D/A\tKDA\tCS\tGOLD\tRESULT\tPLAYER", func(tw *tabwriter.Writer) {
		for _, p := range participants {
			result := "loss"
			if p.Win {
				result = "win"
			}
			player := p.PUUID
			if p.RiotIDName != nil {
				player = *p.RiotIDName
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d/%d\t%.2f\t%d\t%d\t%s\t%s\n",
				p.TeamID, p.ChampionName, p.TeamPosition, p.Kills, p.Deaths, p.Assists,
				p.KDA(), p.CS(), p.GoldEarned, result, player)
		}
	})
}

func printTimeline(w io.Writer, t *riot.Timeline) {
	fmt.Fprintf(w, "%s  %d frames every %s\n",
		t.Metadata.MatchID, len(t.Info.Frames), time.Duration(t.Info.FrameInterval)*time.Millisecond)

	table(w, "MINUTE\tEVENTS\tKILLS", func(tw *tabwriter.Writer) {
		for _, f := range t.Info.Frames {
			kills := 0
			for _, e := range f.Events {
				if e.Type == "CHAMPION_KILL" {
					kills++
				}
			}
			fmt.Fprintf(tw, "%d\t%d\t%d\n", f.Timestamp/60000, len(f.Events), kills)
		}
	})
}

func printStatus(w io.Writer, s *riot.PlatformData) {
	fmt.Fprintf(w, "%s (%s)\n", s.Name, s.ID)
	printNotices(w, "Maintenances", s.Maintenances)
	printNotices(w, "Incidents", s.Incidents)
}

func printNotices(w io.Writer, label string, notices []riot.Status) {
	if len(notices) == 0 {
		fmt.Fprintf(w, "%s: none\n", label)
		return
	}
	fmt.Fprintf(w, "%s:\n", label)
	for _, n := range notices {
		fmt.Fprintf(w, "  • %s\n", localized(n.Titles))
	}
}

// localized picks the en_US text, falling back to the first translation.
func localized(contents []riot.Content) string {
	for _, c := range contents {
		if c.Locale == "en_US" {
			return c.Content
		}
	}
	if len(contents) > 0 {
		return contents[0].Content
	}
	return "(untitled)"
}
