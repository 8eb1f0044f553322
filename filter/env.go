package filter

import (
	"strings"

	"github.com/s0up4200/lolapi/riot"
)

// addHelperFunctions adds the helpers shared by every environment. The
// string helpers ignore case; expr's own contains, startsWith and endsWith
// operators do not.
func addHelperFunctions(env map[string]any) {
	env["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefix"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["hasSuffix"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["tierOrder"] = func(tier string) int {
		return riot.Tier(strings.ToUpper(tier)).Order()
	}
}

// EntryEnv builds the environment for a league entry. Names:
//
//	queue, tier, rank, leaguePoints, wins, losses, games, winRate,
//	hotStreak, veteran, freshBlood, inactive, inPromos, puuid, summonerId,
//	leagueId, tierAtLeast(tier), rankAtLeast(tier, division)
func EntryEnv(e riot.LeagueEntry) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["queue"] = string(e.QueueType)
	env["tier"] = string(e.Tier)
	env["rank"] = string(e.Rank)
	env["leaguePoints"] = e.LeaguePoints
	env["wins"] = e.Wins
	env["losses"] = e.Losses
	env["games"] = e.Wins + e.Losses
	env["winRate"] = e.WinRate()
	env["hotStreak"] = e.HotStreak
	env["veteran"] = e.Veteran
	env["freshBlood"] = e.FreshBlood
	env["inactive"] = e.Inactive
	env["inPromos"] = e.MiniSeries != nil
	env["puuid"] = e.PUUID
	env["summonerId"] = deref(e.SummonerID)
	env["leagueId"] = e.LeagueID

	env["tierAtLeast"] = createTierAtLeastFunc(e.Tier)
	env["rankAtLeast"] = createRankAtLeastFunc(e.Tier, e.Rank)

	return env
}

// ParticipantEnv builds the environment for a match participant. Names:
//
//	champion, championId, puuid, riotId, teamId, win, position, lane, role,
//	level, kills, deaths, assists, kda, cs, gold, visionScore, damage,
//	damageTaken, pentaKills, firstBlood, hasItem(id), played(champion)
func ParticipantEnv(p riot.Participant) map[string]any {
	env := make(map[string]any, 40)
	addHelperFunctions(env)

	riotID := deref(p.RiotIDName)
	if tag := deref(p.RiotIDTagline); riotID != "" && tag != "" {
		riotID += "#" + tag
	}

	env["champion"] = p.ChampionName
	env["championId"] = p.ChampionID
	env["puuid"] = p.PUUID
	env["riotId"] = riotID
	env["teamId"] = p.TeamID
	env["win"] = p.Win
	env["position"] = p.TeamPosition
	env["lane"] = p.Lane
	env["role"] = p.Role
	env["level"] = p.ChampLevel
	env["kills"] = p.Kills
	env["deaths"] = p.Deaths
	env["assists"] = p.Assists
	env["kda"] = p.KDA()
	env["cs"] = p.CS()
	env["gold"] = p.GoldEarned
	env["visionScore"] = p.VisionScore
	env["damage"] = p.TotalDamageDealtToChampions
	env["damageTaken"] = p.TotalDamageTaken
	env["pentaKills"] = p.PentaKills
	env["firstBlood"] = p.FirstBloodKill

	items := [...]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
	env["hasItem"] = func(id int) bool {
		for _, item := range items {
			if item == id {
				return true
			}
		}
		return false
	}
	env["played"] = func(champion string) bool {
		return strings.EqualFold(p.ChampionName, champion)
	}

	return env
}

func createTierAtLeastFunc(tier riot.Tier) func(string) bool {
	have := tier.Order()
	return func(floor string) bool {
		want := riot.Tier(strings.ToUpper(floor)).Order()
		return want > 0 && have >= want
	}
}

func createRankAtLeastFunc(tier riot.Tier, rank riot.Division) func(string, string) bool {
	haveTier := tier.Order()
	haveDiv := rank.Order()
	return func(minTier, minDiv string) bool {
		wantTier := riot.Tier(strings.ToUpper(minTier)).Order()
		if wantTier == 0 {
			return false
		}
		if haveTier != wantTier {
			return haveTier > wantTier
		}
		// Apex tiers have no divisions to compare.
		if tier.Apex() {
			return true
		}
		wantDiv, err := riot.ParseDivision(minDiv)
		if err != nil {
			return false
		}
		return haveDiv >= wantDiv.Order()
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
