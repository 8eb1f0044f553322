package riot

// Fields that the platform may omit are pointers; everything else is required
// and reported as a decode failure when missing.

// Account is a Riot account.
type Account struct {
	PUUID    string  `json:"puuid"`
	GameName *string `json:"gameName,omitempty"`
	TagLine  *string `json:"tagLine,omitempty"`
}

// RiotID returns "gameName#tagLine", or "" if either part is absent.
func (a Account) RiotID() string {
	if a.GameName == nil || a.TagLine == nil {
		return ""
	}
	return *a.GameName + "#" + *a.TagLine
}

// Summoner is a League of Legends profile on one platform.
type Summoner struct {
	// ID and AccountID are encrypted legacy identifiers that the platform is
	// phasing out.
	ID            *string `json:"id,omitempty"`
	AccountID     *string `json:"accountId,omitempty"`
	PUUID         string  `json:"puuid"`
	ProfileIconID int     `json:"profileIconId"`
	// RevisionDate is epoch milliseconds of the last profile change.
	RevisionDate  int64 `json:"revisionDate"`
	SummonerLevel int64 `json:"summonerLevel"`
}

// MiniSeries is promotion series progress, e.g. Progress "WLN" for a best of three.
type MiniSeries struct {
	Losses   int    `json:"losses"`
	Progress string `json:"progress"`
	Target   int    `json:"target"`
	Wins     int    `json:"wins"`
}

// LeagueEntry is one player's standing in a ranked queue.
type LeagueEntry struct {
	LeagueID     string      `json:"leagueId"`
	SummonerID   *string     `json:"summonerId,omitempty"`
	PUUID        string      `json:"puuid"`
	QueueType    Queue       `json:"queueType"`
	Tier         Tier        `json:"tier"`
	Rank         Division    `json:"rank"`
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries,omitempty"`
}

// WinRate returns wins over games played, or 0 with no games.
func (e LeagueEntry) WinRate() float64 {
	return winRate(e.Wins, e.Losses)
}

// LeagueItem is an entry inside a LeagueList.
type LeagueItem struct {
	SummonerID   *string     `json:"summonerId,omitempty"`
	PUUID        string      `json:"puuid"`
	Rank         Division    `json:"rank"`
	LeaguePoints int         `json:"leaguePoints"`
	Wins         int         `json:"wins"`
	Losses       int         `json:"losses"`
	HotStreak    bool        `json:"hotStreak"`
	Veteran      bool        `json:"veteran"`
	FreshBlood   bool        `json:"freshBlood"`
	Inactive     bool        `json:"inactive"`
	MiniSeries   *MiniSeries `json:"miniSeries,omitempty"`
}

// LeagueList is a whole league, e.g. the Challenger ladder of a queue.
type LeagueList struct {
	LeagueID string       `json:"leagueId"`
	Entries  []LeagueItem `json:"entries"`
	Tier     Tier         `json:"tier"`
	Name     *string      `json:"name,omitempty"`
	Queue    Queue        `json:"queue"`
}

// LeagueEntries converts the list items to league entries carrying the list's
// league, tier and queue.
func (l LeagueList) LeagueEntries() []LeagueEntry {
	out := make([]LeagueEntry, 0, len(l.Entries))
	for _, it := range l.Entries {
		out = append(out, LeagueEntry{
			LeagueID:     l.LeagueID,
			SummonerID:   it.SummonerID,
			PUUID:        it.PUUID,
			QueueType:    l.Queue,
			Tier:         l.Tier,
			Rank:         it.Rank,
			LeaguePoints: it.LeaguePoints,
			Wins:         it.Wins,
			Losses:       it.Losses,
			HotStreak:    it.HotStreak,
			Veteran:      it.Veteran,
			FreshBlood:   it.FreshBlood,
			Inactive:     it.Inactive,
			MiniSeries:   it.MiniSeries,
		})
	}
	return out
}

// PlatformData is the service status of one platform.
type PlatformData struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Locales      []string `json:"locales"`
	Maintenances []Status `json:"maintenances"`
	Incidents    []Status `json:"incidents"`
}

// Status is a maintenance or incident notice.
type Status struct {
	ID                int       `json:"id"`
	MaintenanceStatus *string   `json:"maintenance_status,omitempty"`
	IncidentSeverity  *string   `json:"incident_severity,omitempty"`
	Titles            []Content `json:"titles"`
	Updates           []Update  `json:"updates"`
	CreatedAt         string    `json:"created_at"`
	ArchiveAt         *string   `json:"archive_at,omitempty"`
	UpdatedAt         *string   `json:"updated_at,omitempty"`
	Platforms         []string  `json:"platforms"`
}

// Content is a localized string.
type Content struct {
	Locale  string `json:"locale"`
	Content string `json:"content"`
}

// Update is a message posted on a Status.
type Update struct {
	ID               int       `json:"id"`
	Author           string    `json:"author"`
	Publish          bool      `json:"publish"`
	PublishLocations []string  `json:"publish_locations,omitempty"`
	Translations     []Content `json:"translations"`
	CreatedAt        string    `json:"created_at"`
	UpdatedAt        *string   `json:"updated_at,omitempty"`
}

func winRate(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}
