package riot

// Match is a finished game.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies a match and its participants.
type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo holds the game summary, participant and team statistics.
type MatchInfo struct {
	EndOfGameResult    *string       `json:"endOfGameResult,omitempty"`
	GameCreation       int64         `json:"gameCreation"`
	GameDuration       int64         `json:"gameDuration"`
	GameEndTimestamp   *int64        `json:"gameEndTimestamp,omitempty"`
	GameID             int64         `json:"gameId"`
	GameMode           string        `json:"gameMode"`
	GameName           *string       `json:"gameName,omitempty"`
	GameStartTimestamp *int64        `json:"gameStartTimestamp,omitempty"`
	GameType           *string       `json:"gameType,omitempty"`
	GameVersion        string        `json:"gameVersion"`
	MapID              int           `json:"mapId"`
	Participants       []Participant `json:"participants"`
	PlatformID         string        `json:"platformId"`
	QueueID            int           `json:"queueId"`
	Teams              []Team        `json:"teams"`
	TournamentCode     *string       `json:"tournamentCode,omitempty"`
}

// Participant returns the participant with the given puuid.
func (i MatchInfo) Participant(puuid string) (Participant, bool) {
	for _, p := range i.Participants {
		if p.PUUID == puuid {
			return p, true
		}
	}
	return Participant{}, false
}

// Participant is one player's statistics in a match.
type Participant struct {
	ParticipantID int     `json:"participantId"`
	PUUID         string  `json:"puuid"`
	RiotIDName    *string `json:"riotIdGameName,omitempty"`
	RiotIDTagline *string `json:"riotIdTagline,omitempty"`
	SummonerID    *string `json:"summonerId,omitempty"`
	SummonerName  *string `json:"summonerName,omitempty"`
	SummonerLevel *int    `json:"summonerLevel,omitempty"`
	ProfileIcon   *int    `json:"profileIcon,omitempty"`
	TeamID        int     `json:"teamId"`
	Win           bool    `json:"win"`

	ChampionID           int         `json:"championId"`
	ChampionName         string      `json:"championName"`
	ChampLevel           int         `json:"champLevel"`
	IndividualPosition   string      `json:"individualPosition"`
	TeamPosition         string      `json:"teamPosition"`
	Lane                 string      `json:"lane"`
	Role                 string      `json:"role"`
	Summoner1ID          int         `json:"summoner1Id"`
	Summoner2ID          int         `json:"summoner2Id"`
	Item0                int         `json:"item0"`
	Item1                int         `json:"item1"`
	Item2                int         `json:"item2"`
	Item3                int         `json:"item3"`
	Item4                int         `json:"item4"`
	Item5                int         `json:"item5"`
	Item6                int         `json:"item6"`
	GameEndedInSurrender *bool       `json:"gameEndedInSurrender,omitempty"`
	TimePlayed           *int        `json:"timePlayed,omitempty"`
	Placement            *int        `json:"placement,omitempty"`
	PlayerSubteamID      *int        `json:"playerSubteamId,omitempty"`
	Perks                *Perks      `json:"perks,omitempty"`
	Challenges           *Challenges `json:"challenges,omitempty"`

	Kills                       int  `json:"kills"`
	Deaths                      int  `json:"deaths"`
	Assists                     int  `json:"assists"`
	DoubleKills                 int  `json:"doubleKills"`
	TripleKills                 int  `json:"tripleKills"`
	QuadraKills                 int  `json:"quadraKills"`
	PentaKills                  int  `json:"pentaKills"`
	FirstBloodKill              bool `json:"firstBloodKill"`
	GoldEarned                  int  `json:"goldEarned"`
	GoldSpent                   int  `json:"goldSpent"`
	TotalMinionsKilled          int  `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int  `json:"neutralMinionsKilled"`
	VisionScore                 int  `json:"visionScore"`
	WardsPlaced                 int  `json:"wardsPlaced"`
	WardsKilled                 int  `json:"wardsKilled"`
	TotalDamageDealtToChampions int  `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int  `json:"totalDamageTaken"`
	TotalHeal                   int  `json:"totalHeal"`
	DamageDealtToObjectives     int  `json:"damageDealtToObjectives"`
	DamageDealtToBuildings      *int `json:"damageDealtToBuildings,omitempty"`
	TurretKills                 int  `json:"turretKills"`
	InhibitorKills              int  `json:"inhibitorKills"`
	BaronKills                  *int `json:"baronKills,omitempty"`
	DragonKills                 *int `json:"dragonKills,omitempty"`
	TimeCCingOthers             *int `json:"timeCCingOthers,omitempty"`
}

// KDA returns (kills + assists) / deaths, with deaths floored at one.
func (p Participant) KDA() float64 {
	deaths := p.Deaths
	if deaths == 0 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}

// CS returns lane and jungle minions killed.
func (p Participant) CS() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// Challenges is a subset of the per-participant challenge statistics. The
// platform adds and removes keys frequently, so every field is optional.
type Challenges struct {
	KDA                          *float64 `json:"kda,omitempty"`
	KillParticipation            *float64 `json:"killParticipation,omitempty"`
	DamagePerMinute              *float64 `json:"damagePerMinute,omitempty"`
	GoldPerMinute                *float64 `json:"goldPerMinute,omitempty"`
	TeamDamagePercentage         *float64 `json:"teamDamagePercentage,omitempty"`
	VisionScorePerMinute         *float64 `json:"visionScorePerMinute,omitempty"`
	SoloKills                    *int     `json:"soloKills,omitempty"`
	LaneMinionsFirst10Minutes    *int     `json:"laneMinionsFirst10Minutes,omitempty"`
	TurretPlatesTaken            *int     `json:"turretPlatesTaken,omitempty"`
	ControlWardsPlaced           *int     `json:"controlWardsPlaced,omitempty"`
	SkillshotsDodged             *int     `json:"skillshotsDodged,omitempty"`
	EffectiveHealAndShielding    *float64 `json:"effectiveHealAndShielding,omitempty"`
	MaxCsAdvantageOnLaneOpponent *float64 `json:"maxCsAdvantageOnLaneOpponent,omitempty"`
}

// Perks holds the rune page a participant played.
type Perks struct {
	StatPerks PerkStats   `json:"statPerks"`
	Styles    []PerkStyle `json:"styles"`
}

// PerkStats are the stat shards.
type PerkStats struct {
	Defense int `json:"defense"`
	Flex    int `json:"flex"`
	Offense int `json:"offense"`
}

// PerkStyle is a primary or secondary rune tree.
type PerkStyle struct {
	Description string          `json:"description"`
	Selections  []PerkSelection `json:"selections"`
	Style       int             `json:"style"`
}

// PerkSelection is one chosen rune and its tracked values.
type PerkSelection struct {
	Perk int `json:"perk"`
	Var1 int `json:"var1"`
	Var2 int `json:"var2"`
	Var3 int `json:"var3"`
}

// Team is one side of a match.
type Team struct {
	Bans       []Ban      `json:"bans"`
	Objectives Objectives `json:"objectives"`
	TeamID     int        `json:"teamId"`
	Win        bool       `json:"win"`
}

// Ban is a champion ban.
type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

// Objectives are the team objective counters.
type Objectives struct {
	Baron      Objective  `json:"baron"`
	Champion   Objective  `json:"champion"`
	Dragon     Objective  `json:"dragon"`
	Horde      *Objective `json:"horde,omitempty"`
	Inhibitor  Objective  `json:"inhibitor"`
	RiftHerald Objective  `json:"riftHerald"`
	Tower      Objective  `json:"tower"`
}

// Objective records whether the team took it first and how many times.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// Timeline is the minute-by-minute record of a match.
type Timeline struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`
}

// TimelineInfo holds the frames of a timeline.
type TimelineInfo struct {
	EndOfGameResult *string               `json:"endOfGameResult,omitempty"`
	FrameInterval   int64                 `json:"frameInterval"`
	GameID          *int64                `json:"gameId,omitempty"`
	Participants    []TimelineParticipant `json:"participants,omitempty"`
	Frames          []Frame               `json:"frames"`
}

// TimelineParticipant maps a participant id to a puuid.
type TimelineParticipant struct {
	ParticipantID int    `json:"participantId"`
	PUUID         string `json:"puuid"`
}

// Frame is a snapshot of all participants plus the events since the previous frame.
type Frame struct {
	Events []Event `json:"events"`
	// ParticipantFrames is keyed by participant id, "1" to "10".
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"`
	Timestamp         int64                       `json:"timestamp"`
}

// Event is a discrete timeline event. Which fields are set depends on Type.
type Event struct {
	Type           string    `json:"type"`
	Timestamp      int64     `json:"timestamp"`
	RealTimestamp  *int64    `json:"realTimestamp,omitempty"`
	ParticipantID  *int      `json:"participantId,omitempty"`
	KillerID       *int      `json:"killerId,omitempty"`
	VictimID       *int      `json:"victimId,omitempty"`
	AssistingIDs   []int     `json:"assistingParticipantIds,omitempty"`
	CreatorID      *int      `json:"creatorId,omitempty"`
	TeamID         *int      `json:"teamId,omitempty"`
	KillerTeamID   *int      `json:"killerTeamId,omitempty"`
	ItemID         *int      `json:"itemId,omitempty"`
	SkillSlot      *int      `json:"skillSlot,omitempty"`
	LevelUpType    *string   `json:"levelUpType,omitempty"`
	Level          *int      `json:"level,omitempty"`
	WardType       *string   `json:"wardType,omitempty"`
	BuildingType   *string   `json:"buildingType,omitempty"`
	LaneType       *string   `json:"laneType,omitempty"`
	TowerType      *string   `json:"towerType,omitempty"`
	MonsterType    *string   `json:"monsterType,omitempty"`
	MonsterSubType *string   `json:"monsterSubType,omitempty"`
	KillType       *string   `json:"killType,omitempty"`
	Bounty         *int      `json:"bounty,omitempty"`
	ShutdownBounty *int      `json:"shutdownBounty,omitempty"`
	Position       *Position `json:"position,omitempty"`
	WinningTeam    *int      `json:"winningTeam,omitempty"`
}

// ParticipantFrame is one participant's state at a frame.
type ParticipantFrame struct {
	ChampionStats            ChampionStats `json:"championStats"`
	CurrentGold              int           `json:"currentGold"`
	DamageStats              DamageStats   `json:"damageStats"`
	GoldPerSecond            int           `json:"goldPerSecond"`
	JungleMinionsKilled      int           `json:"jungleMinionsKilled"`
	Level                    int           `json:"level"`
	MinionsKilled            int           `json:"minionsKilled"`
	ParticipantID            int           `json:"participantId"`
	Position                 Position      `json:"position"`
	TimeEnemySpentControlled int           `json:"timeEnemySpentControlled"`
	TotalGold                int           `json:"totalGold"`
	XP                       int           `json:"xp"`
}

// ChampionStats are the champion's attributes at a frame.
type ChampionStats struct {
	AbilityHaste  int `json:"abilityHaste"`
	AbilityPower  int `json:"abilityPower"`
	Armor         int `json:"armor"`
	AttackDamage  int `json:"attackDamage"`
	AttackSpeed   int `json:"attackSpeed"`
	Health        int `json:"health"`
	HealthMax     int `json:"healthMax"`
	MagicResist   int `json:"magicResist"`
	MovementSpeed int `json:"movementSpeed"`
	Power         int `json:"power"`
	PowerMax      int `json:"powerMax"`
}

// DamageStats are cumulative damage totals at a frame.
type DamageStats struct {
	MagicDamageDone               int `json:"magicDamageDone"`
	MagicDamageDoneToChampions    int `json:"magicDamageDoneToChampions"`
	PhysicalDamageDone            int `json:"physicalDamageDone"`
	PhysicalDamageDoneToChampions int `json:"physicalDamageDoneToChampions"`
	TotalDamageDone               int `json:"totalDamageDone"`
	TotalDamageDoneToChampions    int `json:"totalDamageDoneToChampions"`
	TotalDamageTaken              int `json:"totalDamageTaken"`
	TrueDamageDone                int `json:"trueDamageDone"`
	TrueDamageDoneToChampions     int `json:"trueDamageDoneToChampions"`
}

// Position is a map coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}
