package riot

import (
	"fmt"
	"strings"
)

// Queue is a ranked queue identifier.
type Queue string

const (
	QueueSolo   Queue = "RANKED_SOLO_5x5"
	QueueFlexSR Queue = "RANKED_FLEX_SR"
	QueueFlexTT Queue = "RANKED_FLEX_TT"
)

var queues = []Queue{QueueSolo, QueueFlexSR, QueueFlexTT}

// ParseQueue parses a ranked queue name case-insensitively. "solo" and "flex"
// are accepted as shorthands.
func ParseQueue(s string) (Queue, error) {
	key := strings.TrimSpace(s)
	switch strings.ToLower(key) {
	case "solo", "solo/duo", "soloq":
		return QueueSolo, nil
	case "flex":
		return QueueFlexSR, nil
	}
	for _, q := range queues {
		if strings.EqualFold(string(q), key) {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: unknown ranked queue %q", ErrInvalidArgument, s)
}

// Valid reports whether q is a known ranked queue.
func (q Queue) Valid() bool {
	for _, known := range queues {
		if q == known {
			return true
		}
	}
	return false
}

// Tier is a ranked tier. Tiers order from Iron to Challenger.
type Tier string

const (
	TierIron        Tier = "IRON"
	TierBronze      Tier = "BRONZE"
	TierSilver      Tier = "SILVER"
	TierGold        Tier = "GOLD"
	TierPlatinum    Tier = "PLATINUM"
	TierEmerald     Tier = "EMERALD"
	TierDiamond     Tier = "DIAMOND"
	TierMaster      Tier = "MASTER"
	TierGrandmaster Tier = "GRANDMASTER"
	TierChallenger  Tier = "CHALLENGER"
)

var tiers = []Tier{
	TierIron, TierBronze, TierSilver, TierGold, TierPlatinum,
	TierEmerald, TierDiamond, TierMaster, TierGrandmaster, TierChallenger,
}

// Tiers returns every tier from lowest to highest.
func Tiers() []Tier {
	return append([]Tier(nil), tiers...)
}

// ParseTier parses a tier name case-insensitively.
func ParseTier(s string) (Tier, error) {
	key := strings.TrimSpace(s)
	for _, t := range tiers {
		if strings.EqualFold(string(t), key) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown tier %q", ErrInvalidArgument, s)
}

// Order returns the position of t from 1 (Iron) to 10 (Challenger), or 0 for
// an unknown tier.
func (t Tier) Order() int {
	for i, known := range tiers {
		if t == known {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool { return t.Order() > 0 }

// Apex reports whether t is Master or above. Apex tiers have no divisions.
func (t Tier) Apex() bool { return t.Order() >= TierMaster.Order() }

// Division is a tier subdivision, I being the highest.
type Division string

const (
	DivisionI   Division = "I"
	DivisionII  Division = "II"
	DivisionIII Division = "III"
	DivisionIV  Division = "IV"
)

var divisions = []Division{DivisionIV, DivisionIII, DivisionII, DivisionI}

// ParseDivision parses a roman ("ii") or arabic ("2") division.
func ParseDivision(s string) (Division, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I", "1":
		return DivisionI, nil
	case "II", "2":
		return DivisionII, nil
	case "III", "3":
		return DivisionIII, nil
	case "IV", "4":
		return DivisionIV, nil
	}
	return "", fmt.Errorf("%w: unknown division %q", ErrInvalidArgument, s)
}

// Order returns 1 for IV up to 4 for I, or 0 for an unknown division.
func (d Division) Order() int {
	for i, known := range divisions {
		if d == known {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether d is a known division.
func (d Division) Valid() bool { return d.Order() > 0 }

// MatchType filters match id lists by game type.
type MatchType string

const (
	MatchTypeRanked   MatchType = "ranked"
	MatchTypeNormal   MatchType = "normal"
	MatchTypeTourney  MatchType = "tourney"
	MatchTypeTutorial MatchType = "tutorial"
)

var matchTypes = []MatchType{MatchTypeRanked, MatchTypeNormal, MatchTypeTourney, MatchTypeTutorial}

// ParseMatchType parses a match type case-insensitively.
func ParseMatchType(s string) (MatchType, error) {
	key := strings.TrimSpace(s)
	for _, mt := range matchTypes {
		if strings.EqualFold(string(mt), key) {
			return mt, nil
		}
	}
	return "", fmt.Errorf("%w: unknown match type %q", ErrInvalidArgument, s)
}
