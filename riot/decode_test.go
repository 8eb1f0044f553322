package riot

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

// mutateFixture decodes a fixture into a generic tree, applies fn and
// re-encodes it.
func mutateFixture(t *testing.T, name string, fn func(tree map[string]any)) []byte {
	t.Helper()
	var tree map[string]any
	require.NoError(t, json.Unmarshal(readFixture(t, name), &tree))
	fn(tree)
	b, err := json.Marshal(tree)
	require.NoError(t, err)
	return b
}

func roundTrip[T any](t *testing.T, fixture string) T {
	t.Helper()

	first, err := decode[T](readFixture(t, fixture))
	require.NoError(t, err)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := decode[T](encoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	return first
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Run("account", func(t *testing.T) {
		a := roundTrip[Account](t, "account.json")
		assert.Equal(t, "Hide on bush#KR1", a.RiotID())
	})

	t.Run("summoner", func(t *testing.T) {
		s := roundTrip[Summoner](t, "summoner.json")
		assert.Equal(t, int64(712), s.SummonerLevel)
		require.NotNil(t, s.ID)
	})

	t.Run("league entries", func(t *testing.T) {
		entries := roundTrip[[]LeagueEntry](t, "league_entries.json")
		require.Len(t, entries, 2)
		assert.Equal(t, TierEmerald, entries[0].Tier)
		assert.Equal(t, DivisionII, entries[0].Rank)
		assert.Nil(t, entries[0].MiniSeries)
		assert.Nil(t, entries[1].SummonerID)
		require.NotNil(t, entries[1].MiniSeries)
		assert.Equal(t, "WNN", entries[1].MiniSeries.Progress)
	})

	t.Run("league list", func(t *testing.T) {
		l := roundTrip[LeagueList](t, "league_list.json")
		assert.Equal(t, TierChallenger, l.Tier)
		entries := l.LeagueEntries()
		require.Len(t, entries, 2)
		assert.Equal(t, QueueSolo, entries[1].QueueType)
		assert.Equal(t, l.LeagueID, entries[1].LeagueID)
	})

	t.Run("match", func(t *testing.T) {
		m := roundTrip[Match](t, "match.json")
		assert.Equal(t, "NA1_4923184093", m.Metadata.MatchID)
		require.Len(t, m.Info.Participants, 2)
		assert.NotNil(t, m.Info.Participants[0].Perks)
		assert.Nil(t, m.Info.Participants[1].Perks)
		assert.Nil(t, m.Info.TournamentCode)
		assert.Nil(t, m.Info.Teams[1].Objectives.Horde)

		p, ok := m.Info.Participant("puuid-1")
		require.True(t, ok)
		assert.InDelta(t, 3.25, p.KDA(), 0.001)
		assert.Equal(t, 213, p.CS())
	})

	t.Run("timeline", func(t *testing.T) {
		tl := roundTrip[Timeline](t, "timeline.json")
		require.Len(t, tl.Info.Frames, 2)
		frame := tl.Info.Frames[1].ParticipantFrames["1"]
		assert.Equal(t, 1, frame.ParticipantID)
		assert.Equal(t, Position{X: 5100, Y: 5200}, frame.Position)
		assert.Equal(t, "CHAMPION_KILL", tl.Info.Frames[1].Events[2].Type)
	})

	t.Run("status", func(t *testing.T) {
		s := roundTrip[PlatformData](t, "status.json")
		require.Len(t, s.Incidents, 1)
		assert.Nil(t, s.Incidents[0].ArchiveAt)
		assert.Empty(t, s.Maintenances)
	})
}

func TestDecodeMissingRequiredField(t *testing.T) {
	tests := []struct {
		name      string
		decode    func([]byte) error
		fixture   string
		mutate    func(map[string]any)
		wantField string
	}{
		{
			name:      "account puuid",
			decode:    decodeAs[Account],
			fixture:   "account.json",
			mutate:    func(m map[string]any) { delete(m, "puuid") },
			wantField: "puuid",
		},
		{
			name:      "summoner level",
			decode:    decodeAs[Summoner],
			fixture:   "summoner.json",
			mutate:    func(m map[string]any) { delete(m, "summonerLevel") },
			wantField: "summonerLevel",
		},
		{
			name:      "null counts as missing",
			decode:    decodeAs[Summoner],
			fixture:   "summoner.json",
			mutate:    func(m map[string]any) { m["puuid"] = nil },
			wantField: "puuid",
		},
		{
			name:    "nested participant field",
			decode:  decodeAs[Match],
			fixture: "match.json",
			mutate: func(m map[string]any) {
				participants := m["info"].(map[string]any)["participants"].([]any)
				delete(participants[1].(map[string]any), "championName")
			},
			wantField: "info.participants[1].championName",
		},
		{
			name:    "team objective",
			decode:  decodeAs[Match],
			fixture: "match.json",
			mutate: func(m map[string]any) {
				teams := m["info"].(map[string]any)["teams"].([]any)
				delete(teams[0].(map[string]any)["objectives"].(map[string]any), "tower")
			},
			wantField: "info.teams[0].objectives.tower",
		},
		{
			name:    "timeline participant frame",
			decode:  decodeAs[Timeline],
			fixture: "timeline.json",
			mutate: func(m map[string]any) {
				frames := m["info"].(map[string]any)["frames"].([]any)
				pf := frames[1].(map[string]any)["participantFrames"].(map[string]any)
				delete(pf["2"].(map[string]any), "xp")
			},
			wantField: "info.frames[1].participantFrames.2.xp",
		},
		{
			name:      "match metadata",
			decode:    decodeAs[Match],
			fixture:   "match.json",
			mutate:    func(m map[string]any) { delete(m, "metadata") },
			wantField: "metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(mutateFixture(t, tt.fixture, tt.mutate))
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, KindDecode, apiErr.Kind)
			assert.Equal(t, tt.wantField, apiErr.Field)
			assert.Equal(t, "missing required field", apiErr.Reason)
			assert.ErrorIs(t, err, ErrDecode)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestDecodeMissingFieldPathIsStable(t *testing.T) {
	body := mutateFixture(t, "timeline.json", func(m map[string]any) {
		frames := m["info"].(map[string]any)["frames"].([]any)
		pf := frames[1].(map[string]any)["participantFrames"].(map[string]any)
		for _, frame := range pf {
			delete(frame.(map[string]any), "xp")
		}
	})

	for range 50 {
		_, err := decode[Timeline](body)
		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "info.frames[1].participantFrames.1.xp", apiErr.Field)
	}
}

func decodeAs[T any](b []byte) error {
	_, err := decode[T](b)
	return err
}

func TestDecodeMissingOptionalField(t *testing.T) {
	body := mutateFixture(t, "account.json", func(m map[string]any) {
		delete(m, "gameName")
		delete(m, "tagLine")
	})
	a, err := decode[Account](body)
	require.NoError(t, err)
	assert.Nil(t, a.GameName)
	assert.Nil(t, a.TagLine)
	assert.Empty(t, a.RiotID())

	body = mutateFixture(t, "match.json", func(m map[string]any) {
		info := m["info"].(map[string]any)
		delete(info, "gameEndTimestamp")
		delete(info, "endOfGameResult")
		p := info["participants"].([]any)[0].(map[string]any)
		delete(p, "challenges")
		delete(p, "perks")
	})
	match, err := decode[Match](body)
	require.NoError(t, err)
	assert.Nil(t, match.Info.GameEndTimestamp)
	assert.Nil(t, match.Info.EndOfGameResult)
	assert.Nil(t, match.Info.Participants[0].Challenges)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := decode[Summoner]([]byte(`{"puuid":"p","profileIconId":1,"revisionDate":1,"summonerLevel":"high"}`))
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDecode, apiErr.Kind)
	assert.Equal(t, "summonerLevel", apiErr.Field)
	assert.Contains(t, apiErr.Reason, "type mismatch")

	body := mutateFixture(t, "match.json", func(m map[string]any) {
		m["info"].(map[string]any)["gameDuration"] = "long"
	})
	_, err = decode[Match](body)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDecode, apiErr.Kind)
	assert.Contains(t, apiErr.Field, "gameDuration")
}

func TestDecodeEmptyBodyIsNotFound(t *testing.T) {
	for _, body := range []string{"", "   \n", "null"} {
		_, err := decode[Summoner]([]byte(body))
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "body %q", body)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrDecode)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := decode[Account]([]byte(`{"puuid":`))
	require.Error(t, err)
	assert.Equal(t, KindDecode, KindOf(err))
	assert.Contains(t, err.Error(), "malformed JSON")
}

func TestDecodeEmptyList(t *testing.T) {
	entries, err := decode[[]LeagueEntry]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	a, err := decode[Account]([]byte(`{"puuid":"p","newField":{"nested":true}}`))
	require.NoError(t, err)
	assert.Equal(t, "p", a.PUUID)
}
