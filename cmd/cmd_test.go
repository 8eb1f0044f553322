package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/lolapi/config"
	"github.com/s0up4200/lolapi/resilience"
	"github.com/s0up4200/lolapi/riot"
)

func TestSplitRiotID(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantTag  string
		wantErr  bool
	}{
		{input: "Hide on bush#KR1", wantName: "Hide on bush", wantTag: "KR1"},
		{input: "a#b#EUW", wantName: "a#b", wantTag: "EUW"},
		{input: "noTag", wantErr: true},
		{input: "#KR1", wantErr: true},
		{input: "name#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name, tag, err := splitRiotID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantTag, tag)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := parseTime("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), got.Unix())

	got, err = parseTime("2024-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), got.UTC())

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestMatchIDsOptionsOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "ids"}
	cmd.Flags().StringVar(&idsStartTime, "start-time", "", "")
	cmd.Flags().StringVar(&idsEndTime, "end-time", "", "")
	cmd.Flags().IntVar(&idsQueue, "queue", 0, "")
	cmd.Flags().StringVar(&idsType, "type", "", "")
	cmd.Flags().IntVar(&idsStart, "start", 0, "")
	cmd.Flags().IntVar(&idsCount, "count", 20, "")

	require.NoError(t, cmd.Flags().Parse([]string{"--queue", "420", "--type", "RANKED", "--start", "0"}))

	opts, err := matchIDsOptions(cmd)
	require.NoError(t, err)
	assert.Nil(t, opts.StartTime)
	assert.Nil(t, opts.EndTime)
	assert.Nil(t, opts.Count)
	require.NotNil(t, opts.Queue)
	assert.Equal(t, 420, *opts.Queue)
	require.NotNil(t, opts.Type)
	assert.Equal(t, riot.MatchTypeRanked, *opts.Type)
	require.NotNil(t, opts.Start)
	assert.Zero(t, *opts.Start)

	require.NoError(t, cmd.Flags().Parse([]string{"--type", "arena"}))
	_, err = matchIDsOptions(cmd)
	assert.ErrorIs(t, err, riot.ErrInvalidArgument)
}

func TestRegionsJSON(t *testing.T) {
	outputFormat = "json"
	t.Cleanup(func() { outputFormat = "text" })

	var out bytes.Buffer
	regionsCmd.SetOut(&out)
	t.Cleanup(func() { regionsCmd.SetOut(nil) })

	require.NoError(t, regionsCmd.RunE(regionsCmd, nil))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 17)
	for _, r := range rows {
		if r["platform"] == "vn2" {
			assert.Equal(t, "sea", r["routing"])
			assert.Equal(t, "asia", r["account"])
		}
	}
}

// withTestClient points the command globals at server.
func withTestClient(t *testing.T, server *httptest.Server) {
	t.Helper()

	var err error
	client, err = riot.NewClient("RGAPI-test", zerolog.Nop(), riot.WithBaseURL(server.URL))
	require.NoError(t, err)

	policy = resilience.New(resilience.Config{Attempts: 2, Delay: time.Millisecond}, zerolog.Nop())
	cfg = &config.Config{Riot: config.RiotConfig{DefaultPlatform: "kr"}}
	logger = zerolog.Nop()
	require.NoError(t, setupFilters(config.FilterConfig{
		Entries: map[string]string{"high": `leaguePoints >= 50`},
	}))

	t.Cleanup(func() {
		client, policy, cfg = nil, nil, nil
		platformFlag, entryFilter = "", ""
	})
}

func TestAccountRiotIDCommand(t *testing.T) {
	var gotPath, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotHost = r.Host
		_, _ = w.Write([]byte(`{"puuid":"p-1","gameName":"Hide on bush","tagLine":"KR1"}`))
	}))
	defer server.Close()
	withTestClient(t, server)

	var out bytes.Buffer
	accountRiotIDCmd.SetOut(&out)
	accountRiotIDCmd.SetContext(context.Background())
	t.Cleanup(func() { accountRiotIDCmd.SetOut(nil) })

	require.NoError(t, accountRiotIDCmd.RunE(accountRiotIDCmd, []string{"Hide on bush#KR1"}))

	assert.Equal(t, "/riot/account/v1/accounts/by-riot-id/Hide%20on%20bush/KR1", gotPath)
	assert.Equal(t, "asia.api.riotgames.com", gotHost)
	assert.Contains(t, out.String(), "Hide on bush#KR1")
}

func TestLeagueCommandAppliesFilterAndRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[
			{"leagueId":"l","puuid":"a","queueType":"RANKED_SOLO_5x5","tier":"GOLD","rank":"I","leaguePoints":10,"wins":1,"losses":1,"hotStreak":false,"veteran":false,"freshBlood":false,"inactive":false},
			{"leagueId":"l","puuid":"b","queueType":"RANKED_SOLO_5x5","tier":"GOLD","rank":"I","leaguePoints":80,"wins":1,"losses":1,"hotStreak":false,"veteran":false,"freshBlood":false,"inactive":false}
		]`))
	}))
	defer server.Close()
	withTestClient(t, server)

	outputFormat = "json"
	entryFilter = "high"
	platformFlag = "euw"
	t.Cleanup(func() { outputFormat = "text" })

	var out bytes.Buffer
	leagueByPUUIDCmd.SetOut(&out)
	leagueByPUUIDCmd.SetContext(context.Background())
	t.Cleanup(func() { leagueByPUUIDCmd.SetOut(nil) })

	require.NoError(t, leagueByPUUIDCmd.RunE(leagueByPUUIDCmd, []string{"a"}))
	assert.Equal(t, 2, calls)

	var entries []riot.LeagueEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].PUUID)
}

func TestLeagueCommandRejectsBadFilterBeforeRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()
	withTestClient(t, server)

	entryFilter = "leaguePoints >"
	leagueByPUUIDCmd.SetContext(context.Background())

	err := leagueByPUUIDCmd.RunE(leagueByPUUIDCmd, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
	assert.Zero(t, calls)
}
