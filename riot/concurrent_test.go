package riot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/s0up4200/lolapi/region"
)

func TestFetchMatches(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	body := readFixture(t, "match.json")
	var inFlight, maxInFlight atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if strings.HasSuffix(r.URL.Path, "/NA1_missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	defer server.Close()

	transport := &http.Transport{}
	defer transport.CloseIdleConnections()

	client, err := NewClient(testKey, zerolog.Nop(),
		WithBaseURL(server.URL),
		WithHTTPClient(&http.Client{Transport: transport}),
	)
	require.NoError(t, err)

	ids := []string{"NA1_1", "NA1_2", "NA1_missing", "NA1_4", "NA1_5", "NA1_6"}
	result := client.FetchMatches(context.Background(), region.NA1, ids, 2)

	require.Len(t, result.Results, len(ids))
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Matches(), len(ids)-1)
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))

	for i, r := range result.Results {
		assert.Equal(t, ids[i], r.ID, "results keep input order")
		if r.ID == "NA1_missing" {
			assert.True(t, IsNotFound(r.Err))
			assert.Nil(t, r.Match)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, "NA1_4923184093", r.Match.Metadata.MatchID)
	}
}

func TestFetchMatchesEmpty(t *testing.T) {
	client, err := NewClient(testKey, zerolog.Nop())
	require.NoError(t, err)

	result := client.FetchMatches(context.Background(), region.NA1, nil, 0)
	assert.Empty(t, result.Results)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Matches())
}
