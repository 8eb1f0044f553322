package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalValidatesRules(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{name: "defaults", opts: nil},
		{name: "custom application rules", opts: []Option{WithApplicationRules(Rule{Requests: 5, Period: time.Second})}},
		{name: "zero requests", opts: []Option{WithApplicationRules(Rule{Requests: 0, Period: time.Second})}, wantErr: true},
		{name: "zero period", opts: []Option{WithMethodRules("match-v5.by-id", Rule{Requests: 1})}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLocal(tt.opts...)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestLocalBurstThenBlocks(t *testing.T) {
	l, err := NewLocal(WithApplicationRules(Rule{Requests: 3, Period: time.Hour}))
	require.NoError(t, err)

	key := Key{Region: "na1", Resource: "summoner-v4.by-puuid"}
	for range 3 {
		require.NoError(t, l.Wait(context.Background(), key))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, key))
}

func TestLocalApplicationScopeIsPerRegion(t *testing.T) {
	l, err := NewLocal(WithApplicationRules(Rule{Requests: 1, Period: time.Hour}))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, l.Wait(ctx, Key{Region: "na1", Resource: "a"}))
	require.NoError(t, l.Wait(ctx, Key{Region: "euw1", Resource: "a"}))

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(short, Key{Region: "na1", Resource: "b"}), "application quota is shared across resources")
}

func TestLocalMethodScope(t *testing.T) {
	l, err := NewLocal(
		WithApplicationRules(),
		WithMethodRules("match-v5.by-id", Rule{Requests: 1, Period: time.Hour}),
	)
	require.NoError(t, err)

	ctx := context.Background()
	matchKey := Key{Region: "americas", Resource: "match-v5.by-id"}
	require.NoError(t, l.Wait(ctx, matchKey))

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(short, matchKey))

	for range 10 {
		assert.NoError(t, l.Wait(ctx, Key{Region: "americas", Resource: "match-v5.timeline"}))
	}
}

func TestLocalCanceledContext(t *testing.T) {
	l, err := NewLocal()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx, Key{Region: "kr"}))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "na1", Key{Region: "na1"}.String())
	assert.Equal(t, "europe:match-v5.by-id", Key{Region: "europe", Resource: "match-v5.by-id"}.String())
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Wait(context.Background(), Key{Region: "na1"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Nop{}.Wait(ctx, Key{Region: "na1"}), context.Canceled)
}
