package stats

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrRefresh_FirstCallFetches(t *testing.T) {
	c := NewCache()
	calls := 0
	fetch := func() (*Snapshot, error) {
		calls++
		return &Snapshot{BlockedCount: 500, TotalCount: 1000}, nil
	}

	now := time.Now()
	snap := c.GetOrRefresh(now, 2*time.Minute, fetch)

	require.True(t, snap.OK())
	assert.Equal(t, int64(500), snap.BlockedCount)
	assert.Equal(t, 1, calls)
	assert.Equal(t, now, c.LastFetch())
}

func TestGetOrRefresh_TTL(t *testing.T) {
	c := NewCache()
	calls := 0
	fetch := func() (*Snapshot, error) {
		calls++
		return &Snapshot{TotalCount: int64(calls)}, nil
	}

	base := time.Now()
	ttl := 120 * time.Second

	c.GetOrRefresh(base, ttl, fetch)
	assert.Equal(t, 1, calls)

	// 60s later: within TTL, no refetch
	snap := c.GetOrRefresh(base.Add(60*time.Second), ttl, fetch)
	assert.Equal(t, 1, calls)
	assert.Equal(t, int64(1), snap.TotalCount)

	// 121s later: past TTL, refetch
	snap = c.GetOrRefresh(base.Add(121*time.Second), ttl, fetch)
	assert.Equal(t, 2, calls)
	assert.Equal(t, int64(2), snap.TotalCount)
}

func TestGetOrRefresh_FailureRetriesNextTick(t *testing.T) {
	c := NewCache()
	fail := true
	fetch := func() (*Snapshot, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return &Snapshot{TotalCount: 7}, nil
	}

	base := time.Now()
	ttl := 2 * time.Minute

	snap := c.GetOrRefresh(base, ttl, fetch)
	require.False(t, snap.OK())
	assert.Equal(t, "connection refused", snap.Err)
	// Failure must not advance the last-fetch time
	assert.True(t, c.LastFetch().IsZero())

	// The very next tick retries; no TTL wait
	fail = false
	snap = c.GetOrRefresh(base.Add(time.Second), ttl, fetch)
	require.True(t, snap.OK())
	assert.Equal(t, int64(7), snap.TotalCount)
}

func TestForceInvalidate(t *testing.T) {
	c := NewCache()
	calls := 0
	fetch := func() (*Snapshot, error) {
		calls++
		return &Snapshot{}, nil
	}

	base := time.Now()
	c.GetOrRefresh(base, time.Hour, fetch)
	assert.Equal(t, 1, calls)

	c.ForceInvalidate()
	c.GetOrRefresh(base.Add(time.Second), time.Hour, fetch)
	assert.Equal(t, 2, calls)
}

func TestStore(t *testing.T) {
	c := NewCache()
	at := time.Now()

	c.Store(&Snapshot{TotalCount: 3}, at)
	assert.Equal(t, at, c.LastFetch())
	assert.Equal(t, int64(3), c.Current().TotalCount)

	// Storing an error variant keeps the success timestamp
	c.Store(ErrorSnapshot("boom"), at.Add(time.Minute))
	assert.Equal(t, at, c.LastFetch())
	assert.False(t, c.Current().OK())
}

func TestSnapshotOK(t *testing.T) {
	var nilSnap *Snapshot
	assert.False(t, nilSnap.OK())
	assert.False(t, ErrorSnapshot("x").OK())
	assert.True(t, (&Snapshot{}).OK())
}
