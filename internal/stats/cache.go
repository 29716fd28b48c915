package stats

import (
	"sync"
	"time"
)

// FetchFunc produces a fresh snapshot. It is the injected stats API
// collaborator; the cache itself never performs I/O.
type FetchFunc func() (*Snapshot, error)

// Cache holds the most recent snapshot and the time of the last successful
// fetch. Safe for use from an input callback and the control loop.
type Cache struct {
	mu        sync.Mutex
	snapshot  *Snapshot
	lastFetch time.Time
}

// NewCache returns an empty cache; the first GetOrRefresh always fetches.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrRefresh returns the cached snapshot, refreshing it first when it is
// missing or older than ttl. A failed fetch stores (and returns) an error
// variant without advancing the last-fetch time, so the next eligible tick
// retries instead of waiting out a full TTL.
func (c *Cache) GetOrRefresh(now time.Time, ttl time.Duration, fetch FetchFunc) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.needsRefreshLocked(now, ttl) {
		return c.snapshot
	}

	snap, err := fetch()
	if err != nil {
		c.snapshot = ErrorSnapshot(err.Error())
		return c.snapshot
	}

	c.snapshot = snap
	c.lastFetch = now
	return c.snapshot
}

// NeedsRefresh reports whether the next GetOrRefresh would invoke the fetch.
func (c *Cache) NeedsRefresh(now time.Time, ttl time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.needsRefreshLocked(now, ttl)
}

func (c *Cache) needsRefreshLocked(now time.Time, ttl time.Duration) bool {
	if c.snapshot == nil || !c.snapshot.OK() {
		return true
	}
	return now.Sub(c.lastFetch) > ttl
}

// ForceInvalidate resets the last-fetch time so the next GetOrRefresh
// refetches regardless of TTL. Used by the manual-refresh button.
func (c *Cache) ForceInvalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastFetch = time.Time{}
}

// Current returns the cached snapshot without triggering a refresh.
// May be nil before the first fetch.
func (c *Cache) Current() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Store replaces the snapshot directly. The control loop uses this when a
// background worker hands a completed fetch back over a channel.
func (c *Cache) Store(snap *Snapshot, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snap
	if snap.OK() {
		c.lastFetch = fetchedAt
	}
}

// LastFetch returns the time of the last successful fetch.
func (c *Cache) LastFetch() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetch
}
