package version

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/padd/internal/logger"
)

// Status classifies the running build against the latest known release.
type Status int

const (
	// StatusUnknown means no release check has ever succeeded.
	StatusUnknown Status = iota
	StatusUpToDate
	StatusUpdateAvailable
)

// String returns a human-readable label for the status.
func (s Status) String() string {
	switch s {
	case StatusUpToDate:
		return "up to date"
	case StatusUpdateAvailable:
		return "update available"
	default:
		return "unknown"
	}
}

// FetchFunc returns the latest published release identifier. It is the
// injected release-index collaborator.
type FetchFunc func() (string, error)

// Checker caches the latest known release version, refreshed on an
// interval independent of the display loop. Failed refreshes keep the
// previous value: stale-but-present beats erroring the whole display.
type Checker struct {
	mu        sync.Mutex
	latest    string
	checkedAt time.Time

	fetch FetchFunc
	log   logger.Logger
}

// NewChecker creates a checker around the given release fetcher.
func NewChecker(fetch FetchFunc, log logger.Logger) *Checker {
	if log == nil {
		log = logger.Noop()
	}
	return &Checker{fetch: fetch, log: log}
}

// Refresh fetches the latest release identifier once. On failure the
// cached value is left untouched and the failure is never surfaced to
// the display.
func (c *Checker) Refresh() {
	latest, err := c.fetch()
	if err != nil {
		c.log.Debug("release check failed: %v", err)
		return
	}
	if latest == "" {
		return
	}

	c.mu.Lock()
	c.latest = latest
	c.checkedAt = time.Now()
	c.mu.Unlock()
	c.log.Debug("latest release: %s", latest)
}

// Run refreshes immediately and then on every interval tick until the
// context is cancelled. Intended to run on its own goroutine.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	c.Refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Refresh()
		}
	}
}

// Latest returns the cached release identifier and when it was fetched.
// The identifier is empty until the first successful refresh.
func (c *Checker) Latest() (string, time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.checkedAt
}

// Status compares the running version against the cached release.
// Pure read of the cache; never triggers a fetch.
func (c *Checker) Status(current string) Status {
	latest, _ := c.Latest()
	if latest == "" {
		return StatusUnknown
	}
	if Compare(latest, current) > 0 {
		return StatusUpdateAvailable
	}
	return StatusUpToDate
}

// Seed primes the cache, e.g. from an on-disk result of a previous run.
func (c *Checker) Seed(latest string, checkedAt time.Time) {
	if latest == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = latest
	c.checkedAt = checkedAt
}
