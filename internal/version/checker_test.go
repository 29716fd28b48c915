package version

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecker_StatusUnknownBeforeFirstSuccess(t *testing.T) {
	c := NewChecker(func() (string, error) {
		return "", errors.New("network down")
	}, logger.Noop())

	assert.Equal(t, StatusUnknown, c.Status("1.0.0"))

	c.Refresh()
	// Failure leaves the cache empty; still unknown
	assert.Equal(t, StatusUnknown, c.Status("1.0.0"))
}

func TestChecker_UpdateAvailable(t *testing.T) {
	c := NewChecker(func() (string, error) { return "v1.2.0", nil }, nil)
	c.Refresh()

	assert.Equal(t, StatusUpdateAvailable, c.Status("1.1.0"))
	assert.Equal(t, StatusUpToDate, c.Status("1.2.0"))
	assert.Equal(t, StatusUpToDate, c.Status("1.3.0"))
}

func TestChecker_FailureKeepsStaleValue(t *testing.T) {
	calls := 0
	c := NewChecker(func() (string, error) {
		calls++
		if calls == 1 {
			return "v2.0.0", nil
		}
		return "", errors.New("rate limited")
	}, logger.Noop())

	c.Refresh()
	latest, at := c.Latest()
	assert.Equal(t, "v2.0.0", latest)
	assert.False(t, at.IsZero())

	c.Refresh()
	stale, _ := c.Latest()
	// Stale-but-present is preferred over erroring
	assert.Equal(t, "v2.0.0", stale)
	assert.Equal(t, StatusUpdateAvailable, c.Status("1.0.0"))
}

func TestChecker_DevVersionComparesEqual(t *testing.T) {
	c := NewChecker(func() (string, error) { return "v1.0.0", nil }, nil)
	c.Refresh()

	// "dev" is unparseable, so the comparator fails open to equal
	assert.Equal(t, StatusUpToDate, c.Status("dev"))
}

func TestChecker_Seed(t *testing.T) {
	c := NewChecker(func() (string, error) { return "", errors.New("no net") }, nil)
	c.Seed("v3.0.0", time.Now().Add(-time.Hour))

	assert.Equal(t, StatusUpdateAvailable, c.Status("2.0.0"))

	// Empty seed is ignored
	c.Seed("", time.Now())
	latest, _ := c.Latest()
	assert.Equal(t, "v3.0.0", latest)
}

func TestGitHubSource_DisabledByEnv(t *testing.T) {
	t.Setenv("PADD_NO_UPDATE_CHECK", "1")

	fetch := GitHubSource(time.Hour)
	latest, err := fetch()
	require.NoError(t, err)
	assert.Empty(t, latest)
}

func TestGitHubSource_UsesDiskCache(t *testing.T) {
	cacheHome := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	require.NoError(t, writeDiskCache(&diskCache{
		LatestVersion: "v9.9.9",
		CheckedAt:     time.Now(),
	}))
	// Confirm it landed where cachePath says
	if _, err := os.Stat(filepath.Join(cacheHome, "padd", "update-check")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	fetch := GitHubSource(time.Hour)
	latest, err := fetch()
	require.NoError(t, err)
	assert.Equal(t, "v9.9.9", latest)
}

func TestSeedFromDisk(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	require.NoError(t, writeDiskCache(&diskCache{
		LatestVersion: "v1.5.0",
		CheckedAt:     time.Now().Add(-48 * time.Hour),
	}))

	c := NewChecker(func() (string, error) { return "", errors.New("offline") }, nil)
	SeedFromDisk(c)

	latest, _ := c.Latest()
	assert.Equal(t, "v1.5.0", latest)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "up to date", StatusUpToDate.String())
	assert.Equal(t, "update available", StatusUpdateAvailable.String())
	assert.Equal(t, "unknown", Status(99).String())
}

func TestChecker_RunRefreshesOnInterval(t *testing.T) {
	releases := make(chan string, 3)
	releases <- "v1.1.0"
	releases <- "v1.2.0"
	releases <- "v1.3.0"

	calls := 0
	c := NewChecker(func() (string, error) {
		calls++
		select {
		case v := <-releases:
			return v, nil
		default:
			return "", errors.New("rate limited")
		}
	}, logger.Noop())

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	c.Run(ctx, 10*time.Millisecond)

	// Immediate refresh plus at least one ticker-driven refresh.
	assert.GreaterOrEqual(t, calls, 2)
	latest, _ := c.Latest()
	assert.NotEqual(t, "v1.1.0", latest)
	assert.Equal(t, StatusUpdateAvailable, c.Status("1.0.0"))
}

func TestChecker_RunDefaultsNonPositiveInterval(t *testing.T) {
	c := NewChecker(func() (string, error) { return "v9.9.9", nil }, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	// Must not panic on a zero interval; the first refresh still runs.
	c.Run(ctx, 0)

	latest, _ := c.Latest()
	assert.Equal(t, "v9.9.9", latest)
}
