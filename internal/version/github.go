package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const (
	// githubReleasesURL is the GitHub API endpoint for padd releases
	githubReleasesURL = "https://api.github.com/repos/rileyhilliard/padd/releases/latest"

	// fetchTimeout is the max time to wait for the GitHub API
	fetchTimeout = 3 * time.Second
)

// githubRelease represents the relevant fields from GitHub's release API
type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// diskCache stores a release check result between runs.
type diskCache struct {
	LatestVersion string    `json:"latest_version"`
	CheckedAt     time.Time `json:"checked_at"`
}

// cachePath returns the path to the release check cache file.
// Prefers XDG_CACHE_HOME, falls back to ~/.cache.
func cachePath() (string, error) {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		cacheDir = filepath.Join(homeDir, ".cache")
	}
	return filepath.Join(cacheDir, "padd", "update-check"), nil
}

// readDiskCache reads the cached release check result.
func readDiskCache() (*diskCache, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cache diskCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	return &cache, nil
}

// writeDiskCache persists the release check result.
func writeDiskCache(cache *diskCache) error {
	path, err := cachePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FetchLatestRelease fetches the latest release tag from GitHub.
func FetchLatestRelease() (string, error) {
	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequest("GET", githubReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "padd-cli")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}
	return release.TagName, nil
}

// GitHubSource returns a FetchFunc backed by the GitHub releases API with
// an on-disk cache, so restarts within the TTL skip the network entirely.
// PADD_NO_UPDATE_CHECK=1 disables the check and reports empty results.
func GitHubSource(cacheTTL time.Duration) FetchFunc {
	return func() (string, error) {
		if os.Getenv("PADD_NO_UPDATE_CHECK") == "1" {
			return "", nil
		}

		if cache, err := readDiskCache(); err == nil && time.Since(cache.CheckedAt) < cacheTTL {
			return cache.LatestVersion, nil
		}

		latest, err := FetchLatestRelease()
		if err != nil {
			return "", err
		}

		// Cache write failures are not critical
		_ = writeDiskCache(&diskCache{LatestVersion: latest, CheckedAt: time.Now()})
		return latest, nil
	}
}

// SeedFromDisk primes a checker with the last persisted result, if any.
// This keeps the versions screen informative before the first live fetch.
func SeedFromDisk(c *Checker) {
	cache, err := readDiskCache()
	if err != nil {
		return
	}
	c.Seed(cache.LatestVersion, cache.CheckedAt)
}
