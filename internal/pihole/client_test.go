package pihole

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/errors"
	"github.com/rileyhilliard/padd/internal/logger"
)

const sampleSummary = `{
	"queries": {"total": 100000, "blocked": 50000, "percent_blocked": 50.0},
	"gravity_size": 131570,
	"recent_blocked": "ads.example.com",
	"top_blocked": "tracker.example.net",
	"top_domain": "github.com",
	"top_client": "laptop.lan",
	"active_clients": 7,
	"node_name": "raspberrypi",
	"iface": {"v4": {"addr": "192.168.1.5"}},
	"system": {
		"uptime": 93784,
		"cpu": {"%cpu": 12.5, "load": {"raw": [0.42, 0.31, 0.22]}},
		"memory": {"ram": {"%used": 38.2}}
	},
	"sensors": {"cpu_temp": 47.3},
	"version": {
		"core": {"local": {"version": "v6.0.5"}, "remote": {"version": "v6.0.6"}},
		"web": {"local": {"version": "v6.1"}, "remote": {"version": "v6.1"}},
		"ftl": {"local": {"version": "v6.0"}, "remote": {"version": "v6.0"}}
	}
}`

func TestParseSummary(t *testing.T) {
	snap, err := ParseSummary([]byte(sampleSummary))
	require.NoError(t, err)

	assert.Equal(t, int64(50000), snap.BlockedCount)
	assert.Equal(t, int64(100000), snap.TotalCount)
	assert.Equal(t, 50.0, snap.PercentBlocked)
	assert.Equal(t, int64(131570), snap.GravitySize)
	assert.Equal(t, "ads.example.com", snap.RecentBlocked)
	assert.Equal(t, "tracker.example.net", snap.TopBlocked)
	assert.Equal(t, "github.com", snap.TopDomain)
	assert.Equal(t, "laptop.lan", snap.TopClient)
	assert.Equal(t, 7, snap.ActiveClients)
	assert.Equal(t, "raspberrypi", snap.HostName)
	assert.Equal(t, "192.168.1.5", snap.HostIP)
	assert.Equal(t, 12.5, snap.CPUPercent)
	assert.Equal(t, [3]float64{0.42, 0.31, 0.22}, snap.CPULoad)
	assert.Equal(t, 38.2, snap.MemoryPercent)
	assert.Equal(t, 47.3, snap.CPUTempCelsius)
	assert.Equal(t, 93784*time.Second, snap.Uptime)
	assert.Equal(t, "v6.0.5", snap.Versions.Core.Local)
	assert.Equal(t, "v6.0.6", snap.Versions.Core.Remote)
	assert.True(t, snap.OK())
}

func TestParseSummaryMissingFields(t *testing.T) {
	snap, err := ParseSummary([]byte(`{"queries": {"total": 10}}`))
	require.NoError(t, err)

	assert.Equal(t, int64(10), snap.TotalCount)
	assert.Empty(t, snap.TopDomain)
	assert.Zero(t, snap.CPUPercent)
	assert.Empty(t, snap.Versions.FTL.Local)
}

func TestParseSummaryInvalid(t *testing.T) {
	_, err := ParseSummary([]byte("not json"))
	assert.Error(t, err)
}

func testServer(t *testing.T, password string) (*httptest.Server, *int) {
	t.Helper()
	authCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth", func(w http.ResponseWriter, r *http.Request) {
		authCalls++
		var body struct {
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != password {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"session": map[string]any{"valid": false}})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"session": map[string]any{"valid": true, "sid": "test-sid"}})
	})
	mux.HandleFunc("/api/padd", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-FTL-SID") != "test-sid" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(sampleSummary))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &authCalls
}

func clientFor(srv *httptest.Server, token string) *Client {
	addr := strings.TrimPrefix(srv.URL, "http://")
	return NewClient(config.PiholeConfig{
		Address:  addr,
		APIToken: token,
		Timeout:  2 * time.Second,
	}, logger.Noop())
}

func TestFetchSnapshot(t *testing.T) {
	srv, authCalls := testServer(t, "secret")
	c := clientFor(srv, "secret")

	snap, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(50000), snap.BlockedCount)
	assert.Equal(t, 1, *authCalls)

	// Second fetch reuses the session.
	_, err = c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, *authCalls)
}

func TestFetchSnapshotBadToken(t *testing.T) {
	srv, _ := testServer(t, "secret")
	c := clientFor(srv, "wrong")

	_, err := c.FetchSnapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrAPI))
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestFetchSnapshotReauthenticates(t *testing.T) {
	srv, authCalls := testServer(t, "secret")
	c := clientFor(srv, "secret")

	// Stale session id forces a 401 on the first summary request.
	c.sid = "expired-sid"
	snap, err := c.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.OK())
	assert.Equal(t, 1, *authCalls)
}

func TestFetchSnapshotUnreachable(t *testing.T) {
	c := NewClient(config.PiholeConfig{
		Address:  "127.0.0.1:1",
		APIToken: "secret",
		Timeout:  500 * time.Millisecond,
	}, logger.Noop())

	_, err := c.FetchSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
