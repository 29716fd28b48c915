// Package pihole fetches the PADD summary from a Pi-hole v6 API.
// The nested payload is parsed into the flat stats.Snapshot exactly
// once, here at the boundary, with every default made explicit.
package pihole

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/errors"
	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/stats"
)

// Client talks to one Pi-hole instance. Safe for use from a single
// fetch worker; the session id is refreshed on expiry.
type Client struct {
	cfg  config.PiholeConfig
	http *http.Client
	log  logger.Logger

	mu  sync.Mutex
	sid string
}

// NewClient creates a client for the configured Pi-hole.
func NewClient(cfg config.PiholeConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.Noop()
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// AdminURL returns the admin dashboard URL for the QR overlay.
func (c *Client) AdminURL() string {
	return c.cfg.AdminURL()
}

// FetchSnapshot retrieves one complete statistics snapshot,
// all-or-nothing. A 401 triggers a single re-authentication and retry.
func (c *Client) FetchSnapshot(ctx context.Context) (*stats.Snapshot, error) {
	body, status, err := c.get(ctx, "/api/padd?full=true")
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized {
		c.log.Debug("session expired, re-authenticating")
		c.clearSession()
		if body, status, err = c.get(ctx, "/api/padd?full=true"); err != nil {
			return nil, err
		}
	}
	if status != http.StatusOK {
		return nil, errors.New(errors.ErrAPI,
			fmt.Sprintf("Pi-hole API returned %d", status),
			"Check the API token and that Pi-hole is running v6 or later")
	}

	snap, err := ParseSummary(body)
	if err != nil {
		return nil, errors.Wrap(err, "Could not parse Pi-hole response")
	}
	return snap, nil
}

// get performs an authenticated GET, establishing a session first when
// none exists.
func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	sid, err := c.session(ctx)
	if err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.cfg.BaseURL()+path, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-FTL-SID", sid)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "Failed to reach Pi-hole at "+c.cfg.Address)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

// session returns the cached session id, authenticating when needed.
func (c *Client) session(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sid != "" {
		return c.sid, nil
	}

	payload, _ := json.Marshal(map[string]string{"password": c.cfg.APIToken})
	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL()+"/api/auth", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "Failed to reach Pi-hole at "+c.cfg.Address)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(errors.ErrAPI,
			fmt.Sprintf("Pi-hole authentication failed (%d)", resp.StatusCode),
			"Check pihole.api_token matches the app password in Pi-hole settings")
	}

	var auth struct {
		Session struct {
			Valid bool   `json:"valid"`
			SID   string `json:"sid"`
		} `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", errors.Wrap(err, "Could not parse Pi-hole auth response")
	}
	if !auth.Session.Valid {
		return "", errors.New(errors.ErrAPI,
			"Pi-hole rejected the API token",
			"Check pihole.api_token matches the app password in Pi-hole settings")
	}

	c.sid = auth.Session.SID
	return c.sid, nil
}

func (c *Client) clearSession() {
	c.mu.Lock()
	c.sid = ""
	c.mu.Unlock()
}
