package config

import (
	"fmt"
	"time"
)

// Config represents the complete .padd.yaml configuration file.
type Config struct {
	Pihole  PiholeConfig  `yaml:"pihole" mapstructure:"pihole"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Buttons ButtonConfig  `yaml:"buttons" mapstructure:"buttons"`
	Update  UpdateConfig  `yaml:"update" mapstructure:"update"`
}

// PiholeConfig describes how to reach the Pi-hole API.
type PiholeConfig struct {
	Address  string        `yaml:"address" mapstructure:"address"`
	APIToken string        `yaml:"api_token" mapstructure:"api_token"`
	HTTPS    bool          `yaml:"https" mapstructure:"https"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DisplayConfig holds refresh and rotation timing for both surfaces.
type DisplayConfig struct {
	RefreshTTL     time.Duration `yaml:"refresh_ttl" mapstructure:"refresh_ttl"`
	RotateInterval time.Duration `yaml:"rotate_interval" mapstructure:"rotate_interval"`
	TUIRefresh     time.Duration `yaml:"tui_refresh" mapstructure:"tui_refresh"`
	SplashDuration time.Duration `yaml:"splash_duration" mapstructure:"splash_duration"`
}

// ButtonConfig holds the debounce/hold timing for hardware buttons.
// The exact GPIO binding lives with the display surface, not here.
type ButtonConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
	Hold     time.Duration `yaml:"hold" mapstructure:"hold"`
}

// UpdateConfig controls the background release check.
type UpdateConfig struct {
	Enabled  bool          `yaml:"enabled" mapstructure:"enabled"`
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultConfig returns a config populated with defaults.
// The Pi-hole address and token have no default; they must come from
// the config file or environment.
func DefaultConfig() *Config {
	return &Config{
		Pihole: PiholeConfig{
			Timeout: 10 * time.Second,
		},
		Display: DisplayConfig{
			RefreshTTL:     2 * time.Minute,
			RotateInterval: 20 * time.Second,
			TUIRefresh:     60 * time.Second,
			SplashDuration: 10 * time.Second,
		},
		Buttons: ButtonConfig{
			Debounce: 300 * time.Millisecond,
			Hold:     5 * time.Second,
		},
		Update: UpdateConfig{
			Enabled:  true,
			Interval: 24 * time.Hour,
		},
	}
}

// Scheme returns the URL scheme for API requests.
func (c *PiholeConfig) Scheme() string {
	if c.HTTPS {
		return "https"
	}
	return "http"
}

// BaseURL returns the root URL of the Pi-hole instance.
func (c *PiholeConfig) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.Scheme(), c.Address)
}

// AdminURL returns the admin dashboard URL shown in the QR overlay.
func (c *PiholeConfig) AdminURL() string {
	return c.BaseURL() + "/admin/"
}
