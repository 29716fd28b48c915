package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/padd/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".padd.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/padd"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'padd init' to create a config file, or specify one with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .padd.yaml in current directory
// 3. ~/.config/padd/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if home, _ := os.UserHomeDir(); home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// merged with environment variables if no file exists. This lets the tool
// run with nothing but PIHOLE_ADDRESS and PIHOLE_API_TOKEN set.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		v := viper.New()
		bindEnv(v)
		return parseConfig(v, "")
	}

	return Load(path)
}

// bindEnv wires the environment variables the original deployment used.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("pihole.address", "PIHOLE_ADDRESS", "PIHOLE_IP")
	_ = v.BindEnv("pihole.api_token", "PIHOLE_API_TOKEN", "API_TOKEN")
	_ = v.BindEnv("pihole.https", "PIHOLE_HTTPS")
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		source := path
		if source == "" {
			source = "environment"
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+source)
	}

	return cfg, nil
}

// setDefaults seeds viper so partial config files merge cleanly.
// Viper parses duration strings into time.Duration fields automatically.
func setDefaults(v *viper.Viper) {
	v.SetDefault("pihole.timeout", "10s")
	v.SetDefault("display.refresh_ttl", "2m")
	v.SetDefault("display.rotate_interval", "20s")
	v.SetDefault("display.tui_refresh", "60s")
	v.SetDefault("display.splash_duration", "10s")
	v.SetDefault("buttons.debounce", "300ms")
	v.SetDefault("buttons.hold", "5s")
	v.SetDefault("update.enabled", true)
	v.SetDefault("update.interval", "24h")
}

// Validate checks that the config can actually drive a session.
// A missing connection target is the only fatal startup condition.
func (c *Config) Validate() error {
	if c.Pihole.Address == "" {
		return errors.New(errors.ErrConfig,
			"No Pi-hole address configured",
			"Set pihole.address in "+ConfigFileName+" or export PIHOLE_ADDRESS")
	}
	if c.Pihole.APIToken == "" {
		return errors.New(errors.ErrConfig,
			"No Pi-hole API token configured",
			"Set pihole.api_token in "+ConfigFileName+" or export PIHOLE_API_TOKEN")
	}
	if c.Display.RefreshTTL <= 0 {
		return errors.New(errors.ErrConfig,
			"display.refresh_ttl must be positive", "")
	}
	if c.Display.RotateInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"display.rotate_interval must be positive", "")
	}
	return nil
}
