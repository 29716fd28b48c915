package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/errors"
	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/pihole"
)

// init command flags
var (
	initAddressFlag string
	initTokenFlag   string
	initForce       bool
)

// initCmd creates a new .padd.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .padd.yaml configuration",
	Long: `Initialize a new padd configuration file.

Creates a .padd.yaml file in the current directory, prompting for the
Pi-hole address and API token. The token is the app password from
Pi-hole's web interface (Settings > Web interface/API).

Examples:
  padd init
  padd init --address 192.168.1.5 --token abc123
  padd init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initAddressFlag, initTokenFlag, initForce)
	},
}

func init() {
	initCmd.Flags().StringVar(&initAddressFlag, "address", "", "pre-specify Pi-hole address")
	initCmd.Flags().StringVar(&initTokenFlag, "token", "", "pre-specify API token")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Address   string // Pre-specified Pi-hole address
	Token     string // Pre-specified API token
	Overwrite bool   // Overwrite existing config without asking
}

// Init creates a new .padd.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	address := opts.Address
	token := opts.Token
	https := false

	if address == "" || token == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Pi-hole address").
					Description("Hostname or IP, with optional port").
					Placeholder("192.168.1.5 or pi.hole:8080").
					Value(&address).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("address is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("API token").
					Description("App password from Settings > Web interface/API").
					EchoMode(huh.EchoModePassword).
					Value(&token).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("API token is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Connect over HTTPS?").
					Value(&https),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or pass --address and --token flags")
		}
	}

	// Build config
	cfg := config.DefaultConfig()
	cfg.Pihole.Address = strings.TrimSpace(address)
	cfg.Pihole.APIToken = strings.TrimSpace(token)
	cfg.Pihole.HTTPS = https

	// Test the connection before saving
	fmt.Println()
	fmt.Printf("Testing connection to %s ...\n", cfg.Pihole.BaseURL())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client := pihole.NewClient(cfg.Pihole, logger.Noop())

	if _, err := client.FetchSnapshot(ctx); err != nil {
		fmt.Printf("Connection failed: %v\n\n", err)

		var saveAnyway bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Save config anyway? (You can fix the connection later)").
					Value(&saveAnyway),
			),
		)
		if formErr := form.Run(); formErr != nil || !saveAnyway {
			return errors.WrapWithCode(err, errors.ErrAPI,
				fmt.Sprintf("Could not reach Pi-hole at %s", cfg.Pihole.Address),
				"Check the address and API token, then run padd init again")
		}
	} else {
		fmt.Println("Connected.")
	}

	// Marshal to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# padd configuration
# Run 'padd' for the terminal dashboard or 'padd eink' for an e-ink panel
# See: https://github.com/rileyhilliard/padd for documentation

`
	content := header + string(data)

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("Created %s\n\n", configPath)
	fmt.Println("Next steps:")
	fmt.Println("  padd          - Start the terminal dashboard")
	fmt.Println("  padd eink     - Drive an e-ink panel")
	fmt.Println("  padd version  - Show build and update info")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(address, token string, force bool) error {
	return Init(InitOptions{
		Address:   address,
		Token:     token,
		Overwrite: force,
	})
}
