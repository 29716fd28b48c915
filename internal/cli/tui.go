package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/pihole"
	"github.com/rileyhilliard/padd/internal/render"
	termrender "github.com/rileyhilliard/padd/internal/render/term"
	"github.com/rileyhilliard/padd/internal/tui"
	"github.com/rileyhilliard/padd/internal/version"
)

// tuiCmd starts the terminal dashboard explicitly. The bare root
// command does the same thing.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal dashboard",
	Long: `Start the interactive terminal dashboard.

Screens rotate automatically; keys 1/2/3 jump directly, 'a' shows a QR
code for the Pi-hole admin page, 'r' forces a refresh.

When stdout is not a terminal the current stats are printed once and
the command exits, so padd can be used from scripts and cron.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tuiCommand()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func tuiCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.NewEnvLogger("[tui]")
	client := pihole.NewClient(cfg.Pihole, log)

	// One-shot text dump keeps padd usable from pipes and cron.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return dumpOnce(client)
	}

	lipgloss.SetColorProfile(termenv.ColorProfile())

	model := tui.NewModel(tui.Options{
		Fetcher:        client,
		AdminURL:       cfg.Pihole.AdminURL(),
		CurrentVersion: buildVersion,
		Refresh:        cfg.Display.TUIRefresh,
		RotateInterval: cfg.Display.RotateInterval,
		UpdateInterval: cfg.Update.Interval,
		Checker:        updateCheckerFromConfig(cfg, log),
		Logger:         log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// dumpOnce fetches a single snapshot and prints all three screens
// without styling.
func dumpOnce(client *pihole.Client) error {
	snap, err := client.FetchSnapshot(context.Background())
	if err != nil {
		return err
	}

	lipgloss.SetColorProfile(termenv.Ascii)
	r := termrender.New()
	r.Bordered = false

	info := render.VersionInfo{Current: buildVersion, Status: version.StatusUnknown}
	for _, sc := range []render.Screen{
		render.Overview(snap),
		render.System(snap),
		render.Versions(snap, info),
	} {
		fmt.Println(r.Render(sc))
		fmt.Println()
	}
	return nil
}
