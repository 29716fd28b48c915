package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/display"
	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/pihole"
	"github.com/rileyhilliard/padd/internal/screen"
)

var einkDriverFlag string

// einkCmd drives an e-ink panel until interrupted.
var einkCmd = &cobra.Command{
	Use:   "eink",
	Short: "Drive an e-ink display panel",
	Long: `Run the e-ink display loop: splash screen, then rotating stats
screens, refreshed from Pi-hole on the configured interval.

Panel drivers register under a name; the built-in "text" driver prints
frames to stdout for development. With the text driver, typed input
lines stand in for the panel buttons: 1/2/3 switch screens, r
refreshes, a toggles the admin QR overlay.

Examples:
  padd eink
  padd eink --driver text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return einkCommand(einkDriverFlag)
	},
}

func init() {
	einkCmd.Flags().StringVar(&einkDriverFlag, "driver", "text", "display driver name")
	rootCmd.AddCommand(einkCmd)
}

func einkCommand(driver string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	surface, err := display.OpenDriver(driver)
	if err != nil {
		return err
	}

	log := logger.NewEnvLogger("[eink]")
	client := pihole.NewClient(cfg.Pihole, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The release check refreshes on its own interval, independent of
	// the display refresh loop.
	checker := updateCheckerFromConfig(cfg, log)
	if checker != nil {
		go checker.Run(ctx, cfg.Update.Interval)
	}

	loop := display.New(display.Options{
		Fetcher:        client,
		Surface:        surface,
		Events:         stdinEvents(ctx, os.Stdin, cfg.Buttons.Hold),
		AdminURL:       cfg.Pihole.AdminURL(),
		CurrentVersion: buildVersion,
		Checker:        checker,
		Logger:         log,
		RefreshTTL:     cfg.Display.RefreshTTL,
		RotateInterval: cfg.Display.RotateInterval,
		SplashDuration: cfg.Display.SplashDuration,
	})

	return loop.Run(ctx)
}

// stdinEvents maps typed lines to button events so the loop can be
// exercised without GPIO hardware.
func stdinEvents(ctx context.Context, r io.Reader, hold time.Duration) <-chan screen.Event {
	events := make(chan screen.Event, 8)

	go func() {
		defer close(events)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			var ev screen.Event
			switch scanner.Text() {
			case "1":
				ev = screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen1}
			case "2":
				ev = screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen2}
			case "3":
				ev = screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen3}
			case "r":
				ev = screen.Event{Kind: screen.ShortPress, Button: screen.ButtonRefresh}
			case "a":
				ev = screen.Event{Kind: screen.LongPress, Button: screen.ButtonRefresh, Elapsed: hold}
			default:
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
