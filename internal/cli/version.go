package cli

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/padd/internal/config"
	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/version"
)

// Version information set via ldflags at build time
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

// versionShort controls whether to show short or full version output
var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of padd.`,
	Run: func(cmd *cobra.Command, args []string) {
		if versionShort {
			fmt.Println(buildVersion)
			return
		}

		fmt.Printf("padd %s\n", formatVersion(buildVersion))
		fmt.Printf("commit: %s\n", buildCommit)
		fmt.Printf("built: %s\n", buildDate)
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

		// Non-blocking update notice, cached result preferred
		checkAndDisplayUpdate()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

// checkAndDisplayUpdate prints a notice when a newer release exists.
func checkAndDisplayUpdate() {
	checker := newUpdateChecker(logger.Noop())
	checker.Refresh()
	if checker.Status(buildVersion) != version.StatusUpdateAvailable {
		return
	}
	latest, _ := checker.Latest()

	fmt.Println()
	fmt.Printf("A new version is available: %s\n", formatVersion(latest))
	fmt.Println("Update with: go install github.com/rileyhilliard/padd/cmd/padd@latest")
}

// newUpdateChecker builds the release checker shared by the commands,
// seeded from the on-disk cache.
func newUpdateChecker(log logger.Logger) *version.Checker {
	c := version.NewChecker(version.GitHubSource(24*time.Hour), log)
	version.SeedFromDisk(c)
	return c
}

// updateCheckerFromConfig honors the update section of the config.
// Returns nil when update checks are disabled.
func updateCheckerFromConfig(cfg *config.Config, log logger.Logger) *version.Checker {
	if !cfg.Update.Enabled {
		return nil
	}
	interval := cfg.Update.Interval
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	c := version.NewChecker(version.GitHubSource(interval), log)
	version.SeedFromDisk(c)
	return c
}

// SetVersionInfo sets the version information (called from main).
func SetVersionInfo(v, c, d string) {
	buildVersion = v
	buildCommit = c
	buildDate = d
}

// GetVersion returns the current version string.
func GetVersion() string {
	return buildVersion
}
