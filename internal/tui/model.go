// Package tui is the terminal dashboard. It drives the shared screen
// rotator and renderer from a Bubble Tea event loop, fetching fresh
// statistics on a fixed interval.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/padd/internal/logger"
	"github.com/rileyhilliard/padd/internal/render"
	"github.com/rileyhilliard/padd/internal/render/term"
	"github.com/rileyhilliard/padd/internal/screen"
	"github.com/rileyhilliard/padd/internal/stats"
	"github.com/rileyhilliard/padd/internal/version"
)

// Fetcher retrieves one statistics snapshot. Implemented by
// pihole.Client; tests substitute a stub.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*stats.Snapshot, error)
}

// tickInterval drives rotation, the countdown bar and refresh checks.
const tickInterval = time.Second

// fetchTimeout bounds a single snapshot fetch inside the event loop.
const fetchTimeout = 15 * time.Second

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	fetcher  Fetcher
	adminURL string

	cache    *stats.Cache
	rotator  *screen.Rotator
	checker  *version.Checker
	renderer *term.Renderer
	log      logger.Logger

	currentVersion string
	refresh        time.Duration
	rotateInterval time.Duration
	checkInterval  time.Duration

	countdown progress.Model
	lastFetch time.Time
	fetching  bool
	width     int
	height    int
	quitting  bool
}

// tickMsg signals one countdown/rotation step.
type tickMsg time.Time

// snapshotMsg carries the result of a background fetch.
type snapshotMsg struct {
	snap *stats.Snapshot
	err  error
	time time.Time
}

// latestVersionMsg carries the result of an update check.
type latestVersionMsg struct {
	latest string
}

// versionTickMsg signals that the next update check is due.
type versionTickMsg time.Time

// Options configures a dashboard model.
type Options struct {
	Fetcher        Fetcher
	AdminURL       string
	CurrentVersion string
	Refresh        time.Duration
	RotateInterval time.Duration
	UpdateInterval time.Duration
	Checker        *version.Checker
	Logger         logger.Logger
}

// NewModel creates a dashboard model. The first fetch starts in Init.
func NewModel(opts Options) Model {
	if opts.Refresh == 0 {
		opts.Refresh = 60 * time.Second
	}
	if opts.RotateInterval == 0 {
		opts.RotateInterval = 20 * time.Second
	}
	if opts.UpdateInterval == 0 {
		opts.UpdateInterval = 24 * time.Hour
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return Model{
		fetcher:        opts.Fetcher,
		adminURL:       opts.AdminURL,
		cache:          stats.NewCache(),
		rotator:        screen.NewRotator(screen.NumScreens),
		checker:        opts.Checker,
		renderer:       term.New(),
		log:            log,
		currentVersion: opts.CurrentVersion,
		refresh:        opts.Refresh,
		rotateInterval: opts.RotateInterval,
		checkInterval:  opts.UpdateInterval,
		countdown:      bar,
		// Init always starts a fetch; mark it in flight so the first
		// tick does not start a second one.
		fetching: true,
	}
}

// Init starts the tick timer, the first fetch and the update check.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd(), m.fetchCmd()}
	if m.checker != nil {
		cmds = append(cmds, m.checkVersionCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.rotator.TickRotate(tickInterval, m.rotateInterval)
		if !m.fetching && time.Since(m.lastFetch) >= m.refresh {
			m.fetching = true
			return m, tea.Batch(m.tickCmd(), m.fetchCmd())
		}
		return m, m.tickCmd()

	case snapshotMsg:
		m.fetching = false
		m.lastFetch = msg.time
		if msg.err != nil {
			m.log.Debug("fetch failed: %v", msg.err)
			m.cache.Store(stats.ErrorSnapshot(msg.err.Error()), msg.time)
			m.rotator.EnterConnectionFailed()
		} else {
			m.cache.Store(msg.snap, msg.time)
			m.rotator.ExitConnectionFailed()
		}

	case latestVersionMsg:
		// Checker already holds the value; schedule the next check so
		// the status keeps updating on long-running sessions.
		return m, m.versionTickCmd()

	case versionTickMsg:
		if m.checker != nil {
			return m, m.checkVersionCmd()
		}

	case progress.FrameMsg:
		bar, cmd := m.countdown.Update(msg)
		m.countdown = bar.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View renders the current screen with countdown and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that ticks after one interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd fetches a snapshot in the background.
func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		snap, err := m.fetcher.FetchSnapshot(ctx)
		return snapshotMsg{snap: snap, err: err, time: time.Now()}
	}
}

// versionTickCmd schedules the next interval-driven update check.
func (m Model) versionTickCmd() tea.Cmd {
	return tea.Tick(m.checkInterval, func(t time.Time) tea.Msg {
		return versionTickMsg(t)
	})
}

// checkVersionCmd refreshes the release checker off the event loop.
func (m Model) checkVersionCmd() tea.Cmd {
	return func() tea.Msg {
		m.checker.Refresh()
		latest, _ := m.checker.Latest()
		return latestVersionMsg{latest: latest}
	}
}

// versionInfo assembles the self-update line state for the renderer.
func (m Model) versionInfo() render.VersionInfo {
	info := render.VersionInfo{Current: m.currentVersion, Status: version.StatusUnknown}
	if m.checker != nil {
		info.Latest, _ = m.checker.Latest()
		info.Status = m.checker.Status(m.currentVersion)
	}
	return info
}

// SecondsUntilRefresh reports the remaining countdown, clamped at zero.
func (m Model) SecondsUntilRefresh() int {
	if m.lastFetch.IsZero() {
		return 0
	}
	remaining := m.refresh - time.Since(m.lastFetch)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining.Seconds())
}
