package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/padd/internal/screen"
)

// Key bindings as constants for consistency.
const (
	KeyQuit     = "q"
	KeyQuitAlt  = "ctrl+c"
	KeyRefresh  = "r"
	KeyQR       = "a"
	KeyOverview = "1"
	KeySystem   = "2"
	KeyVersions = "3"
	KeyNext     = "tab"
)

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		// The QR overlay absorbs short presses.
		if m.rotator.Overlay() == screen.OverlayQRCode {
			return true, nil
		}
		m.dispatch(screen.Event{Kind: screen.ShortPress, Button: screen.ButtonRefresh})
		if !m.fetching {
			m.fetching = true
			return true, m.fetchCmd()
		}
		return true, nil

	case KeyQR:
		m.dispatch(screen.Event{Kind: screen.LongPress, Button: screen.ButtonRefresh})
		return true, nil

	case KeyOverview:
		m.dispatch(screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen1})
		return true, nil

	case KeySystem:
		m.dispatch(screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen2})
		return true, nil

	case KeyVersions:
		m.dispatch(screen.Event{Kind: screen.ShortPress, Button: screen.ButtonScreen3})
		return true, nil

	case KeyNext:
		next := (m.rotator.Screen() + 1) % screen.NumScreens
		m.rotator.Select(next)
		return true, nil
	}

	return false, nil
}

// dispatch routes an input event through the shared screen dispatcher,
// forcing a refetch when the refresh button invalidates the cache.
func (m *Model) dispatch(ev screen.Event) {
	d := screen.NewDispatcher(m.rotator, m.rotateInterval,
		func() { m.cache.ForceInvalidate() },
		func() { m.rotator.ExitConnectionFailed() },
	)
	d.Dispatch(ev)
}
