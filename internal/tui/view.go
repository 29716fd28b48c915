package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/padd/internal/render"
)

var (
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const helpLine = "1/2/3 screens · tab next · a admin QR · r refresh · q quit"

// renderDashboard composes the active screen plus countdown and help.
func (m Model) renderDashboard() string {
	var b strings.Builder

	snap := m.cache.Current()
	sc := render.Compose(snap, m.rotator.State(), m.versionInfo(), m.adminURL)
	b.WriteString(m.renderer.Render(sc))
	b.WriteString("\n")

	b.WriteString(m.renderCountdown())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")

	return b.String()
}

// renderCountdown shows time until the next automatic refresh.
func (m Model) renderCountdown() string {
	if m.fetching {
		return countdownStyle.Render("refreshing…")
	}

	remaining := m.SecondsUntilRefresh()
	elapsed := m.refresh.Seconds() - float64(remaining)
	frac := 0.0
	if m.refresh.Seconds() > 0 {
		frac = elapsed / m.refresh.Seconds()
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	bar := m.countdown.ViewAs(frac)
	label := countdownStyle.Render(fmt.Sprintf("next refresh in %ds", remaining))
	return bar + " " + label
}
