package term

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/padd/internal/render"
)

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorHealthy  lipgloss.Color = "2" // Green
	ColorWarning  lipgloss.Color = "3" // Yellow
	ColorCritical lipgloss.Color = "1" // Red
	ColorAccent   lipgloss.Color = "6" // Cyan
	ColorMuted    lipgloss.Color = "8" // Gray (bright black)
)

// Progress bar block characters.
const (
	barFilled = '█'
	barEmpty  = '░'
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// severityColor maps a logical severity to its terminal color.
// SeverityNone renders in the default foreground.
func severityColor(s render.Severity) (lipgloss.Color, bool) {
	switch s {
	case render.SeverityNominal:
		return ColorHealthy, true
	case render.SeverityElevated:
		return ColorWarning, true
	case render.SeverityCritical:
		return ColorCritical, true
	default:
		return "", false
	}
}

// styleValue colors a value string by severity.
func styleValue(value string, s render.Severity) string {
	color, ok := severityColor(s)
	if !ok {
		return value
	}
	return lipgloss.NewStyle().Foreground(color).Render(value)
}
