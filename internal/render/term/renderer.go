// Package term renders logical screens as styled text blocks for the
// terminal UI.
package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/rileyhilliard/padd/internal/render"
)

// DefaultBarWidth is the inline bar width in terminal cells.
const DefaultBarWidth = 40

// labelColumn pads labels so values line up.
const labelColumn = 12

// Renderer produces a styled text block from a logical screen. It is a
// pure function of its inputs; no hidden state between frames.
type Renderer struct {
	BarWidth int
	Bordered bool
}

// New returns a renderer with default sizing.
func New() *Renderer {
	return &Renderer{BarWidth: DefaultBarWidth, Bordered: true}
}

// Render produces the display-ready text for one screen.
func (r *Renderer) Render(s render.Screen) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("\n")

	if s.QRURL != "" {
		b.WriteString(r.renderQR(s))
	} else {
		for _, line := range s.Lines {
			b.WriteString(r.renderLine(line))
			b.WriteString("\n")
		}
	}

	if s.Footer != "" {
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(styleValue(s.Footer, s.FooterSeverity)))
		b.WriteString("\n")
	}

	out := b.String()
	if r.Bordered {
		return borderStyle.Render(strings.TrimRight(out, "\n"))
	}
	return out
}

// renderLine formats one label/value row, with an inline bar when the
// line carries one.
func (r *Renderer) renderLine(line render.Line) string {
	var b strings.Builder

	if line.Label != "" {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelColumn, line.Label)))
	}

	if line.Bar != nil {
		b.WriteString(r.renderBar(*line.Bar))
		b.WriteString(" ")
	}

	b.WriteString(styleValue(line.Value, line.Severity))
	return b.String()
}

// renderBar draws the percentage bar with the shared fill rule. Fill
// color follows the heat of the percentage itself.
func (r *Renderer) renderBar(bar render.Bar) string {
	width := r.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}

	fill := render.BarFill(width, bar.Percent)
	filled := strings.Repeat(string(barFilled), fill)
	empty := strings.Repeat(string(barEmpty), width-fill)

	color, _ := severityColor(render.Heat(bar.Percent))
	return lipgloss.NewStyle().Foreground(color).Render(filled) +
		lipgloss.NewStyle().Foreground(ColorMuted).Render(empty)
}

// renderQR encodes the admin URL as a half-block QR code plus the
// screen's text lines underneath.
func (r *Renderer) renderQR(s render.Screen) string {
	var b strings.Builder

	q, err := qrcode.New(s.QRURL, qrcode.Low)
	if err == nil {
		b.WriteString(q.ToSmallString(false))
	}
	// On encode failure degrade to the plain URL lines below

	for _, line := range s.Lines {
		b.WriteString(styleValue(line.Value, line.Severity))
		b.WriteString("\n")
	}
	return b.String()
}
