package eink

import (
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/rileyhilliard/padd/internal/render"
)

// Panel geometry for the 2.7" display in landscape orientation.
const (
	DefaultWidth  = 264
	DefaultHeight = 176
)

// Layout constants.
const (
	marginX      = 10
	headerTop    = 5
	titleHeight  = 18
	dateHeight   = 14
	bodyLine     = 22
	smallLine    = 16
	barHeight    = 15
	barLeft      = 120 // bar column start for lines that carry one
	qrScale      = 4
	footerOffset = 24 // footer distance from the bottom edge
)

// Renderer turns a logical screen into an ordered primitive list.
// Pure apart from the clock, which is injectable for tests.
type Renderer struct {
	Width  int
	Height int
	Now    func() time.Time
}

// New returns a renderer for the default panel geometry.
func New() *Renderer {
	return &Renderer{Width: DefaultWidth, Height: DefaultHeight, Now: time.Now}
}

// Render produces the draw list for one screen.
func (r *Renderer) Render(s render.Screen) []Primitive {
	if s.QRURL != "" {
		return r.renderQR(s)
	}

	ps, y := r.renderHeader(s.Title)
	y += 10

	lineHeight := bodyLine
	if len(s.Lines) > 5 {
		lineHeight = smallLine
	}

	for _, line := range s.Lines {
		ps = append(ps, r.renderLine(line, y, lineHeight)...)
		y += lineHeight
	}

	if s.Footer != "" {
		ps = append(ps, Text{
			X: r.Width / 2, Y: r.Height - footerOffset,
			S: s.Footer, Font: FontSmallBold, Align: AlignCenter,
		})
	}
	return ps
}

// renderHeader draws the title, date and time row, and the separator
// rule. Returns the primitives and the y of the rule.
func (r *Renderer) renderHeader(title string) ([]Primitive, int) {
	now := r.Now()
	dateY := headerTop + titleHeight + 3
	ruleY := dateY + dateHeight + 5

	ps := []Primitive{
		Text{X: marginX, Y: headerTop, S: title, Font: FontTitle},
		Text{X: marginX, Y: dateY, S: now.Format("Mon, Jan 02"), Font: FontDate},
		Text{X: r.Width - marginX, Y: dateY, S: now.Format("15:04"), Font: FontDate, Align: AlignRight},
		HLine{Y: ruleY, X0: 0, X1: r.Width},
	}
	return ps, ruleY
}

// renderLine draws one label/value row: bold label left, value right
// aligned, optional bar in between.
func (r *Renderer) renderLine(line render.Line, y, lineHeight int) []Primitive {
	var ps []Primitive

	labelFont := FontSmallBold
	valueFont := FontSmall
	if lineHeight >= bodyLine {
		labelFont = FontBodyBold
		valueFont = FontBody
	}

	if line.Label == "" {
		// Placeholder and overlay rows are centered
		ps = append(ps, Text{X: r.Width / 2, Y: y, S: line.Value, Font: valueFont, Align: AlignCenter})
		return ps
	}

	ps = append(ps, Text{X: marginX, Y: y, S: line.Label, Font: labelFont})

	if line.Bar != nil {
		barWidth := r.Width - barLeft - marginX
		fill := render.BarFill(barWidth, line.Bar.Percent)
		ps = append(ps,
			Rect{X: barLeft, Y: y, W: barWidth, H: barHeight},
		)
		if fill > 0 {
			ps = append(ps, Rect{X: barLeft, Y: y, W: fill, H: barHeight, Filled: true})
		}
		// Value rides just left of the bar
		ps = append(ps, Text{X: barLeft - 5, Y: y, S: line.Value, Font: valueFont, Align: AlignRight})
		return ps
	}

	ps = append(ps, Text{X: r.Width - marginX, Y: y, S: line.Value, Font: valueFont, Align: AlignRight})
	return ps
}

// renderQR draws the admin URL overlay: centered title, QR bitmap,
// dismiss instruction. Encode failure degrades to the text lines.
func (r *Renderer) renderQR(s render.Screen) []Primitive {
	ps := []Primitive{
		Text{X: r.Width / 2, Y: 3, S: s.Title, Font: FontBodyBold, Align: AlignCenter},
	}

	y := 3 + bodyLine
	q, err := qrcode.New(s.QRURL, qrcode.Medium)
	if err == nil {
		pixels := q.Bitmap()
		// The bitmap plus the dismiss line must fit below the title.
		maxSide := r.Height - y - smallLine
		scale := qrScale
		for scale > 1 && len(pixels)*scale > maxSide {
			scale--
		}
		side := len(pixels) * scale
		ps = append(ps, Bitmap{
			X: (r.Width - side) / 2, Y: y,
			Pixels: pixels, Scale: scale,
		})
		y += side + 4
	} else {
		for _, line := range s.Lines[:1] {
			ps = append(ps, Text{X: r.Width / 2, Y: y, S: line.Value, Font: FontSmall, Align: AlignCenter})
			y += smallLine
		}
	}

	ps = append(ps, Text{
		X: r.Width / 2, Y: y,
		S: "Hold the refresh button to close", Font: FontSmall, Align: AlignCenter,
	})
	return ps
}

// Splash draws the startup screen shown while the first fetch runs.
func (r *Renderer) Splash(version string) []Primitive {
	centerY := r.Height / 2
	return []Primitive{
		Text{X: r.Width / 2, Y: centerY - bodyLine, S: "Pi-hole Stats", Font: FontTitle, Align: AlignCenter},
		Text{X: r.Width / 2, Y: centerY + 4, S: "PADD v" + version, Font: FontSmall, Align: AlignCenter},
	}
}
