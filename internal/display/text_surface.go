package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/rileyhilliard/padd/internal/render/eink"
)

// TextSurface writes a plain-text rendition of each frame to w. It
// stands in for panel hardware during development and in tests.
type TextSurface struct {
	w io.Writer
}

// NewTextSurface creates a surface that prints frames to w.
func NewTextSurface(w io.Writer) *TextSurface {
	return &TextSurface{w: w}
}

func (s *TextSurface) Init() error { return nil }

// Draw prints the frame's text primitives in draw order, one per line.
// Rules and bitmaps show as markers so frame structure stays visible.
func (s *TextSurface) Draw(frame []eink.Primitive) error {
	var b strings.Builder
	for _, p := range frame {
		switch p := p.(type) {
		case eink.Text:
			b.WriteString(p.S)
			b.WriteString("\n")
		case eink.HLine:
			b.WriteString(strings.Repeat("-", 24))
			b.WriteString("\n")
		case eink.Bitmap:
			fmt.Fprintf(&b, "[bitmap %dx%d]\n", len(p.Pixels), bitmapWidth(p))
		}
	}
	b.WriteString("\n")
	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *TextSurface) Sleep() error { return nil }

func bitmapWidth(b eink.Bitmap) int {
	if len(b.Pixels) == 0 {
		return 0
	}
	return len(b.Pixels[0])
}
