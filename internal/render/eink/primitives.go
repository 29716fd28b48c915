// Package eink renders logical screens as draw primitives for a
// monochrome pixel surface. Font loading, pixel packing, and panel
// refresh timing belong to the display surface, not here.
package eink

// Font selects one of the surface's preloaded faces.
type Font int

const (
	FontTitle Font = iota
	FontDate
	FontBody
	FontBodyBold
	FontSmall
	FontSmallBold
)

// Align anchors a text primitive horizontally at X.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Primitive is one drawing operation. The surface executes them in
// order onto a white 1-bit canvas.
type Primitive interface {
	primitive()
}

// Text draws a string anchored at (X, Y).
type Text struct {
	X, Y  int
	S     string
	Font  Font
	Align Align
}

// Rect draws a rectangle outline, or a solid block when Filled.
type Rect struct {
	X, Y, W, H int
	Filled     bool
}

// HLine draws a horizontal rule across [X0, X1] at Y.
type HLine struct {
	Y, X0, X1 int
}

// Bitmap blits a prerendered 1-bit matrix (true = black) at (X, Y),
// with each matrix cell scaled to Scale x Scale pixels.
type Bitmap struct {
	X, Y   int
	Pixels [][]bool
	Scale  int
}

func (Text) primitive()   {}
func (Rect) primitive()   {}
func (HLine) primitive()  {}
func (Bitmap) primitive() {}
