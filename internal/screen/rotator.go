// Package screen tracks which display screen is active and turns raw
// button input into screen transitions.
package screen

import "time"

// Screen indices for the informational screens, in rotation order.
const (
	ScreenOverview = 0
	ScreenSystem   = 1
	ScreenVersions = 2

	// NumScreens is the size of the rotation ring.
	NumScreens = 3
)

// Overlay identifies a screen that temporarily replaces the normal
// rotation and exclusively owns input until dismissed.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayQRCode
	OverlayConnectionFailed
)

// String returns a human-readable label for the overlay.
func (o Overlay) String() string {
	switch o {
	case OverlayQRCode:
		return "qrcode"
	case OverlayConnectionFailed:
		return "connection-failed"
	default:
		return "none"
	}
}

// State is the rotator's externally visible state, handed to renderers.
type State struct {
	Screen  int
	Overlay Overlay
	Dirty   bool
}

// Rotator is the finite state machine governing which of the
// informational screens is shown, whether an overlay is active, and
// whether a redraw is pending. It is owned by a single control loop;
// input callbacks must funnel mutations through that loop.
type Rotator struct {
	screens     int
	index       int
	overlay     Overlay
	dirty       bool
	sinceRotate time.Duration
}

// NewRotator creates a rotator over n screens, starting at screen 0
// with a pending first draw.
func NewRotator(n int) *Rotator {
	if n < 1 {
		n = 1
	}
	return &Rotator{screens: n, dirty: true}
}

// State returns a copy of the current state.
func (r *Rotator) State() State {
	return State{Screen: r.index, Overlay: r.overlay, Dirty: r.dirty}
}

// Screen returns the active screen index.
func (r *Rotator) Screen() int { return r.index }

// Overlay returns the active overlay, if any.
func (r *Rotator) Overlay() Overlay { return r.overlay }

// Dirty reports whether the last drawn frame no longer matches what
// should be shown.
func (r *Rotator) Dirty() bool { return r.dirty }

// Select switches to the given screen. Ignored while any overlay is
// active: overlays absorb screen-select input so the user cannot switch
// screens mid-QR-display. Out-of-range indices are ignored.
func (r *Rotator) Select(i int) {
	if r.overlay != OverlayNone {
		return
	}
	if i < 0 || i >= r.screens {
		return
	}
	r.index = i
	r.sinceRotate = 0
	r.dirty = true
}

// TickRotate advances the rotation timer by elapsed and rotates to the
// next screen once the accumulated time reaches interval. No effect
// under any overlay.
func (r *Rotator) TickRotate(elapsed, interval time.Duration) {
	if r.overlay != OverlayNone {
		return
	}
	r.sinceRotate += elapsed
	if r.sinceRotate < interval {
		return
	}
	r.index = (r.index + 1) % r.screens
	r.sinceRotate = 0
	r.dirty = true
}

// ToggleQR toggles the QR overlay. The underlying screen index is
// preserved, so dismissing the overlay returns to the screen that was
// active before it. Ignored while the connection-failed overlay is up.
func (r *Rotator) ToggleQR() {
	switch r.overlay {
	case OverlayNone:
		r.overlay = OverlayQRCode
	case OverlayQRCode:
		r.overlay = OverlayNone
	default:
		return
	}
	r.dirty = true
}

// EnterConnectionFailed raises the connection-failed overlay. It takes
// priority over everything, clearing an active QR overlay: a connection
// failure must be visible even if a QR code was being shown.
func (r *Rotator) EnterConnectionFailed() {
	if r.overlay == OverlayConnectionFailed {
		return
	}
	r.overlay = OverlayConnectionFailed
	r.dirty = true
}

// ExitConnectionFailed dismisses the connection-failed overlay and
// returns to the previously active screen.
func (r *Rotator) ExitConnectionFailed() {
	if r.overlay != OverlayConnectionFailed {
		return
	}
	r.overlay = OverlayNone
	r.sinceRotate = 0
	r.dirty = true
}

// MarkDirty requests a redraw without changing state, e.g. after a
// manual refresh replaced the snapshot.
func (r *Rotator) MarkDirty() {
	r.dirty = true
}

// AcknowledgeDrawn clears the dirty flag. Called by the render cycle
// exactly once per completed draw.
func (r *Rotator) AcknowledgeDrawn() {
	r.dirty = false
}
