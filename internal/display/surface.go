// Package display runs the e-ink control loop. A single goroutine
// owns the screen state and the snapshot cache; fetches happen on a
// worker goroutine and come back over a channel, so the panel is
// never driven from two places at once.
package display

import (
	"github.com/rileyhilliard/padd/internal/render/eink"
)

// Surface is a physical e-ink panel. The driver behind it owns pixel
// packing, font rasterization and the refresh waveform.
type Surface interface {
	// Init powers the panel on and clears it.
	Init() error
	// Draw replaces the panel contents with one frame.
	Draw(frame []eink.Primitive) error
	// Sleep puts the panel into deep sleep.
	Sleep() error
}
