package screen

import "time"

// Dispatcher maps input events onto rotator transitions and cache
// actions. It owns no state of its own; all mutation goes through the
// rotator and the injected hooks, which the control loop serializes.
type Dispatcher struct {
	rotator        *Rotator
	rotateInterval time.Duration

	// invalidate forces the stats cache stale so the next tick refetches.
	invalidate func()
	// retryConnection is invoked on manual refresh while the
	// connection-failed overlay is up.
	retryConnection func()
}

// NewDispatcher wires a dispatcher to a rotator. Either hook may be nil.
func NewDispatcher(r *Rotator, rotateInterval time.Duration, invalidate, retryConnection func()) *Dispatcher {
	return &Dispatcher{
		rotator:         r,
		rotateInterval:  rotateInterval,
		invalidate:      invalidate,
		retryConnection: retryConnection,
	}
}

// Dispatch applies one event. Must be called from the control loop.
func (d *Dispatcher) Dispatch(ev Event) {
	switch ev.Kind {
	case Tick:
		d.rotator.TickRotate(ev.Elapsed, d.rotateInterval)

	case LongPress:
		// Any long press toggles the QR overlay (ignored while the
		// connection-failed overlay holds priority).
		d.rotator.ToggleQR()

	case ShortPress:
		d.shortPress(ev.Button)
	}
}

func (d *Dispatcher) shortPress(b ButtonID) {
	// The QR overlay owns input exclusively until dismissed.
	if d.rotator.Overlay() == OverlayQRCode {
		return
	}

	switch b {
	case ButtonRefresh:
		if d.invalidate != nil {
			d.invalidate()
		}
		if d.rotator.Overlay() == OverlayConnectionFailed && d.retryConnection != nil {
			d.retryConnection()
		}
		d.rotator.MarkDirty()

	case ButtonScreen1:
		d.rotator.Select(ScreenOverview)
	case ButtonScreen2:
		d.rotator.Select(ScreenSystem)
	case ButtonScreen3:
		d.rotator.Select(ScreenVersions)
	}
}
