package display

import (
	"time"

	"github.com/rileyhilliard/padd/internal/screen"
)

// RawButton is one edge from a physical button line. The GPIO layer
// only reports edges; debounce and hold classification happen here.
type RawButton struct {
	ID      screen.ButtonID
	Pressed bool
	At      time.Time
}

// ButtonInput turns raw button edges into debounced press events.
type ButtonInput struct {
	events chan screen.Event
	done   chan struct{}
}

// NewButtonInput starts a goroutine translating raw edges from raw
// into short/long press events. Closing raw stops the goroutine.
func NewButtonInput(raw <-chan RawButton, debounce, hold time.Duration) *ButtonInput {
	b := &ButtonInput{
		events: make(chan screen.Event, 8),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(b.done)
		deb := screen.NewDebouncer(debounce, hold)
		for edge := range raw {
			if edge.Pressed {
				deb.Press(edge.ID, edge.At)
				continue
			}
			if ev, ok := deb.Release(edge.ID, edge.At); ok {
				select {
				case b.events <- ev:
				default:
					// Drop rather than stall the GPIO reader.
				}
			}
		}
		close(b.events)
	}()

	return b
}

// Events returns the debounced event stream.
func (b *ButtonInput) Events() <-chan screen.Event {
	return b.events
}

// Wait blocks until the translation goroutine has exited.
func (b *ButtonInput) Wait() {
	<-b.done
}
