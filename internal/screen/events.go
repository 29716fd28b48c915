package screen

import "time"

// ButtonID identifies a physical (or emulated) input button.
type ButtonID int

const (
	// ButtonRefresh forces a data refresh on short press and toggles
	// the QR overlay on long press.
	ButtonRefresh ButtonID = iota
	ButtonScreen1
	ButtonScreen2
	ButtonScreen3
)

// EventKind discriminates input events after debounce/hold filtering.
type EventKind int

const (
	ShortPress EventKind = iota
	LongPress
	Tick
)

// Event is one discrete input event. Tick events carry the elapsed time
// since the previous tick; press events carry the originating button.
type Event struct {
	Kind    EventKind
	Button  ButtonID
	Elapsed time.Duration
}

// Debouncer turns raw press/release edges into ShortPress/LongPress
// events, suppressing switch bounce and classifying holds. The timing
// constants are configuration, not core logic.
type Debouncer struct {
	debounce time.Duration
	hold     time.Duration

	lastAccepted map[ButtonID]time.Time
	pressedAt    map[ButtonID]time.Time
}

// NewDebouncer creates a debouncer with the given bounce window and
// hold classification threshold.
func NewDebouncer(debounce, hold time.Duration) *Debouncer {
	return &Debouncer{
		debounce:     debounce,
		hold:         hold,
		lastAccepted: make(map[ButtonID]time.Time),
		pressedAt:    make(map[ButtonID]time.Time),
	}
}

// Press records a press edge. Returns false when the edge falls inside
// the bounce window of the previous accepted press and is discarded.
func (d *Debouncer) Press(id ButtonID, at time.Time) bool {
	if last, ok := d.lastAccepted[id]; ok && at.Sub(last) < d.debounce {
		return false
	}
	d.lastAccepted[id] = at
	d.pressedAt[id] = at
	return true
}

// Release records a release edge and emits the classified event. The
// second return is false when the matching press was debounced away.
func (d *Debouncer) Release(id ButtonID, at time.Time) (Event, bool) {
	pressed, ok := d.pressedAt[id]
	if !ok {
		return Event{}, false
	}
	delete(d.pressedAt, id)

	kind := ShortPress
	if at.Sub(pressed) >= d.hold {
		kind = LongPress
	}
	return Event{Kind: kind, Button: id}, true
}
