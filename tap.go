package gesture

import (
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// DoubleTap is two presses in the same tap slot close in time and space.
type DoubleTap struct {
	ID        int      // contact id of the second press
	Slot      CacheKey // primary presses share one slot
	Positions [2]Vec2  // first and second press
	Interval  time.Duration
	Distance  float64
	Timestamp time.Duration // second press
}

// TapDistance returns the distance between two press positions.
func TapDistance(a, b PointerEvent) float64 {
	return r2.Norm(r2.Sub(b.Pos(), a.Pos()))
}

// DoubleTapDetector classifies double-taps from the raw press stream. It
// does not consult the pointer cache, so a tap is recognized even after the
// first contact has been released and evicted.
type DoubleTapDetector struct {
	window      time.Duration
	maxDistance float64
	pending     map[CacheKey]PointerEvent
}

// NewDoubleTapDetector creates a detector accepting presses at most window
// apart and at most maxDistance apart in normalized units.
func NewDoubleTapDetector(window time.Duration, maxDistance float64) *DoubleTapDetector {
	return &DoubleTapDetector{
		window:      window,
		maxDistance: maxDistance,
		pending:     make(map[CacheKey]PointerEvent),
	}
}

// Press feeds one event to the detector. Only PointerDown events are
// considered. When ev completes a double-tap the slot is cleared, so a third
// press starts a new pair.
func (d *DoubleTapDetector) Press(ev PointerEvent) (DoubleTap, bool) {
	if ev.Kind != PointerDown {
		return DoubleTap{}, false
	}
	d.forgetBefore(ev.Timestamp)

	slot := KeyFor(ev.ID, ev.Primary)
	first, ok := d.pending[slot]
	if ok {
		interval := ev.Timestamp - first.Timestamp
		dist := TapDistance(first, ev)
		if interval >= 0 && interval <= d.window && dist <= d.maxDistance {
			delete(d.pending, slot)
			return DoubleTap{
				ID:        ev.ID,
				Slot:      slot,
				Positions: [2]Vec2{first.Pos(), ev.Pos()},
				Interval:  interval,
				Distance:  dist,
				Timestamp: ev.Timestamp,
			}, true
		}
	}
	d.pending[slot] = ev
	return DoubleTap{}, false
}

// Pending returns the number of slots waiting for a second press.
func (d *DoubleTapDetector) Pending() int { return len(d.pending) }

// Reset forgets every pending press.
func (d *DoubleTapDetector) Reset() { clear(d.pending) }

// forgetBefore drops pending presses that can no longer pair with a press
// at now.
func (d *DoubleTapDetector) forgetBefore(now time.Duration) {
	for slot, ev := range d.pending {
		if now-ev.Timestamp > d.window {
			delete(d.pending, slot)
		}
	}
}
