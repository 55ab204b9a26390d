package gesture

import (
	"math"
	"time"
)

// Press builds a press event at (x, y).
func Press(id int, primary bool, at time.Duration, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Primary: primary, Kind: PointerDown, Timestamp: at, X: x, Y: y}
}

// Move builds a move event at (x, y).
func Move(id int, primary bool, at time.Duration, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Primary: primary, Kind: PointerMove, Timestamp: at, X: x, Y: y}
}

// Release builds a release event at (x, y).
func Release(id int, primary bool, at time.Duration, x, y float64) PointerEvent {
	return PointerEvent{ID: id, Primary: primary, Kind: PointerUp, Timestamp: at, X: x, Y: y}
}

// Tap is a press at (x, y) followed by a release hold later.
func Tap(id int, primary bool, at, hold time.Duration, x, y float64) []PointerEvent {
	return []PointerEvent{
		Press(id, primary, at, x, y),
		Release(id, primary, at+hold, x, y),
	}
}

// Drag is a full single-contact sequence: a press at from, steps moves
// linearly interpolated so the last lands on to, and a release at to. Events
// are interval apart starting at start. Minimum steps is 1.
func Drag(id int, primary bool, start, interval time.Duration, from, to Vec2, steps int) []PointerEvent {
	if steps < 1 {
		steps = 1
	}
	evs := make([]PointerEvent, 0, steps+2)
	evs = append(evs, Press(id, primary, start, from.X, from.Y))
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := from.X + (to.X-from.X)*t
		y := from.Y + (to.Y-from.Y)*t
		evs = append(evs, Move(id, primary, start+time.Duration(i)*interval, x, y))
	}
	evs = append(evs, Release(id, primary, start+time.Duration(steps+1)*interval, to.X, to.Y))
	return evs
}

// PinchSequence is a two-contact spread (toRadius > fromRadius) or squeeze
// along the X axis around center. ids[0] is primary and starts on the left.
func PinchSequence(ids [2]int, start, interval time.Duration, center Vec2, fromRadius, toRadius float64, steps int) []PointerEvent {
	return twoContacts(ids, start, interval, steps, func(finger int, t float64) Vec2 {
		r := fromRadius + (toRadius-fromRadius)*t
		if finger == 0 {
			r = -r
		}
		return Vec2{X: center.X + r, Y: center.Y}
	})
}

// RotateSequence is two diametrically opposite contacts turning around
// center from fromAngle to toAngle radians, counter-clockwise for
// toAngle > fromAngle. ids[0] is primary and starts at fromAngle.
func RotateSequence(ids [2]int, start, interval time.Duration, center Vec2, radius, fromAngle, toAngle float64, steps int) []PointerEvent {
	return twoContacts(ids, start, interval, steps, func(finger int, t float64) Vec2 {
		a := fromAngle + (toAngle-fromAngle)*t
		if finger == 1 {
			a += math.Pi
		}
		return Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	})
}

// twoContacts presses both contacts at pos(·, 0), moves them through steps
// interleaved pairs ending at pos(·, 1), and releases them.
func twoContacts(ids [2]int, start, interval time.Duration, steps int, pos func(finger int, t float64) Vec2) []PointerEvent {
	if steps < 1 {
		steps = 1
	}
	evs := make([]PointerEvent, 0, 2*steps+4)
	at := start
	for f, id := range ids {
		p := pos(f, 0)
		evs = append(evs, Press(id, f == 0, at, p.X, p.Y))
	}
	for i := 1; i <= steps; i++ {
		at += interval
		t := float64(i) / float64(steps)
		for f, id := range ids {
			p := pos(f, t)
			evs = append(evs, Move(id, f == 0, at, p.X, p.Y))
		}
	}
	at += interval
	for f, id := range ids {
		p := pos(f, 1)
		evs = append(evs, Release(id, f == 0, at, p.X, p.Y))
	}
	return evs
}
