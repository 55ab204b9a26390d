package gesture

import (
	"fmt"
	"math"
	"time"
)

// Axis is the dominant axis of a swipe.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// SwipeDirection is a swipe classification. Directions follow normalized
// coordinates, so SwipeUp means increasing Y.
type SwipeDirection uint8

const (
	SwipeNone SwipeDirection = iota
	SwipeUp
	SwipeDown
	SwipeLeft
	SwipeRight
)

// Axis returns the axis the direction lies on.
func (d SwipeDirection) Axis() Axis {
	switch d {
	case SwipeUp, SwipeDown:
		return AxisVertical
	case SwipeLeft, SwipeRight:
		return AxisHorizontal
	default:
		return AxisNone
	}
}

// String returns the lowercase direction name.
func (d SwipeDirection) String() string {
	switch d {
	case SwipeNone:
		return "none"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	default:
		return fmt.Sprintf("SwipeDirection(%d)", uint8(d))
	}
}

// Swipe is a classified displacement of one contact.
type Swipe struct {
	ID        int
	Direction SwipeDirection
	Magnitude float64 // displacement along the swipe axis, always > 0
	Timestamp time.Duration
}

// ClassifySwipe classifies rec as vertical when |dy| ≥ |dx| and |dy| exceeds
// threshold, or horizontal when |dx| > |dy| and |dx| exceeds threshold. Any
// other record is unclassified.
func ClassifySwipe(rec DisplacementRecord, threshold float64) (SwipeDirection, bool) {
	ax, ay := math.Abs(rec.DX), math.Abs(rec.DY)
	switch {
	case ay >= ax && ay > threshold:
		if rec.DY > 0 {
			return SwipeUp, true
		}
		return SwipeDown, true
	case ax > ay && ax > threshold:
		if rec.DX > 0 {
			return SwipeRight, true
		}
		return SwipeLeft, true
	}
	return SwipeNone, false
}

// SwipeOf classifies rec and builds the Swipe.
func SwipeOf(rec DisplacementRecord, threshold float64) (Swipe, bool) {
	dir, ok := ClassifySwipe(rec, threshold)
	if !ok {
		return Swipe{}, false
	}
	mag := math.Abs(rec.DX)
	if dir.Axis() == AxisVertical {
		mag = math.Abs(rec.DY)
	}
	return Swipe{ID: rec.ID, Direction: dir, Magnitude: mag, Timestamp: rec.Timestamp}, true
}
