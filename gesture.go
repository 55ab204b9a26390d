package gesture

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D vector used for positions, offsets and derived motion
// throughout the API. It is gonum's r2.Vec, so the r2 package functions
// (Add, Sub, Scale, Dot, Cross, Norm) apply directly.
type Vec2 = r2.Vec

// PointerKind identifies the phase of a pointer contact.
type PointerKind uint8

const (
	PointerDown PointerKind = iota // contact pressed
	PointerMove                    // contact moved while pressed
	PointerUp                      // contact released
)

// String returns the DOM-style name of the kind.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return fmt.Sprintf("PointerKind(%d)", uint8(k))
	}
}

// PointerEvent is a single contact sample in normalized device coordinates.
// X and Y lie in [-1, 1] with the origin at the surface center and Y up.
// Timestamp is an offset from the input layer's epoch; only differences
// between timestamps are meaningful.
type PointerEvent struct {
	ID                 int
	Primary            bool
	Kind               PointerKind
	Timestamp          time.Duration
	X, Y               float64
	Pressure           float64
	TangentialPressure float64
	Width, Height      float64
}

// Pos returns the event position as a vector.
func (e PointerEvent) Pos() Vec2 {
	return Vec2{X: e.X, Y: e.Y}
}

// RawPointerEvent is a contact sample in surface pixels, as delivered by a
// host input layer before normalization.
type RawPointerEvent struct {
	ID                 int
	Primary            bool
	Kind               PointerKind
	Timestamp          time.Duration
	ClientX, ClientY   float64
	Pressure           float64
	TangentialPressure float64
	Width, Height      float64
}

// Normalized converts the raw event into a PointerEvent using fn and the
// surface bounds b. A nil fn uses Normalize.
func (e RawPointerEvent) Normalized(b Bounds, fn Normalizer) PointerEvent {
	if fn == nil {
		fn = Normalize
	}
	x, y := fn(e, b)
	return PointerEvent{
		ID:                 e.ID,
		Primary:            e.Primary,
		Kind:               e.Kind,
		Timestamp:          e.Timestamp,
		X:                  x,
		Y:                  y,
		Pressure:           e.Pressure,
		TangentialPressure: e.TangentialPressure,
		Width:              e.Width,
		Height:             e.Height,
	}
}

// DisplacementRecord is the change between a contact's press sample and its
// latest move sample. Deltas are cumulative since the press, never
// incremental since the previous move. X and Y are the latest position.
type DisplacementRecord struct {
	ID                  int
	Primary             bool
	Timestamp           time.Duration // latest sample
	Dt                  time.Duration // Timestamp minus the press timestamp
	DPressure           float64
	DTangentialPressure float64
	DContactArea        float64
	DX, DY              float64
	X, Y                float64
}

// Pos returns the latest position of the contact.
func (r DisplacementRecord) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Delta returns the cumulative displacement since the press.
func (r DisplacementRecord) Delta() Vec2 {
	return Vec2{X: r.DX, Y: r.DY}
}

// Origin returns the press position of the contact.
func (r DisplacementRecord) Origin() Vec2 {
	return Vec2{X: r.X - r.DX, Y: r.Y - r.DY}
}

// PressedAt returns the timestamp of the press that started this contact.
func (r DisplacementRecord) PressedAt() time.Duration {
	return r.Timestamp - r.Dt
}

// Trajectory is one contact expressed in the frame of all active contacts:
// Position is its press point relative to the anchor (the mean press point)
// and Delta its cumulative displacement, so Position+Delta is where the
// contact is now in that frame.
type Trajectory struct {
	ID       int
	Position Vec2
	Delta    Vec2
}

// Frame is the aggregated view of all active contacts at one instant.
//
// A trajectory could also be placed at its current position minus
// Centroid, paired with the same Delta. That counts each contact's motion
// twice, once in the position and again in Delta, so two contacts turning
// a quarter circle would read as a large pinch. Trajectories are instead
// placed at press point minus Anchor, and Position+Delta is the current
// offset.
type Frame struct {
	Centroid     Vec2 // mean of current positions
	Anchor       Vec2 // mean of press positions
	Trajectories []Trajectory
}
