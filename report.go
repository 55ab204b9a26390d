package gesture

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// SignalKind identifies what a Signal carries.
type SignalKind uint8

const (
	SignalMotion    SignalKind = iota // continuous pan/pinch/rotation
	SignalSwipe                       // a classified swipe
	SignalDoubleTap                   // a recognized double-tap
)

// String returns the kind name.
func (k SignalKind) String() string {
	switch k {
	case SignalMotion:
		return "motion"
	case SignalSwipe:
		return "swipe"
	case SignalDoubleTap:
		return "doubletap"
	default:
		return fmt.Sprintf("SignalKind(%d)", uint8(k))
	}
}

// Signal is one derived emission. Only the field matching Kind is set.
type Signal struct {
	Kind      SignalKind
	Timestamp time.Duration // input timestamp of the event that produced it
	Motion    Motion
	Swipe     Swipe
	DoubleTap DoubleTap
}

// Report is the batch of signals emitted during one reporting interval.
type Report struct {
	Session    uuid.UUID // recognizer that produced the report
	Seq        uint64    // 1-based report counter per recognizer
	Timestamp  time.Time // interval boundary
	Contacts   int       // contacts being tracked at the boundary
	Pan        Vec2      // summed over the batch
	Pinch      float64   // latest in the batch
	Rotation   float64   // latest in the batch
	Dot        float64   // latest in the batch
	Swipes     []Swipe
	DoubleTaps []DoubleTap
	Signals    []Signal // the batch in emission order
}

// Empty reports whether the batch carried no signal.
func (r Report) Empty() bool { return len(r.Signals) == 0 }

// FoldReport folds batch into a Report. Pan is incremental per signal and is
// summed; pinch, rotation and dot are measured since each contact's press,
// so the last motion signal of the batch carries them. Swipes and
// double-taps are collected in emission order.
func FoldReport(batch []Signal) Report {
	r := Report{Signals: batch}
	for _, s := range batch {
		switch s.Kind {
		case SignalMotion:
			r.Pan = r2.Add(r.Pan, s.Motion.Pan)
			r.Pinch = s.Motion.Pinch
			r.Rotation = s.Motion.Rotation
			r.Dot = s.Motion.Dot
		case SignalSwipe:
			r.Swipes = append(r.Swipes, s.Swipe)
		case SignalDoubleTap:
			r.DoubleTaps = append(r.DoubleTaps, s.DoubleTap)
		}
	}
	return r
}
