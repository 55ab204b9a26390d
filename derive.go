package gesture

import "gonum.org/v1/gonum/spatial/r2"

// MinContactsForShape is the number of contacts below which pinch, rotation
// and the dot signal are reported as exactly 0. With one contact the anchor
// coincides with the contact, its radial vector has zero length, and any
// movement would read as pure spreading.
const MinContactsForShape = 2

// Motion is the continuous signal derived from one aggregation.
type Motion struct {
	Contacts int
	Pan      Vec2    // centroid displacement since the previous frame
	Pinch    float64 // > 0 spreading, < 0 contracting
	Rotation float64 // > 0 counter-clockwise
	Dot      float64 // near 0 for pure rotation, large for radial motion
}

// Pan returns the centroid displacement between two frames. A frame whose
// contact set differs from the previous one yields zero, since the centroid
// jump is caused by the contact joining or leaving rather than by motion.
func Pan(prev, cur Frame) Vec2 {
	if !sameContacts(prev.Trajectories, cur.Trajectories) {
		return Vec2{}
	}
	return r2.Sub(cur.Centroid, prev.Centroid)
}

// MeanDelta returns the mean cumulative displacement of the trajectories.
func MeanDelta(ts []Trajectory) Vec2 {
	if len(ts) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, t := range ts {
		sum = r2.Add(sum, t.Delta)
	}
	return r2.Scale(1/float64(len(ts)), sum)
}

// Pinch sums the radial length change ‖p+d‖ − ‖p‖ of every trajectory.
func Pinch(ts []Trajectory) float64 {
	if len(ts) < MinContactsForShape {
		return 0
	}
	var sum float64
	for _, t := range ts {
		sum += r2.Norm(r2.Add(t.Position, t.Delta)) - r2.Norm(t.Position)
	}
	return sum
}

// Rotation sums the z component of p × (p+d) over all trajectories.
func Rotation(ts []Trajectory) float64 {
	if len(ts) < MinContactsForShape {
		return 0
	}
	var sum float64
	for _, t := range ts {
		sum += r2.Cross(t.Position, r2.Add(t.Position, t.Delta))
	}
	return sum
}

// DotSignal sums p · (p+d) over all trajectories.
func DotSignal(ts []Trajectory) float64 {
	if len(ts) < MinContactsForShape {
		return 0
	}
	var sum float64
	for _, t := range ts {
		sum += r2.Dot(t.Position, r2.Add(t.Position, t.Delta))
	}
	return sum
}

// Derive computes the Motion of cur. Pan is zero when hasPrev is false.
func Derive(prev, cur Frame, hasPrev bool) Motion {
	m := Motion{
		Contacts: len(cur.Trajectories),
		Pinch:    Pinch(cur.Trajectories),
		Rotation: Rotation(cur.Trajectories),
		Dot:      DotSignal(cur.Trajectories),
	}
	if hasPrev {
		m.Pan = Pan(prev, cur)
	}
	return m
}

func sameContacts(a, b []Trajectory) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}
outer:
	for _, x := range a {
		for _, y := range b {
			if x.ID == y.ID {
				continue outer
			}
		}
		return false
	}
	return true
}
