package gesture

import (
	"math"
	"testing"
)

func TestDeriveSymmetricPinch(t *testing.T) {
	ts := []Trajectory{
		{ID: 1, Position: Vec2{X: -0.2}, Delta: Vec2{X: -0.4}},
		{ID: 2, Position: Vec2{X: 0.2}, Delta: Vec2{X: 0.4}},
	}
	if p := Pinch(ts); p <= 0 || !approx(p, 0.8) {
		t.Errorf("Pinch = %v, want 0.8", p)
	}
	if r := Rotation(ts); math.Abs(r) > eps {
		t.Errorf("Rotation = %v, want 0", r)
	}

	// Contracting reverses the sign.
	ts[0].Delta, ts[1].Delta = Vec2{X: 0.1}, Vec2{X: -0.1}
	if p := Pinch(ts); p >= 0 {
		t.Errorf("contracting Pinch = %v, want < 0", p)
	}
}

func TestDeriveQuarterTurn(t *testing.T) {
	// Two contacts at radius 0.5 turning 90° counter-clockwise.
	ts := []Trajectory{
		{ID: 1, Position: Vec2{X: 0.5}, Delta: Vec2{X: -0.5, Y: 0.5}},
		{ID: 2, Position: Vec2{X: -0.5}, Delta: Vec2{X: 0.5, Y: -0.5}},
	}
	if r := Rotation(ts); r <= 0 || !approx(r, 0.5) {
		t.Errorf("Rotation = %v, want 0.5", r)
	}
	if p := Pinch(ts); math.Abs(p) > eps {
		t.Errorf("Pinch = %v, want 0", p)
	}
	if d := DotSignal(ts); math.Abs(d) > eps {
		t.Errorf("Dot = %v, want 0 for pure rotation", d)
	}

	// Clockwise is negative.
	ts[0].Delta, ts[1].Delta = Vec2{X: -0.5, Y: -0.5}, Vec2{X: 0.5, Y: 0.5}
	if r := Rotation(ts); r >= 0 {
		t.Errorf("clockwise Rotation = %v, want < 0", r)
	}
}

func TestDeriveSingleContact(t *testing.T) {
	ts := []Trajectory{{ID: 1, Delta: Vec2{X: 0.3, Y: 0.3}}}
	cur := Frame{Centroid: Vec2{X: 0.3, Y: 0.3}, Trajectories: ts}
	m := Derive(Frame{}, cur, false)
	if m.Pinch != 0 || m.Rotation != 0 || m.Dot != 0 {
		t.Errorf("single contact motion = %+v, want zero shape signals", m)
	}
	if m.Contacts != 1 {
		t.Errorf("Contacts = %d", m.Contacts)
	}
	if m.Pan != (Vec2{}) {
		t.Errorf("Pan without a previous frame = %v", m.Pan)
	}
	if Pinch(nil) != 0 || Rotation(nil) != 0 || DotSignal(nil) != 0 {
		t.Error("empty trajectories must derive zeros")
	}
}

func TestDerivePan(t *testing.T) {
	two := []Trajectory{{ID: 1}, {ID: 2}}
	prev := Frame{Centroid: Vec2{X: 0.1, Y: 0.1}, Trajectories: two}

	tests := []struct {
		name string
		cur  Frame
		want Vec2
	}{
		{"same contacts", Frame{Centroid: Vec2{X: 0.3, Y: 0}, Trajectories: []Trajectory{{ID: 2}, {ID: 1}}}, Vec2{X: 0.2, Y: -0.1}},
		{"contact joined", Frame{Centroid: Vec2{X: 0.3}, Trajectories: []Trajectory{{ID: 1}, {ID: 2}, {ID: 3}}}, Vec2{}},
		{"contact swapped", Frame{Centroid: Vec2{X: 0.3}, Trajectories: []Trajectory{{ID: 1}, {ID: 3}}}, Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(prev, tt.cur, true).Pan
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("Pan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanDelta(t *testing.T) {
	if got := MeanDelta(nil); got != (Vec2{}) {
		t.Errorf("MeanDelta(nil) = %v", got)
	}
	got := MeanDelta([]Trajectory{{Delta: Vec2{X: 0.2, Y: 0}}, {Delta: Vec2{X: 0, Y: 0.4}}})
	if !approx(got.X, 0.1) || !approx(got.Y, 0.2) {
		t.Errorf("MeanDelta = %v, want (0.1, 0.2)", got)
	}
}
