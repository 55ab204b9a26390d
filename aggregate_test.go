package gesture

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestAggregator(t *testing.T) *Aggregator {
	t.Helper()
	cache, err := NewExpiringLRU[CacheKey, DisplacementRecord](DefaultCacheCapacity, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	return NewAggregator(cache)
}

// moved builds the record of a contact pressed at from and now at to.
func moved(id int, primary bool, from, to Vec2) DisplacementRecord {
	return DisplacementRecord{
		ID:      id,
		Primary: primary,
		DX:      to.X - from.X,
		DY:      to.Y - from.Y,
		X:       to.X,
		Y:       to.Y,
	}
}

var approxOpt = cmpopts.EquateApprox(0, 1e-9)

func TestAggregateEmpty(t *testing.T) {
	a := newTestAggregator(t)
	if f, ok := a.Snapshot(); ok {
		t.Errorf("Snapshot of empty cache = %+v, true", f)
	}
}

func TestAggregateFrame(t *testing.T) {
	a := newTestAggregator(t)
	a.Upsert(moved(1, true, Vec2{X: -0.5, Y: 0}, Vec2{X: -0.4, Y: 0.2}))
	f, ok := a.Aggregate(moved(2, false, Vec2{X: 0.5, Y: 0.4}, Vec2{X: 0.6, Y: 0.2}))
	if !ok {
		t.Fatal("expected a frame")
	}

	want := Frame{
		Centroid: Vec2{X: 0.1, Y: 0.2},
		Anchor:   Vec2{X: 0, Y: 0.2},
		Trajectories: []Trajectory{
			{ID: 2, Position: Vec2{X: 0.5, Y: 0.2}, Delta: Vec2{X: 0.1, Y: -0.2}},
			{ID: 1, Position: Vec2{X: -0.5, Y: -0.2}, Delta: Vec2{X: 0.1, Y: 0.2}},
		},
	}
	if diff := cmp.Diff(want, f, approxOpt); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateCollapsesPrimary(t *testing.T) {
	a := newTestAggregator(t)
	a.Upsert(moved(1, true, Vec2{}, Vec2{X: 0.1}))
	a.Upsert(moved(9, true, Vec2{}, Vec2{X: 0.2}))
	a.Upsert(moved(3, false, Vec2{}, Vec2{X: 0.3}))

	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2 slots", a.Len())
	}
	rec, ok := a.Cache().Peek(PrimaryKey())
	if !ok || rec.ID != 9 {
		t.Errorf("primary slot holds %+v, want contact 9", rec)
	}
}

func TestAggregateRelease(t *testing.T) {
	a := newTestAggregator(t)
	a.Upsert(moved(1, true, Vec2{}, Vec2{X: 0.1}))
	a.Upsert(moved(2, false, Vec2{}, Vec2{X: 0.2}))

	if a.Release(7) {
		t.Error("Release of an unknown contact should report false")
	}
	if !a.Release(2) {
		t.Error("Release(2) should remove the secondary slot")
	}

	// Contact 5 takes over the primary slot; releasing 1 must not drop it.
	a.Upsert(moved(5, true, Vec2{}, Vec2{X: 0.5}))
	if a.Release(1) {
		t.Error("Release(1) should not remove a slot now held by 5")
	}
	if !a.Release(5) {
		t.Error("Release(5) should remove the primary slot")
	}
	if _, ok := a.Snapshot(); ok {
		t.Error("cache should be empty")
	}
}

func TestAggregateJoinShiftsFrame(t *testing.T) {
	a := newTestAggregator(t)
	f1, _ := a.Aggregate(moved(1, true, Vec2{X: 0}, Vec2{X: 0.1}))
	if len(f1.Trajectories) != 1 || f1.Trajectories[0].Position != (Vec2{}) {
		t.Fatalf("single contact should sit on the anchor: %+v", f1)
	}
	f2, _ := a.Aggregate(moved(2, false, Vec2{X: 0.4}, Vec2{X: 0.4}))
	for _, tr := range f2.Trajectories {
		if tr.ID == 1 && !approx(tr.Position.X, -0.2) {
			t.Errorf("contact 1 position = %v after join, want -0.2", tr.Position.X)
		}
	}
}

func TestAggregateFrameSeparatesTurnFromSpread(t *testing.T) {
	tests := []struct {
		name       string
		a, b       [2]Vec2 // press, current
		pinchSign  int
		rotateSign int
	}{
		{
			name:      "quarter turn",
			a:         [2]Vec2{{X: 1}, {Y: 1}},
			b:         [2]Vec2{{X: -1}, {Y: -1}},
			pinchSign: 0, rotateSign: 1,
		},
		{
			name:      "symmetric spread",
			a:         [2]Vec2{{X: -0.5}, {X: -0.6}},
			b:         [2]Vec2{{X: 0.5}, {X: 0.6}},
			pinchSign: 1, rotateSign: 0,
		},
	}
	sign := func(v float64) int {
		switch {
		case v > eps:
			return 1
		case v < -eps:
			return -1
		}
		return 0
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAggregator(t)
			a.Upsert(moved(1, true, tt.a[0], tt.a[1]))
			f, ok := a.Aggregate(moved(2, false, tt.b[0], tt.b[1]))
			if !ok {
				t.Fatal("expected a frame")
			}
			if got := sign(Pinch(f.Trajectories)); got != tt.pinchSign {
				t.Errorf("pinch = %v, want sign %d", Pinch(f.Trajectories), tt.pinchSign)
			}
			if got := sign(Rotation(f.Trajectories)); got != tt.rotateSign {
				t.Errorf("rotation = %v, want sign %d", Rotation(f.Trajectories), tt.rotateSign)
			}
		})
	}
}
