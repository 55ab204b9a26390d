package ebiteninput

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

// fakeInput is scripted ebiten state for one Source.
type fakeInput struct {
	mx, my  int
	pressed bool
	touches map[ebiten.TouchID][2]int
}

func newTestSource(t *testing.T) (*Source, *fakeInput, *[]gesture.RawPointerEvent) {
	t.Helper()
	var got []gesture.RawPointerEvent
	f := &fakeInput{touches: map[ebiten.TouchID][2]int{}}
	s := New(func(ev gesture.RawPointerEvent) { got = append(got, ev) })
	s.in = inputState{
		cursor:       func() (int, int) { return f.mx, f.my },
		mousePressed: func() bool { return f.pressed },
		touchIDs: func(buf []ebiten.TouchID) []ebiten.TouchID {
			for id := range f.touches {
				buf = append(buf, id)
			}
			return buf
		},
		touchPos: func(id ebiten.TouchID) (int, int) {
			p := f.touches[id]
			return p[0], p[1]
		},
	}
	base := time.Unix(0, 0)
	tick := 0
	s.start = base
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * 16 * time.Millisecond)
	}
	return s, f, &got
}

func kinds(evs []gesture.RawPointerEvent) []gesture.PointerKind {
	out := make([]gesture.PointerKind, len(evs))
	for i, ev := range evs {
		out[i] = ev.Kind
	}
	return out
}

func TestSourceMouseSequence(t *testing.T) {
	s, f, got := newTestSource(t)

	f.mx, f.my = 10, 10
	s.Update() // hover, nothing
	f.pressed = true
	s.Update() // press
	s.Update() // held still, nothing
	f.mx = 20
	s.Update() // move
	f.pressed = false
	s.Update() // release

	want := []gesture.PointerKind{gesture.PointerDown, gesture.PointerMove, gesture.PointerUp}
	gotKinds := kinds(*got)
	if len(gotKinds) != len(want) {
		t.Fatalf("events = %v, want %v", gotKinds, want)
	}
	for i := range want {
		if gotKinds[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, gotKinds[i], want[i])
		}
	}
	for _, ev := range *got {
		if ev.ID != MouseID || !ev.Primary {
			t.Errorf("mouse event id=%d primary=%v", ev.ID, ev.Primary)
		}
	}
	if (*got)[1].ClientX != 20 {
		t.Errorf("move ClientX = %v, want 20", (*got)[1].ClientX)
	}
	if (*got)[2].Pressure != 0 {
		t.Errorf("release pressure = %v, want 0", (*got)[2].Pressure)
	}
}

func TestSourceTouchPrimaryHandoff(t *testing.T) {
	s, f, got := newTestSource(t)

	f.touches[3] = [2]int{100, 100}
	s.Update()
	f.touches[7] = [2]int{200, 100}
	s.Update()
	delete(f.touches, 3)
	s.Update()
	f.touches[9] = [2]int{50, 50}
	s.Update()

	evs := *got
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(evs), kinds(evs))
	}
	if evs[0].ID != 4 || !evs[0].Primary || evs[0].Kind != gesture.PointerDown {
		t.Errorf("first touch: %+v", evs[0])
	}
	if evs[1].ID != 8 || evs[1].Primary {
		t.Errorf("second touch should be secondary: %+v", evs[1])
	}
	if evs[2].ID != 4 || evs[2].Kind != gesture.PointerUp || !evs[2].Primary {
		t.Errorf("primary lift: %+v", evs[2])
	}
	// The primary slot is free again, so the next fresh touch takes it.
	if evs[3].ID != 10 || !evs[3].Primary {
		t.Errorf("touch after lift should be primary: %+v", evs[3])
	}
}

func TestSourceBounds(t *testing.T) {
	s, _, _ := newTestSource(t)
	s.SetSurface(640, 480)
	b := s.Bounds()
	if b.Width != 640 || b.Height != 480 || b.Left != 0 || b.Top != 0 {
		t.Errorf("Bounds() = %+v", b)
	}

	x, y := gesture.Normalize(gesture.RawPointerEvent{ClientX: 320, ClientY: 240}, b)
	if x != 0 || y != 0 {
		t.Errorf("center normalizes to (%v, %v), want (0, 0)", x, y)
	}
}

func TestSourceMouseSecondaryWhileTouching(t *testing.T) {
	s, f, got := newTestSource(t)

	f.touches[3] = [2]int{100, 100}
	s.Update()
	f.pressed = true
	f.mx, f.my = 10, 10
	s.Update()
	f.mx = 30
	s.Update()
	f.pressed = false
	s.Update()

	evs := *got
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(evs), kinds(evs))
	}
	if evs[0].ID != 4 || !evs[0].Primary {
		t.Errorf("touch should be primary: %+v", evs[0])
	}
	for _, ev := range evs[1:] {
		if ev.ID != MouseID || ev.Primary {
			t.Errorf("mouse pressed during a touch should stay secondary: %+v", ev)
		}
	}
}

func TestSourceTouchSecondaryWhileMouseDown(t *testing.T) {
	s, f, got := newTestSource(t)

	f.pressed = true
	s.Update() // mouse press, primary
	f.touches[5] = [2]int{50, 50}
	s.Update() // touch joins as secondary
	f.pressed = false
	s.Update() // mouse release
	f.touches[6] = [2]int{80, 80}
	s.Update() // fresh touch takes the free primary role

	evs := *got
	if len(evs) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(evs), kinds(evs))
	}
	if evs[0].ID != MouseID || !evs[0].Primary {
		t.Errorf("mouse press: %+v", evs[0])
	}
	if evs[1].ID != 6 || evs[1].Primary {
		t.Errorf("touch during mouse press should be secondary: %+v", evs[1])
	}
	if evs[2].ID != MouseID || evs[2].Kind != gesture.PointerUp || !evs[2].Primary {
		t.Errorf("mouse release: %+v", evs[2])
	}
	if evs[3].ID != 7 || !evs[3].Primary {
		t.Errorf("touch after mouse release should be primary: %+v", evs[3])
	}
}
