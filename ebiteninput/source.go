// Package ebiteninput feeds Ebitengine mouse and touch state into a gesture
// Recognizer.
//
// Ebitengine exposes input as per-tick state rather than events, so Source
// diffs the state against the previous tick and synthesizes press, move and
// release events. Call Update once per ebiten.Game Update:
//
//	src := ebiteninput.New(rec.HandleRaw)
//	// in Update:
//	src.Update()
//	// in Layout:
//	src.SetSurface(w, h)
package ebiteninput

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/gesture"
)

// MouseID is the contact id used for the mouse. Touch ids are offset by one
// so they never collide with it.
const MouseID = 0

// pressedPressure is reported while a contact is down, matching what
// browsers report for hardware without pressure sensing.
const pressedPressure = 0.5

type point struct{ x, y int }

// inputState is the slice of the Ebitengine input API that Source reads.
type inputState struct {
	cursor       func() (int, int)
	mousePressed func() bool
	touchIDs     func([]ebiten.TouchID) []ebiten.TouchID
	touchPos     func(ebiten.TouchID) (int, int)
}

var ebitenState = inputState{
	cursor:       ebiten.CursorPosition,
	mousePressed: func() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) },
	touchIDs:     ebiten.AppendTouchIDs,
	touchPos:     ebiten.TouchPosition,
}

// Source converts Ebitengine input state into raw pointer events.
type Source struct {
	emit  func(gesture.RawPointerEvent)
	in    inputState
	now   func() time.Time
	start time.Time

	width, height float64

	mouseDown    bool
	mousePrimary bool
	mouseLast    point

	touches    map[ebiten.TouchID]point
	touchBuf   []ebiten.TouchID
	primary    ebiten.TouchID
	hasPrimary bool
}

// New creates a Source delivering events to emit.
func New(emit func(gesture.RawPointerEvent)) *Source {
	s := &Source{
		emit:    emit,
		in:      ebitenState,
		now:     time.Now,
		touches: make(map[ebiten.TouchID]point),
	}
	s.start = s.now()
	return s
}

// SetSurface records the logical screen size returned from Layout.
func (s *Source) SetSurface(width, height int) {
	s.width, s.height = float64(width), float64(height)
}

// Bounds reports the logical screen as the input surface. It has the
// gesture.BoundsProvider signature.
func (s *Source) Bounds() gesture.Bounds {
	return gesture.Bounds{Width: s.width, Height: s.height}
}

// Update polls mouse and touch state and emits the events since the last
// call.
func (s *Source) Update() {
	at := s.now().Sub(s.start)
	s.updateMouse(at)
	s.updateTouches(at)
}

// updateMouse handles the left mouse button as contact MouseID. The mouse is
// primary only if no touch is active when the button goes down, and keeps
// that role until it is released.
func (s *Source) updateMouse(at time.Duration) {
	mx, my := s.in.cursor()
	p := point{mx, my}
	pressed := s.in.mousePressed()

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.mousePrimary = len(s.touches) == 0
		s.send(MouseID, s.mousePrimary, gesture.PointerDown, at, p)
	case pressed && s.mouseDown:
		if p != s.mouseLast {
			s.send(MouseID, s.mousePrimary, gesture.PointerMove, at, p)
		}
	case !pressed && s.mouseDown:
		s.mouseDown = false
		s.send(MouseID, s.mousePrimary, gesture.PointerUp, at, p)
	}
	s.mouseLast = p
}

// updateTouches diffs the active touch set against the previous tick. The
// first touch of a gesture is primary until it lifts, unless a primary mouse
// press is already in progress.
func (s *Source) updateTouches(at time.Duration) {
	s.touchBuf = s.in.touchIDs(s.touchBuf[:0])
	slices.Sort(s.touchBuf)

	for _, tid := range s.touchBuf {
		tx, ty := s.in.touchPos(tid)
		p := point{tx, ty}
		last, seen := s.touches[tid]
		s.touches[tid] = p
		if !seen {
			if !s.hasPrimary && !(s.mouseDown && s.mousePrimary) {
				s.primary, s.hasPrimary = tid, true
			}
			s.send(touchContact(tid), s.isPrimary(tid), gesture.PointerDown, at, p)
			continue
		}
		if p != last {
			s.send(touchContact(tid), s.isPrimary(tid), gesture.PointerMove, at, p)
		}
	}

	var lifted []ebiten.TouchID
	for tid := range s.touches {
		if !slices.Contains(s.touchBuf, tid) {
			lifted = append(lifted, tid)
		}
	}
	slices.Sort(lifted)
	for _, tid := range lifted {
		s.send(touchContact(tid), s.isPrimary(tid), gesture.PointerUp, at, s.touches[tid])
		delete(s.touches, tid)
		if s.isPrimary(tid) {
			s.hasPrimary = false
		}
	}
}

func (s *Source) isPrimary(tid ebiten.TouchID) bool {
	return s.hasPrimary && s.primary == tid
}

func (s *Source) send(id int, primary bool, kind gesture.PointerKind, at time.Duration, p point) {
	pressure := pressedPressure
	if kind == gesture.PointerUp {
		pressure = 0
	}
	s.emit(gesture.RawPointerEvent{
		ID:        id,
		Primary:   primary,
		Kind:      kind,
		Timestamp: at,
		ClientX:   float64(p.x),
		ClientY:   float64(p.y),
		Pressure:  pressure,
		Width:     1,
		Height:    1,
	})
}

func touchContact(tid ebiten.TouchID) int {
	return int(tid) + 1
}
