package gesture

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const defaultScriptInterval = 16 * time.Millisecond

// scriptStep is a single action in a gesture script. Coordinates are
// normalized; angles are degrees.
type scriptStep struct {
	Action     string  `json:"action"`
	ID         int     `json:"id,omitempty"`
	IDs        [2]int  `json:"ids,omitempty"`
	Secondary  bool    `json:"secondary,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	FromRadius float64 `json:"fromRadius,omitempty"`
	ToRadius   float64 `json:"toRadius,omitempty"`
	FromAngle  float64 `json:"fromAngle,omitempty"`
	ToAngle    float64 `json:"toAngle,omitempty"`
	Steps      int     `json:"steps,omitempty"`
	Ms         int     `json:"ms,omitempty"`
}

// scriptFile is the top-level JSON structure of a gesture script.
type scriptFile struct {
	IntervalMs int          `json:"intervalMs,omitempty"`
	Steps      []scriptStep `json:"steps"`
}

// Script is a parsed gesture script: a list of actions (press, move,
// release, tap, drag, pinch, rotate, wait) that expands into a time-ordered
// event sequence. Contacts are primary unless the step sets "secondary".
type Script struct {
	interval time.Duration
	steps    []scriptStep
}

// LoadScript parses a JSON gesture script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "press", "move", "release", "tap", "drag", "pinch", "rotate", "wait":
		default:
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if (st.Action == "pinch" || st.Action == "rotate") && st.IDs[0] == st.IDs[1] {
			return nil, fmt.Errorf("parse gesture script: step %d: %s needs two distinct ids", i, st.Action)
		}
	}
	interval := defaultScriptInterval
	if f.IntervalMs > 0 {
		interval = time.Duration(f.IntervalMs) * time.Millisecond
	}
	return &Script{interval: interval, steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int { return len(s.steps) }

// Interval returns the spacing between consecutive generated events.
func (s *Script) Interval() time.Duration { return s.interval }

// Events expands the script. The clock starts at zero, consecutive events
// are Interval apart, and a wait step advances the clock by its ms.
func (s *Script) Events() []PointerEvent {
	var evs []PointerEvent
	var at time.Duration
	for _, st := range s.steps {
		primary := !st.Secondary
		var out []PointerEvent
		switch st.Action {
		case "press":
			out = []PointerEvent{Press(st.ID, primary, at, st.X, st.Y)}
		case "move":
			out = []PointerEvent{Move(st.ID, primary, at, st.X, st.Y)}
		case "release":
			out = []PointerEvent{Release(st.ID, primary, at, st.X, st.Y)}
		case "tap":
			hold := s.interval
			if st.Ms > 0 {
				hold = time.Duration(st.Ms) * time.Millisecond
			}
			out = Tap(st.ID, primary, at, hold, st.X, st.Y)
		case "drag":
			out = Drag(st.ID, primary, at, s.interval,
				Vec2{X: st.FromX, Y: st.FromY}, Vec2{X: st.ToX, Y: st.ToY}, st.Steps)
		case "pinch":
			out = PinchSequence(st.IDs, at, s.interval, Vec2{X: st.X, Y: st.Y},
				st.FromRadius, st.ToRadius, st.Steps)
		case "rotate":
			out = RotateSequence(st.IDs, at, s.interval, Vec2{X: st.X, Y: st.Y},
				st.Radius, degToRad(st.FromAngle), degToRad(st.ToAngle), st.Steps)
		case "wait":
			at += time.Duration(st.Ms) * time.Millisecond
			continue
		}
		evs = append(evs, out...)
		at = out[len(out)-1].Timestamp + s.interval
	}
	return evs
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
