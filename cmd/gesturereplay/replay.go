package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/phanxgames/gesture"
)

// eventLine is one recorded event in a JSON-lines log.
type eventLine struct {
	ID                 int     `json:"id"`
	Primary            bool    `json:"primary"`
	Kind               string  `json:"kind"` // "down", "move" or "up"
	TimeMs             float64 `json:"t"`
	X                  float64 `json:"x"`
	Y                  float64 `json:"y"`
	Pressure           float64 `json:"pressure,omitempty"`
	TangentialPressure float64 `json:"tangentialPressure,omitempty"`
	Width              float64 `json:"width,omitempty"`
	Height             float64 `json:"height,omitempty"`
}

func (l eventLine) event() (gesture.PointerEvent, error) {
	var kind gesture.PointerKind
	switch l.Kind {
	case "down", "pointerdown":
		kind = gesture.PointerDown
	case "move", "pointermove":
		kind = gesture.PointerMove
	case "up", "pointerup":
		kind = gesture.PointerUp
	default:
		return gesture.PointerEvent{}, fmt.Errorf("unknown kind %q", l.Kind)
	}
	return gesture.PointerEvent{
		ID:                 l.ID,
		Primary:            l.Primary,
		Kind:               kind,
		Timestamp:          time.Duration(l.TimeMs * float64(time.Millisecond)),
		X:                  l.X,
		Y:                  l.Y,
		Pressure:           l.Pressure,
		TangentialPressure: l.TangentialPressure,
		Width:              l.Width,
		Height:             l.Height,
	}, nil
}

// readEvents parses a JSON-lines event log. Blank lines are skipped.
func readEvents(r io.Reader) ([]gesture.PointerEvent, error) {
	var evs []gesture.PointerEvent
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		var l eventLine
		if err := json.Unmarshal(b, &l); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ev, err := l.event()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		evs = append(evs, ev)
	}
	return evs, sc.Err()
}

// replay feeds evs to a new Recognizer whose clock follows the event
// timestamps. Report boundaries fall every cfg.ReportInterval of event time,
// so the output does not depend on how fast the host runs. It returns the
// number of reports delivered.
func replay(cfg gesture.Config, evs []gesture.PointerEvent, emit func(gesture.Report)) (int, error) {
	epoch := time.Unix(0, 0).UTC()
	var clock time.Duration
	cfg.Now = func() time.Time { return epoch.Add(clock) }

	rec, err := gesture.NewRecognizer(cfg)
	if err != nil {
		return 0, err
	}
	n := 0
	rec.OnReport(func(r gesture.Report) {
		n++
		emit(r)
	})

	next := cfg.ReportInterval
	for _, ev := range evs {
		for ev.Timestamp >= next {
			clock = next
			rec.Prune()
			rec.Tick()
			next += cfg.ReportInterval
		}
		clock = ev.Timestamp
		rec.HandleEvent(ev)
	}
	clock = next
	rec.Tick()
	return n, nil
}
