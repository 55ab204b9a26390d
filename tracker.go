package gesture

import "github.com/rs/zerolog"

// deltaTracker follows one contact from press to release. Its existence in
// the Tracker map is the Tracking state; absence is Idle.
type deltaTracker struct {
	origin PointerEvent
}

func (t *deltaTracker) displacement(ev PointerEvent) DisplacementRecord {
	o := t.origin
	return DisplacementRecord{
		ID:                  ev.ID,
		Primary:             ev.Primary,
		Timestamp:           ev.Timestamp,
		Dt:                  ev.Timestamp - o.Timestamp,
		DPressure:           ev.Pressure - o.Pressure,
		DTangentialPressure: ev.TangentialPressure - o.TangentialPressure,
		DContactArea:        ev.Width*ev.Height - o.Width*o.Height,
		DX:                  ev.X - o.X,
		DY:                  ev.Y - o.Y,
		X:                   ev.X,
		Y:                   ev.Y,
	}
}

// Tracker multiplexes per-contact delta trackers by contact id. Starting a
// tracker for one id never disturbs trackers for other ids.
type Tracker struct {
	active map[int]*deltaTracker
	log    zerolog.Logger
}

// NewTracker creates an empty Tracker. Malformed input is reported to log at
// debug level.
func NewTracker(log zerolog.Logger) *Tracker {
	return &Tracker{
		active: make(map[int]*deltaTracker),
		log:    log,
	}
}

// Handle advances the state machine of ev's contact. It returns a record
// only for a move of a tracked contact.
//
// A press captures the origin, replacing any earlier tracker for the same
// id. A release disposes the tracker. Moves and releases for ids that were
// never pressed are ignored.
func (t *Tracker) Handle(ev PointerEvent) (DisplacementRecord, bool) {
	switch ev.Kind {
	case PointerDown:
		if _, ok := t.active[ev.ID]; ok {
			t.log.Debug().Int("pointer_id", ev.ID).Msg("press on tracked contact, restarting")
		}
		t.active[ev.ID] = &deltaTracker{origin: ev}
	case PointerMove:
		dt, ok := t.active[ev.ID]
		if !ok {
			t.log.Debug().Int("pointer_id", ev.ID).Stringer("kind", ev.Kind).Msg("move without press ignored")
			return DisplacementRecord{}, false
		}
		return dt.displacement(ev), true
	case PointerUp:
		if _, ok := t.active[ev.ID]; !ok {
			t.log.Debug().Int("pointer_id", ev.ID).Stringer("kind", ev.Kind).Msg("release without press ignored")
			return DisplacementRecord{}, false
		}
		delete(t.active, ev.ID)
	default:
		t.log.Debug().Int("pointer_id", ev.ID).Stringer("kind", ev.Kind).Msg("unknown pointer kind ignored")
	}
	return DisplacementRecord{}, false
}

// Tracking reports whether id is between press and release.
func (t *Tracker) Tracking(id int) bool {
	_, ok := t.active[id]
	return ok
}

// Origin returns the press sample of a tracked contact.
func (t *Tracker) Origin(id int) (PointerEvent, bool) {
	dt, ok := t.active[id]
	if !ok {
		return PointerEvent{}, false
	}
	return dt.origin, true
}

// Active returns the number of tracked contacts.
func (t *Tracker) Active() int { return len(t.active) }

// Reset disposes every tracker.
func (t *Tracker) Reset() {
	clear(t.active)
}
