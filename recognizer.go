package gesture

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Recognizer is the single owner of pipeline state: delta trackers, the
// pointer cache, the double-tap detector and the report window. Events flow
// tracker → cache → aggregation → derivation → window, and each Tick turns
// the window into a Report.
//
// A Recognizer is not safe for concurrent use. Drive it either by calling
// HandleEvent and Tick from one loop (a game's Update, for instance) or by
// handing it a channel with Run.
type Recognizer struct {
	cfg     Config
	log     zerolog.Logger
	now     func() time.Time
	session uuid.UUID
	seq     uint64

	tracker *Tracker
	agg     *Aggregator
	taps    *DoubleTapDetector
	window  Window[Signal]

	prev    Frame
	hasPrev bool

	handlers handlerRegistry
	sink     Sink
	debug    debugStats
}

// NewRecognizer validates cfg and builds a Recognizer.
func NewRecognizer(cfg Config) (*Recognizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Recognizer{
		cfg:     cfg,
		log:     cfg.logger().With().Str("component", "gesture").Logger(),
		now:     cfg.clock(),
		session: uuid.New(),
	}
	r.log = r.log.With().Str("session", r.session.String()).Logger()

	cache, err := NewExpiringLRU(cfg.CacheCapacity, cfg.CacheTTL,
		WithClock[CacheKey, DisplacementRecord](r.now),
		WithEvictCallback[CacheKey, DisplacementRecord](r.onCacheEvict),
	)
	if err != nil {
		return nil, err
	}
	r.tracker = NewTracker(r.log)
	r.agg = NewAggregator(cache)
	r.taps = NewDoubleTapDetector(cfg.DoubleTapWindow, cfg.DoubleTapDistance)
	return r, nil
}

// Session returns the id stamped on every report of this recognizer.
func (r *Recognizer) Session() uuid.UUID { return r.session }

// Config returns the configuration the recognizer was built with.
func (r *Recognizer) Config() Config { return r.cfg }

// Active returns the number of contacts between press and release.
func (r *Recognizer) Active() int { return r.tracker.Active() }

// CacheStats returns the pointer cache counters.
func (r *Recognizer) CacheStats() CacheStats { return r.agg.Cache().Stats() }

// Pending returns the number of signals waiting for the next Tick.
func (r *Recognizer) Pending() int { return r.window.Len() }

// LastFrame returns the most recent aggregation, if any contact is active.
func (r *Recognizer) LastFrame() (Frame, bool) { return r.prev, r.hasPrev }

// HandleRaw normalizes a surface-space event against Config.Bounds and
// handles it. Without Config.Bounds the raw coordinates are taken as already
// normalized.
func (r *Recognizer) HandleRaw(ev RawPointerEvent) {
	if r.cfg.Bounds == nil {
		r.HandleEvent(ev.Normalized(Bounds{}, passThrough))
		return
	}
	r.HandleEvent(ev.Normalized(r.cfg.Bounds(), r.cfg.Normalizer))
}

func passThrough(ev RawPointerEvent, _ Bounds) (float64, float64) {
	return ev.ClientX, ev.ClientY
}

// HandleEvents handles evs in order.
func (r *Recognizer) HandleEvents(evs []PointerEvent) {
	for _, ev := range evs {
		r.HandleEvent(ev)
	}
}

// HandleEvent runs one event through the pipeline. Malformed input (a move
// or release for a contact that was never pressed) is logged and dropped.
func (r *Recognizer) HandleEvent(ev PointerEvent) {
	r.debug.events++
	switch ev.Kind {
	case PointerDown:
		r.tracker.Handle(ev)
		if tap, ok := r.taps.Press(ev); ok {
			r.emit(Signal{Kind: SignalDoubleTap, Timestamp: ev.Timestamp, DoubleTap: tap})
		}
	case PointerMove:
		rec, ok := r.tracker.Handle(ev)
		if !ok {
			r.debug.dropped++
			return
		}
		if frame, ok := r.agg.Aggregate(rec); ok {
			m := Derive(r.prev, frame, r.hasPrev)
			r.prev, r.hasPrev = frame, true
			r.emit(Signal{Kind: SignalMotion, Timestamp: ev.Timestamp, Motion: m})
		}
		if sw, ok := SwipeOf(rec, r.cfg.SwipeThreshold); ok {
			r.emit(Signal{Kind: SignalSwipe, Timestamp: ev.Timestamp, Swipe: sw})
		}
	case PointerUp:
		if !r.tracker.Tracking(ev.ID) {
			r.debug.dropped++
		}
		r.tracker.Handle(ev)
		if r.agg.Release(ev.ID) {
			r.prev, r.hasPrev = r.agg.Snapshot()
		}
	default:
		r.debug.dropped++
		r.tracker.Handle(ev)
	}
}

// Tick closes the current reporting interval. The batch is folded into a
// Report and delivered to the report callbacks and the sink. An empty
// interval delivers nothing unless Config.EmitEmpty is set.
func (r *Recognizer) Tick() (Report, bool) {
	start := time.Now()
	batch := r.window.Flush()
	if len(batch) == 0 && !r.cfg.EmitEmpty {
		return Report{}, false
	}
	r.seq++
	rep := FoldReport(batch)
	rep.Session = r.session
	rep.Seq = r.seq
	rep.Timestamp = r.now()
	rep.Contacts = r.tracker.Active()

	r.fireReport(rep)

	if r.cfg.Debug {
		r.debug.flushTime = time.Since(start)
		r.debugLog(rep)
	}
	r.debug = debugStats{}
	return rep, true
}

// Prune sweeps stale records out of the pointer cache and returns how
// many were evicted.
func (r *Recognizer) Prune() int {
	n := r.agg.Cache().Prune()
	if n > 0 {
		r.prev, r.hasPrev = r.agg.Snapshot()
	}
	return n
}

// Reset drops every tracked contact, pending tap and unreported signal.
func (r *Recognizer) Reset() {
	r.tracker.Reset()
	r.agg.Cache().Clear()
	r.taps.Reset()
	r.window.Flush()
	r.prev, r.hasPrev = Frame{}, false
}

// Run owns the recognizer from the calling goroutine until ctx is done or
// events is closed. Reports are delivered every Config.ReportInterval and
// the cache is swept every Config.PruneInterval; both timers stop when Run
// returns. A closed channel flushes the last interval and returns nil.
func (r *Recognizer) Run(ctx context.Context, events <-chan PointerEvent) error {
	report := time.NewTicker(r.cfg.ReportInterval)
	defer report.Stop()
	prune := time.NewTicker(r.cfg.pruneInterval())
	defer prune.Stop()

	r.log.Debug().Dur("report_interval", r.cfg.ReportInterval).Msg("recognizer running")
	for {
		select {
		case <-ctx.Done():
			r.log.Debug().Err(ctx.Err()).Msg("recognizer stopped")
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				r.Tick()
				return nil
			}
			r.HandleEvent(ev)
		case <-report.C:
			r.Tick()
		case <-prune.C:
			r.Prune()
		}
	}
}

func (r *Recognizer) emit(s Signal) {
	r.window.Add(s)
	r.fireSignal(s)
}

// onCacheEvict only observes. The contact keeps its tracker and its next
// move puts a fresh record back into the cache.
func (r *Recognizer) onCacheEvict(key CacheKey, rec DisplacementRecord, expired bool) {
	r.log.Debug().
		Stringer("key", key).
		Int("pointer_id", rec.ID).
		Bool("expired", expired).
		Msg("contact evicted")
	if expired {
		r.debug.expired++
	} else {
		r.debug.evicted++
	}
	r.fireEvict(key, rec, expired)
}
