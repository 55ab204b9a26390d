package gesture

// EventType identifies a kind of recognizer callback.
type EventType uint8

const (
	EventReport EventType = iota // fires once per reporting interval
	EventSignal                  // fires for every derived signal as it is emitted
	EventEvict                   // fires when the cache evicts a contact
)

// Sink is an optional bridge that receives every delivered report, after
// the registered report callbacks.
type Sink interface {
	EmitReport(report Report)
}

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	report []handler[func(Report)]
	signal []handler[func(Signal)]
	evict  []handler[func(CacheKey, DisplacementRecord, bool)]
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventReport:
		h.reg.report = removeHandler(h.reg.report, h.id)
	case EventSignal:
		h.reg.signal = removeHandler(h.reg.signal, h.id)
	case EventEvict:
		h.reg.evict = removeHandler(h.reg.evict, h.id)
	}
}

func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnReport registers a callback for each delivered report.
func (r *Recognizer) OnReport(fn func(Report)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.report = append(r.handlers.report, handler[func(Report)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventReport}
}

// OnSignal registers a callback invoked synchronously for every signal, in
// addition to its later inclusion in a report.
func (r *Recognizer) OnSignal(fn func(Signal)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.signal = append(r.handlers.signal, handler[func(Signal)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventSignal}
}

// OnEvict registers a callback for cache evictions. expired distinguishes a
// TTL eviction (a stale record) from a capacity eviction.
// The callback runs in the middle of event handling and must not call back
// into the Recognizer.
func (r *Recognizer) OnEvict(fn func(key CacheKey, rec DisplacementRecord, expired bool)) CallbackHandle {
	r.handlers.nextID++
	id := r.handlers.nextID
	r.handlers.evict = append(r.handlers.evict, handler[func(CacheKey, DisplacementRecord, bool)]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &r.handlers, event: EventEvict}
}

// SetSink sets the optional report bridge. Nil removes it.
func (r *Recognizer) SetSink(sink Sink) {
	r.sink = sink
}

func (r *Recognizer) fireSignal(s Signal) {
	for _, h := range r.handlers.signal {
		h.fn(s)
	}
}

func (r *Recognizer) fireReport(rep Report) {
	for _, h := range r.handlers.report {
		h.fn(rep)
	}
	if r.sink != nil {
		r.sink.EmitReport(rep)
	}
}

func (r *Recognizer) fireEvict(key CacheKey, rec DisplacementRecord, expired bool) {
	for _, h := range r.handlers.evict {
		h.fn(key, rec, expired)
	}
}
