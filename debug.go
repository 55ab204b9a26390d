package gesture

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// debugStats holds per-interval counters.
// Only logged when Config.Debug is true.
type debugStats struct {
	events    int
	dropped   int
	evicted   int
	expired   int
	flushTime time.Duration
}

// debugLog writes the interval's counters and cache stats at debug level.
func (r *Recognizer) debugLog(rep Report) {
	cs := r.agg.Cache().Stats()
	r.log.Debug().
		Uint64("seq", rep.Seq).
		Int("events", r.debug.events).
		Int("dropped", r.debug.dropped).
		Int("signals", len(rep.Signals)).
		Int("contacts", rep.Contacts).
		Int("cached", r.agg.Len()).
		Int("evicted", r.debug.evicted).
		Int("expired", r.debug.expired).
		Uint64("cache_hits", cs.Hits).
		Uint64("cache_misses", cs.Misses).
		Dur("flush", r.debug.flushTime).
		Msg("interval")
}

// NewConsoleLogger builds a human-readable logger at the named level
// ("trace", "debug", "info", "warn", "error"; anything else is info). A nil
// w writes to stderr.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
