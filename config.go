package gesture

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Defaults used by DefaultConfig.
const (
	DefaultCacheCapacity     = 10 // ten simultaneous contacts
	DefaultCacheTTL          = time.Second
	DefaultReportInterval    = 300 * time.Millisecond
	DefaultDoubleTapWindow   = 250 * time.Millisecond
	DefaultDoubleTapDistance = 0.1 // normalized units
	DefaultSwipeThreshold    = 0.3 // normalized units
)

// Config configures a Recognizer.
type Config struct {
	// CacheCapacity bounds the number of contact records aggregated at once.
	CacheCapacity int `validate:"gt=0"`
	// CacheTTL is how long a contact may go without a move before its record
	// leaves the aggregate. The contact rejoins on its next move.
	CacheTTL time.Duration `validate:"gt=0"`
	// ReportInterval is the batching period of reports.
	ReportInterval time.Duration `validate:"gt=0"`
	// PruneInterval is the period of the eager cache sweep in Run. Zero
	// uses CacheTTL.
	PruneInterval time.Duration `validate:"gte=0"`

	DoubleTapWindow   time.Duration `validate:"gte=0"`
	DoubleTapDistance float64       `validate:"gte=0"`
	SwipeThreshold    float64       `validate:"gte=0"`

	// EmitEmpty delivers a report even for intervals with no signal.
	EmitEmpty bool
	// Debug logs per-tick diagnostics at debug level.
	Debug bool

	// Bounds is queried by HandleRaw. Nil treats raw coordinates as
	// already normalized.
	Bounds BoundsProvider `validate:"-"`
	// Normalizer maps raw events; nil uses Normalize.
	Normalizer Normalizer `validate:"-"`
	// Logger receives diagnostics; nil discards them.
	Logger *zerolog.Logger `validate:"-"`
	// Now is the wall clock for cache ages and report timestamps; nil uses
	// time.Now.
	Now func() time.Time `validate:"-"`
}

// DefaultConfig returns a Config with the default thresholds.
func DefaultConfig() Config {
	return Config{
		CacheCapacity:     DefaultCacheCapacity,
		CacheTTL:          DefaultCacheTTL,
		ReportInterval:    DefaultReportInterval,
		DoubleTapWindow:   DefaultDoubleTapWindow,
		DoubleTapDistance: DefaultDoubleTapDistance,
		SwipeThreshold:    DefaultSwipeThreshold,
	}
}

var validate = validator.New()

// Validate reports every invalid field as a *ConfigError, joined.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, &ConfigError{Field: fe.Field(), Reason: reason(fe)})
	}
	return errors.Join(errs...)
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param() + ", got " + fmt.Sprint(fe.Value())
	case "gte":
		return "must not be less than " + fe.Param() + ", got " + fmt.Sprint(fe.Value())
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func (c Config) pruneInterval() time.Duration {
	if c.PruneInterval > 0 {
		return c.PruneInterval
	}
	return c.CacheTTL
}

func (c Config) logger() zerolog.Logger {
	if c.Logger != nil {
		return *c.Logger
	}
	return zerolog.Nop()
}

func (c Config) clock() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}
