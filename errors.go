package gesture

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every configuration error.
// Configuration errors are the only errors the pipeline returns; malformed
// input and resource pressure are absorbed.
var ErrInvalidConfig = errors.New("gesture: invalid config")

// ConfigError describes one rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// FieldOf returns the offending field of the first ConfigError in err's
// tree, or "" if there is none.
func FieldOf(err error) string {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return ""
}
