package delta

import "fmt"

// ConfigError reports invalid configuration, detected before entering the
// parallel region. Typed so callers can distinguish it from
// NegativeWeightError, validated only when Options.ValidateWeights is
// set.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

var (
	// ErrInvalidDelta: delta <= 0.
	ErrInvalidDelta = &ConfigError{"delta: delta must be > 0"}
)

// ErrSourceOutOfRange reports an out-of-range source vertex: source must
// satisfy 0 <= source < N.
func ErrSourceOutOfRange(source VID, n VID) error {
	return &ConfigError{fmt.Sprintf("delta: source %d out of range [0, %d)", source, n)}
}

// NegativeWeightError reports a negative edge weight found during upfront
// validation.
type NegativeWeightError struct {
	From, To VID
}

func (e *NegativeWeightError) Error() string {
	return fmt.Sprintf("delta: negative edge weight on edge %d->%d", e.From, e.To)
}
