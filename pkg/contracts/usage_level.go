package contracts

import (
	"fmt"
	"strings"
	"time"
)

// UsageLevel tracks consumption against one usage limit of a contracted
// service. A usage limit is renewable when the remote service attached a
// reset timestamp to it.
//
// Zero consumption is valid; only strictly negative values are rejected.
type UsageLevel struct {
	name     string
	consumed float64
	reset    time.Time // zero means the limit never resets
}

// NewUsageLevel creates a non-renewable usage level.
func NewUsageLevel(name string, consumed float64) (UsageLevel, error) {
	if strings.TrimSpace(name) == "" {
		return UsageLevel{}, ErrMissingUsageLimit
	}
	if consumed < 0 {
		return UsageLevel{}, fmt.Errorf("%w: %q has consumed %v", ErrNegativeConsumption, name, consumed)
	}
	return UsageLevel{name: name, consumed: consumed}, nil
}

// NewRenewableUsageLevel creates a usage level that resets at the given
// timestamp.
func NewRenewableUsageLevel(name string, consumed float64, reset time.Time) (UsageLevel, error) {
	l, err := NewUsageLevel(name, consumed)
	if err != nil {
		return UsageLevel{}, err
	}
	l.reset = reset.UTC()
	return l, nil
}

// Name returns the usage limit identifier.
func (l UsageLevel) Name() string { return l.name }

// Consumed returns the recorded consumption.
func (l UsageLevel) Consumed() float64 { return l.consumed }

// IsRenewable reports whether the usage limit has a reset timestamp.
func (l UsageLevel) IsRenewable() bool { return !l.reset.IsZero() }

// ResetTimestamp returns the UTC instant the limit resets at. The boolean
// is false for non-renewable limits.
func (l UsageLevel) ResetTimestamp() (time.Time, bool) {
	return l.reset, l.IsRenewable()
}

// Equal reports whether both usage levels record the same consumption for
// the same limit with the same reset policy.
func (l UsageLevel) Equal(other UsageLevel) bool {
	return l.name == other.name && l.consumed == other.consumed && l.reset.Equal(other.reset)
}
