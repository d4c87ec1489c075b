package contracts

import (
	"fmt"
	"time"
)

// BillingPeriod is the validated time window a subscription is contracted
// for, with an optional auto-renewal policy. The renewal interval is kept in
// whole days because that is the unit the remote service speaks on the wire.
//
// Both boundaries are normalized to UTC on construction so interval checks
// never depend on the caller's offset.
type BillingPeriod struct {
	start       time.Time
	end         time.Time
	renewalDays int // 0 means not auto-renewable
}

// NewBillingPeriod creates a billing period without auto-renewal.
// It returns ErrInvalidInterval when start is after end.
func NewBillingPeriod(start, end time.Time) (BillingPeriod, error) {
	start, end = start.UTC(), end.UTC()
	if start.After(end) {
		return BillingPeriod{}, fmt.Errorf("%w: %s > %s", ErrInvalidInterval,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return BillingPeriod{start: start, end: end}, nil
}

// NewRenewableBillingPeriod creates an auto-renewable billing period.
// The renewal interval must be strictly positive.
func NewRenewableBillingPeriod(start, end time.Time, renewalDays int) (BillingPeriod, error) {
	p, err := NewBillingPeriod(start, end)
	if err != nil {
		return BillingPeriod{}, err
	}
	return p.withRenewal(renewalDays)
}

// withRenewal returns a copy of the period with the given renewal interval.
// Renewal is build-time configuration; finalized subscriptions never mutate
// their period.
func (p BillingPeriod) withRenewal(renewalDays int) (BillingPeriod, error) {
	if renewalDays <= 0 {
		return BillingPeriod{}, fmt.Errorf("%w: got %d", ErrInvalidRenewal, renewalDays)
	}
	p.renewalDays = renewalDays
	return p, nil
}

// Start returns the UTC start of the period.
func (p BillingPeriod) Start() time.Time { return p.start }

// End returns the UTC end of the period.
func (p BillingPeriod) End() time.Time { return p.end }

// IsAutoRenewable reports whether a renewal interval is configured.
func (p BillingPeriod) IsAutoRenewable() bool { return p.renewalDays > 0 }

// RenewalDays returns the renewal interval in days. The boolean is false
// when the period does not auto-renew.
func (p BillingPeriod) RenewalDays() (int, bool) {
	return p.renewalDays, p.IsAutoRenewable()
}

// IsActive reports whether t falls within the period. Both boundaries are
// inclusive.
func (p BillingPeriod) IsActive(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.start) && !t.After(p.end)
}

// IsExpired reports whether t is strictly after the end of the period.
func (p BillingPeriod) IsExpired(t time.Time) bool {
	return t.UTC().After(p.end)
}

// RenewalDate returns end + renewal interval. The boolean is false when the
// period does not auto-renew.
func (p BillingPeriod) RenewalDate() (time.Time, bool) {
	if !p.IsAutoRenewable() {
		return time.Time{}, false
	}
	return p.end.AddDate(0, 0, p.renewalDays), true
}

// Equal reports whether both periods cover the same instants with the same
// renewal policy.
func (p BillingPeriod) Equal(other BillingPeriod) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end) &&
		p.renewalDays == other.renewalDays
}

func (p BillingPeriod) String() string {
	return fmt.Sprintf("from %s to %s, renews in %d days",
		p.start.Format(time.RFC3339), p.end.Format(time.RFC3339), p.renewalDays)
}

// isZero reports whether the period was never constructed. Used by the
// subscription builder to detect a missing billing period.
func (p BillingPeriod) isZero() bool {
	return p.start.IsZero() && p.end.IsZero() && p.renewalDays == 0
}
