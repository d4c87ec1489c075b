package contracts

import (
	"fmt"
	"maps"
	"sort"
	"time"
)

// Subscription is the aggregate binding a user to one or more contracted
// services for a billing interval, together with per-service usage levels
// and the history of prior contract states.
//
// A subscription is immutable once built. Renewing or updating a contract
// produces a new instance from the remote service's response, with the
// previous state captured as a Snapshot in the new instance's history.
type Subscription struct {
	contact     UserContact
	period      BillingPeriod
	services    map[string]Service
	usageLevels map[string]map[string]UsageLevel
	history     []Snapshot
}

// UserID returns the external user key of the subscription owner.
func (s *Subscription) UserID() string { return s.contact.userID }

// Username returns the username of the subscription owner.
func (s *Subscription) Username() string { return s.contact.username }

// Contact returns the owner's contact details.
func (s *Subscription) Contact() UserContact { return s.contact }

// BillingPeriod returns the contracted billing period.
func (s *Subscription) BillingPeriod() BillingPeriod { return s.period }

// StartDate returns the UTC start of the billing period.
func (s *Subscription) StartDate() time.Time { return s.period.start }

// EndDate returns the UTC end of the billing period.
func (s *Subscription) EndDate() time.Time { return s.period.end }

// IsAutoRenewable reports whether the subscription renews automatically.
func (s *Subscription) IsAutoRenewable() bool { return s.period.IsAutoRenewable() }

// RenewalDays returns the renewal interval in days. The boolean is false
// when the subscription does not auto-renew.
func (s *Subscription) RenewalDays() (int, bool) { return s.period.RenewalDays() }

// RenewalDate returns the instant the subscription renews at. The boolean
// is false when the subscription does not auto-renew.
func (s *Subscription) RenewalDate() (time.Time, bool) { return s.period.RenewalDate() }

// IsActive reports whether t falls within the billing period, boundaries
// inclusive.
func (s *Subscription) IsActive(t time.Time) bool { return s.period.IsActive(t) }

// IsExpired reports whether t is strictly after the billing period.
func (s *Subscription) IsExpired(t time.Time) bool { return s.period.IsExpired(t) }

// Service returns the contracted service with the given name.
func (s *Subscription) Service(name string) (Service, bool) {
	svc, ok := s.services[name]
	return svc, ok
}

// Services returns the contracted services sorted by name.
func (s *Subscription) Services() []Service {
	res := make([]Service, 0, len(s.services))
	for _, svc := range s.services {
		res = append(res, svc)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].name < res[j].name })
	return res
}

// ServicesMap returns a copy of the serviceName -> Service mapping.
func (s *Subscription) ServicesMap() map[string]Service {
	return maps.Clone(s.services)
}

// UsageLevel returns the usage level recorded for the given service and
// usage limit.
func (s *Subscription) UsageLevel(serviceName, limitName string) (UsageLevel, bool) {
	l, ok := s.usageLevels[serviceName][limitName]
	return l, ok
}

// UsageLevels returns a copy of the serviceName -> limitName -> UsageLevel
// mapping.
func (s *Subscription) UsageLevels() map[string]map[string]UsageLevel {
	res := make(map[string]map[string]UsageLevel, len(s.usageLevels))
	for name, levels := range s.usageLevels {
		res[name] = maps.Clone(levels)
	}
	return res
}

// History returns the recorded prior contract states in insertion order,
// chronological by convention.
func (s *Subscription) History() []Snapshot {
	res := make([]Snapshot, len(s.history))
	copy(res, s.history)
	return res
}

// Snapshot returns a frozen projection of this subscription's interval and
// service set, suitable for the history of the subscription that replaces
// it.
func (s *Subscription) Snapshot() Snapshot {
	return NewSnapshot(s.period.start, s.period.end, s.services)
}

// SubscriptionBuilder assembles a Subscription, either from a locally
// composed request flow or from a deserialized remote document. Methods
// chain and record the first violation; Build returns it. Builders are not
// safe for concurrent use.
type SubscriptionBuilder struct {
	contact     UserContact
	period      BillingPeriod
	services    map[string]Service
	usageLevels map[string]map[string]UsageLevel
	history     []Snapshot
	err         error
}

// NewSubscription starts building a subscription for the given contact and
// billing period.
func NewSubscription(contact UserContact, period BillingPeriod) *SubscriptionBuilder {
	return &SubscriptionBuilder{
		contact:     contact,
		period:      period,
		services:    make(map[string]Service),
		usageLevels: make(map[string]map[string]UsageLevel),
	}
}

func (b *SubscriptionBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Subscribe contracts the given service. Subscribing a service with a name
// already present replaces it; a zero or unbuilt service is a violation.
func (b *SubscriptionBuilder) Subscribe(service Service) *SubscriptionBuilder {
	if service.name == "" {
		b.fail(ErrMissingServiceName)
		return b
	}
	b.services[service.name] = service
	return b
}

// SubscribeAll contracts every service in the collection.
func (b *SubscriptionBuilder) SubscribeAll(services []Service) *SubscriptionBuilder {
	for _, svc := range services {
		b.Subscribe(svc)
	}
	return b
}

// RenewInDays configures auto-renewal on the billing period. A non-positive
// interval is a violation.
func (b *SubscriptionBuilder) RenewInDays(days int) *SubscriptionBuilder {
	period, err := b.period.withRenewal(days)
	if err != nil {
		b.fail(err)
		return b
	}
	b.period = period
	return b
}

// AddUsageLevel records a usage level for an already contracted service.
// Referencing an unknown service is a violation; registering the same
// (service, limit) pair twice is a no-op.
func (b *SubscriptionBuilder) AddUsageLevel(serviceName string, level UsageLevel) *SubscriptionBuilder {
	if _, ok := b.services[serviceName]; !ok {
		b.fail(fmt.Errorf("%w: %q", ErrUnknownService, serviceName))
		return b
	}
	levels, ok := b.usageLevels[serviceName]
	if !ok {
		levels = make(map[string]UsageLevel)
		b.usageLevels[serviceName] = levels
	}
	if _, exists := levels[level.name]; exists {
		return b
	}
	levels[level.name] = level
	return b
}

// AddSnapshot appends a prior contract state to the history. Order is
// insertion order; the history is never re-sorted.
func (b *SubscriptionBuilder) AddSnapshot(snapshot Snapshot) *SubscriptionBuilder {
	b.history = append(b.history, snapshot)
	return b
}

// AddSnapshots appends prior contract states in the given order.
func (b *SubscriptionBuilder) AddSnapshots(snapshots []Snapshot) *SubscriptionBuilder {
	b.history = append(b.history, snapshots...)
	return b
}

// Build finalizes the subscription. It fails with the first recorded
// violation, with ErrMissingContact or ErrMissingBillingPeriod when a
// required component is absent, and with ErrNoServices when nothing was
// subscribed.
func (b *SubscriptionBuilder) Build() (*Subscription, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.contact.isZero() {
		return nil, ErrMissingContact
	}
	if b.period.isZero() {
		return nil, ErrMissingBillingPeriod
	}
	if len(b.services) == 0 {
		return nil, ErrNoServices
	}
	usageLevels := make(map[string]map[string]UsageLevel, len(b.usageLevels))
	for name, levels := range b.usageLevels {
		usageLevels[name] = maps.Clone(levels)
	}
	history := make([]Snapshot, len(b.history))
	copy(history, b.history)
	return &Subscription{
		contact:     b.contact,
		period:      b.period,
		services:    maps.Clone(b.services),
		usageLevels: usageLevels,
		history:     history,
	}, nil
}
