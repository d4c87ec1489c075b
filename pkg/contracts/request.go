package contracts

import (
	"fmt"
	"maps"
	"sort"
)

// builderState tags the request builders' nested-service protocol. Only one
// service may be open at a time; the explicit tag keeps illegal transitions
// checkable instead of hiding the state in a nillable field.
type builderState uint8

const (
	stateIdle builderState = iota
	stateServiceOpen
)

// serviceStager implements the one-open-service-at-a-time staging protocol
// shared by SubscriptionRequestBuilder and SubscriptionUpdateRequestBuilder.
// The first protocol violation is recorded and reported by the owning
// builder's Build.
type serviceStager struct {
	state    builderState
	open     *ServiceBuilder
	services map[string]Service
	err      error
}

func newServiceStager() serviceStager {
	return serviceStager{services: make(map[string]Service)}
}

func (s *serviceStager) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

func (s *serviceStager) subscribe(service Service) {
	if service.name == "" {
		s.fail(ErrMissingServiceName)
		return
	}
	s.services[service.name] = service
}

func (s *serviceStager) subscribeAll(services []Service) {
	if len(services) == 0 {
		s.fail(ErrNoServices)
		return
	}
	for _, svc := range services {
		s.subscribe(svc)
	}
}

func (s *serviceStager) startService(name, version string) {
	if s.state == stateServiceOpen {
		s.fail(fmt.Errorf("%w: %q is still open", ErrServiceAlreadyOpen, s.open.name))
		return
	}
	s.open = NewService(name, version)
	s.state = stateServiceOpen
}

func (s *serviceStager) plan(plan string) {
	if s.state != stateServiceOpen {
		s.fail(fmt.Errorf("%w: cannot set plan %q", ErrNoOpenService, plan))
		return
	}
	s.open.Plan(plan)
}

func (s *serviceStager) addOn(name string, quantity int64) {
	if s.state != stateServiceOpen {
		s.fail(fmt.Errorf("%w: cannot set add-on %q", ErrNoOpenService, name))
		return
	}
	s.open.AddOn(name, quantity)
}

func (s *serviceStager) endService() {
	if s.state != stateServiceOpen {
		s.fail(ErrNoOpenService)
		return
	}
	svc, err := s.open.Build()
	if err != nil {
		s.fail(err)
	} else {
		s.subscribe(svc)
	}
	s.open = nil
	s.state = stateIdle
}

// finish validates the terminal state and hands over the staged services.
func (s *serviceStager) finish() (map[string]Service, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.state == stateServiceOpen {
		return nil, fmt.Errorf("%w: %q is still open", ErrUnclosedService, s.open.name)
	}
	if len(s.services) == 0 {
		return nil, ErrNoServices
	}
	return maps.Clone(s.services), nil
}

// SubscriptionRequest is the client-side payload for contracting a new
// subscription. It exists only to be serialized into a submission and
// discarded once sent.
type SubscriptionRequest struct {
	contact     UserContact
	services    map[string]Service
	renewalDays int
}

// Contact returns the contact the subscription is requested for.
func (r *SubscriptionRequest) Contact() UserContact { return r.contact }

// RenewalDays returns the requested renewal interval in days. The boolean
// is false when no auto-renewal was requested.
func (r *SubscriptionRequest) RenewalDays() (int, bool) {
	return r.renewalDays, r.renewalDays > 0
}

// Services returns the requested services sorted by name.
func (r *SubscriptionRequest) Services() []Service {
	return sortedServices(r.services)
}

// SubscriptionRequestBuilder stages a multi-service submission. Services
// are either subscribed pre-built or declared inline between StartService
// and EndService; only one service may be open at a time.
type SubscriptionRequestBuilder struct {
	contact     UserContact
	stager      serviceStager
	renewalDays int
}

// NewSubscriptionRequest starts building a subscription request for the
// given contact.
func NewSubscriptionRequest(contact UserContact) *SubscriptionRequestBuilder {
	return &SubscriptionRequestBuilder{contact: contact, stager: newServiceStager()}
}

// Subscribe adds a pre-built service to the request.
func (b *SubscriptionRequestBuilder) Subscribe(service Service) *SubscriptionRequestBuilder {
	b.stager.subscribe(service)
	return b
}

// SubscribeAll adds every service in the collection. An empty collection is
// a violation.
func (b *SubscriptionRequestBuilder) SubscribeAll(services []Service) *SubscriptionRequestBuilder {
	b.stager.subscribeAll(services)
	return b
}

// RenewInDays requests auto-renewal every days days.
func (b *SubscriptionRequestBuilder) RenewInDays(days int) *SubscriptionRequestBuilder {
	if days <= 0 {
		b.stager.fail(fmt.Errorf("%w: got %d", ErrInvalidRenewal, days))
		return b
	}
	b.renewalDays = days
	return b
}

// StartService opens an inline service declaration. It is a violation if
// another service is already open.
func (b *SubscriptionRequestBuilder) StartService(name, version string) *SubscriptionRequestBuilder {
	b.stager.startService(name, version)
	return b
}

// Plan sets the plan of the open service. It is a violation when no service
// is open.
func (b *SubscriptionRequestBuilder) Plan(plan string) *SubscriptionRequestBuilder {
	b.stager.plan(plan)
	return b
}

// AddOn adds an add-on to the open service. It is a violation when no
// service is open.
func (b *SubscriptionRequestBuilder) AddOn(name string, quantity int64) *SubscriptionRequestBuilder {
	b.stager.addOn(name, quantity)
	return b
}

// EndService finalizes the open service and returns the builder to the idle
// state.
func (b *SubscriptionRequestBuilder) EndService() *SubscriptionRequestBuilder {
	b.stager.endService()
	return b
}

// Build finalizes the request. It fails with ErrUnclosedService when a
// service is still open, ErrMissingContact when the contact is absent,
// ErrNoServices when nothing was subscribed, and with the first violation
// recorded by earlier calls.
func (b *SubscriptionRequestBuilder) Build() (*SubscriptionRequest, error) {
	services, err := b.stager.finish()
	if err != nil {
		return nil, err
	}
	if b.contact.isZero() {
		return nil, ErrMissingContact
	}
	return &SubscriptionRequest{
		contact:     b.contact,
		services:    services,
		renewalDays: b.renewalDays,
	}, nil
}

// SubscriptionUpdateRequest is the client-side payload for replacing the
// service set of an existing subscription.
type SubscriptionUpdateRequest struct {
	services map[string]Service
}

// Services returns the requested services sorted by name.
func (r *SubscriptionUpdateRequest) Services() []Service {
	return sortedServices(r.services)
}

// SubscriptionUpdateRequestBuilder stages the service set of an update
// submission with the same one-open-service protocol as
// SubscriptionRequestBuilder.
type SubscriptionUpdateRequestBuilder struct {
	stager serviceStager
}

// NewSubscriptionUpdateRequest starts building an update request.
func NewSubscriptionUpdateRequest() *SubscriptionUpdateRequestBuilder {
	return &SubscriptionUpdateRequestBuilder{stager: newServiceStager()}
}

// Subscribe adds a pre-built service to the request.
func (b *SubscriptionUpdateRequestBuilder) Subscribe(service Service) *SubscriptionUpdateRequestBuilder {
	b.stager.subscribe(service)
	return b
}

// SubscribeAll adds every service in the collection. An empty collection is
// a violation.
func (b *SubscriptionUpdateRequestBuilder) SubscribeAll(services []Service) *SubscriptionUpdateRequestBuilder {
	b.stager.subscribeAll(services)
	return b
}

// StartService opens an inline service declaration.
func (b *SubscriptionUpdateRequestBuilder) StartService(name, version string) *SubscriptionUpdateRequestBuilder {
	b.stager.startService(name, version)
	return b
}

// Plan sets the plan of the open service.
func (b *SubscriptionUpdateRequestBuilder) Plan(plan string) *SubscriptionUpdateRequestBuilder {
	b.stager.plan(plan)
	return b
}

// AddOn adds an add-on to the open service.
func (b *SubscriptionUpdateRequestBuilder) AddOn(name string, quantity int64) *SubscriptionUpdateRequestBuilder {
	b.stager.addOn(name, quantity)
	return b
}

// EndService finalizes the open service.
func (b *SubscriptionUpdateRequestBuilder) EndService() *SubscriptionUpdateRequestBuilder {
	b.stager.endService()
	return b
}

// Build finalizes the update request under the same terminal-state rules as
// SubscriptionRequestBuilder.Build, minus the contact requirement.
func (b *SubscriptionUpdateRequestBuilder) Build() (*SubscriptionUpdateRequest, error) {
	services, err := b.stager.finish()
	if err != nil {
		return nil, err
	}
	return &SubscriptionUpdateRequest{services: services}, nil
}

func sortedServices(m map[string]Service) []Service {
	res := make([]Service, 0, len(m))
	for _, svc := range m {
		res = append(res, svc)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].name < res[j].name })
	return res
}
