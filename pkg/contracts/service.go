package contracts

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// AddOn is a named add-on entitlement with a purchased quantity.
type AddOn struct {
	Name     string
	Quantity int64
}

// Service is one priced product a user is contracted to, identified by name
// and version and composed of an optional plan and zero or more add-ons.
// A service must carry a plan or at least one add-on; ServiceBuilder
// enforces this, so a zero Service value is not a valid service.
type Service struct {
	name    string
	version string
	plan    string // empty means no plan
	addOns  map[string]AddOn
}

// Name returns the service name.
func (s Service) Name() string { return s.name }

// Version returns the contracted pricing version.
func (s Service) Version() string { return s.version }

// Plan returns the contracted plan. The boolean is false when the service
// is contracted through add-ons only.
func (s Service) Plan() (string, bool) { return s.plan, s.plan != "" }

// AddOn returns the add-on with the given name.
func (s Service) AddOn(name string) (AddOn, bool) {
	a, ok := s.addOns[name]
	return a, ok
}

// AddOns returns the contracted add-ons sorted by name.
func (s Service) AddOns() []AddOn {
	res := make([]AddOn, 0, len(s.addOns))
	for _, a := range s.addOns {
		res = append(res, a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Equal reports whether both services have the same name, version, plan and
// add-on set.
func (s Service) Equal(other Service) bool {
	return s.name == other.name && s.version == other.version &&
		s.plan == other.plan && maps.Equal(s.addOns, other.addOns)
}

func (s Service) String() string {
	return fmt.Sprintf("%s:%s plan=%q addOns=%d", s.name, s.version, s.plan, len(s.addOns))
}

// ServiceBuilder assembles a Service. Methods chain and record the first
// violation; Build returns it. A builder produces at most one service.
type ServiceBuilder struct {
	name    string
	version string
	plan    string
	addOns  map[string]AddOn
	err     error
	built   bool
}

// NewService starts building a service with the given name and pricing
// version.
func NewService(name, version string) *ServiceBuilder {
	return &ServiceBuilder{name: name, version: version, addOns: make(map[string]AddOn)}
}

func (b *ServiceBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Plan sets the contracted plan. A blank plan is a violation.
func (b *ServiceBuilder) Plan(plan string) *ServiceBuilder {
	if strings.TrimSpace(plan) == "" {
		b.fail(ErrBlankPlan)
		return b
	}
	b.plan = plan
	return b
}

// AddOn contracts quantity units of the named add-on. Re-adding the same
// name replaces the previous quantity.
func (b *ServiceBuilder) AddOn(name string, quantity int64) *ServiceBuilder {
	if strings.TrimSpace(name) == "" {
		b.fail(ErrBlankAddOn)
		return b
	}
	if quantity <= 0 {
		b.fail(fmt.Errorf("%w: %q has quantity %d", ErrInvalidQuantity, name, quantity))
		return b
	}
	b.addOns[name] = AddOn{Name: name, Quantity: quantity}
	return b
}

// Build finalizes the service. It fails with ErrNoEntitlements when neither
// a plan nor any add-on was set, and with the first violation recorded by
// earlier calls.
func (b *ServiceBuilder) Build() (Service, error) {
	if b.err != nil {
		return Service{}, b.err
	}
	if b.built {
		return Service{}, ErrBuilderConsumed
	}
	if strings.TrimSpace(b.name) == "" {
		return Service{}, ErrMissingServiceName
	}
	if strings.TrimSpace(b.version) == "" {
		return Service{}, fmt.Errorf("%w: service %q", ErrMissingServiceVersion, b.name)
	}
	if b.plan == "" && len(b.addOns) == 0 {
		return Service{}, fmt.Errorf("%w: service %q", ErrNoEntitlements, b.name)
	}
	b.built = true
	return Service{
		name:    b.name,
		version: b.version,
		plan:    b.plan,
		addOns:  maps.Clone(b.addOns),
	}, nil
}
