package features

import (
	"fmt"
	"strings"
)

// Item is one tentative consumption of a usage limit. Quantity keeps the
// numeric type it was declared with so it serializes exactly as the caller
// typed it.
type Item struct {
	service    string
	usageLimit string
	quantity   any
}

// Service returns the name of the service the usage limit belongs to.
func (i Item) Service() string { return i.service }

// UsageLimit returns the usage limit identifier.
func (i Item) UsageLimit() string { return i.usageLimit }

// Quantity returns the declared quantity as one of int, int64, float32 or
// float64.
func (i Item) Quantity() any { return i.quantity }

// key formats the flat wire key the remote service expects for a usage
// limit of a service.
func (i Item) key() string {
	return strings.ToLower(i.service) + "-" + i.usageLimit
}

// Consumption is the optimistic-evaluation request payload: a non-empty set
// of tentative usage-limit consumptions, possibly spanning several services.
type Consumption struct {
	items []Item
}

// Items returns the declared consumptions in declaration order.
func (c *Consumption) Items() []Item {
	res := make([]Item, len(c.items))
	copy(res, c.items)
	return res
}

// ConsumptionBuilder accumulates typed consumption items. Methods chain and
// record the first violation; Build returns it.
type ConsumptionBuilder struct {
	items []Item
	err   error
}

// NewConsumption starts building a consumption payload.
func NewConsumption() *ConsumptionBuilder {
	return &ConsumptionBuilder{}
}

func (b *ConsumptionBuilder) add(service, usageLimit string, quantity any) {
	if b.err != nil {
		return
	}
	if strings.TrimSpace(service) == "" {
		b.err = ErrBlankService
		return
	}
	if strings.TrimSpace(usageLimit) == "" {
		b.err = fmt.Errorf("%w: service %q", ErrBlankUsageLimit, service)
		return
	}
	b.items = append(b.items, Item{service: service, usageLimit: usageLimit, quantity: quantity})
}

// AddInt declares an integer consumption of a usage limit.
func (b *ConsumptionBuilder) AddInt(service, usageLimit string, quantity int) *ConsumptionBuilder {
	b.add(service, usageLimit, quantity)
	return b
}

// AddInt64 declares a 64-bit integer consumption of a usage limit.
func (b *ConsumptionBuilder) AddInt64(service, usageLimit string, quantity int64) *ConsumptionBuilder {
	b.add(service, usageLimit, quantity)
	return b
}

// AddFloat32 declares a 32-bit floating point consumption of a usage limit.
func (b *ConsumptionBuilder) AddFloat32(service, usageLimit string, quantity float32) *ConsumptionBuilder {
	b.add(service, usageLimit, quantity)
	return b
}

// AddFloat64 declares a 64-bit floating point consumption of a usage limit.
func (b *ConsumptionBuilder) AddFloat64(service, usageLimit string, quantity float64) *ConsumptionBuilder {
	b.add(service, usageLimit, quantity)
	return b
}

// Build finalizes the payload. It fails with ErrEmptyConsumption when no
// item was declared and with the first violation recorded by earlier calls.
func (b *ConsumptionBuilder) Build() (*Consumption, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.items) == 0 {
		return nil, ErrEmptyConsumption
	}
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return &Consumption{items: items}, nil
}

// UsageLimitConsumption is the single-service variant of Consumption: every
// item consumes a usage limit of the same service.
type UsageLimitConsumption struct {
	service string
	items   []Item
}

// Service returns the lowercased service name the consumption targets.
func (c *UsageLimitConsumption) Service() string { return c.service }

// Items returns the declared consumptions in declaration order.
func (c *UsageLimitConsumption) Items() []Item {
	res := make([]Item, len(c.items))
	copy(res, c.items)
	return res
}

// UsageLimitConsumptionBuilder accumulates typed consumption items for one
// service. The service name is lowercased up front because the wire keys
// are lowercase.
type UsageLimitConsumptionBuilder struct {
	service string
	items   []Item
	err     error
}

// NewUsageLimitConsumption starts building a consumption payload for the
// given service.
func NewUsageLimitConsumption(service string) *UsageLimitConsumptionBuilder {
	return &UsageLimitConsumptionBuilder{service: strings.ToLower(service)}
}

func (b *UsageLimitConsumptionBuilder) add(usageLimit string, quantity any) {
	if b.err != nil {
		return
	}
	if strings.TrimSpace(usageLimit) == "" {
		b.err = ErrBlankUsageLimit
		return
	}
	b.items = append(b.items, Item{service: b.service, usageLimit: usageLimit, quantity: quantity})
}

// AddInt declares an integer consumption of a usage limit.
func (b *UsageLimitConsumptionBuilder) AddInt(usageLimit string, quantity int) *UsageLimitConsumptionBuilder {
	b.add(usageLimit, quantity)
	return b
}

// AddInt64 declares a 64-bit integer consumption of a usage limit.
func (b *UsageLimitConsumptionBuilder) AddInt64(usageLimit string, quantity int64) *UsageLimitConsumptionBuilder {
	b.add(usageLimit, quantity)
	return b
}

// AddFloat32 declares a 32-bit floating point consumption of a usage limit.
func (b *UsageLimitConsumptionBuilder) AddFloat32(usageLimit string, quantity float32) *UsageLimitConsumptionBuilder {
	b.add(usageLimit, quantity)
	return b
}

// AddFloat64 declares a 64-bit floating point consumption of a usage limit.
func (b *UsageLimitConsumptionBuilder) AddFloat64(usageLimit string, quantity float64) *UsageLimitConsumptionBuilder {
	b.add(usageLimit, quantity)
	return b
}

// Build finalizes the payload. It fails with ErrBlankService when the
// service name is blank and ErrEmptyConsumption when no item was declared.
func (b *UsageLimitConsumptionBuilder) Build() (*UsageLimitConsumption, error) {
	if b.err != nil {
		return nil, b.err
	}
	if strings.TrimSpace(b.service) == "" {
		return nil, ErrBlankService
	}
	if len(b.items) == 0 {
		return nil, ErrEmptyConsumption
	}
	items := make([]Item, len(b.items))
	copy(items, b.items)
	return &UsageLimitConsumption{service: b.service, items: items}, nil
}
