package contracts

import (
	"encoding/json"
	"errors"
	"time"
)

// Wire documents exchanged with the remote service. The json tags below are
// the single source of truth for the field names; both directions of the
// codec go through these structs.

type userContactDoc struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type billingPeriodDoc struct {
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	AutoRenew   bool      `json:"autoRenew"`
	RenewalDays *int      `json:"renewalDays,omitempty"`
}

// renewalDoc is the billingPeriod shape of outbound requests: the interval
// itself is assigned by the remote service, so only the renewal policy is
// submitted.
type renewalDoc struct {
	AutoRenew   bool `json:"autoRenew"`
	RenewalDays *int `json:"renewalDays,omitempty"`
}

// servicesDoc is the service/plan/add-on triad shared by subscription
// documents, request payloads and history entries.
type servicesDoc struct {
	ContractedServices map[string]string           `json:"contractedServices"`
	SubscriptionPlans  map[string]string           `json:"subscriptionPlans"`
	SubscriptionAddOns map[string]map[string]int64 `json:"subscriptionAddOns"`
}

type usageLevelDoc struct {
	Consumed       float64    `json:"consumed"`
	ResetTimestamp *time.Time `json:"resetTimeStamp,omitempty"`
}

type snapshotDoc struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	servicesDoc
}

type subscriptionDoc struct {
	UserContact   userContactDoc   `json:"userContact"`
	BillingPeriod billingPeriodDoc `json:"billingPeriod"`
	servicesDoc
	UsageLevels map[string]map[string]usageLevelDoc `json:"usageLevels"`
	History     []snapshotDoc                       `json:"history"`
}

type subscriptionRequestDoc struct {
	UserContact   userContactDoc `json:"userContact"`
	BillingPeriod renewalDoc     `json:"billingPeriod"`
	servicesDoc
}

func contactToDoc(c UserContact) userContactDoc {
	return userContactDoc{
		UserID:    c.userID,
		Username:  c.username,
		FirstName: c.firstName,
		LastName:  c.lastName,
		Email:     c.email,
		Phone:     c.phone,
	}
}

func servicesToDoc(services []Service) servicesDoc {
	doc := servicesDoc{
		ContractedServices: make(map[string]string, len(services)),
		SubscriptionPlans:  make(map[string]string),
		SubscriptionAddOns: make(map[string]map[string]int64, len(services)),
	}
	for _, svc := range services {
		doc.ContractedServices[svc.name] = svc.version
		if plan, ok := svc.Plan(); ok {
			doc.SubscriptionPlans[svc.name] = plan
		}
		addOns := make(map[string]int64, len(svc.addOns))
		for name, a := range svc.addOns {
			addOns[name] = a.Quantity
		}
		doc.SubscriptionAddOns[svc.name] = addOns
	}
	return doc
}

// MarshalJSON encodes the request into the submission document the remote
// service expects.
func (r *SubscriptionRequest) MarshalJSON() ([]byte, error) {
	doc := subscriptionRequestDoc{
		UserContact: contactToDoc(r.contact),
		servicesDoc: servicesToDoc(r.Services()),
	}
	if days, ok := r.RenewalDays(); ok {
		doc.BillingPeriod = renewalDoc{AutoRenew: true, RenewalDays: &days}
	}
	return json.Marshal(doc)
}

// MarshalJSON encodes the update into the service/plan/add-on triad the
// remote service expects.
func (r *SubscriptionUpdateRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(servicesToDoc(r.Services()))
}

// DecodeSubscription parses a subscription document and rebuilds the
// aggregate through the same builders local construction uses, so a remote
// document is held to the same invariants. Documents that do not match the
// wire shape fail with ErrMalformedDocument; well-formed documents that
// violate a domain invariant fail with that invariant's error.
func DecodeSubscription(data []byte) (*Subscription, error) {
	var doc subscriptionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformedDocument, err)
	}
	if doc.UserContact == (userContactDoc{}) {
		return nil, errors.Join(ErrMalformedDocument, errors.New("missing user contact"))
	}
	if doc.ContractedServices == nil || doc.SubscriptionPlans == nil || doc.SubscriptionAddOns == nil {
		return nil, errors.Join(ErrMalformedDocument, errors.New("missing service sections"))
	}
	if doc.BillingPeriod.StartDate.IsZero() || doc.BillingPeriod.EndDate.IsZero() {
		return nil, errors.Join(ErrMalformedDocument, errors.New("missing billing period"))
	}

	contact, err := contactFromDoc(doc.UserContact)
	if err != nil {
		return nil, err
	}
	period, err := periodFromDoc(doc.BillingPeriod)
	if err != nil {
		return nil, err
	}
	services, err := servicesFromDoc(doc.servicesDoc)
	if err != nil {
		return nil, err
	}

	builder := NewSubscription(contact, period)
	for _, svc := range services {
		builder.Subscribe(svc)
	}
	for serviceName, levels := range doc.UsageLevels {
		for limitName, levelDoc := range levels {
			level, err := usageLevelFromDoc(limitName, levelDoc)
			if err != nil {
				return nil, err
			}
			builder.AddUsageLevel(serviceName, level)
		}
	}
	for _, snapDoc := range doc.History {
		snapServices, err := servicesFromDoc(snapDoc.servicesDoc)
		if err != nil {
			return nil, err
		}
		builder.AddSnapshot(NewSnapshot(snapDoc.StartDate, snapDoc.EndDate, snapServices))
	}
	return builder.Build()
}

func contactFromDoc(doc userContactDoc) (UserContact, error) {
	return NewUserContact(doc.UserID, doc.Username).
		FirstName(doc.FirstName).
		LastName(doc.LastName).
		Email(doc.Email).
		Phone(doc.Phone).
		Build()
}

func periodFromDoc(doc billingPeriodDoc) (BillingPeriod, error) {
	if doc.RenewalDays != nil && *doc.RenewalDays > 0 {
		return NewRenewableBillingPeriod(doc.StartDate, doc.EndDate, *doc.RenewalDays)
	}
	return NewBillingPeriod(doc.StartDate, doc.EndDate)
}

func servicesFromDoc(doc servicesDoc) (map[string]Service, error) {
	services := make(map[string]Service, len(doc.ContractedServices))
	for name, version := range doc.ContractedServices {
		builder := NewService(name, version)
		if plan, ok := doc.SubscriptionPlans[name]; ok {
			builder.Plan(plan)
		}
		for addOnName, quantity := range doc.SubscriptionAddOns[name] {
			builder.AddOn(addOnName, quantity)
		}
		svc, err := builder.Build()
		if err != nil {
			return nil, err
		}
		services[name] = svc
	}
	return services, nil
}

func usageLevelFromDoc(name string, doc usageLevelDoc) (UsageLevel, error) {
	if doc.ResetTimestamp != nil {
		return NewRenewableUsageLevel(name, doc.Consumed, *doc.ResetTimestamp)
	}
	return NewUsageLevel(name, doc.Consumed)
}
