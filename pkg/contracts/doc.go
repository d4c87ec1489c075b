// Package contracts models a customer's subscription to a priced service
// catalog: the billing period, the contracted services with their plans and
// add-ons, per-service usage levels, and the history of prior contract
// states.
//
// The package is a faithful client-side representation of state owned by a
// remote pricing service. Every type is an immutable value object built
// through a validating builder; the same invariants apply whether an
// aggregate is composed locally or rebuilt from a remote document, so no
// invalid contract state can exist in memory.
//
// # Construction
//
// Value objects validate at construction and builders report the first
// violation when Build is called; no partial objects are ever returned:
//
//	service, err := contracts.NewService("zoom", "2025").
//		Plan("ENTERPRISE").
//		AddOn("extraSeats", 2).
//		Build()
//
//	contact, err := contracts.NewUserContact("u1", "alice").Build()
//
//	period, err := contracts.NewBillingPeriod(start, end)
//
//	sub, err := contracts.NewSubscription(contact, period).
//		Subscribe(service).
//		Build()
//
// # Request staging
//
// SubscriptionRequestBuilder and SubscriptionUpdateRequestBuilder stage the
// outbound submission payloads. They support declaring a service inline
// without a pre-built Service value, under a strict protocol: StartService
// opens a nested declaration, Plan and AddOn configure it, EndService closes
// it, and only one service may be open at a time. The protocol prevents two
// services' configuration calls from interleaving.
//
// # Wire format
//
// MarshalJSON on the request types and DecodeSubscription produce and
// consume the remote service's document shape. The JSON field names are a
// compatibility surface and are declared once, on the wire document structs
// in this package.
//
// Builders are intended for one construction sequence by one caller and are
// not safe for concurrent use.
package contracts
