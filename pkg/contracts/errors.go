package contracts

import "errors"

var (
	// Billing period validation.
	ErrInvalidInterval = errors.New("billing period start date is after end date")
	ErrInvalidRenewal  = errors.New("renewal interval must be at least one day")

	// Service composition validation.
	ErrMissingServiceName    = errors.New("service name must not be blank")
	ErrMissingServiceVersion = errors.New("service version must not be blank")
	ErrBlankPlan             = errors.New("plan must not be blank")
	ErrBlankAddOn            = errors.New("add-on name must not be blank")
	ErrInvalidQuantity       = errors.New("add-on quantity must be greater than zero")
	ErrNoEntitlements        = errors.New("service needs a plan or at least one add-on")
	ErrBuilderConsumed       = errors.New("service builder has already built its service")

	// User contact validation.
	ErrMissingUserID   = errors.New("user id must not be empty")
	ErrInvalidUsername = errors.New("username must be between 3 and 30 characters")

	// Usage level validation.
	ErrMissingUsageLimit   = errors.New("usage limit name must not be blank")
	ErrNegativeConsumption = errors.New("usage level consumption must not be negative")

	// Subscription aggregate validation.
	ErrMissingContact       = errors.New("subscription needs a user contact")
	ErrMissingBillingPeriod = errors.New("subscription needs a billing period")
	ErrNoServices           = errors.New("subscription needs at least one contracted service")
	ErrUnknownService       = errors.New("usage level references a service that is not contracted")

	// Request builder protocol violations.
	ErrServiceAlreadyOpen = errors.New("a service is already open; close it with EndService before starting another")
	ErrNoOpenService      = errors.New("no service is open; call StartService first")
	ErrUnclosedService    = errors.New("close the open service with EndService before building")

	// ErrMalformedDocument reports a subscription document whose shape does
	// not match the remote service's wire contract. Domain-level rejections
	// of a well-formed document surface as the validation errors above.
	ErrMalformedDocument = errors.New("subscription document has unexpected shape")
)
