// Package space is a client SDK for the SPACE pricing and subscription
// management service. It builds and validates subscription contracts,
// submits them over the service's REST API, and runs feature evaluations
// with optimistic usage consumption.
//
// The domain model lives in pkg/contracts and pkg/features; this package
// holds the thin transport layer: configuration, the HTTP client, and the
// two endpoint wrappers.
//
// # Quick start
//
//	cfg, err := space.LoadConfig() // SPACE_API_KEY, SPACE_HOST, ...
//	if err != nil {
//	    return err
//	}
//	client, err := space.New(cfg)
//	if err != nil {
//	    return err
//	}
//
//	contact, err := contracts.NewUserContact("u1", "alice").Build()
//	req, err := contracts.NewSubscriptionRequest(contact).
//	    StartService("zoom", "2025").
//	    Plan("ENTERPRISE").
//	    AddOn("extraSeats", 2).
//	    EndService().
//	    Build()
//	sub, err := client.Contracts().Add(ctx, req)
//
// Feature checks are a separate round trip:
//
//	consumption, err := features.NewUsageLimitConsumption("zoom").
//	    AddInt("apiCalls", 1).
//	    Build()
//	res, err := client.Features().EvaluateUsageLimits(ctx, userID, "zoom", "recording", consumption)
//	if err == nil && !res.Available() {
//	    // feature denied; the recorded consumption can be undone:
//	    _, err = client.Features().Revert(ctx, userID, "zoom", "recording", features.RevertNewest)
//	}
//
// All remote rejections surface as *APIError or *features.EvaluationError
// with the service's original status, code and message; the client never
// retries on its own.
package space
