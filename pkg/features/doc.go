// Package features models the feature-evaluation protocol of the remote
// pricing service: the consumption payloads submitted alongside an
// optimistic feature check, the authority's evaluation result, and the
// revert choice for undoing a recorded optimistic consumption.
//
// A plain evaluation and an optimistic evaluation are two distinct request
// shapes against the same endpoint; the decision is always made by the
// remote authority. This package only builds the payloads and parses the
// replies:
//
//	consumption, err := features.NewUsageLimitConsumption("Zoom").
//		AddInt("apiCalls", 1).
//		Build()
//
// serializes as {"zoom-apiCalls": 1}. The authority's reply decodes with
// DecodeEvaluation, which strips the lowercase service-name prefix from the
// quota keys so limits are addressed by their bare identifier.
//
// Authority-reported failures (feature not found, type mismatch, parse
// error, invalid expected consumption, general) are terminal for the call
// and surface as *EvaluationError with the original code and message; the
// client never retries on its own.
package features
