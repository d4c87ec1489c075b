package features

import (
	"encoding/json"
	"errors"
)

// evaluationDoc is the authority's response shape. The json tags are the
// single source of truth for the field names.
type evaluationDoc struct {
	Eval  bool                `json:"eval"`
	Used  map[string]float64  `json:"used"`
	Limit map[string]float64  `json:"limit"`
	Error *evaluationErrorDoc `json:"error"`
}

type evaluationErrorDoc struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MarshalJSON encodes the consumption as the flat
// "<service>-<usageLimit>": quantity object the remote service expects.
// Service names are lowercased in the keys.
func (c *Consumption) MarshalJSON() ([]byte, error) {
	return marshalItems(c.items)
}

// MarshalJSON encodes the single-service consumption in the same flat
// object shape as Consumption.
func (c *UsageLimitConsumption) MarshalJSON() ([]byte, error) {
	return marshalItems(c.items)
}

func marshalItems(items []Item) ([]byte, error) {
	doc := make(map[string]any, len(items))
	for _, item := range items {
		doc[item.key()] = item.quantity
	}
	return json.Marshal(doc)
}

// DecodeEvaluation parses an evaluation response for the given service.
// Keys in the used/limit maps arrive prefixed with the lowercased service
// name; the prefix is stripped using the service-name length so callers
// address limits by their bare identifier.
//
// An error object in the document surfaces as *EvaluationError carrying the
// authority's code and message. Documents that do not match the wire shape
// fail with ErrMalformedEvaluation.
func DecodeEvaluation(data []byte, service string) (*FeatureEvaluationResult, error) {
	var doc evaluationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformedEvaluation, err)
	}
	if doc.Error != nil {
		evalErr, err := newEvaluationError(doc.Error.Code, doc.Error.Message)
		if err != nil {
			return nil, err
		}
		return nil, evalErr
	}
	prefixLen := len(service) + 1 // "<service>-"
	return newFeatureEvaluationResult(
		doc.Eval,
		stripKeyPrefix(doc.Used, prefixLen),
		stripKeyPrefix(doc.Limit, prefixLen),
	), nil
}

func stripKeyPrefix(m map[string]float64, prefixLen int) map[string]float64 {
	if m == nil {
		return nil
	}
	res := make(map[string]float64, len(m))
	for key, v := range m {
		if len(key) > prefixLen {
			key = key[prefixLen:]
		}
		res[key] = v
	}
	return res
}
