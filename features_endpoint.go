package space

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pgmarc/space-go/pkg/features"
	"github.com/pgmarc/space-go/pkg/logger"
)

const featuresPath = "features"

// FeaturesEndpoint wraps the /features resource: plain and optimistic
// feature evaluation, reverting a recorded optimistic consumption, and
// pricing-token generation. Every decision is made by the remote authority;
// the endpoint only encodes requests and decodes replies.
type FeaturesEndpoint struct {
	client *Client
}

// featureID formats the path segment identifying a feature of a service.
func featureID(service, feature string) string {
	return strings.ToLower(service) + "-" + feature
}

// Evaluate asks the authority whether the feature is available to the user,
// without recording any consumption.
func (e *FeaturesEndpoint) Evaluate(ctx context.Context, userID, service, feature string) (*features.FeatureEvaluationResult, error) {
	return e.evaluate(ctx, userID, service, feature, nil)
}

// EvaluateWithConsumption asks the authority whether the feature is
// available and submits a tentative consumption alongside, so availability
// is decided and usage recorded in one round trip. A granted consumption
// can be undone with Revert.
func (e *FeaturesEndpoint) EvaluateWithConsumption(ctx context.Context, userID, service, feature string, consumption *features.Consumption) (*features.FeatureEvaluationResult, error) {
	if consumption == nil {
		return nil, ErrNilRequest
	}
	body, err := json.Marshal(consumption)
	if err != nil {
		return nil, err
	}
	return e.evaluate(ctx, userID, service, feature, body)
}

// EvaluateUsageLimits is EvaluateWithConsumption for a single-service
// consumption payload.
func (e *FeaturesEndpoint) EvaluateUsageLimits(ctx context.Context, userID, service, feature string, consumption *features.UsageLimitConsumption) (*features.FeatureEvaluationResult, error) {
	if consumption == nil {
		return nil, ErrNilRequest
	}
	body, err := json.Marshal(consumption)
	if err != nil {
		return nil, err
	}
	return e.evaluate(ctx, userID, service, feature, body)
}

func (e *FeaturesEndpoint) evaluate(ctx context.Context, userID, service, feature string, body []byte) (*features.FeatureEvaluationResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	e.client.log.DebugContext(ctx, "evaluating feature",
		logger.UserID(userID),
		logger.Service(service),
		logger.Feature(feature),
	)
	endpoint := e.client.baseURL.JoinPath(featuresPath, userID, featureID(service, feature))
	status, data, err := e.client.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeAPIError(status, data)
	}
	return features.DecodeEvaluation(data, service)
}

// Revert undoes a previously recorded optimistic consumption for the
// feature, targeting either the newest or the oldest recorded value. It
// returns true when the authority acknowledged the revert; any other
// outcome is an error, never silently swallowed.
func (e *FeaturesEndpoint) Revert(ctx context.Context, userID, service, feature string, revert features.Revert) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, ErrEmptyUserID
	}
	e.client.log.DebugContext(ctx, "reverting consumption",
		logger.UserID(userID),
		logger.Service(service),
		logger.Feature(feature),
	)
	endpoint := e.client.baseURL.JoinPath(featuresPath, userID, featureID(service, feature))
	endpoint.RawQuery = url.Values{
		"revert": {"true"},
		"latest": {strconv.FormatBool(revert.Latest())},
	}.Encode()
	status, data, err := e.client.do(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, err
	}
	if status != http.StatusNoContent {
		return false, decodeAPIError(status, data)
	}
	return true, nil
}

// pricingTokenDoc is the response shape of the pricing-token resource.
type pricingTokenDoc struct {
	PricingToken string `json:"pricingToken"`
}

// PricingToken generates a pricing token scoped to the given user's
// contract, for handing the evaluation context to a front end.
func (e *FeaturesEndpoint) PricingToken(ctx context.Context, userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrEmptyUserID
	}
	endpoint := e.client.baseURL.JoinPath(featuresPath, userID, "pricing-token")
	status, data, err := e.client.do(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		return "", decodeAPIError(status, data)
	}
	var doc pricingTokenDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", errors.Join(ErrUnexpectedResponse, err)
	}
	if doc.PricingToken == "" {
		return "", errors.Join(ErrUnexpectedResponse, errors.New("missing pricing token"))
	}
	return doc.PricingToken, nil
}
