package space

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pgmarc/space-go/pkg/contracts"
)

const contractsPath = "contracts"

// ContractsEndpoint wraps the /contracts resource: creating, fetching and
// updating subscription contracts. Every returned aggregate is rebuilt
// through the domain builders, so a response that violates a contract
// invariant never produces a Subscription.
type ContractsEndpoint struct {
	client *Client
}

// Add submits a new subscription contract and returns the contract state
// the service created from it.
func (e *ContractsEndpoint) Add(ctx context.Context, req *contracts.SubscriptionRequest) (*contracts.Subscription, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	endpoint := e.client.baseURL.JoinPath(contractsPath)
	status, data, err := e.client.do(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeAPIError(status, data)
	}
	return contracts.DecodeSubscription(data)
}

// GetByUserID fetches the current contract of the given user.
func (e *ContractsEndpoint) GetByUserID(ctx context.Context, userID string) (*contracts.Subscription, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	endpoint := e.client.baseURL.JoinPath(contractsPath, userID)
	status, data, err := e.client.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeAPIError(status, data)
	}
	return contracts.DecodeSubscription(data)
}

// UpdateByUserID replaces the service set of the given user's contract and
// returns the resulting contract state.
func (e *ContractsEndpoint) UpdateByUserID(ctx context.Context, userID string, req *contracts.SubscriptionUpdateRequest) (*contracts.Subscription, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrEmptyUserID
	}
	if req == nil {
		return nil, ErrNilRequest
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	endpoint := e.client.baseURL.JoinPath(contractsPath, userID)
	status, data, err := e.client.do(ctx, http.MethodPut, endpoint, body)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, decodeAPIError(status, data)
	}
	return contracts.DecodeSubscription(data)
}
