package space_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	space "github.com/pgmarc/space-go"
	"github.com/pgmarc/space-go/pkg/contracts"
)

const subscriptionDocJSON = `{
	"userContact": {"userId": "u1", "username": "alice"},
	"billingPeriod": {
		"startDate": "2025-01-01T00:00:00Z",
		"endDate": "2025-02-01T00:00:00Z",
		"autoRenew": false
	},
	"contractedServices": {"zoom": "2025"},
	"subscriptionPlans": {"zoom": "ENTERPRISE"},
	"subscriptionAddOns": {},
	"usageLevels": {},
	"history": []
}`

func testRequest(t *testing.T) *contracts.SubscriptionRequest {
	t.Helper()
	contact, err := contracts.NewUserContact("u1", "alice").Build()
	require.NoError(t, err)
	req, err := contracts.NewSubscriptionRequest(contact).
		StartService("zoom", "2025").
		Plan("ENTERPRISE").
		EndService().
		Build()
	require.NoError(t, err)
	return req
}

func TestContractsEndpoint_Add(t *testing.T) {
	t.Parallel()

	t.Run("posts the request and decodes the reply", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1/contracts", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var doc map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
			assert.Contains(t, doc, "userContact")
			assert.Contains(t, doc, "contractedServices")

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(subscriptionDocJSON))
		}))

		sub, err := client.Contracts().Add(context.Background(), testRequest(t))
		require.NoError(t, err)
		assert.Equal(t, "u1", sub.UserID())
		_, ok := sub.Service("zoom")
		assert.True(t, ok)
	})

	t.Run("nil request fails", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		_, err := client.Contracts().Add(context.Background(), nil)
		require.ErrorIs(t, err, space.ErrNilRequest)
	})
}

func TestContractsEndpoint_GetByUserID(t *testing.T) {
	t.Parallel()

	t.Run("fetches by user id", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/v1/contracts/u1", r.URL.Path)
			w.Write([]byte(subscriptionDocJSON))
		}))

		sub, err := client.Contracts().GetByUserID(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "alice", sub.Username())
	})

	t.Run("blank user id fails", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		_, err := client.Contracts().GetByUserID(context.Background(), "  ")
		require.ErrorIs(t, err, space.ErrEmptyUserID)
	})

	t.Run("error document with single message", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": "contract of user u1 not found"}`))
		}))

		_, err := client.Contracts().GetByUserID(context.Background(), "u1")
		var apiErr *space.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, []string{"contract of user u1 not found"}, apiErr.Messages)
	})

	t.Run("error document with message list", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errors": [{"msg": "first"}, {"msg": "second"}]}`))
		}))

		_, err := client.Contracts().GetByUserID(context.Background(), "u1")
		var apiErr *space.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, []string{"first", "second"}, apiErr.Messages)
	})

	t.Run("non-JSON failure body", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))

		_, err := client.Contracts().GetByUserID(context.Background(), "u1")
		require.ErrorIs(t, err, space.ErrUnexpectedResponse)
	})

	t.Run("malformed success body", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"unexpected": true}`))
		}))

		_, err := client.Contracts().GetByUserID(context.Background(), "u1")
		require.ErrorIs(t, err, contracts.ErrMalformedDocument)
	})
}

func TestContractsEndpoint_UpdateByUserID(t *testing.T) {
	t.Parallel()

	t.Run("puts the new service set", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/v1/contracts/u1", r.URL.Path)
			w.Write([]byte(subscriptionDocJSON))
		}))

		update, err := contracts.NewSubscriptionUpdateRequest().
			StartService("zoom", "2025").
			Plan("ENTERPRISE").
			EndService().
			Build()
		require.NoError(t, err)

		sub, err := client.Contracts().UpdateByUserID(context.Background(), "u1", update)
		require.NoError(t, err)
		assert.Equal(t, "u1", sub.UserID())
	})

	t.Run("nil request fails", func(t *testing.T) {
		t.Parallel()
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		_, err := client.Contracts().UpdateByUserID(context.Background(), "u1", nil)
		require.ErrorIs(t, err, space.ErrNilRequest)
	})
}
