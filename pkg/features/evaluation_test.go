package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmarc/space-go/pkg/features"
)

func TestDecodeEvaluation(t *testing.T) {
	t.Parallel()

	t.Run("quotas keyed by bare usage limit", func(t *testing.T) {
		t.Parallel()
		result, err := features.DecodeEvaluation([]byte(`{
			"eval": true,
			"used": {"zoom-storage": 50},
			"limit": {"zoom-storage": 500}
		}`), "Zoom")
		require.NoError(t, err)

		assert.True(t, result.Available())
		used, ok := result.Consumed("storage")
		require.True(t, ok)
		assert.Equal(t, float64(50), used)
		limit, ok := result.Limit("storage")
		require.True(t, ok)
		assert.Equal(t, float64(500), limit)

		quotas := result.Quotas()
		require.Contains(t, quotas, "storage")
		assert.Equal(t, features.Quota{Used: 50, Limit: 500}, quotas["storage"])
	})

	t.Run("null quota maps", func(t *testing.T) {
		t.Parallel()
		result, err := features.DecodeEvaluation([]byte(`{
			"eval": false,
			"used": null,
			"limit": null
		}`), "zoom")
		require.NoError(t, err)
		assert.False(t, result.Available())
		_, ok := result.Consumed("storage")
		assert.False(t, ok)
		assert.Empty(t, result.Quotas())
	})

	t.Run("keys shorter than the prefix are kept verbatim", func(t *testing.T) {
		t.Parallel()
		result, err := features.DecodeEvaluation([]byte(`{
			"eval": true,
			"used": {"api": 1}
		}`), "zoom")
		require.NoError(t, err)
		used, ok := result.Consumed("api")
		require.True(t, ok)
		assert.Equal(t, float64(1), used)
	})

	t.Run("invalid json", func(t *testing.T) {
		t.Parallel()
		_, err := features.DecodeEvaluation([]byte(`{"eval":`), "zoom")
		require.ErrorIs(t, err, features.ErrMalformedEvaluation)
	})
}

func TestDecodeEvaluation_Error(t *testing.T) {
	t.Parallel()

	t.Run("known code surfaces as EvaluationError", func(t *testing.T) {
		t.Parallel()
		_, err := features.DecodeEvaluation([]byte(`{
			"eval": false,
			"error": {"code": "FLAG_NOT_FOUND", "message": "feature zoom-recording not found"}
		}`), "zoom")
		var evalErr *features.EvaluationError
		require.ErrorAs(t, err, &evalErr)
		assert.Equal(t, features.CodeFlagNotFound, evalErr.Code)
		assert.Equal(t, "feature zoom-recording not found. Error code: FLAG_NOT_FOUND", evalErr.Error())
	})

	t.Run("unknown code is a malformed document", func(t *testing.T) {
		t.Parallel()
		_, err := features.DecodeEvaluation([]byte(`{
			"eval": false,
			"error": {"code": "SOMETHING_NEW", "message": "boom"}
		}`), "zoom")
		require.ErrorIs(t, err, features.ErrMalformedEvaluation)
	})
}

func TestRevert(t *testing.T) {
	t.Parallel()

	assert.True(t, features.RevertNewest.Latest())
	assert.False(t, features.RevertOldest.Latest())
	assert.Equal(t, "newest", features.RevertNewest.String())
	assert.Equal(t, "oldest", features.RevertOldest.String())
}
