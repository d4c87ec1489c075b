package contracts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgmarc/space-go/pkg/contracts"
)

func TestServiceBuilder(t *testing.T) {
	t.Parallel()

	t.Run("plan only is enough", func(t *testing.T) {
		t.Parallel()
		svc, err := contracts.NewService("zoom", "2025").Plan("ENTERPRISE").Build()
		require.NoError(t, err)
		assert.Equal(t, "zoom", svc.Name())
		assert.Equal(t, "2025", svc.Version())
		plan, ok := svc.Plan()
		require.True(t, ok)
		assert.Equal(t, "ENTERPRISE", plan)
		assert.Empty(t, svc.AddOns())
	})

	t.Run("single add-on is enough", func(t *testing.T) {
		t.Parallel()
		svc, err := contracts.NewService("zoom", "2025").AddOn("extraSeats", 2).Build()
		require.NoError(t, err)
		_, ok := svc.Plan()
		assert.False(t, ok)
		addOn, ok := svc.AddOn("extraSeats")
		require.True(t, ok)
		assert.Equal(t, contracts.AddOn{Name: "extraSeats", Quantity: 2}, addOn)
	})

	t.Run("neither plan nor add-on fails", func(t *testing.T) {
		t.Parallel()
		_, err := contracts.NewService("zoom", "2025").Build()
		require.ErrorIs(t, err, contracts.ErrNoEntitlements)
	})

	t.Run("blank plan fails", func(t *testing.T) {
		t.Parallel()
		_, err := contracts.NewService("zoom", "2025").Plan("  ").Build()
		require.ErrorIs(t, err, contracts.ErrBlankPlan)
	})

	t.Run("blank add-on name fails", func(t *testing.T) {
		t.Parallel()
		_, err := contracts.NewService("zoom", "2025").AddOn("", 1).Build()
		require.ErrorIs(t, err, contracts.ErrBlankAddOn)
	})

	t.Run("non-positive add-on quantity fails", func(t *testing.T) {
		t.Parallel()
		_, err := contracts.NewService("zoom", "2025").AddOn("extraSeats", 0).Build()
		require.ErrorIs(t, err, contracts.ErrInvalidQuantity)

		_, err = contracts.NewService("zoom", "2025").AddOn("extraSeats", -3).Build()
		require.ErrorIs(t, err, contracts.ErrInvalidQuantity)
	})

	t.Run("blank name or version fails", func(t *testing.T) {
		t.Parallel()
		_, err := contracts.NewService("", "2025").Plan("BASIC").Build()
		require.ErrorIs(t, err, contracts.ErrMissingServiceName)

		_, err = contracts.NewService("zoom", " ").Plan("BASIC").Build()
		require.ErrorIs(t, err, contracts.ErrMissingServiceVersion)
	})

	t.Run("builder is single use", func(t *testing.T) {
		t.Parallel()
		b := contracts.NewService("zoom", "2025").Plan("BASIC")
		_, err := b.Build()
		require.NoError(t, err)
		_, err = b.Build()
		require.ErrorIs(t, err, contracts.ErrBuilderConsumed)
	})

	t.Run("re-adding an add-on replaces its quantity", func(t *testing.T) {
		t.Parallel()
		svc, err := contracts.NewService("zoom", "2025").
			AddOn("extraSeats", 2).
			AddOn("extraSeats", 5).
			Build()
		require.NoError(t, err)
		require.Len(t, svc.AddOns(), 1)
		addOn, _ := svc.AddOn("extraSeats")
		assert.Equal(t, int64(5), addOn.Quantity)
	})
}

func TestService_Equal(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) contracts.Service {
		t.Helper()
		svc, err := contracts.NewService("zoom", "2025").
			Plan("ENTERPRISE").
			AddOn("extraSeats", 2).
			Build()
		require.NoError(t, err)
		return svc
	}

	a, b := build(t), build(t)
	assert.True(t, a.Equal(b))

	other, err := contracts.NewService("zoom", "2025").Plan("ENTERPRISE").Build()
	require.NoError(t, err)
	assert.False(t, a.Equal(other), "add-on set participates in equality")
}
