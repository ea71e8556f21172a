package ordercycle_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ordercycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoordinator(t *testing.T) *enterprise.Enterprise {
	t.Helper()
	e, err := enterprise.NewEnterprise(kernel.NewUUID(), "Coordinator Co", kernel.NewUUID(),
		enterprise.Roles{Coordinator: true, Distributor: true})
	require.NoError(t, err)
	return e
}

func TestNewOrderCycle(t *testing.T) {
	opens := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	closes := opens.Add(7 * 24 * time.Hour)

	t.Run("creates upcoming cycle with valid parameters", func(t *testing.T) {
		coordinator := newCoordinator(t)
		id := kernel.NewUUID()

		oc, err := ordercycle.NewOrderCycle(id, "May week 1", coordinator, opens, closes)

		require.NoError(t, err)
		require.NoError(t, oc.Validate())
		assert.True(t, oc.ID().IsEqual(id))
		assert.Equal(t, "May week 1", oc.Name())
		assert.True(t, oc.Coordinator().IsEqual(coordinator))
		assert.Equal(t, ordercycle.Upcoming, oc.Status())
	})

	t.Run("rejects nil coordinator", func(t *testing.T) {
		_, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", nil, opens, closes)

		require.ErrorIs(t, err, enterprise.ErrEnterpriseIsNotConstructed)
	})

	t.Run("rejects window closing before it opens", func(t *testing.T) {
		_, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t), closes, opens)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "closesAt")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "", newCoordinator(t), opens, closes)

		require.Error(t, err)
	})
}

func TestOrderCycle_WindowTransitions(t *testing.T) {
	opens := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	closes := opens.Add(7 * 24 * time.Hour)

	t.Run("due to open once window start passes", func(t *testing.T) {
		oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t), opens, closes)
		require.NoError(t, err)

		assert.False(t, oc.DueToOpen(opens.Add(-time.Minute)))
		assert.True(t, oc.DueToOpen(opens))
		assert.True(t, oc.DueToOpen(opens.Add(time.Hour)))
	})

	t.Run("open then close follows the state machine", func(t *testing.T) {
		oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t), opens, closes)
		require.NoError(t, err)

		require.NoError(t, oc.Open())
		assert.Equal(t, ordercycle.Open, oc.Status())

		assert.False(t, oc.DueToClose(closes.Add(-time.Minute)))
		assert.True(t, oc.DueToClose(closes))

		require.NoError(t, oc.Close())
		assert.Equal(t, ordercycle.Closed, oc.Status())
	})

	t.Run("cannot open twice", func(t *testing.T) {
		oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t), opens, closes)
		require.NoError(t, err)

		require.NoError(t, oc.Open())
		require.ErrorIs(t, oc.Open(), ordercycle.ErrOrderCycleNotUpcoming)
	})

	t.Run("cannot close an upcoming cycle", func(t *testing.T) {
		oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t), opens, closes)
		require.NoError(t, err)

		require.ErrorIs(t, oc.Close(), ordercycle.ErrOrderCycleNotOpen)
	})
}

func TestRestoreOrderCycle(t *testing.T) {
	opens := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	closes := opens.Add(7 * 24 * time.Hour)

	t.Run("restores explicit status", func(t *testing.T) {
		oc, err := ordercycle.RestoreOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t),
			opens, closes, ordercycle.Open)

		require.NoError(t, err)
		assert.Equal(t, ordercycle.Open, oc.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := ordercycle.RestoreOrderCycle(kernel.NewUUID(), "May week 1", newCoordinator(t),
			opens, closes, ordercycle.Status("stalled"))

		require.Error(t, err)
	})
}

func TestOrderCycle_IsCoordinatedBy(t *testing.T) {
	owner := kernel.NewUUID()
	coordinator, err := enterprise.NewEnterprise(kernel.NewUUID(), "Coordinator Co", owner,
		enterprise.Roles{Coordinator: true})
	require.NoError(t, err)

	opens := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "May week 1", coordinator,
		opens, opens.Add(24*time.Hour))
	require.NoError(t, err)

	assert.True(t, oc.IsCoordinatedBy(owner))
	assert.False(t, oc.IsCoordinatedBy(kernel.NewUUID()))
}
