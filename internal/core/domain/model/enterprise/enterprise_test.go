package enterprise_test

import (
	"testing"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnterprise(t *testing.T) {
	t.Run("creates enterprise with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		owner := kernel.NewUUID()

		e, err := enterprise.NewEnterprise(id, "Field & Fork Hub", owner, enterprise.Roles{Distributor: true})

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, "Field & Fork Hub", e.Name())
		assert.True(t, e.OwnerID().IsEqual(owner))
		assert.True(t, e.IsDistributor())
		assert.False(t, e.IsSupplier())
		assert.False(t, e.IsCoordinator())
	})

	t.Run("roles are independent capabilities not a hierarchy", func(t *testing.T) {
		e, err := enterprise.NewEnterprise(kernel.NewUUID(), "Everything Farm", kernel.NewUUID(),
			enterprise.Roles{Supplier: true, Distributor: true, Coordinator: true})

		require.NoError(t, err)
		assert.True(t, e.IsSupplier())
		assert.True(t, e.IsDistributor())
		assert.True(t, e.IsCoordinator())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := enterprise.NewEnterprise(kernel.NewUUID(), "", kernel.NewUUID(), enterprise.Roles{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("rejects zero-value id and owner", func(t *testing.T) {
		var zero kernel.UUID

		_, err := enterprise.NewEnterprise(zero, "Hub", kernel.NewUUID(), enterprise.Roles{})
		require.Error(t, err)

		_, err = enterprise.NewEnterprise(kernel.NewUUID(), "Hub", zero, enterprise.Roles{})
		require.Error(t, err)
	})
}

func TestEnterprise_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var e enterprise.Enterprise

		require.ErrorIs(t, e.Validate(), enterprise.ErrEnterpriseIsNotConstructed)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var e *enterprise.Enterprise

		require.ErrorIs(t, e.Validate(), enterprise.ErrEnterpriseIsNotConstructed)
	})
}

func TestEnterprise_IsOwnedBy(t *testing.T) {
	owner := kernel.NewUUID()
	e, err := enterprise.NewEnterprise(kernel.NewUUID(), "Greenfields", owner, enterprise.Roles{Supplier: true})
	require.NoError(t, err)

	assert.True(t, e.IsOwnedBy(owner))
	assert.False(t, e.IsOwnedBy(kernel.NewUUID()))
}

func TestEnterprise_UpdateRoles(t *testing.T) {
	e, err := enterprise.NewEnterprise(kernel.NewUUID(), "Greenfields", kernel.NewUUID(),
		enterprise.Roles{Supplier: true})
	require.NoError(t, err)

	e.UpdateRoles(enterprise.Roles{Supplier: true, Coordinator: true})

	assert.True(t, e.IsSupplier())
	assert.True(t, e.IsCoordinator())
	assert.False(t, e.IsDistributor())
}

func TestEnterprise_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, err := enterprise.NewEnterprise(id, "A", kernel.NewUUID(), enterprise.Roles{})
	require.NoError(t, err)
	b, err := enterprise.NewEnterprise(id, "B", kernel.NewUUID(), enterprise.Roles{})
	require.NoError(t, err)
	c, err := enterprise.NewEnterprise(kernel.NewUUID(), "C", kernel.NewUUID(), enterprise.Roles{})
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
