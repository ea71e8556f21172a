package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/ordercycle"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDistributor(t *testing.T) *enterprise.Enterprise {
	t.Helper()
	e, err := enterprise.NewEnterprise(kernel.NewUUID(), "Fresh Hub", kernel.NewUUID(),
		enterprise.Roles{Distributor: true})
	require.NoError(t, err)
	return e
}

func mustSupplier(t *testing.T, name string) *enterprise.Enterprise {
	t.Helper()
	e, err := enterprise.NewEnterprise(kernel.NewUUID(), name, kernel.NewUUID(),
		enterprise.Roles{Supplier: true})
	require.NoError(t, err)
	return e
}

func mustOrderCycle(t *testing.T) *ordercycle.OrderCycle {
	t.Helper()
	coordinator, err := enterprise.NewEnterprise(kernel.NewUUID(), "Regional Co-op", kernel.NewUUID(),
		enterprise.Roles{Coordinator: true})
	require.NoError(t, err)
	oc, err := ordercycle.NewOrderCycle(kernel.NewUUID(), "Week 35", coordinator,
		time.Now(), time.Now().Add(7*24*time.Hour))
	require.NoError(t, err)
	return oc
}

func mustLineItem(t *testing.T, supplier *enterprise.Enterprise) order.LineItem {
	t.Helper()
	product, err := order.NewProduct("Sourdough Loaf", supplier)
	require.NoError(t, err)
	variant, err := order.NewVariant(product, "800g")
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), variant, 2, decimal.NewFromFloat(6.50))
	require.NoError(t, err)
	return li
}

func TestNewOrder(t *testing.T) {
	distributor := mustDistributor(t)
	cycle := mustOrderCycle(t)
	createdAt := time.Now()

	t.Run("creates cart order inside a cycle", func(t *testing.T) {
		id := kernel.NewUUID()
		number := order.GenerateNumber()

		o, err := order.NewOrder(id, number, distributor, cycle, "alice@example.com", createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, number, o.Number())
		assert.True(t, o.Distributor().IsEqual(distributor))
		assert.True(t, o.OrderCycle().IsEqual(cycle))
		assert.Equal(t, order.Cart, o.State())
		assert.Nil(t, o.CompletedAt())
		assert.False(t, o.IsComplete())
		assert.Equal(t, "alice@example.com", o.Email())
	})

	t.Run("order cycle is optional", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			"bob@example.com", createdAt)

		require.NoError(t, err)
		assert.Nil(t, o.OrderCycle())
	})

	t.Run("requires id, number and distributor", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "", nil, nil, "", createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, enterprise.ErrEnterpriseIsNotConstructed)
	})

	t.Run("rejects malformed number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "X123", distributor, nil, "", createdAt)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	distributor := mustDistributor(t)
	createdAt := time.Now().Add(-48 * time.Hour)

	t.Run("restores completed order with details", func(t *testing.T) {
		completedAt := createdAt.Add(time.Hour)
		billAddress, err := order.NewAddress("Alice", "Smith", "12 Market St", "", "Melbourne", "3000", "0400 000 000")
		require.NoError(t, err)
		details := order.Details{
			Email:         "alice@example.com",
			ItemTotal:     decimal.NewFromFloat(13.00),
			Total:         decimal.NewFromFloat(16.50),
			PaymentState:  order.PaymentBalanceDue,
			ShipmentState: order.ShipmentPending,
			BillAddress:   billAddress,
			LineItems:     []order.LineItem{mustLineItem(t, mustSupplier(t, "Hill Farm"))},
		}

		o, err := order.RestoreOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			order.Complete, &completedAt, createdAt, details)

		require.NoError(t, err)
		assert.Equal(t, order.Complete, o.State())
		assert.True(t, o.IsComplete())
		assert.Equal(t, completedAt, *o.CompletedAt())
		assert.Equal(t, "Alice Smith", o.FullName())
		assert.Equal(t, "0400 000 000", o.Phone())
		assert.True(t, o.Details().Total.Equal(decimal.NewFromFloat(16.50)))
	})

	t.Run("allows shipped state with cleared completion timestamp", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			order.Shipped, nil, createdAt, order.Details{Email: "carol@example.com"})

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, o.State())
		assert.False(t, o.IsComplete())
	})

	t.Run("rejects unknown state", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			order.State("returned"), nil, createdAt, order.Details{})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderComplete(t *testing.T) {
	distributor := mustDistributor(t)

	t.Run("completes a cart order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			"alice@example.com", time.Now())
		require.NoError(t, err)

		completedAt := time.Now()
		require.NoError(t, o.Complete(completedAt))

		assert.Equal(t, order.Complete, o.State())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
	})

	t.Run("completes a checkout order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			order.CheckoutPayment, nil, time.Now().Add(-time.Hour), order.Details{Email: "alice@example.com"})
		require.NoError(t, err)

		require.NoError(t, o.Complete(time.Now()))

		assert.Equal(t, order.Complete, o.State())
	})

	t.Run("cannot complete twice", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			"alice@example.com", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Complete(time.Now()))

		err = o.Complete(time.Now())

		assert.ErrorIs(t, err, order.ErrOrderAlreadyCompleted)
	})
}

func TestOrderMarkShipped(t *testing.T) {
	distributor := mustDistributor(t)

	t.Run("ships a complete order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			"alice@example.com", time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Complete(time.Now()))

		require.NoError(t, o.MarkShipped())

		assert.Equal(t, order.Shipped, o.State())
		assert.Equal(t, order.ShipmentShipped, o.Details().ShipmentState)
	})

	t.Run("cannot ship from cart", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
			"alice@example.com", time.Now())
		require.NoError(t, err)

		err = o.MarkShipped()

		assert.ErrorIs(t, err, order.ErrOrderNotComplete)
	})
}

func TestOrderSuppliers(t *testing.T) {
	distributor := mustDistributor(t)
	hillFarm := mustSupplier(t, "Hill Farm")
	valleyDairy := mustSupplier(t, "Valley Dairy")

	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateNumber(), distributor, nil,
		"alice@example.com", time.Now())
	require.NoError(t, err)

	o.UpdateDetails(order.Details{
		Email: "alice@example.com",
		LineItems: []order.LineItem{
			mustLineItem(t, hillFarm),
			mustLineItem(t, hillFarm),
			mustLineItem(t, valleyDairy),
		},
	})

	suppliers := o.Suppliers()

	require.Len(t, suppliers, 2)
	assert.True(t, suppliers[0].IsEqual(hillFarm))
	assert.True(t, suppliers[1].IsEqual(valleyDairy))
	assert.True(t, o.IsSuppliedBy(hillFarm.ID()))
	assert.False(t, o.IsSuppliedBy(distributor.ID()))
}

func TestOrderValidate(t *testing.T) {
	t.Run("nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order", func(t *testing.T) {
		assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
