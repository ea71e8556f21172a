package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Payment is a captured or pending payment against an order. Amounts are
// opaque to the policy engine.
type Payment struct {
	id     kernel.UUID
	amount decimal.Decimal
}

// NewPayment creates a payment entry.
func NewPayment(id kernel.UUID, amount decimal.Decimal) (Payment, error) {
	if err := id.Validate(); err != nil {
		return Payment{}, err
	}
	return Payment{id: id, amount: amount}, nil
}

// ID returns the payment identity.
func (p Payment) ID() kernel.UUID { return p.id }

// Amount returns the payment amount.
func (p Payment) Amount() decimal.Decimal { return p.amount }

// Adjustment is a labelled amount applied on top of the item total, such as
// a shipping charge or a transaction fee.
type Adjustment struct {
	label  string
	amount decimal.Decimal
}

// NewAdjustment creates an adjustment entry.
func NewAdjustment(label string, amount decimal.Decimal) (Adjustment, error) {
	if label == "" {
		return Adjustment{}, errs.NewValueIsRequiredError("label")
	}
	return Adjustment{label: label, amount: amount}, nil
}

// Label returns the adjustment's display label, e.g. "Shipping".
func (a Adjustment) Label() string { return a.label }

// Amount returns the adjustment amount.
func (a Adjustment) Amount() decimal.Decimal { return a.amount }

// ShippingMethod names how the order is delivered to the customer.
type ShippingMethod struct {
	name string
}

// NewShippingMethod creates a shipping method reference.
func NewShippingMethod(name string) ShippingMethod {
	return ShippingMethod{name: name}
}

// Name returns the shipping method's display name.
func (sm ShippingMethod) Name() string { return sm.name }
