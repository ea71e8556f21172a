package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// State represents the lifecycle state of an order.
//
// Orders are created in the cart state, move through the checkout states and
// become complete once checkout finishes; completed orders may later be
// shipped or canceled. The policy engine only distinguishes "has left the
// cart" (completed_at set) from everything else; the full set is kept for
// the external contract.
//
//	Cart ──> CheckoutAddress ──> Delivery ──> CheckoutPayment ──> Complete ──> Shipped
//	                                                  │
//	                                                  └──────> Canceled
type State string

const (
	// Cart is the initial state; the order is still being assembled.
	Cart State = "cart"

	// CheckoutAddress, Delivery and CheckoutPayment are the checkout states.
	// The Checkout prefix keeps them distinct from the Address and Payment
	// value types in this package.
	CheckoutAddress State = "address"
	Delivery        State = "delivery"
	CheckoutPayment State = "payment"

	// Complete means checkout has finished; completed_at is set.
	Complete State = "complete"

	// Shipped means the fulfilled order has left the distributor.
	Shipped State = "shipped"

	// Canceled is a terminal state for abandoned or voided orders.
	Canceled State = "canceled"
)

func validStates() map[State]struct{} {
	return map[State]struct{}{
		Cart:            {},
		CheckoutAddress: {},
		Delivery:        {},
		CheckoutPayment: {},
		Complete:        {},
		Shipped:         {},
		Canceled:        {},
	}
}

// Validate checks that the State holds one of the defined values.
func (s State) Validate() error {
	if _, ok := validStates()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a valid order state", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// PaymentState summarises the order's payment ledger for the API contract.
type PaymentState string

const (
	PaymentBalanceDue PaymentState = "balance_due"
	PaymentFailed     PaymentState = "failed"
	PaymentCreditOwed PaymentState = "credit_owed"
	PaymentPaid       PaymentState = "paid"
)

// ShipmentState summarises the order's shipments for the API contract.
type ShipmentState string

const (
	ShipmentPending ShipmentState = "pending"
	ShipmentReady   ShipmentState = "ready"
	ShipmentPartial ShipmentState = "partial"
	ShipmentShipped ShipmentState = "shipped"
)
