package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ordercycle"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderAlreadyCompleted is returned when completing an order that has
	// already left checkout.
	ErrOrderAlreadyCompleted = errors.New("order has already been completed")

	// ErrOrderNotComplete is returned when shipping an order that has not
	// completed checkout.
	ErrOrderNotComplete = errors.New("only a complete order can be shipped")
)

// Details bundles the order fields that are opaque to the visibility policy:
// customer contact data, monetary totals, addresses, payments, adjustments
// and line items. The policy never reads them; the projection and the
// free-text search do.
type Details struct {
	Email               string
	SpecialInstructions string

	ItemTotal       decimal.Decimal
	AdjustmentTotal decimal.Decimal
	PaymentTotal    decimal.Decimal
	Total           decimal.Decimal

	PaymentState  PaymentState
	ShipmentState ShipmentState

	BillAddress    Address
	ShipAddress    Address
	ShippingMethod ShippingMethod

	LineItems   []LineItem
	Payments    []Payment
	Adjustments []Adjustment
}

// Order is the aggregate root for a customer order placed with a distributor.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a well-formed business number
//   - Has exactly one distributor enterprise; the order cycle is optional
//   - The business number never changes after creation
//   - completedAt is set when checkout finishes; administrative corrections
//     may later clear it, so a shipped order with no completion timestamp is
//     a legitimate historical artifact
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the immutable external business identifier
	number Number

	// distributor is the enterprise fulfilling the order
	distributor *enterprise.Enterprise

	// orderCycle is the cycle the order was placed in (nil if none)
	orderCycle *ordercycle.OrderCycle

	// state is the current lifecycle state
	state State

	// completedAt is set when checkout finishes (nil otherwise)
	completedAt *time.Time

	createdAt time.Time

	// details holds the policy-opaque order data
	details Details

	// isConstructed ensures the struct was created via a factory method
	isConstructed bool
}

// NewOrder creates a new cart-state order for a distributor, optionally
// inside an order cycle. The number must be freshly generated; the store's
// unique index is the final arbiter of uniqueness.
func NewOrder(
	id kernel.UUID,
	number Number,
	distributor *enterprise.Enterprise,
	orderCycle *ordercycle.OrderCycle,
	email string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		state:         Cart,
		createdAt:     createdAt,
		details:       Details{Email: email},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDistributor(distributor),
		o.setOrderCycle(orderCycle),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence in an arbitrary
// lifecycle state. State/completedAt consistency is deliberately not
// enforced: stored orders can carry administrative corrections such as a
// shipped state with the completion timestamp cleared.
func RestoreOrder(
	id kernel.UUID,
	number Number,
	distributor *enterprise.Enterprise,
	orderCycle *ordercycle.OrderCycle,
	state State,
	completedAt *time.Time,
	createdAt time.Time,
	details Details,
) (*Order, error) {
	o, err := NewOrder(id, number, distributor, orderCycle, details.Email, createdAt)
	if err != nil {
		return nil, err
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	o.state = state
	o.completedAt = completedAt
	o.details = details
	return o, nil
}

// Validate ensures the Order instance was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the immutable business identifier.
func (o *Order) Number() Number {
	return o.number
}

// Distributor returns the enterprise fulfilling this order.
func (o *Order) Distributor() *enterprise.Enterprise {
	return o.distributor
}

// OrderCycle returns the cycle this order was placed in, or nil when the
// order exists outside any cycle.
func (o *Order) OrderCycle() *ordercycle.OrderCycle {
	return o.orderCycle
}

// State returns the current lifecycle state.
func (o *Order) State() State {
	return o.state
}

// CompletedAt returns the checkout completion timestamp, or nil.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsComplete reports whether the order carries a completion timestamp,
// i.e. has left the cart/checkout flow.
func (o *Order) IsComplete() bool {
	return o.completedAt != nil
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Details returns the policy-opaque order data.
func (o *Order) Details() Details {
	return o.details
}

// Email returns the customer email.
func (o *Order) Email() string {
	return o.details.Email
}

// Phone returns the customer phone number from the billing address.
func (o *Order) Phone() string {
	return o.details.BillAddress.Phone()
}

// FullName returns the customer name from the billing address.
func (o *Order) FullName() string {
	return o.details.BillAddress.FullName()
}

// ReadyToShip reports whether the order's shipments are ready for dispatch.
func (o *Order) ReadyToShip() bool {
	return o.details.ShipmentState == ShipmentReady
}

// Suppliers returns the distinct enterprises supplying this order's line
// items, derived transitively through variant and product.
func (o *Order) Suppliers() []*enterprise.Enterprise {
	seen := make(map[kernel.UUID]struct{}, len(o.details.LineItems))
	suppliers := make([]*enterprise.Enterprise, 0, len(o.details.LineItems))
	for _, li := range o.details.LineItems {
		s := li.Supplier()
		if s == nil {
			continue
		}
		if _, ok := seen[s.ID()]; ok {
			continue
		}
		seen[s.ID()] = struct{}{}
		suppliers = append(suppliers, s)
	}
	return suppliers
}

// IsSuppliedBy reports whether any line item's product comes from the given
// enterprise.
func (o *Order) IsSuppliedBy(enterpriseID kernel.UUID) bool {
	for _, li := range o.details.LineItems {
		if s := li.Supplier(); s != nil && s.ID().IsEqual(enterpriseID) {
			return true
		}
	}
	return false
}

// UpdateDetails replaces the policy-opaque order data, e.g. while the cart
// is still being assembled.
func (o *Order) UpdateDetails(details Details) {
	o.details = details
}

// Complete finishes checkout: sets the completion timestamp and moves the
// order to the complete state.
func (o *Order) Complete(at time.Time) error {
	switch o.state {
	case Complete, Shipped, Canceled:
		return ErrOrderAlreadyCompleted
	case Cart, CheckoutAddress, Delivery, CheckoutPayment:
	}

	o.state = Complete
	completedAt := at
	o.completedAt = &completedAt
	return nil
}

// MarkShipped moves a completed order to the shipped state.
func (o *Order) MarkShipped() error {
	if o.state != Complete {
		return ErrOrderNotComplete
	}
	o.state = Shipped
	o.details.ShipmentState = ShipmentShipped
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setDistributor(distributor *enterprise.Enterprise) error {
	if err := distributor.Validate(); err != nil {
		return err
	}
	o.distributor = distributor
	return nil
}

func (o *Order) setOrderCycle(orderCycle *ordercycle.OrderCycle) error {
	if orderCycle == nil {
		return nil
	}
	if err := orderCycle.Validate(); err != nil {
		return err
	}
	o.orderCycle = orderCycle
	return nil
}
