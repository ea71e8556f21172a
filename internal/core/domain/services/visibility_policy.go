package services

import (
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
)

// Decision is the outcome of an order visibility check. The distinction
// between NoStanding and Denied matters at the API boundary: an actor with no
// standing at all gets an authentication-level rejection, while an actor who
// is a legitimate enterprise owner looking at someone else's order gets a
// permission-level rejection.
type Decision int

const (
	// Allow grants the actor access to the order.
	Allow Decision = iota

	// Denied means the actor has standing (admin or enterprise owner) but no
	// rule grants access to this particular order.
	Denied

	// NoStanding means the actor is neither an admin nor an enterprise owner
	// and has no business in the order API at all.
	NoStanding
)

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Denied:
		return "denied"
	case NoStanding:
		return "no standing"
	default:
		return "unknown"
	}
}

// OrderVisibilityPolicy is a domain service deciding which orders an actor
// may see. It is a pure function over the actor and the order graph: no
// store access, no request context.
//
// Access rules (a union; any one suffices):
//   - A platform admin sees every order in every state
//   - The owner of the order's distributor enterprise sees the order
//   - The owner of the coordinator of the order's cycle sees the order,
//     even when the distributor belongs to someone else
//
// Supplying a product that appears in the order grants nothing: item-level
// data for suppliers is a separate reporting concern, not order access.
//
// For listing, owner-based rules additionally require the order to be
// completed (completed_at set); carts and in-progress checkouts stay
// invisible to enterprise owners. Single-order access has no such gate, so
// an owner can inspect an order that was administratively reverted out of
// the complete state.
type OrderVisibilityPolicy struct{}

// NewOrderVisibilityPolicy creates a new OrderVisibilityPolicy instance.
func NewOrderVisibilityPolicy() OrderVisibilityPolicy {
	return OrderVisibilityPolicy{}
}

// HasStanding reports whether the actor may use the order API at all:
// admins and owners of at least one enterprise qualify. Everyone else is
// rejected outright rather than handed an empty result.
func (p OrderVisibilityPolicy) HasStanding(a *actor.Actor) bool {
	return a.IsAdmin() || a.OwnsAnyEnterprise()
}

// HasListingStanding reports whether the actor may request an order listing.
// Stricter than HasStanding: only admins and owners of a selling enterprise
// (distributor or coordinator role) have a listing of their own. A
// supplier-only owner is rejected at the authentication level rather than
// handed an empty page.
func (p OrderVisibilityPolicy) HasListingStanding(a *actor.Actor) bool {
	return a.IsAdmin() || a.OwnsSellingEnterprise()
}

// CanView decides single-order access. The completed gate does not apply
// here; ownership alone grants access regardless of the order's state.
func (p OrderVisibilityPolicy) CanView(a *actor.Actor, o *order.Order) Decision {
	if a.IsAdmin() {
		return Allow
	}
	if !a.OwnsAnyEnterprise() {
		return NoStanding
	}
	if p.ownsDistributor(a, o) || p.ownsCoordinator(a, o) {
		return Allow
	}
	return Denied
}

// CanList decides whether the order appears in the actor's listing. Owner
// rules only surface completed orders.
func (p OrderVisibilityPolicy) CanList(a *actor.Actor, o *order.Order) bool {
	if a.IsAdmin() {
		return true
	}
	if !o.IsComplete() {
		return false
	}
	return p.ownsDistributor(a, o) || p.ownsCoordinator(a, o)
}

// VisibleOrders filters orders down to those the actor may list, preserving
// the input ordering.
func (p OrderVisibilityPolicy) VisibleOrders(a *actor.Actor, orders []*order.Order) []*order.Order {
	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if p.CanList(a, o) {
			visible = append(visible, o)
		}
	}
	return visible
}

func (p OrderVisibilityPolicy) ownsDistributor(a *actor.Actor, o *order.Order) bool {
	return o.Distributor() != nil && o.Distributor().IsOwnedBy(a.ID())
}

func (p OrderVisibilityPolicy) ownsCoordinator(a *actor.Actor, o *order.Order) bool {
	return o.OrderCycle() != nil && o.OrderCycle().IsCoordinatedBy(a.ID())
}
