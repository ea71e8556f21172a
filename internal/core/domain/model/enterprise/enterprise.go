package enterprise

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrEnterpriseIsNotConstructed is returned when an Enterprise instance was not
	// created through the NewEnterprise factory method.
	ErrEnterpriseIsNotConstructed = errors.New("Enterprise must be created via NewEnterprise constructor")
)

// Roles is the capability set an enterprise holds in the marketplace. The
// flags are independent: an enterprise may supply products, distribute orders
// and coordinate order cycles all at once, or hold any other subset. Roles
// are deliberately not a hierarchy.
type Roles struct {
	Supplier    bool
	Distributor bool
	Coordinator bool
}

// Enterprise represents a trading party in the marketplace: a producer
// supplying products, a hub distributing orders to customers, or the
// coordinator administering an order cycle (or any combination).
//
// Invariants:
//   - Identity and owner are fixed once created
//   - Role flags may change over time, but never within a single
//     authorization decision (decisions operate on a snapshot)
//   - Can only be created through NewEnterprise
type Enterprise struct {
	id      kernel.UUID
	name    string
	ownerID kernel.UUID
	roles   Roles

	isConstructed bool
}

// NewEnterprise creates a validated Enterprise. The owner is the identity of
// the actor that manages the enterprise; role flags may be any subset.
func NewEnterprise(id kernel.UUID, name string, ownerID kernel.UUID, roles Roles) (*Enterprise, error) {
	e := &Enterprise{
		roles:         roles,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setOwnerID(ownerID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Enterprise instance was created through NewEnterprise.
func (e *Enterprise) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEnterpriseIsNotConstructed
	}
	return nil
}

// IsEqual compares two enterprises by identity.
func (e *Enterprise) IsEqual(other *Enterprise) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the enterprise identity.
func (e *Enterprise) ID() kernel.UUID {
	return e.id
}

// Name returns the trading name.
func (e *Enterprise) Name() string {
	return e.name
}

// OwnerID returns the identity of the actor that owns this enterprise.
func (e *Enterprise) OwnerID() kernel.UUID {
	return e.ownerID
}

// Roles returns the current capability set.
func (e *Enterprise) Roles() Roles {
	return e.roles
}

// IsSupplier reports whether the enterprise supplies products.
func (e *Enterprise) IsSupplier() bool {
	return e.roles.Supplier
}

// IsDistributor reports whether the enterprise distributes orders to customers.
func (e *Enterprise) IsDistributor() bool {
	return e.roles.Distributor
}

// IsCoordinator reports whether the enterprise may coordinate order cycles.
func (e *Enterprise) IsCoordinator() bool {
	return e.roles.Coordinator
}

// IsOwnedBy reports whether the given actor identity owns this enterprise.
func (e *Enterprise) IsOwnedBy(actorID kernel.UUID) bool {
	return e.ownerID.IsEqual(actorID)
}

// UpdateRoles replaces the capability set. Role changes take effect for
// subsequent authorization decisions only.
func (e *Enterprise) UpdateRoles(roles Roles) {
	e.roles = roles
}

func (e *Enterprise) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Enterprise) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	e.name = name
	return nil
}

func (e *Enterprise) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	e.ownerID = ownerID
	return nil
}
