package actor

import (
	"errors"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor factory method.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated caller a request is evaluated for. It carries
// exactly what the visibility policy needs: the caller's identity, the admin
// flag and the enterprises the caller owns together with their role flags.
// It is assembled per request from the verified token and the enterprise
// store and never persisted itself.
type Actor struct {
	id               kernel.UUID
	isAdmin          bool
	ownedEnterprises map[kernel.UUID]enterprise.Roles

	isConstructed bool
}

// NewActor creates an actor from a verified identity and the enterprises it
// owns. An actor with no enterprises is valid; it simply has no owner-scoped
// visibility.
func NewActor(id kernel.UUID, isAdmin bool, owned []*enterprise.Enterprise) (*Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	ownedEnterprises := make(map[kernel.UUID]enterprise.Roles, len(owned))
	for _, e := range owned {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		ownedEnterprises[e.ID()] = e.Roles()
	}

	return &Actor{
		id:               id,
		isAdmin:          isAdmin,
		ownedEnterprises: ownedEnterprises,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Actor instance was created through NewActor.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's identity.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// IsAdmin reports whether the actor holds the platform admin role.
func (a *Actor) IsAdmin() bool {
	return a.isAdmin
}

// OwnsEnterprise reports whether the actor owns the given enterprise.
func (a *Actor) OwnsEnterprise(enterpriseID kernel.UUID) bool {
	_, ok := a.ownedEnterprises[enterpriseID]
	return ok
}

// OwnsAnyEnterprise reports whether the actor owns at least one enterprise.
// Non-admin actors without any enterprise have no standing in the order API.
func (a *Actor) OwnsAnyEnterprise() bool {
	return len(a.ownedEnterprises) > 0
}

// OwnsSellingEnterprise reports whether the actor owns at least one
// enterprise that sells to customers, i.e. one with the distributor or
// coordinator role. Owning only supplier enterprises does not count: such an
// owner has no order listing of their own.
func (a *Actor) OwnsSellingEnterprise() bool {
	for _, roles := range a.ownedEnterprises {
		if roles.Distributor || roles.Coordinator {
			return true
		}
	}
	return false
}

// OwnedEnterpriseIDs returns the IDs of the enterprises the actor owns.
func (a *Actor) OwnedEnterpriseIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(a.ownedEnterprises))
	for id := range a.ownedEnterprises {
		ids = append(ids, id)
	}
	return ids
}
