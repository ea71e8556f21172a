package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery requests a single order by its business number on behalf of
// an actor. The number is kept raw: whether it denotes an existing order is
// a lookup concern, decided before any authorization check.
//
// Example:
//
//	query, err := NewGetOrderQuery(actorID, false, "R123456789")
//	if err != nil {
//	    return fmt.Errorf("invalid lookup parameters: %w", err)
//	}
//
//	order, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	isAdmin   bool
	rawNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a lookup query. The raw number is not validated
// here; an empty or malformed number simply matches no order.
func NewGetOrderQuery(actorID kernel.UUID, isAdmin bool, rawNumber string) (GetOrderQuery, error) {
	query := GetOrderQuery{
		isAdmin:   isAdmin,
		rawNumber: strings.TrimSpace(rawNumber),
		guard:     guard.NewConstructorGuard(),
	}

	if err := query.setActorID(actorID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// ActorID returns the identity of the requesting actor.
func (q GetOrderQuery) ActorID() kernel.UUID {
	return q.actorID
}

// IsAdmin reports whether the requesting actor holds the admin role.
func (q GetOrderQuery) IsAdmin() bool {
	return q.isAdmin
}

// RawNumber returns the number as the caller supplied it.
func (q GetOrderQuery) RawNumber() string {
	return q.rawNumber
}

func (q *GetOrderQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
