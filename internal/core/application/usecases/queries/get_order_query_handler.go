package queries

import (
	"context"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// GetOrderQueryHandler fetches a single order by business number and decides
// whether the requesting actor may see it.
//
// Existence is resolved before authorization: a number that matches no order
// is not-found for everyone, so the lookup never confirms or denies an
// order's existence through an authorization response. Only once the order
// exists does the visibility decision split into denied (the actor is an
// enterprise owner without a grant) versus unauthorized (no standing at all).
type GetOrderQueryHandler struct {
	orderRepo      ports.OrderRepository
	enterpriseRepo ports.EnterpriseRepository
	policy         services.OrderVisibilityPolicy
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(
	orderRepo ports.OrderRepository,
	enterpriseRepo ports.EnterpriseRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepo:      orderRepo,
		enterpriseRepo: enterpriseRepo,
		policy:         services.NewOrderVisibilityPolicy(),
	}
}

// Handle executes the lookup. The order's lifecycle state never gates
// single-order access; ownership alone decides.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	number, err := order.ParseNumber(query.RawNumber())
	if err != nil {
		// Malformed or empty numbers denote nothing; they are a lookup
		// miss, not an input error.
		return nil, errs.NewObjectNotFoundError("orderNumber", query.RawNumber())
	}

	found, err := h.orderRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	requester, err := h.buildActor(ctx, query)
	if err != nil {
		return nil, err
	}

	switch h.policy.CanView(requester, found) {
	case services.Allow:
		return found, nil
	case services.NoStanding:
		return nil, errs.NewUnauthorizedError(
			"actor owns no enterprise and holds no admin role")
	default:
		return nil, errs.NewAccessForbiddenError("orderNumber", number.String())
	}
}

func (h GetOrderQueryHandler) buildActor(ctx context.Context, query GetOrderQuery) (*actor.Actor, error) {
	owned, err := h.enterpriseRepo.GetAllByOwner(ctx, query.ActorID())
	if err != nil {
		return nil, err
	}

	return actor.NewActor(query.ActorID(), query.IsAdmin(), owned)
}
