package commands

import (
	"context"
)

// PurgeStaleCartsCommandHandler deletes abandoned cart-state orders older
// than the command's cutoff. Orders that progressed past the cart are never
// touched, whatever their age.
type PurgeStaleCartsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeStaleCartsCommandHandler creates a handler for cart purge operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewPurgeStaleCartsCommandHandler(uowFactory OrderUoWFactory) PurgeStaleCartsCommandHandler {
	return PurgeStaleCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns how many carts were removed.
func (h *PurgeStaleCartsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRepository().DeleteCartsBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
