package commands

import (
	"context"
)

// AdvanceOrderCyclesCommandHandler opens and closes order cycles whose
// window boundaries have passed. Customers can only place orders into open
// cycles, so the sweep runs frequently from a scheduled job.
type AdvanceOrderCyclesCommandHandler struct {
	uowFactory OrderCycleUoWFactory
}

// NewAdvanceOrderCyclesCommandHandler creates a handler for the cycle sweep.
// Requires an OrderCycleUoWFactory for transactional persistence.
func NewAdvanceOrderCyclesCommandHandler(uowFactory OrderCycleUoWFactory) AdvanceOrderCyclesCommandHandler {
	return AdvanceOrderCyclesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many cycles were opened and
// closed. Both transitions happen in one transaction so a cycle is never
// observed opened-but-not-closed across a boundary the same sweep crossed.
func (h *AdvanceOrderCyclesCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderCyclesCommand,
) (opened int, closed int, err error) {
	if err = cmd.Validate(); err != nil {
		return 0, 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cycleRepo := uow.OrderCycleRepository()

	dueToOpen, err := cycleRepo.GetAllDueToOpen(ctx, cmd.Now())
	if err != nil {
		return 0, 0, err
	}
	for _, cycle := range dueToOpen {
		if err = cycle.Open(); err != nil {
			return 0, 0, err
		}
		if err = cycleRepo.Update(ctx, cycle); err != nil {
			return 0, 0, err
		}
		opened++
	}

	dueToClose, err := cycleRepo.GetAllDueToClose(ctx, cmd.Now())
	if err != nil {
		return 0, 0, err
	}
	for _, cycle := range dueToClose {
		if err = cycle.Close(); err != nil {
			return 0, 0, err
		}
		if err = cycleRepo.Update(ctx, cycle); err != nil {
			return 0, 0, err
		}
		closed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, 0, err
	}

	return opened, closed, nil
}
