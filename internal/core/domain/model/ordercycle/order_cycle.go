package ordercycle

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/enterprise"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderCycleIsNotConstructed is returned when an OrderCycle instance was not
	// created through the NewOrderCycle or RestoreOrderCycle factory methods.
	ErrOrderCycleIsNotConstructed = errors.New("OrderCycle must be created via NewOrderCycle constructor")

	// ErrOrderCycleNotUpcoming is returned when opening a cycle that is not upcoming.
	ErrOrderCycleNotUpcoming = errors.New("only an upcoming order cycle can be opened")

	// ErrOrderCycleNotOpen is returned when closing a cycle that is not open.
	ErrOrderCycleNotOpen = errors.New("only an open order cycle can be closed")
)

// OrderCycle is a bounded trading round grouping orders, distributors and
// suppliers under exactly one coordinator enterprise. The coordinator is
// fixed for the cycle's lifetime; the open/close window is advanced by the
// cycle clock job.
type OrderCycle struct {
	id          kernel.UUID
	name        string
	coordinator *enterprise.Enterprise
	opensAt     time.Time
	closesAt    time.Time
	status      Status

	isConstructed bool
}

// NewOrderCycle creates a validated OrderCycle in Upcoming status.
// The coordinator is required; any enterprise may coordinate a cycle
// regardless of its other role flags.
func NewOrderCycle(
	id kernel.UUID,
	name string,
	coordinator *enterprise.Enterprise,
	opensAt time.Time,
	closesAt time.Time,
) (*OrderCycle, error) {
	oc := &OrderCycle{
		status:        Upcoming,
		isConstructed: true,
	}

	if err := errors.Join(
		oc.setID(id),
		oc.setName(name),
		oc.setCoordinator(coordinator),
		oc.setWindow(opensAt, closesAt),
	); err != nil {
		return nil, err
	}

	return oc, nil
}

// RestoreOrderCycle reconstructs an OrderCycle from persistence with an
// explicit status.
func RestoreOrderCycle(
	id kernel.UUID,
	name string,
	coordinator *enterprise.Enterprise,
	opensAt time.Time,
	closesAt time.Time,
	status Status,
) (*OrderCycle, error) {
	oc, err := NewOrderCycle(id, name, coordinator, opensAt, closesAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	oc.status = status

	return oc, nil
}

// Validate ensures the OrderCycle instance was created through a constructor.
func (oc *OrderCycle) Validate() error {
	if oc == nil || !oc.isConstructed {
		return ErrOrderCycleIsNotConstructed
	}
	return nil
}

// IsEqual compares two order cycles by identity.
func (oc *OrderCycle) IsEqual(other *OrderCycle) bool {
	return other != nil && oc.id.IsEqual(other.id)
}

// ID returns the cycle identity.
func (oc *OrderCycle) ID() kernel.UUID {
	return oc.id
}

// Name returns the cycle's display name.
func (oc *OrderCycle) Name() string {
	return oc.name
}

// Coordinator returns the enterprise administering this cycle.
func (oc *OrderCycle) Coordinator() *enterprise.Enterprise {
	return oc.coordinator
}

// OpensAt returns the start of the trading window.
func (oc *OrderCycle) OpensAt() time.Time {
	return oc.opensAt
}

// ClosesAt returns the end of the trading window.
func (oc *OrderCycle) ClosesAt() time.Time {
	return oc.closesAt
}

// Status returns the current window status.
func (oc *OrderCycle) Status() Status {
	return oc.status
}

// IsCoordinatedBy reports whether the given actor identity owns the
// coordinator enterprise of this cycle.
func (oc *OrderCycle) IsCoordinatedBy(actorID kernel.UUID) bool {
	return oc.coordinator != nil && oc.coordinator.IsOwnedBy(actorID)
}

// DueToOpen reports whether the cycle is upcoming and its window start has passed.
func (oc *OrderCycle) DueToOpen(now time.Time) bool {
	return oc.status == Upcoming && !now.Before(oc.opensAt)
}

// DueToClose reports whether the cycle is open and its window end has passed.
func (oc *OrderCycle) DueToClose(now time.Time) bool {
	return oc.status == Open && !now.Before(oc.closesAt)
}

// Open transitions the cycle from Upcoming to Open.
func (oc *OrderCycle) Open() error {
	if oc.status != Upcoming {
		return ErrOrderCycleNotUpcoming
	}
	oc.status = Open
	return nil
}

// Close transitions the cycle from Open to Closed.
func (oc *OrderCycle) Close() error {
	if oc.status != Open {
		return ErrOrderCycleNotOpen
	}
	oc.status = Closed
	return nil
}

func (oc *OrderCycle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	oc.id = id
	return nil
}

func (oc *OrderCycle) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	oc.name = name
	return nil
}

func (oc *OrderCycle) setCoordinator(coordinator *enterprise.Enterprise) error {
	if err := coordinator.Validate(); err != nil {
		return err
	}
	oc.coordinator = coordinator
	return nil
}

func (oc *OrderCycle) setWindow(opensAt, closesAt time.Time) error {
	if !closesAt.After(opensAt) {
		return errs.NewValueIsInvalidErrorWithCause("closesAt",
			errors.New("trading window must close after it opens"))
	}
	oc.opensAt = opensAt
	oc.closesAt = closesAt
	return nil
}
