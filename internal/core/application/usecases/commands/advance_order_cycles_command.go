package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCyclesCommandIsNotConstructed = errors.New(
		"AdvanceOrderCyclesCommand must be created via NewAdvanceOrderCyclesCommand constructor",
	)
	ErrNowIsRequired = errors.New("now is required")
)

// AdvanceOrderCyclesCommand requests a sweep over order cycles whose window
// boundary has passed: upcoming cycles past their opening time are opened,
// open cycles past their closing time are closed.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCyclesCommand(time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid clock input: %w", err)
//	}
//
//	handler := NewAdvanceOrderCyclesCommandHandler(uowFactory)
//	opened, closed, err := handler.Handle(ctx, cmd)
type AdvanceOrderCyclesCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCyclesCommand creates a command to advance cycles against
// the given clock reading. The time must not be the zero value.
func NewAdvanceOrderCyclesCommand(now time.Time) (AdvanceOrderCyclesCommand, error) {
	cmd := AdvanceOrderCyclesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNow(now); err != nil {
		return AdvanceOrderCyclesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCyclesCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCyclesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCyclesCommandIsNotConstructed)
}

// Now returns the clock reading the sweep is evaluated against.
func (c AdvanceOrderCyclesCommand) Now() time.Time {
	return c.now
}

func (c *AdvanceOrderCyclesCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrNowIsRequired
	}

	c.now = now
	return nil
}
