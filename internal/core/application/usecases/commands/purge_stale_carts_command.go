package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var (
	ErrPurgeStaleCartsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartsCommand must be created via NewPurgeStaleCartsCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff is required")
)

// PurgeStaleCartsCommand requests deletion of cart-state orders created
// before a cutoff. Abandoned carts never gain visibility in the order API
// and only accumulate; the purge keeps listing scans bounded.
//
// Example:
//
//	cmd, err := NewPurgeStaleCartsCommand(time.Now().AddDate(0, 0, -30))
//	if err != nil {
//	    return fmt.Errorf("invalid cutoff: %w", err)
//	}
//
//	handler := NewPurgeStaleCartsCommandHandler(uowFactory)
//	purged, err := handler.Handle(ctx, cmd)
type PurgeStaleCartsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartsCommand creates a command to purge carts created before
// the cutoff. The cutoff must not be the zero value.
func NewPurgeStaleCartsCommand(cutoff time.Time) (PurgeStaleCartsCommand, error) {
	cmd := PurgeStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return PurgeStaleCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeStaleCartsCommandIsNotConstructed if validation fails.
func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartsCommandIsNotConstructed)
}

// Cutoff returns the creation-time boundary; carts created before it are
// deleted.
func (c PurgeStaleCartsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeStaleCartsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
