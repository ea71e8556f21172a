package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderCyclesCommand(t *testing.T) {
	t.Run("valid clock reading", func(t *testing.T) {
		now := time.Now()

		cmd, err := commands.NewAdvanceOrderCyclesCommand(now)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, now, cmd.Now())
	})

	t.Run("zero clock reading", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCyclesCommand(time.Time{})

		assert.ErrorIs(t, err, commands.ErrNowIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.AdvanceOrderCyclesCommand{}

		assert.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderCyclesCommandIsNotConstructed)
	})
}
