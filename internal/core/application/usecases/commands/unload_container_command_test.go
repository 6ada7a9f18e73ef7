package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnloadContainerCommand(t *testing.T) {
	validSerial, err := kernel.NewSerialNumber("L", 7)
	require.NoError(t, err)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		shipID := kernel.NewUUID()

		cmd, cmdErr := commands.NewUnloadContainerCommand(shipID, validSerial)

		require.NoError(t, cmdErr)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipID().IsEqual(shipID))
		assert.True(t, cmd.SerialNumber().IsEqual(validSerial))
	})

	t.Run("should reject invalid ship ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, cmdErr := commands.NewUnloadContainerCommand(invalidID, validSerial)

		require.Error(t, cmdErr)
		assert.ErrorIs(t, cmdErr, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject invalid serial number", func(t *testing.T) {
		var invalidSerial kernel.SerialNumber

		_, cmdErr := commands.NewUnloadContainerCommand(kernel.NewUUID(), invalidSerial)

		require.Error(t, cmdErr)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.UnloadContainerCommand

		validateErr := cmd.Validate()

		require.Error(t, validateErr)
		assert.Equal(t, commands.ErrUnloadContainerCommandIsNotConstructed, validateErr)
	})
}
