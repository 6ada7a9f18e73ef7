package ship_test

import (
	"testing"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createTestFactory(t *testing.T) *container.Factory {
	t.Helper()
	factory, err := container.NewFactory(
		kernel.NewSerialSequence(),
		container.NotifierFunc(func(container.Kind, kernel.SerialNumber) {}),
	)
	require.NoError(t, err)
	return factory
}

func createValidShip(t *testing.T) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), "Test Ship", 18, 10, 100)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

// createGasContainer builds a gas container whose total weight is exactly
// tareWeight + loadMass kilograms.
func createGasContainer(t *testing.T, factory *container.Factory, tareWeight, loadMass float64) *container.GasContainer {
	t.Helper()
	c, err := factory.NewGasContainer(2.6, 6.0, 50_000, tareWeight, 12)
	require.NoError(t, err)
	if loadMass > 0 {
		require.NoError(t, c.Load(loadMass))
	}
	return c
}

func TestNewShip(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create ship with valid parameters", func(t *testing.T) {
		s, err := ship.NewShip(validID, "Evergreen", 18, 24, 300)

		require.NoError(t, err)
		assert.NotNil(t, s)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.Equal(t, "Evergreen", s.Name())
		assert.Equal(t, 18, s.MaxSpeed())
		assert.Equal(t, 24, s.MaxContainerCount())
		assert.InDelta(t, 300.0, s.MaxTotalWeight(), 0.0001)
		assert.Empty(t, s.Containers())
		assert.Zero(t, s.ContainerCount())
		assert.Zero(t, s.TotalWeight())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := ship.NewShip(invalidID, "Evergreen", 18, 24, 300)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		s, err := ship.NewShip(validID, "", 18, 24, 300)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should validate numeric limits", func(t *testing.T) {
		testCases := []struct {
			name              string
			maxSpeed          int
			maxContainerCount int
			maxTotalWeight    float64
			shouldError       bool
			errorContains     string
		}{
			{"minimum valid limits", 1, 1, 0.5, false, ""},
			{"typical limits", 20, 24, 300, false, ""},
			{"zero speed", 0, 24, 300, true, "maxSpeed"},
			{"negative speed", -3, 24, 300, true, "maxSpeed"},
			{"zero container count", 18, 0, 300, true, "maxContainerCount"},
			{"negative container count", 18, -1, 300, true, "maxContainerCount"},
			{"zero weight limit", 18, 24, 0, true, "maxTotalWeight"},
			{"negative weight limit", 18, 24, -10, true, "maxTotalWeight"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				s, err := ship.NewShip(validID, "Evergreen", tc.maxSpeed, tc.maxContainerCount, tc.maxTotalWeight)

				if tc.shouldError {
					require.Error(t, err)
					assert.Nil(t, s)
					assert.Contains(t, err.Error(), tc.errorContains)
				} else {
					require.NoError(t, err)
					assert.NotNil(t, s)
				}
			})
		}
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := ship.NewShip(invalidID, "", 0, 0, 0)

		require.Error(t, err)
		assert.Nil(t, s)

		errorStr := err.Error()
		assert.Contains(t, errorStr, kernel.ErrUUIDIsNotConstructed.Error())
		assert.Contains(t, errorStr, "name")
		assert.Contains(t, errorStr, "maxSpeed")
		assert.Contains(t, errorStr, "maxContainerCount")
		assert.Contains(t, errorStr, "maxTotalWeight")
	})
}

func TestRestoreShip(t *testing.T) {
	factory := createTestFactory(t)

	t.Run("should restore ship with cargo in loading order", func(t *testing.T) {
		first := createGasContainer(t, factory, 3_000, 1_000)
		second := createGasContainer(t, factory, 3_000, 2_000)

		s, err := ship.RestoreShip(kernel.NewUUID(), "Evergreen", 18, 10, 100,
			[]container.Container{first, second})

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		cargo := s.Containers()
		require.Len(t, cargo, 2)
		assert.True(t, cargo[0].SerialNumber().IsEqual(first.SerialNumber()))
		assert.True(t, cargo[1].SerialNumber().IsEqual(second.SerialNumber()))
		assert.InDelta(t, 9_000.0, s.TotalWeight(), 0.0001)
	})

	t.Run("should reject persisted state exceeding the container count", func(t *testing.T) {
		cargo := []container.Container{
			createGasContainer(t, factory, 3_000, 0),
			createGasContainer(t, factory, 3_000, 0),
		}

		s, err := ship.RestoreShip(kernel.NewUUID(), "Dinghy", 5, 1, 100, cargo)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ship.ErrShipIsFull)
	})

	t.Run("should reject persisted state exceeding the weight limit", func(t *testing.T) {
		cargo := []container.Container{
			createGasContainer(t, factory, 3_000, 5_000),
		}

		// 8 tonnes of cargo against a 5 tonne limit.
		s, err := ship.RestoreShip(kernel.NewUUID(), "Dinghy", 5, 10, 5, cargo)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ship.ErrWeightLimitExceeded)
	})
}

func TestShip_LoadContainer(t *testing.T) {
	t.Run("should load container and preserve order", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		first := createGasContainer(t, factory, 3_000, 500)
		second := createGasContainer(t, factory, 3_000, 700)

		require.NoError(t, s.LoadContainer(first))
		require.NoError(t, s.LoadContainer(second))

		assert.Equal(t, 2, s.ContainerCount())
		cargo := s.Containers()
		assert.True(t, cargo[0].SerialNumber().IsEqual(first.SerialNumber()))
		assert.True(t, cargo[1].SerialNumber().IsEqual(second.SerialNumber()))
		assert.InDelta(t, 7_200.0, s.TotalWeight(), 0.0001)
	})

	t.Run("should reject nil container", func(t *testing.T) {
		s := createValidShip(t)

		err := s.LoadContainer(nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "container")
	})

	t.Run("should reject duplicate serial number", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		c := createGasContainer(t, factory, 3_000, 0)

		require.NoError(t, s.LoadContainer(c))
		err := s.LoadContainer(c)

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrDuplicateSerialNumber)
		assert.Equal(t, 1, s.ContainerCount())
	})

	t.Run("should reject container when ship is full", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 2, 100)
		require.NoError(t, err)

		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 3_000, 0)))
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 3_000, 0)))

		err = s.LoadContainer(createGasContainer(t, factory, 3_000, 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrShipIsFull)
		assert.Equal(t, 2, s.ContainerCount())
	})

	t.Run("should reject container when weight limit would be exceeded", func(t *testing.T) {
		factory := createTestFactory(t)
		// 10 tonne limit, 6 tonnes already on board.
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 10, 10)
		require.NoError(t, err)
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 4_000, 2_000)))

		err = s.LoadContainer(createGasContainer(t, factory, 4_000, 1_000))

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrWeightLimitExceeded)
		assert.Equal(t, 1, s.ContainerCount())
		assert.InDelta(t, 6_000.0, s.TotalWeight(), 0.0001)
	})

	t.Run("should load container landing exactly on the weight limit", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 10, 10)
		require.NoError(t, err)
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 4_000, 2_000)))

		err = s.LoadContainer(createGasContainer(t, factory, 3_000, 1_000))

		require.NoError(t, err)
		assert.InDelta(t, 10_000.0, s.TotalWeight(), 0.0001)
		assert.InDelta(t, 0.0, s.RemainingWeight(), 0.0001)
	})

	t.Run("should report full before overweight", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 1, 5)
		require.NoError(t, err)
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 4_000, 0)))

		// Breaks both the count and the weight limit; count wins.
		err = s.LoadContainer(createGasContainer(t, factory, 4_000, 0))

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrShipIsFull)
	})
}

func TestShip_LoadContainers(t *testing.T) {
	t.Run("should load every container in the batch", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		batch := []container.Container{
			createGasContainer(t, factory, 3_000, 100),
			createGasContainer(t, factory, 3_000, 200),
			createGasContainer(t, factory, 3_000, 300),
		}

		require.NoError(t, s.LoadContainers(batch))

		assert.Equal(t, 3, s.ContainerCount())
	})

	t.Run("should stop at the first failure and keep earlier containers", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 2, 100)
		require.NoError(t, err)
		first := createGasContainer(t, factory, 3_000, 0)
		second := createGasContainer(t, factory, 3_000, 0)
		third := createGasContainer(t, factory, 3_000, 0)

		err = s.LoadContainers([]container.Container{first, second, third})

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrShipIsFull)
		assert.Equal(t, 2, s.ContainerCount())
	})
}

func TestShip_UnloadContainer(t *testing.T) {
	t.Run("should release the container and keep the order of the rest", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		first := createGasContainer(t, factory, 3_000, 0)
		second := createGasContainer(t, factory, 3_000, 0)
		third := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainers([]container.Container{first, second, third}))

		released, err := s.UnloadContainer(second.SerialNumber())

		require.NoError(t, err)
		assert.True(t, released.SerialNumber().IsEqual(second.SerialNumber()))
		cargo := s.Containers()
		require.Len(t, cargo, 2)
		assert.True(t, cargo[0].SerialNumber().IsEqual(first.SerialNumber()))
		assert.True(t, cargo[1].SerialNumber().IsEqual(third.SerialNumber()))
	})

	t.Run("should return error for unknown serial number", func(t *testing.T) {
		s := createValidShip(t)
		serial, err := kernel.NewSerialNumber("G", 42)
		require.NoError(t, err)

		released, unloadErr := s.UnloadContainer(serial)

		require.Error(t, unloadErr)
		assert.Nil(t, released)
		assert.ErrorIs(t, unloadErr, ship.ErrContainerNotFound)
		assert.Contains(t, unloadErr.Error(), "KON-G-42")
	})

	t.Run("should free capacity for new cargo", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 1, 100)
		require.NoError(t, err)
		first := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainer(first))

		_, err = s.UnloadContainer(first.SerialNumber())
		require.NoError(t, err)

		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 3_000, 0)))
		assert.Equal(t, 1, s.ContainerCount())
	})

	t.Run("should allow reloading a previously unloaded container", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		c := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainer(c))

		released, err := s.UnloadContainer(c.SerialNumber())
		require.NoError(t, err)

		require.NoError(t, s.LoadContainer(released))
		assert.Equal(t, 1, s.ContainerCount())
	})
}

func TestShip_ReplaceContainer(t *testing.T) {
	t.Run("should swap the container in place and return the displaced one", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		first := createGasContainer(t, factory, 3_000, 0)
		second := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainers([]container.Container{first, second}))
		replacement := createGasContainer(t, factory, 4_000, 500)

		displaced, err := s.ReplaceContainer(first.SerialNumber(), replacement)

		require.NoError(t, err)
		assert.True(t, displaced.SerialNumber().IsEqual(first.SerialNumber()))
		cargo := s.Containers()
		require.Len(t, cargo, 2)
		assert.True(t, cargo[0].SerialNumber().IsEqual(replacement.SerialNumber()))
		assert.True(t, cargo[1].SerialNumber().IsEqual(second.SerialNumber()))
	})

	t.Run("should return error for unknown serial number", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		serial, err := kernel.NewSerialNumber("G", 99)
		require.NoError(t, err)

		displaced, replaceErr := s.ReplaceContainer(serial, createGasContainer(t, factory, 3_000, 0))

		require.Error(t, replaceErr)
		assert.Nil(t, displaced)
		assert.ErrorIs(t, replaceErr, ship.ErrContainerNotFound)
	})

	t.Run("should reject replacement colliding with another container on board", func(t *testing.T) {
		factory := createTestFactory(t)
		s := createValidShip(t)
		first := createGasContainer(t, factory, 3_000, 0)
		second := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainers([]container.Container{first, second}))

		displaced, err := s.ReplaceContainer(first.SerialNumber(), second)

		require.Error(t, err)
		assert.Nil(t, displaced)
		assert.ErrorIs(t, err, ship.ErrDuplicateSerialNumber)
		assert.Equal(t, 2, s.ContainerCount())
	})

	t.Run("should reject replacement breaking the weight limit", func(t *testing.T) {
		factory := createTestFactory(t)
		// 10 tonne limit with a 4 tonne and a 5 tonne container on board.
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 10, 10)
		require.NoError(t, err)
		light := createGasContainer(t, factory, 4_000, 0)
		heavy := createGasContainer(t, factory, 5_000, 0)
		require.NoError(t, s.LoadContainers([]container.Container{light, heavy}))

		// Swapping the 4 tonne container for a 6 tonne one would hit 11 tonnes.
		displaced, replaceErr := s.ReplaceContainer(light.SerialNumber(), createGasContainer(t, factory, 6_000, 0))

		require.Error(t, replaceErr)
		assert.Nil(t, displaced)
		assert.ErrorIs(t, replaceErr, ship.ErrWeightLimitExceeded)
		assert.InDelta(t, 9_000.0, s.TotalWeight(), 0.0001)
	})

	t.Run("should exclude the displaced container from the weight check", func(t *testing.T) {
		factory := createTestFactory(t)
		s, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 10, 10)
		require.NoError(t, err)
		heavy := createGasContainer(t, factory, 6_000, 0)
		require.NoError(t, s.LoadContainer(heavy))
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 3_000, 0)))

		// 6t -> 7t: fits only because the displaced 6t leaves the sum first.
		displaced, replaceErr := s.ReplaceContainer(heavy.SerialNumber(), createGasContainer(t, factory, 7_000, 0))

		require.NoError(t, replaceErr)
		assert.True(t, displaced.SerialNumber().IsEqual(heavy.SerialNumber()))
		assert.InDelta(t, 10_000.0, s.TotalWeight(), 0.0001)
	})
}

func TestShip_TransferContainer(t *testing.T) {
	t.Run("should move the container between ships", func(t *testing.T) {
		factory := createTestFactory(t)
		source := createValidShip(t)
		target := createValidShip(t)
		c := createGasContainer(t, factory, 3_000, 500)
		require.NoError(t, source.LoadContainer(c))

		err := source.TransferContainer(c.SerialNumber(), target)

		require.NoError(t, err)
		assert.Zero(t, source.ContainerCount())
		assert.Equal(t, 1, target.ContainerCount())
		moved, findErr := target.FindContainer(c.SerialNumber())
		require.NoError(t, findErr)
		assert.True(t, moved.SerialNumber().IsEqual(c.SerialNumber()))
	})

	t.Run("should return error for nil target", func(t *testing.T) {
		factory := createTestFactory(t)
		source := createValidShip(t)
		c := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, source.LoadContainer(c))

		err := source.TransferContainer(c.SerialNumber(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "target ship")
		assert.Equal(t, 1, source.ContainerCount())
	})

	t.Run("should return error for unknown serial number", func(t *testing.T) {
		source := createValidShip(t)
		target := createValidShip(t)
		serial, err := kernel.NewSerialNumber("L", 7)
		require.NoError(t, err)

		transferErr := source.TransferContainer(serial, target)

		require.Error(t, transferErr)
		assert.ErrorIs(t, transferErr, ship.ErrContainerNotFound)
	})

	t.Run("should leave both ships unchanged when the target is full", func(t *testing.T) {
		factory := createTestFactory(t)
		source := createValidShip(t)
		target, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 1, 100)
		require.NoError(t, err)
		require.NoError(t, target.LoadContainer(createGasContainer(t, factory, 3_000, 0)))
		c := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, source.LoadContainer(c))

		transferErr := source.TransferContainer(c.SerialNumber(), target)

		require.Error(t, transferErr)
		assert.ErrorIs(t, transferErr, ship.ErrShipIsFull)
		assert.Equal(t, 1, source.ContainerCount())
		assert.Equal(t, 1, target.ContainerCount())
		_, findErr := source.FindContainer(c.SerialNumber())
		assert.NoError(t, findErr)
	})

	t.Run("should leave both ships unchanged when the target is overweight", func(t *testing.T) {
		factory := createTestFactory(t)
		source := createValidShip(t)
		target, err := ship.NewShip(kernel.NewUUID(), "Dinghy", 5, 10, 5)
		require.NoError(t, err)
		require.NoError(t, target.LoadContainer(createGasContainer(t, factory, 3_000, 0)))
		c := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, source.LoadContainer(c))

		transferErr := source.TransferContainer(c.SerialNumber(), target)

		require.Error(t, transferErr)
		assert.ErrorIs(t, transferErr, ship.ErrWeightLimitExceeded)
		assert.Equal(t, 1, source.ContainerCount())
		assert.Equal(t, 1, target.ContainerCount())
	})
}

func TestShip_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should be equal for same ID regardless of attributes", func(t *testing.T) {
		s1, err := ship.NewShip(id1, "Alpha", 10, 5, 50)
		require.NoError(t, err)
		s2, err := ship.NewShip(id1, "Beta", 20, 8, 80)
		require.NoError(t, err)

		assert.True(t, s1.IsEqual(s2))
		assert.True(t, s2.IsEqual(s1))
	})

	t.Run("should not be equal for different IDs", func(t *testing.T) {
		s1, err := ship.NewShip(id1, "Alpha", 10, 5, 50)
		require.NoError(t, err)
		s2, err := ship.NewShip(id2, "Alpha", 10, 5, 50)
		require.NoError(t, err)

		assert.False(t, s1.IsEqual(s2))
	})

	t.Run("should not be equal to nil", func(t *testing.T) {
		s1, err := ship.NewShip(id1, "Alpha", 10, 5, 50)
		require.NoError(t, err)

		assert.False(t, s1.IsEqual(nil))
	})
}

func TestShip_Validate(t *testing.T) {
	t.Run("should validate properly constructed ship", func(t *testing.T) {
		s := createValidShip(t)
		require.NoError(t, s.Validate())
	})

	t.Run("should reject zero value ship", func(t *testing.T) {
		var s ship.Ship
		err := s.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrShipIsNotConstructed)
	})

	t.Run("should reject nil ship", func(t *testing.T) {
		var s *ship.Ship
		err := s.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, ship.ErrShipIsNotConstructed)
	})
}

func TestShip_Info(t *testing.T) {
	factory := createTestFactory(t)

	t.Run("should summarize the ship and its load", func(t *testing.T) {
		s, err := ship.NewShip(kernel.NewUUID(), "Evergreen", 18, 24, 300)
		require.NoError(t, err)
		require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 4_000, 1_000)))

		info := s.Info()

		assert.Equal(t, "Ship Evergreen: speed=18 knots, containers=1/24, totalWeight=5.00 t", info)
	})

	t.Run("should list container summaries in loading order", func(t *testing.T) {
		s := createValidShip(t)
		first := createGasContainer(t, factory, 3_000, 0)
		second := createGasContainer(t, factory, 3_000, 0)
		require.NoError(t, s.LoadContainers([]container.Container{first, second}))

		infos := s.ContainersInfo()

		require.Len(t, infos, 2)
		assert.Contains(t, infos[0], first.SerialNumber().String())
		assert.Contains(t, infos[1], second.SerialNumber().String())
	})
}

func TestShip_CapacityScenario(t *testing.T) {
	// A small ship with room for two containers and ten tonnes of cargo.
	factory := createTestFactory(t)
	s, err := ship.NewShip(kernel.NewUUID(), "Coastal Trader", 12, 2, 10)
	require.NoError(t, err)

	first := createGasContainer(t, factory, 3_000, 1_000)
	second := createGasContainer(t, factory, 3_000, 1_000)

	require.NoError(t, s.LoadContainer(first))
	require.NoError(t, s.LoadContainer(second))
	assert.InDelta(t, 8_000.0, s.TotalWeight(), 0.0001)

	err = s.LoadContainer(createGasContainer(t, factory, 1_000, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ship.ErrShipIsFull)

	// Unloading one frees a slot and headroom for a heavier container.
	_, err = s.UnloadContainer(first.SerialNumber())
	require.NoError(t, err)
	require.NoError(t, s.LoadContainer(createGasContainer(t, factory, 5_000, 1_000)))
	assert.InDelta(t, 10_000.0, s.TotalWeight(), 0.0001)
}
