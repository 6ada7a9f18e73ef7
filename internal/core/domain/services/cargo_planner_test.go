package services_test

import (
	"testing"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ship"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFactory(t *testing.T) *container.Factory {
	t.Helper()
	factory, err := container.NewFactory(
		kernel.NewSerialSequence(),
		container.NotifierFunc(func(container.Kind, kernel.SerialNumber) {}),
	)
	require.NoError(t, err)
	return factory
}

func createShip(t *testing.T, name string, maxContainerCount int, maxTotalWeight float64) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), name, 15, maxContainerCount, maxTotalWeight)
	require.NoError(t, err)
	return s
}

func createCargo(t *testing.T, factory *container.Factory, tareWeight float64) container.Container {
	t.Helper()
	c, err := factory.NewGasContainer(2.6, 6.0, 40_000, tareWeight, 10)
	require.NoError(t, err)
	return c
}

func TestCargoPlanner_Plan(t *testing.T) {
	planner := services.NewCargoPlanner()

	t.Run("should load the ship with the most weight headroom", func(t *testing.T) {
		factory := createTestFactory(t)
		crowded := createShip(t, "Crowded", 10, 50)
		require.NoError(t, crowded.LoadContainer(createCargo(t, factory, 30_000)))
		roomy := createShip(t, "Roomy", 10, 50)

		cargo := createCargo(t, factory, 5_000)
		loaded, err := planner.Plan(cargo, []*ship.Ship{crowded, roomy})

		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(roomy))
		assert.Equal(t, 1, roomy.ContainerCount())
		assert.Equal(t, 1, crowded.ContainerCount())
		_, findErr := roomy.FindContainer(cargo.SerialNumber())
		assert.NoError(t, findErr)
	})

	t.Run("should skip ships without a free slot", func(t *testing.T) {
		factory := createTestFactory(t)
		full := createShip(t, "Full", 1, 100)
		require.NoError(t, full.LoadContainer(createCargo(t, factory, 3_000)))
		fallback := createShip(t, "Fallback", 1, 20)

		loaded, err := planner.Plan(createCargo(t, factory, 3_000), []*ship.Ship{full, fallback})

		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(fallback))
	})

	t.Run("should skip ships without enough weight headroom", func(t *testing.T) {
		factory := createTestFactory(t)
		light := createShip(t, "Light", 10, 5)
		heavyLifter := createShip(t, "Heavy Lifter", 10, 8)

		// 6 tonnes fits only on the heavy lifter.
		loaded, err := planner.Plan(createCargo(t, factory, 6_000), []*ship.Ship{light, heavyLifter})

		require.NoError(t, err)
		assert.True(t, loaded.IsEqual(heavyLifter))
	})

	t.Run("should return error when no ship can take the container", func(t *testing.T) {
		factory := createTestFactory(t)
		light := createShip(t, "Light", 10, 5)

		loaded, err := planner.Plan(createCargo(t, factory, 6_000), []*ship.Ship{light})

		require.Error(t, err)
		assert.Nil(t, loaded)
		assert.ErrorIs(t, err, services.ErrShipNotFound)
		assert.Zero(t, light.ContainerCount())
	})

	t.Run("should return error for empty fleet", func(t *testing.T) {
		factory := createTestFactory(t)

		loaded, err := planner.Plan(createCargo(t, factory, 3_000), nil)

		require.Error(t, err)
		assert.Nil(t, loaded)
		assert.ErrorIs(t, err, services.ErrShipNotFound)
	})

	t.Run("should return error for nil container", func(t *testing.T) {
		loaded, err := planner.Plan(nil, []*ship.Ship{createShip(t, "Any", 10, 100)})

		require.Error(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("should return error for invalid ship in fleet", func(t *testing.T) {
		factory := createTestFactory(t)
		var invalid ship.Ship

		loaded, err := planner.Plan(createCargo(t, factory, 3_000), []*ship.Ship{&invalid})

		require.Error(t, err)
		assert.Nil(t, loaded)
		assert.ErrorIs(t, err, ship.ErrShipIsNotConstructed)
	})
}
