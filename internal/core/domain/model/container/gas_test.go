package container_test

import (
	"testing"

	"freight/internal/core/domain/model/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGasContainer(t *testing.T) (*container.GasContainer, *hazardRecorder) {
	t.Helper()
	factory, recorder := newTestFactory(t)
	c, err := factory.NewGasContainer(259, 606, 10_000, 3_000, 15)
	require.NoError(t, err)
	return c, recorder
}

func TestGasContainer_Load(t *testing.T) {
	t.Run("mass above max payload notifies and fails", func(t *testing.T) {
		c, recorder := newTestGasContainer(t)

		err := c.Load(10_001)

		require.ErrorIs(t, err, container.ErrOverfill)
		require.Len(t, recorder.kinds, 1)
		assert.Equal(t, container.Gas, recorder.kinds[0])
		assert.True(t, recorder.serials[0].IsEqual(c.SerialNumber()))
		assert.Zero(t, c.LoadMass())
	})

	t.Run("mass at max payload succeeds and persists", func(t *testing.T) {
		c, recorder := newTestGasContainer(t)

		err := c.Load(10_000)

		require.NoError(t, err)
		assert.Equal(t, 10_000.0, c.LoadMass())
		assert.Empty(t, recorder.kinds)
	})

	t.Run("load replaces rather than accumulates", func(t *testing.T) {
		c, _ := newTestGasContainer(t)

		require.NoError(t, c.Load(4_000))
		require.NoError(t, c.Load(1_000))

		assert.Equal(t, 1_000.0, c.LoadMass())
	})
}

func TestGasContainer_Empty(t *testing.T) {
	t.Run("leaves five percent residual instead of zero", func(t *testing.T) {
		c, _ := newTestGasContainer(t)
		require.NoError(t, c.Load(8_000))

		c.Empty()

		assert.Equal(t, 500.0, c.LoadMass())
		assert.Equal(t, 3_500.0, c.TotalWeight())
	})

	t.Run("emptying an empty container still sets the residual", func(t *testing.T) {
		c, _ := newTestGasContainer(t)

		c.Empty()

		assert.Equal(t, 500.0, c.LoadMass())
	})
}

func TestGasContainer_Info(t *testing.T) {
	c, _ := newTestGasContainer(t)
	require.NoError(t, c.Load(2_000))

	info := c.Info()

	assert.Contains(t, info, c.SerialNumber().String())
	assert.Contains(t, info, "kind=Gas")
	assert.Contains(t, info, "pressure=15.00 atm")
	assert.Contains(t, info, "total=5000.00 kg")
}

func TestGasContainer_Pressure(t *testing.T) {
	c, _ := newTestGasContainer(t)

	assert.Equal(t, 15.0, c.Pressure())
}
