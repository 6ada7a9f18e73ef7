package container_test

import (
	"testing"

	"freight/internal/core/domain/model/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_MinimumStorageTemperature(t *testing.T) {
	testCases := []struct {
		product container.Product
		minimum float64
	}{
		{container.Fruit, 13.3},
		{container.Meat, -15},
		{container.Dairy, 7.2},
	}

	for _, tc := range testCases {
		t.Run(tc.product.String(), func(t *testing.T) {
			minimum, err := tc.product.MinimumStorageTemperature()

			require.NoError(t, err)
			assert.Equal(t, tc.minimum, minimum)
		})
	}

	t.Run("unknown product has no storage temperature", func(t *testing.T) {
		_, err := container.UnknownProduct.MinimumStorageTemperature()

		require.Error(t, err)
	})
}

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, container.Fruit.Validate())
	require.NoError(t, container.Meat.Validate())
	require.NoError(t, container.Dairy.Validate())
	require.Error(t, container.UnknownProduct.Validate())
	require.Error(t, container.Product(99).Validate())
}

func TestProduct_String(t *testing.T) {
	assert.Equal(t, "Fruit", container.Fruit.String())
	assert.Equal(t, "Meat", container.Meat.String())
	assert.Equal(t, "Dairy", container.Dairy.String())
	assert.Equal(t, "Unknown", container.Product(99).String())
}
