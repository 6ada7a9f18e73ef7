package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllShipsQuery_Valid(t *testing.T) {
	query := queries.NewGetAllShipsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllShipsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllShipsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllShipsQueryIsNotConstructed)
}
