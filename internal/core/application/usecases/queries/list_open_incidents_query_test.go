package queries_test

import (
	"testing"

	"shipdesk/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOpenIncidentsQuery_Valid(t *testing.T) {
	query := queries.NewListOpenIncidentsQuery()
	require.NoError(t, query.Validate())
}

func TestListOpenIncidentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListOpenIncidentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListOpenIncidentsQueryIsNotConstructed)
}
