package queries_test

import (
	"testing"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentTrackingQuery_Valid(t *testing.T) {
	code, err := kernel.NewTrackingCode("VIP1234567890")
	require.NoError(t, err)

	query, err := queries.NewGetShipmentTrackingQuery(code)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "VIP1234567890", query.TrackingCode().String())
}

func TestNewGetShipmentTrackingQuery_InvalidCode(t *testing.T) {
	_, err := queries.NewGetShipmentTrackingQuery(kernel.TrackingCode{})
	require.Error(t, err)
}

func TestGetShipmentTrackingQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetShipmentTrackingQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentTrackingQueryIsNotConstructed)
}
