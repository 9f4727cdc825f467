package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint_ValidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"jerusalem", 31.7683, 35.2137},
		{"new york", 40.7128, -74.0060},
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"date line", 0, 180},
		{"antimeridian west", 0, -180},
		{"null island", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := kernel.NewGeoPoint(tt.lat, tt.lon)
			require.NoError(t, err)
			assert.Equal(t, tt.lat, point.Latitude())
			assert.Equal(t, tt.lon, point.Longitude())
			require.NoError(t, point.Validate())
		})
	}
}

func TestNewGeoPoint_InvalidCoordinates(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"latitude too high", 90.1, 0},
		{"latitude too low", -90.1, 0},
		{"longitude too high", 0, 180.1},
		{"longitude too low", 0, -180.1},
		{"both out of range", 100, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewGeoPoint(tt.lat, tt.lon)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		})
	}
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var point kernel.GeoPoint
	require.Error(t, point.Validate())
}

func TestGeoPoint_DistanceKm_SamePointIsZero(t *testing.T) {
	point, err := kernel.NewGeoPoint(31.7683, 35.2137)
	require.NoError(t, err)

	distance, err := point.DistanceKm(point)
	require.NoError(t, err)
	assert.InDelta(t, 0, distance, 1e-9)
}

func TestGeoPoint_DistanceKm_Symmetric(t *testing.T) {
	jerusalem, err := kernel.NewGeoPoint(31.7683, 35.2137)
	require.NoError(t, err)
	newYork, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	forward, err := jerusalem.DistanceKm(newYork)
	require.NoError(t, err)
	backward, err := newYork.DistanceKm(jerusalem)
	require.NoError(t, err)

	assert.InDelta(t, forward, backward, 1e-9)
}

func TestGeoPoint_DistanceKm_KnownVector(t *testing.T) {
	// Jerusalem to New York is roughly 9,100 km great-circle.
	jerusalem, err := kernel.NewGeoPoint(31.7683, 35.2137)
	require.NoError(t, err)
	newYork, err := kernel.NewGeoPoint(40.7128, -74.0060)
	require.NoError(t, err)

	distance, err := jerusalem.DistanceKm(newYork)
	require.NoError(t, err)
	assert.InDelta(t, 9100, distance, 50)
}

func TestGeoPoint_DistanceKm_UnconstructedPoint(t *testing.T) {
	point, err := kernel.NewGeoPoint(10, 10)
	require.NoError(t, err)

	var zero kernel.GeoPoint
	_, err = point.DistanceKm(zero)
	require.Error(t, err)
}

func TestDistanceBetween_AbsentPointsYieldZero(t *testing.T) {
	point, err := kernel.NewGeoPoint(10, 10)
	require.NoError(t, err)

	tests := []struct {
		name string
		from *kernel.GeoPoint
		to   *kernel.GeoPoint
	}{
		{"both absent", nil, nil},
		{"from absent", nil, &point},
		{"to absent", &point, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, err := kernel.DistanceBetween(tt.from, tt.to)
			require.NoError(t, err)
			assert.Zero(t, distance)
		})
	}
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	b, err := kernel.NewGeoPoint(10, 20)
	require.NoError(t, err)
	c, err := kernel.NewGeoPoint(10, 21)
	require.NoError(t, err)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)
}
