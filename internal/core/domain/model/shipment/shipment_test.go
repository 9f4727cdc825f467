package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T, country string, point *kernel.GeoPoint) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(country, "", "", point)
	require.NoError(t, err)
	return address
}

func testItem(t *testing.T, flags cargo.Flags) cargo.Item {
	t.Helper()
	value, err := cargo.NewMoney(500, "USD")
	require.NoError(t, err)
	item, err := cargo.NewItem(
		cargo.CategoryElectronics,
		2,
		cargo.Dimensions{Length: 60, Width: 40, Height: 30, Unit: cargo.DimensionUnitCentimeters},
		cargo.Weight{Value: 8, Unit: cargo.WeightUnitKilograms},
		value,
		flags,
	)
	require.NoError(t, err)
	return item
}

func testTrackingCode(t *testing.T) kernel.TrackingCode {
	t.Helper()
	code, err := kernel.NewTrackingCode("VIP1234567890")
	require.NoError(t, err)
	return code
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		testTrackingCode(t),
		testAddress(t, "Israel", nil),
		testAddress(t, "USA", nil),
		kernel.ServiceTypeAir,
		[]cargo.Item{testItem(t, cargo.Flags{})},
		nil,
		nil,
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment_Defaults(t *testing.T) {
	s := newTestShipment(t)

	assert.Equal(t, shipment.StatusQuoteRequested, s.Status())
	assert.Nil(t, s.ActualPickupAt())
	assert.Nil(t, s.ActualDeliveryAt())
	assert.Nil(t, s.CurrentLocation())
	assert.Empty(t, s.Route())
	assert.Empty(t, s.Milestones())
	require.NoError(t, s.Validate())
}

func TestShipment_ChangeStatus_RecordsPickupAndDelivery(t *testing.T) {
	s := newTestShipment(t)
	pickupTime := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	deliveryTime := time.Date(2025, 7, 5, 16, 0, 0, 0, time.UTC)

	require.NoError(t, s.ChangeStatus(shipment.StatusPickedUp, pickupTime))
	require.NotNil(t, s.ActualPickupAt())
	assert.Equal(t, pickupTime, *s.ActualPickupAt())

	require.NoError(t, s.ChangeStatus(shipment.StatusDelivered, deliveryTime))
	require.NotNil(t, s.ActualDeliveryAt())
	assert.Equal(t, deliveryTime, *s.ActualDeliveryAt())
}

func TestShipment_ChangeStatus_FromDeliveredRejected(t *testing.T) {
	s := newTestShipment(t)
	now := time.Now()
	require.NoError(t, s.ChangeStatus(shipment.StatusDelivered, now))

	for _, next := range []shipment.Status{
		shipment.StatusInTransit,
		shipment.StatusCancelled,
		shipment.StatusQuoteRequested,
		shipment.StatusException,
	} {
		require.Error(t, s.ChangeStatus(next, now), next.String())
	}
	assert.Equal(t, shipment.StatusDelivered, s.Status())
}

func TestShipment_ChangeStatus_PickupTimeNotOverwritten(t *testing.T) {
	s := newTestShipment(t)
	firstPickup := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.ChangeStatus(shipment.StatusPickedUp, firstPickup))
	require.NoError(t, s.ChangeStatus(shipment.StatusInTransit, firstPickup.Add(time.Hour)))
	require.NoError(t, s.ChangeStatus(shipment.StatusPickedUp, firstPickup.Add(2*time.Hour)))

	assert.Equal(t, firstPickup, *s.ActualPickupAt())
}

func TestShipment_RecordLocation(t *testing.T) {
	s := newTestShipment(t)
	point, err := kernel.NewGeoPoint(48.8566, 2.3522)
	require.NoError(t, err)

	eventTime := time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC)
	now := eventTime.Add(5 * time.Minute)

	require.NoError(t, s.RecordLocation(point, "Paris hub", eventTime, now))

	route := s.Route()
	require.Len(t, route, 1)
	assert.Equal(t, "Paris hub", route[0].Address)
	assert.Equal(t, eventTime, route[0].RecordedAt)

	current := s.CurrentLocation()
	require.NotNil(t, current)
	assert.Equal(t, "Paris hub", current.Address)
	assert.Equal(t, now, current.RecordedAt)
}

func TestShipment_RecordLocation_AppendsInOrder(t *testing.T) {
	s := newTestShipment(t)
	now := time.Now()

	first, err := kernel.NewGeoPoint(10, 10)
	require.NoError(t, err)
	second, err := kernel.NewGeoPoint(20, 20)
	require.NoError(t, err)

	require.NoError(t, s.RecordLocation(first, "A", now, now))
	require.NoError(t, s.RecordLocation(second, "B", now.Add(time.Hour), now.Add(time.Hour)))

	route := s.Route()
	require.Len(t, route, 2)
	assert.Equal(t, "A", route[0].Address)
	assert.Equal(t, "B", route[1].Address)
	assert.Equal(t, "B", s.CurrentLocation().Address)
}

func TestShipment_RecordLocation_InvalidPoint(t *testing.T) {
	s := newTestShipment(t)
	var zero kernel.GeoPoint
	require.Error(t, s.RecordLocation(zero, "nowhere", time.Now(), time.Now()))
	assert.Empty(t, s.Route())
}

func TestShipment_AddMilestone(t *testing.T) {
	s := newTestShipment(t)
	now := time.Now()

	require.NoError(t, s.AddMilestone("departed", "TLV", "left origin hub", "in_transit", now))
	require.NoError(t, s.AddMilestone("arrived", "JFK", "reached destination hub", "in_transit", now.Add(time.Hour)))

	milestones := s.Milestones()
	require.Len(t, milestones, 2)
	assert.Equal(t, "departed", milestones[0].Event)
	assert.Equal(t, "arrived", milestones[1].Event)
}

func TestShipment_AddMilestone_EventRequired(t *testing.T) {
	s := newTestShipment(t)
	require.Error(t, s.AddMilestone("", "TLV", "", "", time.Now()))
}

func TestShipment_AddItem(t *testing.T) {
	s := newTestShipment(t)
	require.NoError(t, s.AddItem(testItem(t, cargo.Flags{Fragile: true})))
	assert.Len(t, s.Items(), 2)
}

func TestShipment_AddItem_TerminalRejected(t *testing.T) {
	s := newTestShipment(t)
	require.NoError(t, s.ChangeStatus(shipment.StatusCancelled, time.Now()))
	require.Error(t, s.AddItem(testItem(t, cargo.Flags{})))
}

func TestShipment_IsCrossBorder(t *testing.T) {
	s := newTestShipment(t)
	assert.True(t, s.IsCrossBorder())

	domestic, err := shipment.NewShipment(
		kernel.NewUUID(),
		testTrackingCode(t),
		testAddress(t, "USA", nil),
		testAddress(t, "USA", nil),
		kernel.ServiceTypeLand,
		[]cargo.Item{testItem(t, cargo.Flags{})},
		nil,
		nil,
	)
	require.NoError(t, err)
	assert.False(t, domestic.IsCrossBorder())
}

func TestShipment_DerivedTotals(t *testing.T) {
	s := newTestShipment(t)

	// One item: 2 units of 8 kg, 0.072 m3 each, 500 value each.
	assert.InDelta(t, 16, s.TotalWeightKg(), 1e-9)
	assert.InDelta(t, 0.144, s.TotalVolumeM3(), 1e-9)
	assert.InDelta(t, 1000, s.TotalValue(), 1e-9)
}

func TestShipment_SetInsight(t *testing.T) {
	s := newTestShipment(t)

	insight, err := shipment.NewInsight(45, []string{"recommend professional packing"})
	require.NoError(t, err)
	require.NoError(t, s.SetInsight(insight))
	assert.Equal(t, 45, s.Insight().RiskScore())

	require.Error(t, s.SetInsight(shipment.Insight{}))
}

func TestNewInsight_ScoreBounds(t *testing.T) {
	_, err := shipment.NewInsight(-1, nil)
	require.Error(t, err)

	_, err = shipment.NewInsight(101, nil)
	require.Error(t, err)

	insight, err := shipment.NewInsight(100, nil)
	require.NoError(t, err)
	assert.Equal(t, 100, insight.RiskScore())
}

func TestRestoreShipment(t *testing.T) {
	pricing, err := billing.NewPricing(100, 0, 0, 100, 0, 17, 117, "USD")
	require.NoError(t, err)
	insight, err := shipment.NewInsight(30, nil)
	require.NoError(t, err)

	pickupAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	s, err := shipment.RestoreShipment(shipment.RestoreShipmentParams{
		ID:             kernel.NewUUID(),
		Code:           testTrackingCode(t),
		Status:         shipment.StatusInTransit,
		Origin:         testAddress(t, "Israel", nil),
		Destination:    testAddress(t, "USA", nil),
		ServiceType:    kernel.ServiceTypeAir,
		Items:          []cargo.Item{testItem(t, cargo.Flags{})},
		Pricing:        &pricing,
		Insight:        &insight,
		ActualPickupAt: &pickupAt,
	})
	require.NoError(t, err)
	assert.Equal(t, shipment.StatusInTransit, s.Status())
	require.NotNil(t, s.ActualPickupAt())
	assert.Equal(t, pickupAt, *s.ActualPickupAt())
}

func TestShipment_Validate_ZeroValue(t *testing.T) {
	var s shipment.Shipment
	require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
}
