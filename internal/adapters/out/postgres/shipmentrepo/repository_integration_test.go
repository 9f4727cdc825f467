package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify database
// persistence behavior, including the JSON tracking documents.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("VIP1000000001")

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()

	originalShipment := suite.createTestShipment("VIP1000000002")

	suite.tracker.On("TrackAggregate", originalShipment.ID(), originalShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalShipment))

	retrievedShipment, err := suite.repository.Get(ctx, originalShipment.ID())
	suite.Require().NoError(err)

	suite.Equal(originalShipment.ID(), retrievedShipment.ID())
	suite.Equal("VIP1000000002", retrievedShipment.Code().String())
	suite.Equal(shipment.StatusQuoteRequested, retrievedShipment.Status())
	suite.Equal(kernel.ServiceTypeAir, retrievedShipment.ServiceType())
	suite.Len(retrievedShipment.Items(), 1)
	suite.InDelta(originalShipment.Pricing().TotalPrice(), retrievedShipment.Pricing().TotalPrice(), 1e-9)
	suite.Equal(originalShipment.Insight().RiskScore(), retrievedShipment.Insight().RiskScore())
	suite.Equal(originalShipment.Insight().Recommendations(), retrievedShipment.Insight().Recommendations())
	suite.Nil(retrievedShipment.CurrentLocation())
	suite.Empty(retrievedShipment.Route())
	suite.Empty(retrievedShipment.Milestones())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedShipment, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedShipment)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByCode_ExistingShipment_ReturnsShipment() {
	ctx := context.Background()

	originalShipment := suite.createTestShipment("VIP1000000003")
	suite.tracker.On("TrackAggregate", originalShipment.ID(), originalShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalShipment))

	code, err := kernel.NewTrackingCode("VIP1000000003")
	suite.Require().NoError(err)

	retrievedShipment, err := suite.repository.GetByCode(ctx, code)
	suite.Require().NoError(err)
	suite.Equal(originalShipment.ID(), retrievedShipment.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestExistsByCode() {
	ctx := context.Background()

	originalShipment := suite.createTestShipment("VIP1000000004")
	suite.tracker.On("TrackAggregate", originalShipment.ID(), originalShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalShipment))

	exists, err := suite.repository.ExistsByCode(ctx, "VIP1000000004")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByCode(ctx, "VIP9999999999")
	suite.Require().NoError(err)
	suite.False(exists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_TrackingDocuments_RoundTrip() {
	ctx := context.Background()

	originalShipment := suite.createTestShipment("VIP1000000005")
	suite.tracker.On("TrackAggregate", originalShipment.ID(), originalShipment).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, originalShipment))

	now := time.Now().UTC().Truncate(time.Microsecond)
	recordedAt := now.Add(-time.Hour)
	point, err := kernel.NewGeoPoint(48.8566, 2.3522)
	suite.Require().NoError(err)

	suite.Require().NoError(originalShipment.ChangeStatus(shipment.StatusPickedUp, now))
	suite.Require().NoError(originalShipment.RecordLocation(point, "Paris hub", recordedAt, now))
	suite.Require().NoError(originalShipment.AddMilestone(
		"picked_up", "Tel Aviv", "Package collected", shipment.StatusPickedUp.String(), now))
	originalShipment.SetEstimatedArrival(now.Add(72 * time.Hour))

	suite.Require().NoError(suite.repository.Update(ctx, originalShipment))

	retrievedShipment, err := suite.repository.Get(ctx, originalShipment.ID())
	suite.Require().NoError(err)

	suite.Equal(shipment.StatusPickedUp, retrievedShipment.Status())
	suite.Require().NotNil(retrievedShipment.ActualPickupAt())
	suite.WithinDuration(now, *retrievedShipment.ActualPickupAt(), time.Millisecond)

	suite.Require().NotNil(retrievedShipment.CurrentLocation())
	suite.Equal("Paris hub", retrievedShipment.CurrentLocation().Address)
	suite.WithinDuration(now, retrievedShipment.CurrentLocation().RecordedAt, time.Millisecond)

	suite.Require().Len(retrievedShipment.Route(), 1)
	suite.InDelta(48.8566, retrievedShipment.Route()[0].Point.Latitude(), 1e-9)
	suite.WithinDuration(recordedAt, retrievedShipment.Route()[0].RecordedAt, time.Millisecond)

	suite.Require().Len(retrievedShipment.Milestones(), 1)
	suite.Equal("picked_up", retrievedShipment.Milestones()[0].Event)
	suite.Equal("Package collected", retrievedShipment.Milestones()[0].Description)

	suite.Require().NotNil(retrievedShipment.EstimatedArrivalAt())
	suite.WithinDuration(now.Add(72*time.Hour), *retrievedShipment.EstimatedArrivalAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsError() {
	ctx := context.Background()

	missingShipment := suite.createTestShipment("VIP1000000006")

	err := suite.repository.Update(ctx, missingShipment)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestShipment builds a priced and risk-assessed shipment.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(code string) *shipment.Shipment {
	trackingCode, err := kernel.NewTrackingCode(code)
	suite.Require().NoError(err)

	originPoint, err := kernel.NewGeoPoint(32.0853, 34.7818)
	suite.Require().NoError(err)
	origin, err := kernel.NewAddress("Israel", "Tel Aviv", "Herzl 1", &originPoint)
	suite.Require().NoError(err)

	destinationPoint, err := kernel.NewGeoPoint(40.7128, -74.0060)
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("USA", "New York", "5th Ave 1", &destinationPoint)
	suite.Require().NoError(err)

	value, err := cargo.NewMoney(300, cargo.DefaultCurrency)
	suite.Require().NoError(err)
	item, err := cargo.NewItem(
		cargo.CategoryElectronics,
		2,
		cargo.Dimensions{Length: 40, Width: 30, Height: 20, Unit: cargo.DimensionUnitCentimeters},
		cargo.Weight{Value: 5, Unit: cargo.WeightUnitKilograms},
		value,
		cargo.Flags{Fragile: true},
	)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), trackingCode, origin, destination, kernel.ServiceTypeAir,
		[]cargo.Item{item}, nil, nil,
	)
	suite.Require().NoError(err)

	pricing, err := services.NewPricingEngine().Calculate(
		testShipment.ServiceType(),
		testShipment.Origin().Point(),
		testShipment.Destination().Point(),
		testShipment.Items(),
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(testShipment.SetPricing(pricing))

	insight, err := services.NewRiskScorer().Assess(testShipment, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(testShipment.SetInsight(insight))

	return testShipment
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
