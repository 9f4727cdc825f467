package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cmdTrackingCode(t *testing.T) kernel.TrackingCode {
	t.Helper()
	code, err := kernel.NewTrackingCode("VIP1234567890")
	require.NoError(t, err)
	return code
}

func storedShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), cmdTrackingCode(t),
		cmdAddress(t, "Israel"), cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, []cargo.Item{cmdItem(t, cargo.Flags{})},
		nil, nil,
	)
	require.NoError(t, err)
	return s
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockShipmentRepository) Get(_ context.Context, _ kernel.UUID) (*shipment.Shipment, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockShipmentRepository) GetByCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), cmdAddress(t, "Israel"), cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, []cargo.Item{cmdItem(t, cargo.Flags{Fragile: true})},
		nil, nil,
	)
	require.NoError(t, err)

	var added *shipment.Shipment
	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(repo).Once(),
		repo.On("ExistsByCode", mock.Anything, "VIP1234567890").Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).
			Run(func(args mock.Arguments) {
				added = args.Get(1).(*shipment.Shipment)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, fixedGenerator(1234567890), fixedClock{now: time.Now()})
	code, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "VIP1234567890", code.String())

	// Pricing and risk insight are attached before the shipment is stored.
	require.NotNil(t, added)
	require.NoError(t, added.Pricing().Validate())
	require.NoError(t, added.Insight().Validate())
	assert.Equal(t, 25, added.Insight().RiskScore()) // fragile + cross-border
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly
	factory := new(MockShipmentUoWFactory)
	h := commands.NewCreateShipmentCommandHandler(factory, fixedGenerator(1), fixedClock{now: time.Now()})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestNewCreateShipmentCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), cmdAddress(t, "Israel"), cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, nil, nil, nil,
	)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
}
