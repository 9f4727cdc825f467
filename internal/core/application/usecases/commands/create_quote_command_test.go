package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateQuoteCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	origin := cmdAddress(t, "Israel")
	destination := cmdAddress(t, "USA")
	items := []cargo.Item{cmdItem(t, cargo.Flags{})}

	cmd, err := commands.NewCreateQuoteCommand(id, origin, destination, kernel.ServiceTypeAir, items, nil)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.QuoteID())
	assert.Equal(t, "Israel", cmd.Origin().Country())
	assert.Equal(t, "USA", cmd.Destination().Country())
	assert.Equal(t, kernel.ServiceTypeAir, cmd.ServiceType())
	assert.Len(t, cmd.Items(), 1)
	assert.Empty(t, cmd.Discounts())
}

func TestNewCreateQuoteCommand_InvalidQuoteID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateQuoteCommand(
		invalidID, cmdAddress(t, "Israel"), cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, []cargo.Item{cmdItem(t, cargo.Flags{})}, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateQuoteCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), cmdAddress(t, "Israel"), cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, nil, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateQuoteCommand_InvalidAddress(t *testing.T) {
	var zeroAddress kernel.Address
	_, err := commands.NewCreateQuoteCommand(
		kernel.NewUUID(), zeroAddress, cmdAddress(t, "USA"),
		kernel.ServiceTypeAir, []cargo.Item{cmdItem(t, cargo.Flags{})}, nil,
	)
	require.Error(t, err)
}

func TestCreateQuoteCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateQuoteCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateQuoteCommandIsNotConstructed)
}
