package kernel_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	id := kernel.NewUUID()
	require.NoError(t, id.Validate())
	assert.Len(t, id.String(), 36)
}

func TestUUIDFromString(t *testing.T) {
	id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
}

func TestUUIDFromString_Invalid(t *testing.T) {
	_, err := kernel.UUIDFromString("not-a-uuid")
	require.Error(t, err)
}

func TestUUIDFromBytes(t *testing.T) {
	original := kernel.NewUUID()
	raw := original.Bytes()

	restored, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	assert.True(t, original.IsEqual(restored))
}

func TestUUIDFromBytes_Invalid(t *testing.T) {
	_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestUUID_Validate_ZeroValue(t *testing.T) {
	var id kernel.UUID
	require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.NewUUID()
	b := kernel.NewUUID()

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
}
