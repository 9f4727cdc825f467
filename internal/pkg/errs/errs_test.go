package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("trackingCode", "VIP0000000001")

		assert.Equal(t, "trackingCode", err.ParamName)
		assert.Equal(t, "VIP0000000001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: VIP0000000001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("quoteCode", "QUO00000001", cause)

		assert.Equal(t, "quoteCode", err.ParamName)
		assert.Equal(t, "QUO00000001", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: quoteCode, ID is: QUO00000001 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("serviceType")

		assert.Equal(t, "serviceType", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: serviceType", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unrecognized enum value")
		err := errs.NewValueIsInvalidErrorWithCause("serviceType", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: serviceType (cause: unrecognized enum value)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 95.0, -90.0, 90.0)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 95.0, err.Value)
		assert.Equal(t, -90.0, err.Min)
		assert.Equal(t, 90.0, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 95 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("riskScore", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is riskScore, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("multi-line values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("originCountry")

		assert.Equal(t, "originCountry", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: originCountry", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("originCountry", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: originCountry (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("shipment", "VIP1234567890"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("longitude", 200.0, -180.0, 180.0), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("items"), errs.ErrValueIsRequired)
}
