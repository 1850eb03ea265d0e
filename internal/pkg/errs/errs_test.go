package errs_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "a1")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "a1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: a1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "a1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: a1 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("unitPrice")

		assert.Equal(t, "value is invalid: unitPrice", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("unitPrice", errors.New("-1 is negative"))

		assert.Equal(t, "value is invalid: unitPrice (cause: -1 is negative)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 16, 1, 15)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 16, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 15, err.Max)
		assert.Equal(t, "value is invalid: 16 is quantity, min value is 1, max value is 15", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", 0, 1, 15, errors.New("too few"))

		assert.Equal(t,
			"value is invalid: 0 is quantity, min value is 1, max value is 15 (cause: too few)",
			err.Error())
	})

	t.Run("keeps message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("productName", "coffee\nbeans", 0, 10)

		assert.Contains(t, err.Error(), "coffee beans")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("productId")
	assert.Equal(t, "value is required: productId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("productId", errors.New("empty"))
	assert.Equal(t, "value is required: productId (cause: empty)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("order")
	assert.Equal(t, "version is invalid: order", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)

	withCause := errs.NewVersionIsInvalidErrorWithCause("order", errors.New("expected 3"))
	assert.Equal(t, "version is invalid: order (cause: expected 3)", withCause.Error())
}

func TestDomainError(t *testing.T) {
	reason := errors.New("maximum units per item exceeded")

	t.Run("message is the reason", func(t *testing.T) {
		err := errs.NewDomainError(reason)

		assert.Equal(t, "maximum units per item exceeded", err.Error())
		require.ErrorIs(t, err, errs.ErrDomain)
		require.ErrorIs(t, err, reason)
	})

	t.Run("cause is appended and unwrapped", func(t *testing.T) {
		cause := errs.NewValueIsOutOfRangeError("quantity", 16, 1, 15)
		err := errs.NewDomainErrorWithCause(reason, cause)

		assert.Equal(t,
			"maximum units per item exceeded (cause: value is invalid: 16 is quantity, min value is 1, max value is 15)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrDomain)
		require.ErrorIs(t, err, reason)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("errors.As finds the domain error through wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("handler failed"), errs.NewDomainError(reason))

		var domainErr *errs.DomainError
		require.ErrorAs(t, wrapped, &domainErr)
		assert.Equal(t, reason, domainErr.Reason)
	})

	t.Run("zero value falls back to the generic message", func(t *testing.T) {
		err := &errs.DomainError{}

		assert.Equal(t, "domain rule violated", err.Error())
		require.ErrorIs(t, err, errs.ErrDomain)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "domain rule violated", errs.ErrDomain.Error())
}
