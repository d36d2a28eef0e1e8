package exceptions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomError_UnwrapsKindAndCause(t *testing.T) {
	cause := errors.New("disk full")
	err := ErrWriteDocument(cause, "/data/patients.json")

	assert.True(t, errors.Is(err, ErrInternal))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.DevMessage, "disk full")
	require.Len(t, err.Locations, 1)
	assert.Contains(t, err.Locations[0].FunctionName, "TestCustomError_UnwrapsKindAndCause")
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    *CustomError
		kind   error
		status int
	}{
		{"patient not found", ErrPatientNotExist(nil, "P1"), ErrNotFound, 404},
		{"patient exists", ErrPatientAlreadyExist(nil, "P1"), ErrAlreadyExists, 409},
		{"invalid sort field", ErrInvalidSortField(nil, "height"), ErrInvalidField, 400},
		{"unknown user", ErrUserNotExist(nil, "bob"), ErrNotFound, 404},
		{"wrong password", ErrIncorrectPassword(nil), ErrInvalidCredential, 401},
		{"malformed json", ErrCannotParseJSON(errors.New("eof")), ErrValidation, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.kind))
			assert.Equal(t, tt.status, tt.err.StatusCode)
		})
	}
}

type validatedInput struct {
	Gender string `validate:"required,oneof=male female others"`
	Age    int    `validate:"min=1,max=120"`
}

func TestFormatValidationErrors(t *testing.T) {
	validate := validator.New()
	err := validate.Struct(validatedInput{Gender: "x", Age: 0})
	require.Error(t, err)

	assert.Equal(t, "gender must be one of: male, female, others", FormatFirstValidationError(err))

	customErr := ErrInputValidation(err)
	assert.Equal(t, 422, customErr.StatusCode)
	assert.True(t, errors.Is(customErr, ErrValidation))
}

func TestMapDeadlineExceeded(t *testing.T) {
	t.Run("Wrapped deadline", func(t *testing.T) {
		err := MapDeadlineExceeded(fmt.Errorf("load document: %w", context.DeadlineExceeded))

		var customErr *CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 504, customErr.StatusCode)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("CustomError keeps its status", func(t *testing.T) {
		original := ErrPatientNotExist(context.DeadlineExceeded, "P1")
		assert.Same(t, original, MapDeadlineExceeded(original))
	})

	t.Run("Other errors pass through", func(t *testing.T) {
		original := errors.New("boom")
		assert.Equal(t, original, MapDeadlineExceeded(original))
	})
}
