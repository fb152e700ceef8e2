package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapProviderError(t *testing.T) {
	cases := []struct {
		message string
		want    error
	}{
		{"EMAIL_NOT_FOUND", ErrUserNotFound},
		{"INVALID_PASSWORD", ErrWrongPassword},
		{"INVALID_LOGIN_CREDENTIALS", ErrWrongPassword},
		{"INVALID_EMAIL", ErrInvalidEmail},
		{"MISSING_EMAIL", ErrInvalidEmail},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", ErrTooManyAttempts},
		{"TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled.", ErrTooManyAttempts},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, mapProviderError(tc.message), tc.want, "message %q", tc.message)
	}

	err := mapProviderError("OPERATION_NOT_ALLOWED")
	for _, known := range []error{ErrUserNotFound, ErrWrongPassword, ErrInvalidEmail, ErrTooManyAttempts} {
		assert.False(t, errors.Is(err, known))
	}
	assert.Contains(t, err.Error(), "OPERATION_NOT_ALLOWED")
}
