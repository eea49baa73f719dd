package credentials_test

import (
	"errors"
	"fmt"
	"testing"

	credentials "github.com/goliatone/go-credentials"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      *goerrors.Error
		category goerrors.Category
		textCode string
		code     int
	}{
		{
			name:     "invalid credentials",
			err:      credentials.ErrMismatchedHashAndPassword,
			category: goerrors.CategoryAuth,
			textCode: credentials.TextCodeInvalidCreds,
			code:     goerrors.CodeBadRequest,
		},
		{
			name:     "missing credentials",
			err:      credentials.ErrMissingCredentials,
			category: goerrors.CategoryValidation,
			textCode: credentials.TextCodeMissingCredentials,
			code:     goerrors.CodeBadRequest,
		},
		{
			name:     "username taken",
			err:      credentials.ErrUsernameTaken,
			category: goerrors.CategoryConflict,
			textCode: credentials.TextCodeUsernameTaken,
			code:     goerrors.CodeBadRequest,
		},
		{
			name:     "token missing",
			err:      credentials.ErrTokenMissing,
			category: goerrors.CategoryAuth,
			textCode: credentials.TextCodeTokenMissing,
			code:     goerrors.CodeUnauthorized,
		},
		{
			name:     "token malformed",
			err:      credentials.ErrTokenMalformed,
			category: goerrors.CategoryAuth,
			textCode: credentials.TextCodeTokenMalformed,
			code:     goerrors.CodeUnauthorized,
		},
		{
			name:     "token expired",
			err:      credentials.ErrTokenExpired,
			category: goerrors.CategoryAuth,
			textCode: credentials.TextCodeTokenExpired,
			code:     goerrors.CodeUnauthorized,
		},
		{
			name:     "insufficient role",
			err:      credentials.ErrInsufficientRole,
			category: goerrors.CategoryAuthz,
			textCode: credentials.TextCodeInsufficientRole,
			code:     goerrors.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.textCode, tt.err.TextCode)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestUnifiedCredentialsMessage(t *testing.T) {
	// The message must not leak which part of the check failed.
	assert.Equal(t, "the credentials provided are invalid", credentials.ErrMismatchedHashAndPassword.Message)
}

func TestIsTokenExpiredError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "structured token expired error",
			err:      credentials.ErrTokenExpired,
			expected: true,
		},
		{
			name:     "legacy token expired error (string match)",
			err:      errors.New("some wrapper: token is expired"),
			expected: true,
		},
		{
			name:     "different structured error",
			err:      credentials.ErrIdentityNotFound,
			expected: false,
		},
		{
			name:     "different legacy error",
			err:      errors.New("invalid token"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, credentials.IsTokenExpiredError(tt.err))
		})
	}
}

func TestIsMalformedError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "structured malformed error",
			err:      credentials.ErrTokenMalformed,
			expected: true,
		},
		{
			name:     "structured missing token error",
			err:      credentials.ErrTokenMissing,
			expected: true,
		},
		{
			name:     "legacy malformed error (string match)",
			err:      errors.New("token is malformed"),
			expected: true,
		},
		{
			name:     "legacy missing JWT error (string match)",
			err:      errors.New("missing or malformed JWT"),
			expected: true,
		},
		{
			name:     "different structured error",
			err:      credentials.ErrTokenExpired,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, credentials.IsMalformedError(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "postgres unique violation",
			err:      fmt.Errorf(`ERROR: duplicate key value violates unique constraint "users_username_key" (SQLSTATE 23505)`),
			expected: true,
		},
		{
			name:     "sqlite unique violation",
			err:      fmt.Errorf("constraint failed: UNIQUE constraint failed: users.username (2067)"),
			expected: true,
		},
		{
			name:     "unrelated driver error",
			err:      fmt.Errorf("connection refused"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, credentials.IsUniqueViolation(tt.err))
		})
	}
}
