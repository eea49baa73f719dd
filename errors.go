package credentials

import (
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCreds       = "auth_invalid_credentials"
	TextCodeMissingCredentials = "auth_missing_credentials"
	TextCodeUsernameTaken      = "auth_username_taken"
	TextCodeEmptyPassword      = "auth_empty_password"
	TextCodeTokenMissing       = "auth_token_missing"
	TextCodeTokenMalformed     = "auth_token_malformed"
	TextCodeTokenExpired       = "auth_token_expired"
	TextCodeInsufficientRole   = "auth_insufficient_role"
	TextCodeIdentityNotFound   = "auth_identity_not_found"
	TextCodeClaimsMapping      = "auth_claims_mapping_failed"
)

// ErrMismatchedHashAndPassword covers both a missing identity and a failed
// hash comparison so callers cannot tell registered usernames apart.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeBadRequest)

// ErrMissingCredentials is returned when the identifier or password is empty.
var ErrMissingCredentials = errors.New("username and password are required", errors.CategoryValidation).
	WithTextCode(TextCodeMissingCredentials).
	WithCode(errors.CodeBadRequest)

// ErrUsernameTaken is returned when registration hits the username unique
// constraint. Answers 400, matching the login-path validation errors.
var ErrUsernameTaken = errors.New("username is already taken", errors.CategoryConflict).
	WithTextCode(TextCodeUsernameTaken).
	WithCode(errors.CodeBadRequest)

// ErrNoEmptyString is returned when an empty password reaches the hasher.
var ErrNoEmptyString = errors.New("password cannot be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// ErrTokenMissing is returned when a guarded route receives no token.
var ErrTokenMissing = errors.New("missing or malformed JWT", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMissing).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned when a token fails parsing or signature
// verification.
var ErrTokenMalformed = errors.New("token is malformed or invalid", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a token carries an exp claim in the past.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrInsufficientRole is returned when a valid token lacks the required role.
var ErrInsufficientRole = errors.New("insufficient role", errors.CategoryAuthz).
	WithTextCode(TextCodeInsufficientRole).
	WithCode(errors.CodeForbidden)

// ErrIdentityNotFound is the store-level miss before the login flow collapses
// it into ErrMismatchedHashAndPassword.
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithTextCode(TextCodeIdentityNotFound).
	WithCode(errors.CodeNotFound)

// ErrUnableToMapClaims is returned when token claims cannot be projected onto
// AuthClaims.
var ErrUnableToMapClaims = errors.New("unable to map claims", errors.CategoryAuth).
	WithTextCode(TextCodeClaimsMapping).
	WithCode(errors.CodeUnauthorized)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) && rich.TextCode == TextCodeTokenExpired {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) {
		if rich.TextCode == TextCodeTokenMalformed || rich.TextCode == TextCodeTokenMissing {
			return true
		}
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsUniqueViolation reports whether err is a driver-level unique constraint
// failure. Covers Postgres (SQLSTATE 23505) and sqlite wordings.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
