package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// ScopedTokenOptions controls how MintScopedToken issues bounded tokens.
type ScopedTokenOptions struct {
	// TTL sets the token lifetime. Zero uses TokenService defaults, which may
	// mean no expiration at all.
	TTL time.Duration
	// Issuer overrides the default issuer if provided.
	Issuer string
	// Audience overrides the default audience if provided.
	Audience []string
	// IssuedAt overrides the issuance time. Zero uses time.Now().
	IssuedAt time.Time
}

type tokenDefaults struct {
	issuer   string
	audience jwt.ClaimStrings
	ttl      time.Duration
}

type tokenDefaultsProvider interface {
	tokenDefaults() tokenDefaults
}

type claimsSigner interface {
	SignClaims(claims *JWTClaims) (string, error)
}

// MintScopedToken mints a JWT with an explicit TTL for callers that want
// bounded tokens without changing the service-wide default. A zero expiry
// (no TTL anywhere) yields a token with no exp claim; the returned time is
// zero in that case.
func MintScopedToken(tokenService TokenService, identity Identity, opts ScopedTokenOptions) (string, time.Time, error) {
	if tokenService == nil {
		return "", time.Time{}, goerrors.New("token service is required", goerrors.CategoryBadInput)
	}
	if identity == nil {
		return "", time.Time{}, goerrors.New("identity is required", goerrors.CategoryBadInput)
	}

	signer, ok := tokenService.(claimsSigner)
	if !ok {
		return "", time.Time{}, goerrors.New("token service cannot sign custom claims", goerrors.CategoryBadInput)
	}

	issuer := opts.Issuer
	audience := opts.Audience
	ttl := opts.TTL

	if defaultsProvider, ok := tokenService.(tokenDefaultsProvider); ok {
		defaults := defaultsProvider.tokenDefaults()
		if issuer == "" {
			issuer = defaults.issuer
		}
		if len(audience) == 0 {
			audience = defaults.audience
		}
		if ttl == 0 {
			ttl = defaults.ttl
		}
	}

	if ttl < 0 {
		return "", time.Time{}, goerrors.New("token TTL must be non-negative", goerrors.CategoryBadInput)
	}

	issuedAt := opts.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now()
	}

	var aud jwt.ClaimStrings
	if len(audience) > 0 {
		aud = make(jwt.ClaimStrings, len(audience))
		copy(aud, audience)
	}

	claims := &JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  identity.ID(),
			Audience: aud,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
		UID:      identity.ID(),
		Uname:    identity.Username(),
		UserRole: identity.Role(),
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = issuedAt.Add(ttl)
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	ensureTokenID(&claims.RegisteredClaims)

	token, err := signer.SignClaims(claims)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
