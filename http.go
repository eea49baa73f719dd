package credentials

import (
	"github.com/goliatone/go-credentials/middleware/jwtware"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
)

// RouteAuthenticator wires the Authenticator into route guards and a shared
// error mapping for JSON responses.
type RouteAuthenticator struct {
	auth             Authenticator
	cfg              Config
	Logger           Logger
	AuthErrorHandler func(c router.Context, err error) error
	ErrorHandler     func(c router.Context, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:    cfg,
		auth:   auther,
		Logger: defLogger{},
	}

	a.ErrorHandler = a.defaultErrHandler
	a.AuthErrorHandler = a.defaultAuthErrHandler

	return a, nil
}

// ProtectedRoute guards a route so only requests carrying a valid token get
// through. A nil errorHandler falls back to the route authenticator's own
// error mapping.
func (a *RouteAuthenticator) ProtectedRoute(errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return jwtware.New(a.guardConfig("", errorHandler))
}

// AdminRoute guards a route so only tokens carrying at least the admin role
// get through. Valid tokens with a lesser role get a 403.
func (a *RouteAuthenticator) AdminRoute(errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return jwtware.New(a.guardConfig(string(RoleAdmin), errorHandler))
}

func (a *RouteAuthenticator) guardConfig(minimumRole string, errorHandler func(router.Context, error) error) jwtware.Config {
	if errorHandler == nil {
		errorHandler = a.MakeClientRouteAuthErrorHandler(false)
	}

	return jwtware.Config{
		ErrorHandler:    errorHandler,
		TokenValidator:  routeTokenValidator{auth: a.auth},
		AuthScheme:      a.cfg.GetAuthScheme(),
		ContextKey:      a.cfg.GetContextKey(),
		TokenLookup:     a.cfg.GetTokenLookup(),
		MinimumRole:     minimumRole,
		ContextEnricher: ContextEnricherAdapter,
	}
}

// Login authenticates the payload and returns the signed token.
func (a *RouteAuthenticator) Login(ctx router.Context, payload LoginPayload) (string, error) {
	token, err := a.auth.Login(ctx.Context(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		a.Logger.Error("Login error: %s", err)
		return "", err
	}

	return token, nil
}

// MakeClientRouteAuthErrorHandler normalizes guard failures into structured
// errors. With optional set, failed auth falls through to the next handler.
func (a *RouteAuthenticator) MakeClientRouteAuthErrorHandler(optional bool) func(router.Context, error) error {
	return func(ctx router.Context, err error) error {
		var richErr *errors.Error

		if errors.Is(err, jwtware.ErrInsufficientRole) {
			richErr = ErrInsufficientRole
		} else if IsTokenExpiredError(err) {
			richErr = ErrTokenExpired
		} else if IsMalformedError(err) {
			richErr = ErrTokenMalformed
		} else {
			richErr = errors.Wrap(err, errors.CategoryAuth, "Invalid authentication token").
				WithCode(errors.CodeUnauthorized)
		}

		if optional {
			a.Logger.Info("Optional auth failed, proceeding: %s", richErr.Message)
			return ctx.Next()
		}

		return a.ErrorHandler(ctx, richErr)
	}
}

func (a *RouteAuthenticator) defaultErrHandler(c router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	a.Logger.Info(
		"Middleware error handler error=%s category=%s details=%s",
		richErr.Message,
		richErr.Category,
		print.MaybePrettyJSON(richErr.Metadata),
	)

	switch richErr.Category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		return a.AuthErrorHandler(c, richErr)
	default:
		return c.JSON(richErr.Code, map[string]any{
			"error": richErr.Message,
			"code":  richErr.TextCode,
		})
	}
}

func (a *RouteAuthenticator) defaultAuthErrHandler(c router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = ErrTokenMalformed
	}

	status := richErr.Code
	if status == 0 {
		status = router.StatusUnauthorized
	}

	return c.JSON(status, map[string]any{
		"error": richErr.Message,
		"code":  richErr.TextCode,
	})
}

// routeTokenValidator bridges the Authenticator into the middleware's local
// validator interface.
type routeTokenValidator struct {
	auth Authenticator
}

func (v routeTokenValidator) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := v.auth.ClaimsFromToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
