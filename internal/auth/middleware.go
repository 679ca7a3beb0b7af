package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "itda/internal/errors"
)

const identityContextKey = "identity"

// Middleware rejects requests without a valid "Authorization: Bearer" token
// and stores the resolved *Identity on the echo context.
func Middleware(verifier *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  identityContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return verifier.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Message: "authentication required",
				Code:    "UNAUTHORIZED",
			})
		},
	})
}

// IdentityFrom returns the caller stored by Middleware.
func IdentityFrom(c echo.Context) (*Identity, error) {
	identity, ok := c.Get(identityContextKey).(*Identity)
	if !ok || identity == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return identity, nil
}
