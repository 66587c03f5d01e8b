package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/principal"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

var errUnauthenticated = errors.New("missing or invalid bearer token")

// Claims are the business claims issued by the auth service.
type Claims struct {
	BusinessID   string `json:"businessId"`
	BusinessType int    `json:"businessType"`
	Admin        bool   `json:"admin"`
	Verified     bool   `json:"verified"`
	jwt.RegisteredClaims
}

// Principal turns the claims into the acting principal.
func (c Claims) Principal() (principal.Principal, error) {
	id, err := kernel.UUIDFromString(c.BusinessID)
	if err != nil {
		return principal.Principal{}, err
	}
	return principal.NewPrincipal(id, principal.Role(c.BusinessType), c.Admin, c.Verified)
}

// IssueToken signs claims with HS256. It is used by tooling and tests; tokens
// in production come from the auth service.
func IssueToken(secret []byte, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Authenticate verifies the bearer token and stores the principal in the
// request context.
func Authenticate(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || raw == "" {
				return unauthorized(c)
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}); err != nil {
				return unauthorized(c)
			}

			actor, err := claims.Principal()
			if err != nil {
				return unauthorized(c)
			}

			c.Set(principalKey, actor)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (principal.Principal, error) {
	actor, ok := c.Get(principalKey).(principal.Principal)
	if !ok {
		return principal.Principal{}, errUnauthenticated
	}
	return actor, nil
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: errUnauthenticated.Error(),
	})
}
