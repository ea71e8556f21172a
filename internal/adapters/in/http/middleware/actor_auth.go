// Package middleware provides HTTP middleware for the marketplace API.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const identityKey = "marketplace.identity"

// Identity is the authenticated acting party of a request. It carries only
// what the token proves: who is acting and whether they hold the admin role.
// Enterprise ownership is resolved from storage, never from the token.
type Identity struct {
	ActorID kernel.UUID
	IsAdmin bool
}

// ActorClaims is the expected JWT payload: the actor identity in the subject
// plus an admin flag.
type ActorClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// ActorAuth returns middleware that authenticates requests with an HS256
// bearer token and stores the resulting Identity in the request context.
// Requests without a valid token are rejected with 401.
func ActorAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				return unauthorized(c)
			}

			claims := &ActorClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return unauthorized(c)
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(identityKey, Identity{ActorID: actorID, IsAdmin: claims.Admin})
			return next(c)
		}
	}
}

// IdentityFrom extracts the authenticated identity set by ActorAuth.
func IdentityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "You are not authorized to perform that action.",
	})
}
