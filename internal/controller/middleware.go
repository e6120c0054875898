package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
)

var errInvalidToken = errors.New("invalid token")

func parseUserIdFromToken(token string, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}

		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}

	return claims.Subject, nil
}

// newAuthMiddleware verifies the bearer token and puts the requester id
// into the echo context for the handlers downstream.
func newAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				if e := c.JSON(http.StatusUnauthorized, errorResponse{"Not authorized. Please login to access this resource."}); e != nil {
					return e
				}

				return nil
			}

			userId, err := parseUserIdFromToken(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				if e := c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired token. Please login again."}); e != nil {
					return e
				}

				return nil
			}

			c.Set(userIdContextKey, userId)

			return next(c)
		}
	}
}
