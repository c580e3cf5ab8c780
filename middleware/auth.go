package middleware

import (
	"Eatdentify/config/environment"
	"Eatdentify/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(environment.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return username, nil
}

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Missing bearer token")
			c.Abort()
			return
		}

		username, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("userId", username)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the session owner: the logged-in username
// when a valid token is present, the client IP otherwise (guest mode).
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if username, err := parseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set("userId", username)
				c.Next()
				return
			}
		}
		c.Set("userId", "guest:"+c.ClientIP())
		c.Next()
	}
}
