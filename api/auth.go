package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// set on the gin context when a valid bearer token is presented
const userIDKey = "userAccountID"

func parseJWT(jwtStr string, decodeToken string) (*jwt.StandardClaims, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(jwtStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token is missing a subject")
	}

	return claims, nil
}

// authMiddleware resolves the caller from an HS256 bearer token when one is
// sent. Requests without a token fall through to the userId in the request.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || m.JwtDecodeToken == "" {
		c.Next()
		return
	}

	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		returnErrorJsonCode(fmt.Errorf("authorization header must use the Bearer scheme"), c, http.StatusUnauthorized)
		return
	}

	claims, err := parseJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusUnauthorized)
		return
	}

	c.Set(userIDKey, claims.Subject)
	c.Next()
}

// resolveUserID prefers the authenticated subject over the userId sent by
// the client.
func resolveUserID(c *gin.Context, requestUserID string) (string, bool) {
	if v, ok := c.Get(userIDKey); ok {
		if userID, ok := v.(string); ok && userID != "" {
			return userID, true
		}
	}
	if requestUserID == "" {
		returnErrorJsonCode(fmt.Errorf("userId is required"), c, http.StatusBadRequest)
		return "", false
	}
	return requestUserID, true
}
