package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey = "user_id"
	tokenKey  = "auth_token"
)

// SellerClaims is the marketplace access token payload.
type SellerClaims struct {
	UserID json.Number `json:"user_id"`
	jwt.RegisteredClaims
}

// RequireSeller checks the bearer token (HS256) and stores the seller id and raw token.
func RequireSeller(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithJSONNumber())

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		if len(secret) == 0 {
			abortUnauthorized(c, "authentication is not configured")
			return
		}

		var claims SellerClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return secret, nil })
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token expired"
			}
			abortUnauthorized(c, msg)
			return
		}
		userID, err := strconv.ParseInt(claims.UserID.String(), 10, 64)
		if err != nil || userID <= 0 {
			abortUnauthorized(c, "token has no user_id")
			return
		}

		c.Set(userIDKey, userID)
		c.Set(tokenKey, raw)
		c.Next()
	}
}

// GetUserID returns the authenticated seller id, or 0.
func GetUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

// GetToken returns the raw bearer token of the authenticated seller.
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
