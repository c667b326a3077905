package middleware

import (
	"net/http"
	"strings"

	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var secret = []byte(getJWTSecret())

func getJWTSecret() string {
	if val := os.Getenv("JWT_SECRET"); val != "" {
		return val
	}
	return "supersecret" // fallback
}

// TokenTTL bounds every issued session token.
const TokenTTL = time.Hour

// GenerateToken issues a signed bearer token carrying the user's identity.
func GenerateToken(userID uint, email string, roleID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role_id": roleID,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
}

// RequireAuth ensures a valid JWT is present and exposes its claims to
// downstream handlers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		c.Set("user_id", claims["user_id"])
		c.Set("email", claims["email"])
		c.Set("role_id", claims["role_id"])

		c.Next()
	}
}

// CurrentUserID extracts the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	return claimUint(c, "user_id")
}

// CurrentRoleID extracts the authenticated user's role id from the context.
func CurrentRoleID(c *gin.Context) (uint, bool) {
	return claimUint(c, "role_id")
}

// CurrentEmail extracts the authenticated user's email from the context.
func CurrentEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// JWT numeric claims decode as float64.
func claimUint(c *gin.Context, name string) (uint, bool) {
	v, exists := c.Get(name)
	if !exists {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return uint(n), true
	case uint:
		return n, true
	default:
		return 0, false
	}
}
