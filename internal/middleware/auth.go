package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/moving-backoffice/internal/config"
)

const (
	ContextViewID = "viewID"

	// HeaderViewToken carries a renewed token once the current one has used
	// up half of its lifetime. Clients replace their token when it appears.
	HeaderViewToken = "X-View-Token"

	viewTokenIssuer = "moving-backoffice"
)

// IssueViewToken signs a token that lets its bearer act on one mounted view.
func IssueViewToken(secret, viewID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    viewTokenIssuer,
		Subject:   viewID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ViewAuth requires a bearer token whose subject is the :viewID in the path.
func ViewAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithIssuer(viewTokenIssuer))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if claims.Subject == "" || claims.Subject != c.Param("viewID") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token_not_for_this_view"})
			return
		}

		renewViewToken(c, cfg, claims)

		c.Set(ContextViewID, claims.Subject)
		c.Next()
	}
}

// renewViewToken keeps the token in step with the registry, whose TTL is
// counted from the last use rather than from the mount.
func renewViewToken(c *gin.Context, cfg *config.Config, claims *jwt.RegisteredClaims) {
	if cfg.ViewTTL <= 0 || claims.ExpiresAt == nil {
		return
	}
	if time.Until(claims.ExpiresAt.Time) > cfg.ViewTTL/2 {
		return
	}

	token, err := IssueViewToken(cfg.JWTSecret, claims.Subject, cfg.ViewTTL)
	if err != nil {
		log.Printf("ERROR: renew view token for %s: %v", claims.Subject, err)
		return
	}
	c.Header(HeaderViewToken, token)
}
