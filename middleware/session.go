package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	SessionCookie = "streammax_visitor"
	sessionIDKey  = "sessionID"
)

const sessionIDBytes = 12

// newSessionID returns a random visitor id, hex encoded.
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func signSession(sid string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// parseSession returns the visitor id carried by a valid, unexpired token.
func parseSession(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", fmt.Errorf("session token has no sid")
	}
	return sid, nil
}

// VisitorSession makes sure every request belongs to a visitor session. A
// missing, tampered or expired cookie gets a fresh session.
func VisitorSession(secret []byte, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sid string
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			sid, _ = parseSession(cookie, secret)
		}

		if sid == "" {
			var err error
			sid, err = newSessionID()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			token, err := signSession(sid, secret, ttl)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
		}

		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

// SessionID is the visitor id VisitorSession attached to the request.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
