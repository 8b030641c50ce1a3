package services

import (
	"crypto/subtle"
	"strings"
	"time"

	"promptcraft-backend/config"
	"promptcraft-backend/internal/models"
	"promptcraft-backend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Session is the explicit session context the gate middleware resolves from
// a token and threads through request handlers. Authorization is boolean and
// global: holding any valid session passes the gate.
type Session struct {
	TokenID   string
	Owner     string
	ExpiresAt time.Time
}

// VerifySitePassword checks the supplied password against the configured
// shared secret. The secret may be stored as a bcrypt hash; otherwise a
// constant-time comparison is used. An unset secret fails closed.
func VerifySitePassword(password string) (bool, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return false, err
	}

	secret := cfg.SitePassword
	if secret == "" || password == "" {
		return false, nil
	}

	if strings.HasPrefix(secret, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(password)) == nil, nil
	}

	return subtle.ConstantTimeCompare([]byte(secret), []byte(password)) == 1, nil
}

// StartSession issues a session token for the shared logical user.
func StartSession() (string, error) {
	return utils.GenerateSessionToken(models.SharedOwnerID)
}

// EndSession revokes a token. Clearing a session never requires the token to
// still be valid; an unparseable token is denylisted for the maximum
// lifetime.
func EndSession(tokenString string) error {
	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return AddToDenylist(tokenString, utils.SessionTokenLifetime)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return AddToDenylist(tokenString, utils.SessionTokenLifetime)
	}

	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return nil
	}
	return AddToDenylist(tokenString, remaining)
}

// SessionFromClaims builds the session context from validated token claims.
func SessionFromClaims(claims jwt.MapClaims) *Session {
	session := &Session{Owner: models.SharedOwnerID}

	if sid, ok := claims["sid"].(string); ok {
		session.TokenID = sid
	}
	if owner, ok := claims["owner"].(string); ok && owner != "" {
		session.Owner = owner
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return session
}
