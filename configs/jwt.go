package configs

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "veyra_admin_session"

// SessionTTL bounds both the JWT expiry and the blacklist entry on logout.
const SessionTTL = 24 * time.Hour

type SessionClaim struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(LoadEnvFor("SESSION_SECRET"))
}

// GenerateSessionToken issues a signed admin session token.
func GenerateSessionToken(email string) (string, error) {
	now := time.Now()
	claims := SessionClaim{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateSessionToken parses a session token and returns the admin email.
func ValidateSessionToken(tokenString string) (string, error) {
	var claims SessionClaim
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey(), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid session token")
	}

	return claims.Email, nil
}

// ExtractToken pulls the session token from the request cookie.
func ExtractToken(c *gin.Context) string {
	token, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return token
}
