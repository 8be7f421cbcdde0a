package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// SessionClaims is the bearer token payload. IssuedAt records the instant
// the session was established; the timeout check against it happens in the
// middleware on every request, not via exp alone.
type SessionClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// CreateSessionToken mints an HS256 token for an authenticated employee or
// admin. maxLifetime caps exp as a second line of defence behind the
// per-request session guard.
func CreateSessionToken(secret []byte, role, subjectID, name string, establishedAt time.Time, maxLifetime time.Duration) (string, error) {
	claims := SessionClaims{
		Role: role,
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "timbrapp",
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(establishedAt),
			ExpiresAt: jwt.NewNumericDate(establishedAt.Add(maxLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseSessionToken verifies the signature and returns the claims. Session
// timeout is not checked here; that is the caller's SessionGuard step.
func ParseSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != RoleEmployee && claims.Role != RoleAdmin {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return claims, nil
}
