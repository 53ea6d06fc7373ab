// File path: internal/auth/auth.go

// Package auth handles account credentials and session tokens.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/truenorth-regtech/truenorth/internal/common"
)

const tokenTTL = 24 * time.Hour

// HashPassword returns the bcrypt hash stored for an account.
func HashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", fmt.Errorf("senha deve ter ao menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// TokenIssuer signs and verifies the bearer tokens the API hands out.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer reads the signing secret from TRUENORTH_JWT_SECRET. When
// unset a random per-boot secret is generated, which invalidates tokens
// across restarts.
func NewTokenIssuer() *TokenIssuer {
	secret := strings.TrimSpace(os.Getenv("TRUENORTH_JWT_SECRET"))
	if secret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			panic(fmt.Sprintf("auth: cannot generate session secret: %v", err))
		}
		secret = hex.EncodeToString(buf)
		common.Logger().Warn("auth: TRUENORTH_JWT_SECRET not set; using a random per-boot secret")
	}
	return &TokenIssuer{secret: []byte(secret), ttl: tokenTTL}
}

// NewTokenIssuerWithSecret is the injectable constructor used by tests.
func NewTokenIssuerWithSecret(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for a user.
func (t *TokenIssuer) Issue(userID, email string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the user id and email.
func (t *TokenIssuer) Verify(tokenString string) (userID, email string, err error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", "", fmt.Errorf("invalid token")
	}
	return claims.Subject, claims.Email, nil
}
