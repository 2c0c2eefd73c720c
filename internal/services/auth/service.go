// Package auth mints and validates the bearer tokens the mock accepts as
// an alternative to an API key, so collection tests can exercise OAuth
// flows without real credentials.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/probelab/genmock/internal/config"
)

// GrantAnonymous is the only grant type the mock issues.
const GrantAnonymous = "anonymous"

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	GrantType string `json:"gty"`
}

type Service struct {
	ttl time.Duration
}

func NewService() *Service {
	return &Service{ttl: config.GetTokenTTL()}
}

// IssueToken mints a signed HS256 token for the given grant type.
func (s *Service) IssueToken(grantType string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "genmock",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		GrantType: grantType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.GetJWTSecret())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken checks signature and expiry. Returns false for any
// token this process did not mint.
func (s *Service) ValidateToken(tokenString string) bool {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return config.GetJWTSecret(), nil
	})
	if err != nil {
		log.Debug().Err(err).Msg("Bearer token failed validation")
		return false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return false
	}
	if claims.GrantType == "" {
		log.Debug().Msg("Bearer token missing grant type claim")
		return false
	}
	return true
}

// ExtractBearer pulls the token out of an Authorization: Bearer header,
// returning "" when the header is absent or malformed.
func ExtractBearer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
