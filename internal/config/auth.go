package config

import (
	"sync"
	"time"
)

var (
	jwtSecretMu sync.RWMutex
	// jwtSecret signs the bearer tokens minted by /oauth/token.
	// In production this should always come from the environment.
	jwtSecret = []byte(GetEnvOrDefault("JWT_SECRET", "genmock-dev-secret"))
)

// GetJWTSecret returns the current JWT secret in a thread-safe manner.
func GetJWTSecret() []byte {
	jwtSecretMu.RLock()
	defer jwtSecretMu.RUnlock()
	return jwtSecret
}

// SetJWTSecret temporarily changes the JWT secret and returns a function
// to restore it. This is primarily used for testing.
func SetJWTSecret(secret []byte) func() {
	jwtSecretMu.Lock()
	previous := jwtSecret
	jwtSecret = secret
	jwtSecretMu.Unlock()

	return func() {
		jwtSecretMu.Lock()
		jwtSecret = previous
		jwtSecretMu.Unlock()
	}
}

// GetInvalidAPIKey returns the one key literal the mock always rejects,
// so collection tests can exercise the UNAUTHENTICATED path on demand.
func GetInvalidAPIKey() string {
	return GetEnvOrDefault("MOCK_INVALID_API_KEY", "INVALID_KEY")
}

// GetTokenTTL returns the lifetime of minted bearer tokens.
func GetTokenTTL() time.Duration {
	return time.Duration(parseEnvInt("TOKEN_TTL_SECONDS", 3600)) * time.Second
}
