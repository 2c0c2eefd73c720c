package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probelab/genmock/internal/config"
)

func TestIssueAndValidateToken(t *testing.T) {
	restore := config.SetJWTSecret([]byte("test-secret"))
	defer restore()

	s := NewService()

	token, expiresAt, err := s.IssueToken(GrantAnonymous)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	assert.True(t, s.ValidateToken(token))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	restore := config.SetJWTSecret([]byte("secret-a"))
	token, _, err := NewService().IssueToken(GrantAnonymous)
	require.NoError(t, err)
	restore()

	restore = config.SetJWTSecret([]byte("secret-b"))
	defer restore()

	assert.False(t, NewService().ValidateToken(token))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	s := NewService()
	assert.False(t, s.ValidateToken(""))
	assert.False(t, s.ValidateToken("not-a-jwt"))
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"valid bearer", "Bearer abc123", "abc123"},
		{"missing header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
		{"too many parts", "Bearer a b", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, ExtractBearer(r))
		})
	}
}
