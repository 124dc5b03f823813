package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	tok, err := IssueToken(testSecret, "cli", 30*time.Minute)
	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) { return testSecret, nil })
	require.NoError(t, err)

	assert.Equal(t, "cli", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	sub, err := ValidateToken("Bearer "+tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "cli", sub)
}

func TestIssueToken_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		secret  []byte
		subject string
		ttl     time.Duration
	}{
		{"empty secret", nil, "cli", time.Hour},
		{"empty subject", testSecret, "", time.Hour},
		{"zero ttl", testSecret, "cli", 0},
		{"negative ttl", testSecret, "cli", -time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IssueToken(tt.secret, tt.subject, tt.ttl)
			assert.Error(t, err)
		})
	}
}
