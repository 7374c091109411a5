package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateJWT("user-1", time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "nightfable", claims.Issuer)
}

func TestValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	tests := []struct {
		name      string
		token     func() string
		expectErr bool
	}{
		{
			name: "Valid token",
			token: func() string {
				token, _ := service.GenerateJWT("user-1", time.Now().Add(time.Hour))
				return token
			},
			expectErr: false,
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := service.GenerateJWT("user-1", time.Now().Add(-time.Hour))
				return token
			},
			expectErr: true,
		},
		{
			name: "Token signed with another secret",
			token: func() string {
				other := NewJWTService("other-secret")
				token, _ := other.GenerateJWT("user-1", time.Now().Add(time.Hour))
				return token
			},
			expectErr: true,
		},
		{
			name: "Garbage token",
			token: func() string {
				return "not-a-token"
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}
