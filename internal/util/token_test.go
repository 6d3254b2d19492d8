package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/pkg/config"
)

func newTestTokenManager() *TokenManager {
	cfg := &config.Config{}
	cfg.Auth.AccessTokenSecret = "access-secret"
	cfg.Auth.RefreshTokenSecret = "refresh-secret"
	cfg.Auth.AccessTokenExpiryHour = 1
	cfg.Auth.RefreshTokenExpiryHour = 168
	return NewTokenManager(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	tm := newTestTokenManager()
	msg := &JWTMessage{
		UserID: "u-1",
		Email:  "admin@example.com",
		Name:   "Admin",
		Role:   model.RoleAdmin,
	}

	access, refresh, err := tm.CreateTokens(msg)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	got, err := tm.CheckToken(access)
	require.NoError(t, err)
	assert.Equal(t, *msg, got)

	got, err = tm.CheckRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, *msg, got)
}

// The two token kinds are signed with different secrets, so one can never
// stand in for the other.
func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	tm := newTestTokenManager()
	access, refresh, err := tm.CreateTokens(&JWTMessage{UserID: "u-1", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = tm.CheckToken(refresh)
	assert.Error(t, err)

	_, err = tm.CheckRefreshToken(access)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := newTestTokenManager()
	_, err := tm.CheckToken("not-a-token")
	assert.Error(t, err)
}
