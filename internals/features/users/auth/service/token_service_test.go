package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ktx_backend/internals/configs"
	"ktx_backend/internals/features/users/auth/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	prevAccess, prevRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = prevAccess
		configs.JWTRefreshSecret = prevRefresh
	})
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	u := &model.User{UserID: uuid.New(), UserRole: "student"}
	raw, err := GenerateRefreshToken(u)
	require.NoError(t, err)

	id, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, id)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	setTestSecrets(t)

	// signed with the access secret, must not pass refresh verification
	u := &model.User{UserID: uuid.New(), UserRole: "student"}
	raw, err := GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = ParseRefreshToken(raw)
	assert.Error(t, err)
}

func TestParseRefreshTokenGarbage(t *testing.T) {
	setTestSecrets(t)

	_, err := ParseRefreshToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	setTestSecrets(t)

	u := &model.User{UserID: uuid.New(), UserRole: "manager"}
	raw, err := GenerateAccessToken(u)
	require.NoError(t, err)

	exp := TokenExpiry(raw)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), exp, time.Minute)

	// unreadable token falls back to now+TTL instead of zero time
	fallback := TokenExpiry("garbage")
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), fallback, time.Minute)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestGenerateInitialPassword(t *testing.T) {
	p1 := GenerateInitialPassword(12)
	p2 := GenerateInitialPassword(12)
	assert.Len(t, p1, 12)
	assert.Len(t, p2, 12)
	assert.NotEqual(t, p1, p2)

	for _, ch := range p1 {
		assert.Contains(t, passwordAlphabet, string(ch))
	}
}
