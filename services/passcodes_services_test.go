package services

import (
	"context"
	"testing"

	"contesthub/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisTest(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	database.REDIS = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestVerifyPasscode_OneShot(t *testing.T) {
	setupRedisTest(t)
	ctx := context.Background()

	code, err := GeneratePasscode(ctx, "admin@contesthub.io")
	require.NoError(t, err)
	require.Len(t, code, 6)

	require.NoError(t, VerifyPasscode(ctx, "admin@contesthub.io", code))

	// the code is consumed on success
	assert.ErrorIs(t, VerifyPasscode(ctx, "admin@contesthub.io", code), ErrPasscodeExpired)
}

func TestVerifyPasscode_Mismatch(t *testing.T) {
	setupRedisTest(t)
	ctx := context.Background()

	code, err := GeneratePasscode(ctx, "admin@contesthub.io")
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyPasscode(ctx, "admin@contesthub.io", wrongCode(code)), ErrPasscodeMismatch)

	// a failed attempt must not consume the code
	require.NoError(t, VerifyPasscode(ctx, "admin@contesthub.io", code))
}

func TestVerifyPasscode_AttemptCounterExpires(t *testing.T) {
	mr := setupRedisTest(t)
	ctx := context.Background()

	code, err := GeneratePasscode(ctx, "admin@contesthub.io")
	require.NoError(t, err)

	require.ErrorIs(t, VerifyPasscode(ctx, "admin@contesthub.io", wrongCode(code)), ErrPasscodeMismatch)

	// an abandoned attempt counter must carry a TTL, never live forever
	attemptsKey := passcodeAttemptsKeyPrefix + "admin@contesthub.io"
	require.True(t, mr.Exists(attemptsKey))
	assert.Positive(t, mr.TTL(attemptsKey))
}

func TestVerifyPasscode_CooldownAfterRepeatedFailures(t *testing.T) {
	setupRedisTest(t)
	ctx := context.Background()

	code, err := GeneratePasscode(ctx, "admin@contesthub.io")
	require.NoError(t, err)

	bad := wrongCode(code)
	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, VerifyPasscode(ctx, "admin@contesthub.io", bad), ErrPasscodeMismatch)
	}

	// the fourth attempt trips the cooldown, even with the right code
	assert.ErrorIs(t, VerifyPasscode(ctx, "admin@contesthub.io", code), ErrPasscodeCooldown)
}
