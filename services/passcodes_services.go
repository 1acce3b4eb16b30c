package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"contesthub/config"
	"contesthub/database"
)

const (
	passcodeKeyPrefix         = "admin_passcode:"
	passcodeAttemptsKeyPrefix = "admin_passcode_attempts:"
	passcodeTTL               = 10 * time.Minute
)

var (
	ErrPasscodeExpired  = errors.New("passcode expired or never requested")
	ErrPasscodeMismatch = errors.New("passcode does not match")
	ErrPasscodeCooldown = errors.New("too many attempts, try again later")
)

// GeneratePasscode creates a 6-digit verification code for an admin login and
// stores it in Redis with a bounded lifetime
func GeneratePasscode(ctx context.Context, email string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate passcode: %w", err)
	}
	passcode := fmt.Sprintf("%06d", n.Int64())

	if err := database.REDIS.Set(ctx, passcodeKeyPrefix+email, passcode, passcodeTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store passcode: %w", err)
	}
	if err := database.REDIS.Del(ctx, passcodeAttemptsKeyPrefix+email).Err(); err != nil {
		return "", fmt.Errorf("failed to reset passcode attempts: %w", err)
	}

	return passcode, nil
}

// VerifyPasscode checks a submitted code against the stored one, applying the
// configured attempt thresholds and cooldowns before each comparison
func VerifyPasscode(ctx context.Context, email, passcode string) error {
	attemptsKey := passcodeAttemptsKeyPrefix + email

	attempts, err := database.REDIS.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to count passcode attempts: %w", err)
	}
	if attempts == 1 {
		// Abandoned attempts must not linger in Redis forever
		database.REDIS.Expire(ctx, attemptsKey, passcodeTTL)
	}

	limits := config.DefaultRateLimitConfig
	switch {
	case attempts > int64(limits.AttemptsThreshold2):
		database.REDIS.Expire(ctx, attemptsKey, limits.CooldownDuration2)
		return ErrPasscodeCooldown
	case attempts > int64(limits.AttemptsThreshold1):
		database.REDIS.Expire(ctx, attemptsKey, limits.CooldownDuration1)
		return ErrPasscodeCooldown
	}

	stored, err := database.REDIS.Get(ctx, passcodeKeyPrefix+email).Result()
	if err != nil {
		return ErrPasscodeExpired
	}
	if stored != passcode {
		return ErrPasscodeMismatch
	}

	// One shot only
	database.REDIS.Del(ctx, passcodeKeyPrefix+email)
	database.REDIS.Del(ctx, attemptsKey)
	return nil
}
