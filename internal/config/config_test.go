package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "hotel.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Minute, cfg.RoomCacheTTL)
	assert.Equal(t, 7, cfg.Cancellation.FullRefundDays)
	assert.Equal(t, 3, cfg.Cancellation.PartialRefundDays)
	assert.Equal(t, 50.0, cfg.Cancellation.PartialRefundPercent)
	assert.Equal(t, "0 2 * * *", cfg.NoShowSweepSpec)
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProdRejectsDefaultJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "hotel.db")
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "an-actual-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "an-actual-secret", cfg.JWTSecret)
}

func TestLoad_CancellationOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "hotel.db")
	t.Setenv("CANCEL_FULL_REFUND_DAYS", "14")
	t.Setenv("CANCEL_PARTIAL_REFUND_DAYS", "5")
	t.Setenv("CANCEL_PARTIAL_REFUND_PERCENT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Cancellation.FullRefundDays)
	assert.Equal(t, 5, cfg.Cancellation.PartialRefundDays)
	assert.Equal(t, 25.0, cfg.Cancellation.PartialRefundPercent)
}

func TestLoad_RejectsInvertedRefundWindow(t *testing.T) {
	t.Setenv("DATABASE_URL", "hotel.db")
	t.Setenv("CANCEL_FULL_REFUND_DAYS", "2")
	t.Setenv("CANCEL_PARTIAL_REFUND_DAYS", "5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadDuration(t *testing.T) {
	t.Setenv("DATABASE_URL", "hotel.db")
	t.Setenv("ROOM_CACHE_TTL", "ten minutes")

	_, err := Load()
	assert.Error(t, err)
}
