package utils_test

import (
	"testing"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skip("tzdata not available")
	}

	in := time.Date(2025, 6, 15, 23, 59, 59, 999, loc)
	got := utils.StartOfDay(in)

	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestStartOfDay_MidnightIsFixedPoint(t *testing.T) {
	midnight := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	assert.Equal(t, midnight, utils.StartOfDay(midnight))
}

func TestRefreshTokenHashRoundTrip(t *testing.T) {
	token := "some-opaque-refresh-token"
	hash := utils.HashRefreshToken(token)

	assert.NotEqual(t, token, hash)
	assert.Len(t, hash, 64) // hex-encoded SHA-256
	assert.True(t, utils.CompareRefreshTokenHash(token, hash))
	assert.False(t, utils.CompareRefreshTokenHash("a-different-token", hash))
}
