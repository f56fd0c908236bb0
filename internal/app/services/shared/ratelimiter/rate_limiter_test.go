package ratelimiter

import (
	"context"
	"errors"
	"hospital-service/internal/app/contracts/mocks"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestApplyResourceLimiter(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 45, 0, time.UTC)
	windowID := now.Unix() / 60
	key := "ratelimit:predict:64b000000000000000000001:" + itoa(windowID)

	t.Run("Within quota", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, key, 61*time.Second).Return(3, nil).Once()

		out, err := NewResourceLimiter(redisRepo, zap.NewNop()).ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:      "64b000000000000000000001",
			LimiterGroupName:  "predict",
			WindowDurationSec: 60,
			MaxQuota:          3,
			NowUTC:            now,
		})

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Over quota reports retry after the window", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, key, 61*time.Second).Return(4, nil).Once()

		out, err := NewResourceLimiter(redisRepo, zap.NewNop()).ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:      "64b000000000000000000001",
			LimiterGroupName:  "predict",
			WindowDurationSec: 60,
			MaxQuota:          3,
			NowUTC:            now,
		})

		require.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Equal(t, 16, out.RetryAfterSecs)
	})

	t.Run("Zero quota disables the limiter", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)

		out, err := NewResourceLimiter(redisRepo, zap.NewNop()).ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:     "64b000000000000000000001",
			LimiterGroupName: "predict",
		})

		require.NoError(t, err)
		assert.True(t, out.Allowed)
		redisRepo.AssertNotCalled(t, "IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis failure denies", func(t *testing.T) {
		redisRepo := new(mocks.RedisRepository)
		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("connection refused")).Once()

		out, err := NewResourceLimiter(redisRepo, zap.NewNop()).ApplyResourceLimiter(context.Background(), &ApplyResourceLimiterInput{
			ResourceName:     "64b000000000000000000001",
			LimiterGroupName: "predict",
			MaxQuota:         3,
			NowUTC:           now,
		})

		assert.Error(t, err)
		assert.False(t, out.Allowed)
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
