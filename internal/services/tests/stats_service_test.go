package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/codescope-coders/codescope-rework/internal/mocks"
	"github.com/codescope-coders/codescope-rework/internal/models"
	"github.com/codescope-coders/codescope-rework/internal/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupStatsServiceTest(t *testing.T) (context.Context, services.StatsService, *mocks.StatsRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	statsRepo := &mocks.StatsRepository{}
	svc := services.NewStatsService(statsRepo, client, zap.NewNop())
	return context.Background(), svc, statsRepo, mr
}

func TestStatsService_CachesCollectedStats(t *testing.T) {
	ctx, svc, statsRepo, _ := setupStatsServiceTest(t)

	expected := &models.Stats{TotalApplications: 12, PendingApplications: 5, TotalJobs: 3, ActiveJobs: 2, ClosedJobs: 1}
	statsRepo.On("Collect", ctx).Return(expected, nil).Once()

	first, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, first)

	// Second call is served from the cache; Collect is not hit again.
	second, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, second)
	statsRepo.AssertNumberOfCalls(t, "Collect", 1)
}

func TestStatsService_CacheExpiryRefetches(t *testing.T) {
	ctx, svc, statsRepo, mr := setupStatsServiceTest(t)

	statsRepo.On("Collect", ctx).Return(&models.Stats{TotalApplications: 1}, nil).Twice()

	_, err := svc.GetStats(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.GetStats(ctx)
	require.NoError(t, err)
	statsRepo.AssertNumberOfCalls(t, "Collect", 2)
}

func TestStatsService_NilCacheStillWorks(t *testing.T) {
	statsRepo := &mocks.StatsRepository{}
	svc := services.NewStatsService(statsRepo, nil, zap.NewNop())

	ctx := context.Background()
	expected := &models.Stats{TotalJobs: 9}
	statsRepo.On("Collect", ctx).Return(expected, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestStatsService_CorruptCacheFallsThrough(t *testing.T) {
	ctx, svc, statsRepo, mr := setupStatsServiceTest(t)

	require.NoError(t, mr.Set("stats:dashboard", "{not json"))
	expected := &models.Stats{RejectedApplications: 2}
	statsRepo.On("Collect", ctx).Return(expected, nil)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}
