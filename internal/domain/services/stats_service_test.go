package services

import (
	"context"
	"testing"

	"dhiya-infra-service/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	redisSvc := NewRedisService(nil)
	svc := NewStatsService(db, redisSvc)

	tenderSvc := NewTenderRequestService(db, cfg)
	first := newTenderRequest()
	require.NoError(t, tenderSvc.Create(first))

	second := newTenderRequest()
	second.ProjectType = "residential"
	require.NoError(t, tenderSvc.Create(second))

	_, err := tenderSvc.UpdateStatus(second.ID, models.RequestStatusReviewed)
	require.NoError(t, err)

	userSvc := NewUserService(db, cfg)
	_, err = userSvc.Authenticate(cfg.AdminEmail, cfg.AdminPassword)
	require.NoError(t, err)

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.NewRequestsToday)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.Equal(t, int64(1), stats.StatusCounts["new"])
	assert.Equal(t, int64(1), stats.StatusCounts["reviewed"])

	// 12个月逐月序列，当前月在最后
	require.Len(t, stats.MonthlyRequests, 12)
	assert.Equal(t, int64(2), stats.MonthlyRequests[11].Count)

	require.Len(t, stats.ProjectTypes, 2)
}
