package services

import (
	"context"
	"time"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/pkg/logger"

	"gorm.io/gorm"
)

// 仪表盘统计缓存时长
const dashboardStatsTTL = 5 * time.Minute

// MonthlyCount 单月请求数量
type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// ProjectTypeCount 按项目类型聚合的请求数量
type ProjectTypeCount struct {
	ProjectType string `json:"projectType"`
	Count       int64  `json:"count"`
}

// DashboardStats 仪表盘聚合统计
type DashboardStats struct {
	TotalRequests    int64              `json:"totalRequests"`
	NewRequestsToday int64              `json:"newRequestsToday"`
	TotalUsers       int64              `json:"totalUsers"`
	ActiveUsers      int64              `json:"activeUsers"`
	TotalContacts    int64              `json:"totalContacts"`
	StatusCounts     map[string]int64   `json:"statusCounts"`
	MonthlyRequests  []MonthlyCount     `json:"monthlyRequests"`
	ProjectTypes     []ProjectTypeCount `json:"projectTypes"`
}

// InterfaceStatsService defines the dashboard statistics service interface
type InterfaceStatsService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

// StatsService 提供后台仪表盘统计服务，结果短时间缓存在Redis中
type StatsService struct {
	DB    *gorm.DB
	Redis InterfaceRedisService
}

// NewStatsService 创建一个新的统计服务
func NewStatsService(db *gorm.DB, redis InterfaceRedisService) InterfaceStatsService {
	return &StatsService{
		DB:    db,
		Redis: redis,
	}
}

// GetDashboardStats 获取仪表盘统计。优先读缓存，未命中时聚合数据库并回写
func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if hit, err := s.Redis.GetDashboardStats(ctx, &cached); err == nil && hit {
		return &cached, nil
	}

	stats, err := s.computeStats()
	if err != nil {
		return nil, err
	}

	if err := s.Redis.SetDashboardStats(ctx, stats, dashboardStatsTTL); err != nil {
		logger.Warning("仪表盘统计缓存回写失败: %v", err)
	}

	return stats, nil
}

func (s *StatsService) computeStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		StatusCounts: make(map[string]int64),
	}

	if err := s.DB.Model(&models.TenderRequest{}).Count(&stats.TotalRequests).Error; err != nil {
		return nil, err
	}

	// 今日零点起的新请求
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.DB.Model(&models.TenderRequest{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.NewRequestsToday).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.ContactMessage{}).Count(&stats.TotalContacts).Error; err != nil {
		return nil, err
	}

	// 各状态的请求数量
	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow
	if err := s.DB.Model(&models.TenderRequest{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.StatusCounts[row.Status] = row.Count
	}

	// 最近12个月逐月请求数量，缺失月份补零
	monthly, err := s.computeMonthlyRequests(now)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRequests = monthly

	// 项目类型分布
	var typeRows []ProjectTypeCount
	if err := s.DB.Model(&models.TenderRequest{}).
		Select("project_type as project_type, COUNT(*) as count").
		Group("project_type").
		Order("count DESC").
		Scan(&typeRows).Error; err != nil {
		return nil, err
	}
	stats.ProjectTypes = typeRows
	if stats.ProjectTypes == nil {
		stats.ProjectTypes = []ProjectTypeCount{}
	}

	return stats, nil
}

// computeMonthlyRequests 逐月统计在Go侧完成分桶，避免依赖具体数据库的日期函数
func (s *StatsService) computeMonthlyRequests(now time.Time) ([]MonthlyCount, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	var rows []struct {
		CreatedAt time.Time
	}
	if err := s.DB.Model(&models.TenderRequest{}).
		Select("created_at").
		Where("created_at >= ?", start).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.CreatedAt.Format("2006-01")]++
	}

	result := make([]MonthlyCount, 0, 12)
	for i := 0; i < 12; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		result = append(result, MonthlyCount{
			Month: month,
			Count: counts[month],
		})
	}

	return result, nil
}
