package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dhiya-infra-service/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// 缓存键前缀
const (
	dashboardStatsKey = "dhiya:dashboard:stats"
	contentKeyPrefix  = "dhiya:content:"
)

// InterfaceRedisService defines the Redis cache service interface
type InterfaceRedisService interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Delete(ctx context.Context, keys ...string) error
	GetDashboardStats(ctx context.Context, dest interface{}) (bool, error)
	SetDashboardStats(ctx context.Context, value interface{}, expiration time.Duration) error
	InvalidateDashboardStats(ctx context.Context)
}

// RedisService 提供Redis缓存相关服务。客户端为nil或者Redis不可用时所有
// 操作静默降级，调用方直接回源数据库。
type RedisService struct {
	Client *redis.Client
}

// NewRedisService 创建一个新的Redis缓存服务
func NewRedisService(client *redis.Client) InterfaceRedisService {
	return &RedisService{
		Client: client,
	}
}

// Set 将值序列化为JSON后写入缓存
func (s *RedisService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s.Client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化缓存值失败: %w", err)
	}

	if err := s.Client.Set(ctx, key, data, expiration).Err(); err != nil {
		logger.Warning("Redis写入失败 key=%s: %v", key, err)
		return err
	}
	return nil
}

// Get 从缓存读取JSON并反序列化到dest。返回值表示是否命中
func (s *RedisService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if s.Client == nil {
		return false, nil
	}

	data, err := s.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Warning("Redis读取失败 key=%s: %v", key, err)
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("反序列化缓存值失败: %w", err)
	}
	return true, nil
}

// Delete 删除缓存键
func (s *RedisService) Delete(ctx context.Context, keys ...string) error {
	if s.Client == nil || len(keys) == 0 {
		return nil
	}
	return s.Client.Del(ctx, keys...).Err()
}

// GetDashboardStats 读取仪表盘统计缓存
func (s *RedisService) GetDashboardStats(ctx context.Context, dest interface{}) (bool, error) {
	return s.Get(ctx, dashboardStatsKey, dest)
}

// SetDashboardStats 写入仪表盘统计缓存
func (s *RedisService) SetDashboardStats(ctx context.Context, value interface{}, expiration time.Duration) error {
	return s.Set(ctx, dashboardStatsKey, value, expiration)
}

// InvalidateDashboardStats 使仪表盘统计缓存失效。失败只记录日志，
// 缓存项本身带过期时间，过期后自然刷新
func (s *RedisService) InvalidateDashboardStats(ctx context.Context) {
	if err := s.Delete(ctx, dashboardStatsKey); err != nil {
		logger.Warning("仪表盘统计缓存失效操作失败: %v", err)
	}
}
