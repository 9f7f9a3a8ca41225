package container

import (
	"context"
	"log"
	"sync"
	"time"

	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService services.InterfaceJWTService

	// 数据存储服务
	redisService services.InterfaceRedisService

	// 业务服务
	userService          services.InterfaceUserService
	tenderRequestService services.InterfaceTenderRequestService
	contactService       services.InterfaceContactService
	contentService       services.InterfaceContentService
	statsService         services.InterfaceStatsService
	mailerService        services.InterfaceMailerService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)

	// 初始化Redis服务
	c.redisService = services.NewRedisService(c.redis)

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.tenderRequestService = services.NewTenderRequestService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config)
	c.contentService = services.NewContentService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.redisService)

	// 初始化邮件通知服务
	c.mailerService = services.NewMailerService(c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "tender_request":
		return c.tenderRequestService
	case "contact":
		return c.contactService
	case "content":
		return c.contentService
	case "stats":
		return c.statsService
	case "mailer":
		return c.mailerService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// Close 释放容器持有的后台资源
func (c *ServiceContainer) Close() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mailerService != nil {
		c.mailerService.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("关闭Redis连接失败: %v", err)
		}
	}
}
