package controllers

import (
	"runtime"
	"time"

	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Container *container.ServiceContainer
	startTime time.Time
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Container: container,
		startTime: time.Now(),
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	controller := NewHealthCheckController(container)
	return func(ctx *gin.Context) {
		switch method {
		case "ping":
			controller.Ping(ctx)
		case "health":
			controller.Health(ctx)
		case "status":
			controller.Status(ctx)
		default:
			controller.Ping(ctx)
		}
	}
}

// Ping 健康检查端点
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Health 带数据库连通性的健康检查
func (h *HealthCheckController) Health(c *gin.Context) {
	dbHealthy := true
	db := h.Container.GetDB()
	sqlDB, err := db.DB()
	if err != nil {
		dbHealthy = false
	} else if err := sqlDB.Ping(); err != nil {
		dbHealthy = false
	}

	status := "healthy"
	if !dbHealthy {
		status = "degraded"
	}

	response.Success(c, gin.H{
		"status":   status,
		"database": dbHealthy,
		"uptime":   time.Since(h.startTime).String(),
	})
}

// Status 返回连接池与运行时的详细状态
func (h *HealthCheckController) Status(c *gin.Context) {
	data := gin.H{
		"goroutines": runtime.NumGoroutine(),
		"uptime":     time.Since(h.startTime).String(),
	}

	db := h.Container.GetDB()
	if sqlDB, err := db.DB(); err == nil {
		stats := sqlDB.Stats()
		data["dbPool"] = gin.H{
			"openConnections": stats.OpenConnections,
			"inUse":           stats.InUse,
			"idle":            stats.Idle,
			"waitCount":       stats.WaitCount,
			"waitDuration":    stats.WaitDuration.String(),
		}
	}

	response.Success(c, data)
}
