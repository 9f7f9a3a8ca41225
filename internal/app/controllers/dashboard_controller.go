package controllers

import (
	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/code"
	"dhiya-infra-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceDashboardController 定义仪表盘控制器接口
type InterfaceDashboardController interface {
	GetDashboardStats()
}

// DashboardController 仪表盘控制器
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController 创建一个新的仪表盘控制器
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc 返回一个处理仪表盘请求的Gin处理函数
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getDashboardStats":
			controller.GetDashboardStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetDashboardStats 获取仪表盘统计
// @Summary      Dashboard statistics
// @Description  Aggregate counts for the admin dashboard, cached briefly
// @Tags         Dashboard
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/dashboard/stats [get]
// @Security     BearerAuth
func (c *DashboardController) GetDashboardStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetDashboardStats(c.Ctx.Request.Context())
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询仪表盘统计失败", err)
		return
	}

	response.Success(c.Ctx, stats)
}
