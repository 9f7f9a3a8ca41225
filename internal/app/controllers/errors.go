package controllers

import (
	"strings"

	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/code"
	"dhiya-infra-service/internal/error/response"
	"dhiya-infra-service/internal/infrastructure/config"
	"dhiya-infra-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// databaseError 返回数据库错误响应。完整错误写入日志，
// 具体错误文本只在本地环境下回传给客户端
func databaseError(ctx *gin.Context, c *container.ServiceContainer, message string, err error) {
	logger.Error("%s: %v", message, err)

	if cfg, ok := c.GetService("config").(*config.Config); ok && strings.ToUpper(cfg.EnvType) == "LOCAL" {
		response.FailWithMessage(ctx, code.ErrDatabase, message+": "+err.Error(), nil)
		return
	}

	response.FailWithMessage(ctx, code.ErrDatabase, message, nil)
}
