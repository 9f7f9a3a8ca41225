package controllers

import (
	"errors"
	"strconv"

	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/code"
	"dhiya-infra-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceContentController 定义展示内容控制器接口
type InterfaceContentController interface {
	GetTenders()
	GetTender()
	GetTestimonials()
}

// ContentController 展示内容控制器
type ContentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContentController 创建一个新的展示内容控制器
func NewContentController(ctx *gin.Context, container *container.ServiceContainer) *ContentController {
	return &ContentController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleContentFunc 返回一个处理展示内容请求的Gin处理函数
func HandleContentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContentController(ctx, container)

		switch method {
		case "getTenders":
			controller.GetTenders()
		case "getTender":
			controller.GetTender()
		case "getTestimonials":
			controller.GetTestimonials()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetTenders 获取项目案例列表
// @Summary      List portfolio tenders
// @Description  Public listing of completed projects for the marketing site
// @Tags         Content
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /tenders [get]
func (c *ContentController) GetTenders() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	tenders, err := contentService.GetTenders()
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询项目案例失败", err)
		return
	}

	response.Success(c.Ctx, tenders)
}

// 2. GetTender 获取单个项目案例
// @Summary      Get a portfolio tender
// @Description  Public detail view of a completed project
// @Tags         Content
// @Accept       json
// @Produce      json
// @Param        id path int true "Tender ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tenders/{id} [get]
func (c *ContentController) GetTender() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的项目案例ID")
		return
	}

	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	tender, err := contentService.GetTenderByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			response.NotFound(c.Ctx, "Tender not found")
			return
		}
		databaseError(c.Ctx, c.Container, "查询项目案例失败", err)
		return
	}

	response.Success(c.Ctx, tender)
}

// 3. GetTestimonials 获取客户评价列表
// @Summary      List testimonials
// @Description  Public listing of client testimonials
// @Tags         Content
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /testimonials [get]
func (c *ContentController) GetTestimonials() {
	contentService := c.Container.GetService("content").(services.InterfaceContentService)
	testimonials, err := contentService.GetTestimonials()
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询客户评价失败", err)
		return
	}

	response.Success(c.Ctx, testimonials)
}
