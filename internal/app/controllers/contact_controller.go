package controllers

import (
	"strconv"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/code"
	"dhiya-infra-service/internal/error/response"
	"dhiya-infra-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceContactController 定义联系消息控制器接口
type InterfaceContactController interface {
	CreateContactMessage()
	GetContactMessages()
}

// ContactController 联系消息控制器
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的联系消息控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateContactMessageRequest 提交联系消息的请求体
type CreateContactMessageRequest struct {
	Name    string `json:"name" binding:"required" example:"Suresh Menon"`
	Email   string `json:"email" binding:"required,email" example:"suresh@example.com"`
	Phone   string `json:"phone" example:"9876543210"`
	Subject string `json:"subject" binding:"required" example:"Site visit enquiry"`
	Message string `json:"message" binding:"required" example:"I would like to schedule a site visit next week."`
}

// HandleContactFunc 返回一个处理联系消息请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "createContactMessage":
			controller.CreateContactMessage()
		case "getContactMessages":
			controller.GetContactMessages()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. CreateContactMessage 提交联系消息
// @Summary      Submit a contact message
// @Description  Public endpoint for the marketing site contact form
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        request body CreateContactMessageRequest true "Contact message fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /contact [post]
func (c *ContactController) CreateContactMessage() {
	var req CreateContactMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		if fields := bindValidationErrors(err); fields != nil {
			response.ValidationError(c.Ctx, fields)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	if err := contactService.Create(msg); err != nil {
		databaseError(c.Ctx, c.Container, "保存联系消息失败", err)
		return
	}

	logger.Info("新联系消息 %s 来自 %s", msg.ReferenceNo, msg.Email)

	mailerService := c.Container.GetService("mailer").(services.InterfaceMailerService)
	mailerService.QueueContactNotifications(msg)

	response.Created(c.Ctx, msg)
}

// 2. GetContactMessages 获取联系消息列表
// @Summary      List contact messages
// @Description  Paginated listing of contact messages, newest first
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        limit query int false "Page size, default 10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/contact-messages [get]
// @Security     BearerAuth
func (c *ContactController) GetContactMessages() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	contactService := c.Container.GetService("contact").(services.InterfaceContactService)
	messages, total, err := contactService.List(page, limit)
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询联系消息列表失败", err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"messages":    messages,
		"total":       total,
		"currentPage": page,
	})
}
