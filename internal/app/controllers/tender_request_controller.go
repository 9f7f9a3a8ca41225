package controllers

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/domain/services"
	"dhiya-infra-service/internal/domain/services/container"
	"dhiya-infra-service/internal/error/code"
	"dhiya-infra-service/internal/error/response"
	"dhiya-infra-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// InterfaceTenderRequestController 定义招标请求控制器接口
type InterfaceTenderRequestController interface {
	CreateTenderRequest()
	GetTenderRequests()
	GetTenderRequest()
	UpdateTenderRequestStatus()
	AddTenderRequestNote()
}

// TenderRequestController 招标请求控制器
type TenderRequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTenderRequestController 创建一个新的招标请求控制器
func NewTenderRequestController(ctx *gin.Context, container *container.ServiceContainer) *TenderRequestController {
	return &TenderRequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateTenderRequestRequest 创建招标请求的请求体
type CreateTenderRequestRequest struct {
	CompanyName        string `json:"companyName" binding:"required" example:"Acme Builders Pvt. Ltd."`
	ContactPerson      string `json:"contactPerson" binding:"required" example:"Ravi Kumar"`
	Email              string `json:"email" binding:"required,email" example:"ravi@acmebuilders.com"`
	Phone              string `json:"phone" binding:"required,min=10" example:"9876543210"`
	ProjectType        string `json:"projectType" binding:"required" example:"commercial"`
	ProjectLocation    string `json:"projectLocation" binding:"required" example:"Coimbatore, Tamil Nadu"`
	EstimatedBudget    string `json:"estimatedBudget" binding:"required" example:"₹5 Crores"`
	PreferredTimeline  string `json:"preferredTimeline" binding:"required" example:"12 months"`
	ProjectDescription string `json:"projectDescription" binding:"required,min=20" example:"Construction of a 5-storey commercial complex with basement parking"`
}

// UpdateStatusRequest 更新状态的请求体
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"reviewed"`
}

// AddNoteRequest 添加备注的请求体
type AddNoteRequest struct {
	Content string `json:"content" binding:"required" example:"Called the client, waiting for revised budget"`
}

// tenderRequestValidationMessage 把binding校验错误翻译成面向前端的英文提示
func tenderRequestValidationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	default:
		return "Invalid value"
	}
}

// bindValidationErrors 将ShouldBindJSON的错误整理为字段到提示的映射。
// 非字段级错误（如JSON语法错误）返回nil，调用方按通用参数错误处理
func bindValidationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// 字段名转成JSON风格的首字母小写
		name := fe.Field()
		if name != "" {
			name = string(name[0]|0x20) + name[1:]
		}
		fields[name] = tenderRequestValidationMessage(fe)
	}
	return fields
}

// HandleTenderRequestFunc 返回一个处理招标请求的Gin处理函数
func HandleTenderRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTenderRequestController(ctx, container)

		switch method {
		case "createTenderRequest":
			controller.CreateTenderRequest()
		case "getTenderRequests":
			controller.GetTenderRequests()
		case "getTenderRequest":
			controller.GetTenderRequest()
		case "updateTenderRequestStatus":
			controller.UpdateTenderRequestStatus()
		case "addTenderRequestNote":
			controller.AddTenderRequestNote()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. CreateTenderRequest 提交招标请求
// @Summary      Submit a tender request
// @Description  Public endpoint for submitting a new tender request from the marketing site
// @Tags         TenderRequest
// @Accept       json
// @Produce      json
// @Param        request body CreateTenderRequestRequest true "Tender request fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /tender-requests [post]
func (c *TenderRequestController) CreateTenderRequest() {
	var req CreateTenderRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		if fields := bindValidationErrors(err); fields != nil {
			response.ValidationError(c.Ctx, fields)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	tenderRequest := &models.TenderRequest{
		CompanyName:        req.CompanyName,
		ContactPerson:      req.ContactPerson,
		Email:              req.Email,
		Phone:              req.Phone,
		ProjectType:        req.ProjectType,
		ProjectLocation:    req.ProjectLocation,
		EstimatedBudget:    req.EstimatedBudget,
		PreferredTimeline:  req.PreferredTimeline,
		ProjectDescription: req.ProjectDescription,
	}

	tenderRequestService := c.Container.GetService("tender_request").(services.InterfaceTenderRequestService)
	if err := tenderRequestService.Create(tenderRequest); err != nil {
		databaseError(c.Ctx, c.Container, "创建招标请求失败", err)
		return
	}

	logger.Info("新招标请求 %s 来自 %s", tenderRequest.ReferenceNo, tenderRequest.CompanyName)

	// 邮件通知是尽力而为的，失败不影响受理结果
	mailerService := c.Container.GetService("mailer").(services.InterfaceMailerService)
	mailerService.QueueTenderRequestNotifications(tenderRequest)

	response.Created(c.Ctx, tenderRequest)
}

// 2. GetTenderRequests 获取招标请求列表
// @Summary      List tender requests
// @Description  Paginated tender request listing with status and project type filters
// @Tags         TenderRequest
// @Accept       json
// @Produce      json
// @Param        status query string false "Status filter, 'all' or empty for no filter"
// @Param        projectType query string false "Project type filter"
// @Param        page query int false "Page number, default 1"
// @Param        limit query int false "Page size, default 10"
// @Param        sortBy query string false "Sort column: createdAt, updatedAt, companyName, projectType, status"
// @Param        sortOrder query string false "Sort direction: asc or desc"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tender-requests [get]
// @Security     BearerAuth
func (c *TenderRequestController) GetTenderRequests() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := services.TenderRequestListQuery{
		Status:      c.Ctx.Query("status"),
		ProjectType: c.Ctx.Query("projectType"),
		Page:        page,
		Limit:       limit,
		SortBy:      c.Ctx.DefaultQuery("sortBy", "createdAt"),
		SortOrder:   c.Ctx.DefaultQuery("sortOrder", "desc"),
	}

	tenderRequestService := c.Container.GetService("tender_request").(services.InterfaceTenderRequestService)
	requests, total, err := tenderRequestService.List(query)
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询招标请求列表失败", err)
		return
	}

	pages := int64(math.Ceil(float64(total) / float64(limit)))

	response.Success(c.Ctx, gin.H{
		"requests":    requests,
		"total":       total,
		"pages":       pages,
		"currentPage": page,
	})
}

// 3. GetTenderRequest 获取单个招标请求
// @Summary      Get a tender request
// @Description  Fetch a single tender request with its notes
// @Tags         TenderRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "Tender request ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tender-requests/{id} [get]
// @Security     BearerAuth
func (c *TenderRequestController) GetTenderRequest() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的招标请求ID")
		return
	}

	tenderRequestService := c.Container.GetService("tender_request").(services.InterfaceTenderRequestService)
	request, err := tenderRequestService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTenderRequestNotFound) {
			response.NotFound(c.Ctx, "Tender request not found")
			return
		}
		databaseError(c.Ctx, c.Container, "查询招标请求失败", err)
		return
	}

	response.Success(c.Ctx, request)
}

// 4. UpdateTenderRequestStatus 更新招标请求状态
// @Summary      Update tender request status
// @Description  Move a tender request through its review lifecycle
// @Tags         TenderRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "Tender request ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tender-requests/{id}/status [patch]
// @Security     BearerAuth
func (c *TenderRequestController) UpdateTenderRequestStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的招标请求ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	tenderRequestService := c.Container.GetService("tender_request").(services.InterfaceTenderRequestService)
	request, err := tenderRequestService.UpdateStatus(uint(id), models.RequestStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequestStatus):
			response.FailWithMessage(c.Ctx, code.ErrInvalidRequestStatus, "Invalid status value", nil)
		case errors.Is(err, services.ErrTenderRequestNotFound):
			response.NotFound(c.Ctx, "Tender request not found")
		default:
			databaseError(c.Ctx, c.Container, "更新状态失败", err)
		}
		return
	}

	// 状态变化后仪表盘统计需要重新聚合
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	redisService.InvalidateDashboardStats(c.Ctx.Request.Context())

	logger.Info("招标请求 %s 状态更新为 %s", request.ReferenceNo, request.Status)

	response.Success(c.Ctx, request)
}

// 5. AddTenderRequestNote 为招标请求添加备注
// @Summary      Add a note to a tender request
// @Description  Append an internal note to a tender request, notes cannot be edited or removed
// @Tags         TenderRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "Tender request ID"
// @Param        request body AddNoteRequest true "Note content"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/tender-requests/{id}/notes [post]
// @Security     BearerAuth
func (c *TenderRequestController) AddTenderRequestNote() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的招标请求ID")
		return
	}

	var req AddNoteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEmptyNoteContent, "Note content is required", nil)
		return
	}

	// 当前登录管理员作为备注作者
	var createdBy uint
	if userID, exists := c.Ctx.Get("userID"); exists {
		if idFloat, ok := userID.(float64); ok {
			createdBy = uint(idFloat)
		}
	}

	tenderRequestService := c.Container.GetService("tender_request").(services.InterfaceTenderRequestService)
	request, err := tenderRequestService.AddNote(uint(id), req.Content, createdBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyNoteContent):
			response.FailWithMessage(c.Ctx, code.ErrEmptyNoteContent, "Note content is required", nil)
		case errors.Is(err, services.ErrTenderRequestNotFound):
			response.NotFound(c.Ctx, "Tender request not found")
		default:
			databaseError(c.Ctx, c.Container, "添加备注失败", err)
		}
		return
	}

	response.Success(c.Ctx, request)
}
