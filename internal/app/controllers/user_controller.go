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

// InterfaceUserController 定义用户管理控制器接口
type InterfaceUserController interface {
	GetUsers()
	UpdateUser()
	DeleteUser()
}

// UserController 用户管理控制器
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户管理控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Username string `json:"username" example:"admin2"`
	Email    string `json:"email" binding:"omitempty,email" example:"ops@dhiyainfra.com"`
	Password string `json:"password" example:"NewPassword@123"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user" example:"admin"`
	IsActive *bool  `json:"isActive"`
}

// HandleUserFunc 返回一个处理用户管理请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "updateUser":
			controller.UpdateUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 获取用户列表
// @Summary      List users
// @Description  Paginated listing of back-office users
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number, default 1"
// @Param        limit query int false "Page size, default 10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	// 获取分页参数
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(page, limit)
	if err != nil {
		databaseError(c.Ctx, c.Container, "查询用户列表失败", err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"users":       users,
		"total":       total,
		"currentPage": page,
	})
}

// 2. UpdateUser 更新用户信息
// @Summary      Update a user
// @Description  Update profile fields of a back-office user
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/users/{id} [put]
// @Security     BearerAuth
func (c *UserController) UpdateUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的用户ID")
		return
	}

	var req UpdateUserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数", nil)
		return
	}

	// 只取显式提供的字段
	updates := make(map[string]interface{})
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		response.ParamError(c.Ctx, "没有需要更新的字段")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(id), updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c.Ctx, "User not found")
		case errors.Is(err, services.ErrUserAlreadyExist):
			response.FailWithMessage(c.Ctx, code.ErrUserAlreadyExist, "Email already in use", nil)
		default:
			databaseError(c.Ctx, c.Container, "更新用户失败", err)
		}
		return
	}

	response.Success(c.Ctx, user)
}

// 3. DeleteUser 删除用户
// @Summary      Delete a user
// @Description  Remove a back-office user, the last admin cannot be removed
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "无效的用户ID")
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.NotFound(c.Ctx, "User not found")
		case errors.Is(err, services.ErrLastAdmin):
			response.FailWithMessage(c.Ctx, code.ErrLastAdmin, "Cannot remove the last admin user", nil)
		default:
			databaseError(c.Ctx, c.Container, "删除用户失败", err)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "User deleted"})
}
