package services

import (
	"crypto/subtle"
	"errors"
	"time"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials 统一的登录失败错误，不区分邮箱错还是密码错
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExist 邮箱或用户名已被占用
	ErrUserAlreadyExist = errors.New("user already exists")
	// ErrLastAdmin 系统必须至少保留一个管理员
	ErrLastAdmin = errors.New("cannot remove the last admin user")
	// ErrDatabaseUnavailable 数据库不可用
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// InterfaceUserService defines the user / authentication gate service interface
type InterfaceUserService interface {
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers(page, pageSize int) ([]models.User, int64, error)
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

// UserService 提供用户与登录认证相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate 用配置的管理员凭据校验登录。这是唯一接受的登录路径：
// 不做用户表查找，凭据常量时间比较，任一字段不匹配都返回同一个错误。
// 首次登录成功时惰性创建管理员账户记录（存bcrypt哈希，不存明文）。
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	// 数据库不可用时直接报告，调用方据此返回503
	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, ErrDatabaseUnavailable
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, ErrDatabaseUnavailable
	}

	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.Config.AdminEmail))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Config.AdminPassword))
	if emailOK&passwordOK != 1 {
		return nil, ErrInvalidCredentials
	}

	// 惰性创建管理员账户
	var user models.User
	err = s.DB.Where("email = ?", s.Config.AdminEmail).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashedPassword, hashErr := bcrypt.GenerateFromPassword([]byte(s.Config.AdminPassword), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, hashErr
		}
		user = models.User{
			Username: "admin",
			Email:    s.Config.AdminEmail,
			Password: string(hashedPassword),
			Role:     "admin",
			IsActive: true,
		}
		if err := s.DB.Create(&user).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	// 刷新最后登录时间
	now := time.Now()
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return &user, nil
}

// GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetAllUsers 获取所有用户，支持分页
func (s *UserService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	// 获取总数
	if err := s.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser 更新用户信息
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新邮箱，需要检查唯一性
	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrUserAlreadyExist
		}
	}

	// 如果更新密码，需要进行哈希处理
	if password, ok := updates["password"].(string); ok {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// DeleteUser 删除用户。系统中必须至少保留一个管理员
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if user.Role == "admin" {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastAdmin
		}
	}

	return s.DB.Delete(user).Error
}
