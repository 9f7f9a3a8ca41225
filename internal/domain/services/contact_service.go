package services

import (
	"errors"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrContactMessageNotFound 联系消息不存在
var ErrContactMessageNotFound = errors.New("contact message not found")

// InterfaceContactService defines the contact message service interface
type InterfaceContactService interface {
	Create(msg *models.ContactMessage) error
	GetByID(id uint) (*models.ContactMessage, error)
	List(page, pageSize int) ([]models.ContactMessage, int64, error)
}

// ContactService 提供联系消息相关的服务
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService 创建一个新的联系消息服务
func NewContactService(db *gorm.DB, cfg *config.Config) InterfaceContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// Create 保存联系消息
func (s *ContactService) Create(msg *models.ContactMessage) error {
	return s.DB.Create(msg).Error
}

// GetByID 根据ID获取联系消息
func (s *ContactService) GetByID(id uint) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := s.DB.First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

// List 获取联系消息列表，最新在前
func (s *ContactService) List(page, pageSize int) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	if err := s.DB.Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").Limit(pageSize).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
