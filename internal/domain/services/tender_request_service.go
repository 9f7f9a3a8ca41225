package services

import (
	"errors"
	"strings"
	"time"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

var (
	// ErrTenderRequestNotFound 招标请求不存在
	ErrTenderRequestNotFound = errors.New("tender request not found")
	// ErrInvalidRequestStatus 状态不属于固定枚举集合
	ErrInvalidRequestStatus = errors.New("invalid request status")
	// ErrEmptyNoteContent 备注内容为空
	ErrEmptyNoteContent = errors.New("note content is required")
)

// 列表排序字段白名单，防止任意列名注入ORDER BY
var requestSortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"companyName": "company_name",
	"projectType": "project_type",
	"status":      "status",
}

// TenderRequestListQuery carries filter, pagination and sort parameters for listing
type TenderRequestListQuery struct {
	Status      string
	ProjectType string
	Page        int
	Limit       int
	SortBy      string
	SortOrder   string // "asc" | "desc"
}

// InterfaceTenderRequestService defines the tender request lifecycle service interface
type InterfaceTenderRequestService interface {
	Create(req *models.TenderRequest) error
	GetByID(id uint) (*models.TenderRequest, error)
	List(q TenderRequestListQuery) ([]models.TenderRequest, int64, error)
	UpdateStatus(id uint, status models.RequestStatus) (*models.TenderRequest, error)
	AddNote(id uint, content string, createdBy uint) (*models.TenderRequest, error)
}

// TenderRequestService 提供招标请求生命周期相关的服务
type TenderRequestService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTenderRequestService 创建一个新的招标请求服务
func NewTenderRequestService(db *gorm.DB, cfg *config.Config) InterfaceTenderRequestService {
	return &TenderRequestService{
		DB:     db,
		Config: cfg,
	}
}

// Create 创建新的招标请求，初始状态为 new
func (s *TenderRequestService) Create(req *models.TenderRequest) error {
	req.Status = models.RequestStatusNew
	return s.DB.Create(req).Error
}

// GetByID 根据ID获取招标请求，备注按创建时间排序
func (s *TenderRequestService) GetByID(id uint) (*models.TenderRequest, error) {
	var req models.TenderRequest
	err := s.DB.Preload("Notes", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	}).First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// List 获取招标请求列表，支持状态/项目类型过滤、分页和排序
func (s *TenderRequestService) List(q TenderRequestListQuery) ([]models.TenderRequest, int64, error) {
	var requests []models.TenderRequest
	var total int64

	query := s.DB.Model(&models.TenderRequest{})

	// "all" 与空串等价，表示不过滤
	if q.Status != "" && q.Status != "all" {
		query = query.Where("status = ?", q.Status)
	}
	if q.ProjectType != "" && q.ProjectType != "all" {
		query = query.Where("project_type = ?", q.ProjectType)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 排序，默认最新在前
	column, ok := requestSortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		direction = "ASC"
	}

	// 分页查询
	offset := (q.Page - 1) * q.Limit
	err := query.
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order(column + " " + direction).
		Limit(q.Limit).
		Offset(offset).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// UpdateStatus 更新招标请求状态。状态必须属于固定枚举集合，重复设置同一状态是幂等的
func (s *TenderRequestService) UpdateStatus(id uint, status models.RequestStatus) (*models.TenderRequest, error) {
	if !status.IsValid() {
		return nil, ErrInvalidRequestStatus
	}

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(req).Update("status", status).Error; err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// AddNote 追加备注。备注只增不改，父记录的更新时间在同一事务内刷新
func (s *TenderRequestService) AddNote(id uint, content string, createdBy uint) (*models.TenderRequest, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyNoteContent
	}

	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		note := &models.RequestNote{
			TenderRequestID: req.ID,
			Content:         content,
			CreatedBy:       createdBy,
		}
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		return tx.Model(&models.TenderRequest{}).
			Where("id = ?", req.ID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}
