package services

import (
	"errors"

	"dhiya-infra-service/internal/domain/models"
	"dhiya-infra-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

var (
	// ErrTenderNotFound 项目案例不存在
	ErrTenderNotFound = errors.New("tender not found")
)

// InterfaceContentService defines the public site content service interface
type InterfaceContentService interface {
	GetTenders() ([]models.Tender, error)
	GetTenderByID(id uint) (*models.Tender, error)
	GetTestimonials() ([]models.Testimonial, error)
	SeedSampleContent() error
}

// ContentService 提供公共站点展示内容（项目案例、客户评价）相关的服务
type ContentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContentService 创建一个新的展示内容服务
func NewContentService(db *gorm.DB, cfg *config.Config) InterfaceContentService {
	return &ContentService{
		DB:     db,
		Config: cfg,
	}
}

// GetTenders 获取全部项目案例
func (s *ContentService) GetTenders() ([]models.Tender, error) {
	var tenders []models.Tender
	if err := s.DB.Order("id ASC").Find(&tenders).Error; err != nil {
		return nil, err
	}
	return tenders, nil
}

// GetTenderByID 根据ID获取项目案例
func (s *ContentService) GetTenderByID(id uint) (*models.Tender, error) {
	var tender models.Tender
	if err := s.DB.First(&tender, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenderNotFound
		}
		return nil, err
	}
	return &tender, nil
}

// GetTestimonials 获取全部客户评价
func (s *ContentService) GetTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.DB.Order("id ASC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// SeedSampleContent 在展示内容为空时写入示例数据，供营销站点首屏使用
func (s *ContentService) SeedSampleContent() error {
	var count int64
	if err := s.DB.Model(&models.Tender{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		tenders := []models.Tender{
			{
				Title:          "Downtown Office Complex",
				Description:    "A state-of-the-art office complex featuring modern amenities, eco-friendly design, and smart building technology. The project included 3 towers with a total of 150,000 square feet of office space.",
				Location:       "Bangalore, Karnataka",
				ClientName:     "TechSpace Developers Ltd.",
				Value:          "₹250 Crores",
				CompletionDate: "January 2023",
				ImageURL:       "https://images.unsplash.com/photo-1486325212027-8081e485255e?auto=format&fit=crop&w=800&h=500",
			},
			{
				Title:          "Metro Rail Extension Project",
				Description:    "Extended the city's metro line by 12 kilometers, including 8 new stations with modern design and accessibility features. The project improved transportation for over 100,000 daily commuters.",
				Location:       "Chennai, Tamil Nadu",
				ClientName:     "Chennai Metro Rail Corporation",
				Value:          "₹750 Crores",
				CompletionDate: "March 2022",
				ImageURL:       "https://images.unsplash.com/photo-1585155770447-2f66e2a397b5?auto=format&fit=crop&w=800&h=500",
			},
			{
				Title:          "Riverside Residential Township",
				Description:    "A premium gated township with 450 residential units, clubhouse, landscaped gardens and rainwater harvesting across 25 acres.",
				Location:       "Pune, Maharashtra",
				ClientName:     "Riverside Estates Pvt. Ltd.",
				Value:          "₹180 Crores",
				CompletionDate: "August 2023",
				ImageURL:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=800&h=500",
			},
		}
		if err := s.DB.Create(&tenders).Error; err != nil {
			return err
		}
	}

	if err := s.DB.Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		testimonials := []models.Testimonial{
			{
				Name:     "Rajesh Kumar",
				Company:  "TechSpace Developers Ltd.",
				Content:  "Dhiya Infrastructure delivered our office complex ahead of schedule without compromising on quality. Their project management was exceptional throughout.",
				Rating:   5,
				ImageURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=200&h=200",
			},
			{
				Name:     "Priya Sharma",
				Company:  "Riverside Estates Pvt. Ltd.",
				Content:  "Professional team, transparent pricing and excellent build quality. We would gladly work with them again on our next township.",
				Rating:   5,
				ImageURL: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=200&h=200",
			},
			{
				Name:     "Anand Verma",
				Company:  "Verma Industries",
				Content:  "From the first consultation to handover, the communication was clear and the workmanship outstanding.",
				Rating:   4,
				ImageURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=200&h=200",
			},
		}
		if err := s.DB.Create(&testimonials).Error; err != nil {
			return err
		}
	}

	return nil
}
