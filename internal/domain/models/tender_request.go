package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestStatus represents the review status of a tender request
type RequestStatus string

const (
	RequestStatusNew       RequestStatus = "new"
	RequestStatusReviewed  RequestStatus = "reviewed"
	RequestStatusContacted RequestStatus = "contacted"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusRejected  RequestStatus = "rejected"
)

// IsValid reports whether the status belongs to the closed set
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusReviewed, RequestStatusContacted,
		RequestStatusCompleted, RequestStatusRejected:
		return true
	}
	return false
}

// TenderRequest represents a prospective client's project inquiry
type TenderRequest struct {
	BaseModel
	ReferenceNo        string        `gorm:"type:varchar(40);uniqueIndex" json:"referenceNo"` // 请求唯一业务编号
	CompanyName        string        `gorm:"type:varchar(150);not null" json:"companyName"`
	ContactPerson      string        `gorm:"type:varchar(100);not null" json:"contactPerson"`
	Email              string        `gorm:"type:varchar(100);not null;index" json:"email"`
	Phone              string        `gorm:"type:varchar(20);not null" json:"phone"`
	ProjectType        string        `gorm:"type:varchar(100);not null;index" json:"projectType"`
	ProjectLocation    string        `gorm:"type:varchar(150);not null" json:"projectLocation"`
	EstimatedBudget    string        `gorm:"type:varchar(100);not null" json:"estimatedBudget"`
	PreferredTimeline  string        `gorm:"type:varchar(100);not null" json:"preferredTimeline"`
	ProjectDescription string        `gorm:"type:text;not null" json:"projectDescription"`
	Status             RequestStatus `gorm:"type:varchar(20);default:'new';index" json:"status"` // Status: new, reviewed, contacted, completed, rejected

	// Relations
	Notes []RequestNote `gorm:"foreignKey:TenderRequestID" json:"notes"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (t *TenderRequest) BeforeCreate(tx *gorm.DB) error {
	if t.ReferenceNo == "" {
		t.ReferenceNo = "TR-" + uuid.NewString()[:8]
	}
	if t.Status == "" {
		t.Status = RequestStatusNew
	}
	return nil
}

// RequestNote is an append-only internal note on a tender request
type RequestNote struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	TenderRequestID uint      `gorm:"index;not null" json:"tenderRequestId"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedBy       uint      `json:"createdBy"` // 创建该备注的管理员ID
	CreatedAt       time.Time `json:"createdAt"`
}
