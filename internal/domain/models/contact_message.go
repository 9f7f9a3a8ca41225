package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage represents a message submitted via the contact form.
// Unlike tender requests it carries no review lifecycle.
type ContactMessage struct {
	BaseModel
	ReferenceNo string `gorm:"type:varchar(40);uniqueIndex" json:"referenceNo"`
	Name        string `gorm:"type:varchar(100);not null" json:"name"`
	Email       string `gorm:"type:varchar(100);not null;index" json:"email"`
	Phone       string `gorm:"type:varchar(20)" json:"phone"`
	Subject     string `gorm:"type:varchar(200);not null" json:"subject"`
	Message     string `gorm:"type:text;not null" json:"message"`
}

// BeforeCreate is a GORM hook that runs before creating a new record
func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ReferenceNo == "" {
		m.ReferenceNo = "CM-" + uuid.NewString()[:8]
	}
	return nil
}
