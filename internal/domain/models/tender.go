package models

// Tender represents a completed showcase project on the public portfolio
type Tender struct {
	BaseModel
	Title          string `gorm:"type:varchar(200);not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	Location       string `gorm:"type:varchar(150);not null" json:"location"`
	ClientName     string `gorm:"type:varchar(150);not null" json:"clientName"`
	Value          string `gorm:"type:varchar(50);not null" json:"value"` // 展示用途的合同金额字符串，如 "₹250 Crores"
	CompletionDate string `gorm:"type:varchar(50);not null" json:"completionDate"`
	ImageURL       string `gorm:"type:varchar(500)" json:"imageUrl"`
}
