package models

// Testimonial represents a client testimonial shown on the public site
type Testimonial struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Company  string `gorm:"type:varchar(150);not null" json:"company"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Rating   int    `gorm:"not null" json:"rating"` // 1-5
	ImageURL string `gorm:"type:varchar(500)" json:"imageUrl"`
}
