package models

import "time"

// User represents an administrative login principal
type User struct {
	BaseModel
	Username  string     `gorm:"type:varchar(50);unique;not null" json:"username"`
	Password  string     `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Email     string     `gorm:"type:varchar(100);unique;not null" json:"email"`
	Role      string     `gorm:"type:varchar(20);default:'user'" json:"role"` // Role: admin, user
	IsActive  bool       `gorm:"default:true" json:"isActive"`
	LastLogin *time.Time `json:"lastLogin"`
}
