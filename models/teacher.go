package models

import "time"

const (
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
)

type Teacher struct {
	ID           uint      `gorm:"primaryKey"                   json:"id"`
	FullName     string    `gorm:"size:120;not null"            json:"full_name"`
	Username     string    `gorm:"size:60;not null;uniqueIndex" json:"username"`
	Password     string    `gorm:"not null"                     json:"-"` // bcrypt hash
	Role         string    `gorm:"size:20;not null"             json:"role"` // "teacher" | "coordinator"
	SambungGroup string    `gorm:"size:60"                      json:"sambung_group"`
	Phone        string    `gorm:"size:20"                      json:"phone"`
	IsActive     bool      `gorm:"default:true"                 json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Teacher) TableName() string { return "teachers" }
