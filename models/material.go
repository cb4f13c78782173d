package models

import "time"

// Material is a teaching material shared with one level/group.
type Material struct {
	ID           uint      `gorm:"primaryKey"        json:"id"`
	Title        string    `gorm:"size:150;not null" json:"title"`
	Level        string    `gorm:"size:20"           json:"level"`
	SambungGroup string    `gorm:"size:60"           json:"sambung_group"`
	Description  string    `gorm:"type:text"         json:"description"`
	Link         string    `gorm:"size:255"          json:"link"`
	TeacherID    uint      `gorm:"index"             json:"teacher_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Material) TableName() string { return "materials" }
