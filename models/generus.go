package models

import "time"

// Level is the age/stage category of a generus.
const (
	LevelPraRemaja   = "pra-remaja"
	LevelRemaja      = "remaja"
	LevelUsiaMandiri = "usia-mandiri"
)

// ValidLevel returns true when the level is a supported value.
func ValidLevel(level string) bool {
	switch level {
	case LevelPraRemaja, LevelRemaja, LevelUsiaMandiri:
		return true
	default:
		return false
	}
}

type Generus struct {
	ID           uint       `gorm:"primaryKey"                    json:"id"`
	FullName     string     `gorm:"size:120;not null;index"       json:"full_name"`
	BirthPlace   string     `gorm:"size:80"                       json:"birth_place"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Gender       string     `gorm:"size:12"                       json:"gender"`
	SambungGroup string     `gorm:"size:60;not null;index"        json:"sambung_group"`
	Level        string     `gorm:"size:20;not null"              json:"level"`
	Profession   string     `gorm:"size:80"                       json:"profession"`
	Skill        string     `gorm:"size:120"                      json:"skill"`
	Status       string     `gorm:"size:60"                       json:"status"`
	Notes        string     `gorm:"type:text"                     json:"notes"`
	PhotoURL     string     `gorm:"size:255"                      json:"photo_url"`
	Barcode      *string    `gorm:"size:64;uniqueIndex"           json:"barcode,omitempty"`
	IsActive     bool       `gorm:"default:true"                  json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Generus) TableName() string { return "generus" }
