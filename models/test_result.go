package models

import "time"

// TestResult is one assessment score for a generus. Score is kept in [0,100].
type TestResult struct {
	ID        uint      `gorm:"primaryKey"        json:"id"`
	GenerusID uint      `gorm:"index;not null"    json:"generus_id"`
	Category  string    `gorm:"size:60;not null"  json:"category"` // e.g. tilawati, hafalan
	Score     float64   `gorm:"not null"          json:"score"`
	Date      string    `gorm:"size:10"           json:"date"` // YYYY-MM-DD
	Notes     string    `gorm:"type:text"         json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TestResult) TableName() string { return "test_results" }
