package models

import "time"

type Feedback struct {
	ID        uint      `gorm:"primaryKey"       json:"id"`
	Name      string    `gorm:"size:120"         json:"name"`
	Role      string    `gorm:"size:20"          json:"role"` // teacher | coordinator | generus
	Message   string    `gorm:"type:text;not null" json:"message"`
	Rating    int       `json:"rating"` // 1..5, 0 = not given
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string { return "feedbacks" }
