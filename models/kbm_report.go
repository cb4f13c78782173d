package models

import "time"

// KBMReport is one class-session report. Deleting a report removes its
// attendance rows with it.
type KBMReport struct {
	ID           uint         `gorm:"primaryKey"             json:"id"`
	Date         string       `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	SambungGroup string       `gorm:"size:60;not null;index" json:"sambung_group"`
	TeacherID    uint         `gorm:"index;not null"         json:"teacher_id"`
	TeacherName  string       `gorm:"size:120"               json:"teacher_name"` // snapshot at report time
	Level        string       `gorm:"size:20;not null"       json:"level"`
	Material     string       `gorm:"type:text"              json:"material"`
	Notes        string       `gorm:"type:text"              json:"notes"`
	Attendances  []Attendance `gorm:"foreignKey:KBMReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"attendances,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (KBMReport) TableName() string { return "kbm_reports" }
