package models

import "time"

// AttendanceStatus is the per-generus mark recorded inside a KBM report.
type AttendanceStatus string

const (
	AttendancePresent   AttendanceStatus = "present"
	AttendanceSick      AttendanceStatus = "sick"
	AttendancePermitted AttendanceStatus = "permitted"
	AttendanceAbsent    AttendanceStatus = "absent"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceSick, AttendancePermitted, AttendanceAbsent:
		return true
	default:
		return false
	}
}

type Attendance struct {
	ID          uint             `gorm:"primaryKey"              json:"id"`
	KBMReportID uint             `gorm:"index;not null"          json:"kbm_report_id"`
	GenerusID   uint             `gorm:"index;not null"          json:"generus_id"`
	GenerusName string           `gorm:"size:120;not null"       json:"generus_name"` // snapshot at report time
	Status      AttendanceStatus `gorm:"size:12;not null"        json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Attendance) TableName() string { return "attendances" }
