package models

import "time"

// OnlineCheckin is one successful barcode scan. The (generus_id, checkin_date)
// unique index is what guarantees at most one check-in per generus per
// calendar day even when two scans race.
type OnlineCheckin struct {
	ID           uint      `gorm:"primaryKey"                                          json:"id"`
	GenerusID    uint      `gorm:"not null;uniqueIndex:idx_checkin_generus_day"        json:"generus_id"`
	CheckinDate  string    `gorm:"size:10;not null;uniqueIndex:idx_checkin_generus_day" json:"checkin_date"` // YYYY-MM-DD day bucket
	Barcode      string    `gorm:"size:64;not null"                                    json:"barcode"`
	TeacherID    uint      `gorm:"index;not null"                                      json:"teacher_id"`
	SambungGroup string    `gorm:"size:60"                                             json:"sambung_group"` // snapshot at scan time
	CheckinTime  time.Time `gorm:"not null"                                            json:"checkin_time"`
	CreatedAt    time.Time `json:"created_at"`
}

func (OnlineCheckin) TableName() string { return "online_checkins" }
