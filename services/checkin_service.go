package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// CheckinService owns the online check-in ledger. Rows are append-only; the
// one business rule is at most one successful check-in per generus per
// calendar day.
type CheckinService struct {
	db      *gorm.DB
	generus *GenerusService
	now     func() time.Time
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{db: db, generus: NewGenerusService(db), now: time.Now}
}

// ScanResult is returned on a successful scan so the caller can show who was
// just checked in.
type ScanResult struct {
	Checkin models.OnlineCheckin `json:"checkin"`
	Generus models.Generus       `json:"generus"`
}

// CheckinRecord is a ledger row with the member's current display name joined
// in at read time. The group column stays the scan-time snapshot.
type CheckinRecord struct {
	models.OnlineCheckin
	GenerusName string `json:"generus_name"`
}

// Scan validates the barcode and records the check-in. The member lookup and
// active check run strictly before the duplicate check, so an unknown barcode
// always reports not-found, never duplicate. The (generus_id, checkin_date)
// unique index backs the pre-check under concurrent scans.
func (s *CheckinService) Scan(barcode string, teacherID uint) (ScanResult, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return ScanResult{}, NewValidationError(FieldError{"barcode", "barcode is required"})
	}

	g, err := s.generus.FindByBarcode(barcode)
	if err != nil {
		return ScanResult{}, err
	}
	if !g.IsActive {
		return ScanResult{}, ErrInactive
	}

	now := s.now()
	today := now.Format("2006-01-02")

	var count int64
	if err := s.db.Model(&models.OnlineCheckin{}).
		Where("generus_id = ? AND checkin_date = ?", g.ID, today).
		Count(&count).Error; err != nil {
		return ScanResult{}, err
	}
	if count > 0 {
		return ScanResult{}, ErrDuplicateCheckinToday
	}

	row := models.OnlineCheckin{
		GenerusID:    g.ID,
		CheckinDate:  today,
		Barcode:      barcode,
		TeacherID:    teacherID,
		SambungGroup: g.SambungGroup,
		CheckinTime:  now,
	}
	if err := s.db.Create(&row).Error; err != nil {
		// Two scans raced past the pre-check; the unique index let only one
		// row through.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ScanResult{}, ErrDuplicateCheckinToday
		}
		return ScanResult{}, err
	}
	return ScanResult{Checkin: row, Generus: g}, nil
}

func (s *CheckinService) list(tx *gorm.DB) ([]CheckinRecord, error) {
	var out []CheckinRecord
	err := tx.Model(&models.OnlineCheckin{}).
		Select("online_checkins.*, g.full_name AS generus_name").
		Joins("JOIN generus g ON g.id = online_checkins.generus_id").
		Order("online_checkins.checkin_time DESC, online_checkins.id DESC").
		Scan(&out).Error
	return out, err
}

func (s *CheckinService) ListAll() ([]CheckinRecord, error) {
	return s.list(s.db.Session(&gorm.Session{}))
}

func (s *CheckinService) ListBySambungGroup(group string) ([]CheckinRecord, error) {
	return s.list(s.db.Where("online_checkins.sambung_group = ?", group))
}

func (s *CheckinService) ListByGenerus(generusID uint) ([]CheckinRecord, error) {
	return s.list(s.db.Where("online_checkins.generus_id = ?", generusID))
}
