package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// KBMService owns session reports. A report and its attendance rows are
// written and removed together; no orphan rows on either side.
type KBMService struct {
	db *gorm.DB
}

func NewKBMService(db *gorm.DB) *KBMService { return &KBMService{db: db} }

// AttendanceEntry is one generus mark inside a report submission. GenerusName
// is snapshotted into the row as-is.
type AttendanceEntry struct {
	GenerusID   uint                    `json:"generus_id"`
	GenerusName string                  `json:"generus_name"`
	Status      models.AttendanceStatus `json:"status"`
}

type KBMReportInput struct {
	Date         string            `json:"date"` // YYYY-MM-DD
	SambungGroup string            `json:"sambung_group"`
	Level        string            `json:"level"`
	Material     string            `json:"material"`
	Notes        string            `json:"notes"`
	TeacherID    uint              `json:"teacher_id"`
	Attendance   []AttendanceEntry `json:"attendance"`
}

func (in *KBMReportInput) validate() *ValidationError {
	var errs []FieldError
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		errs = append(errs, FieldError{"date", "date must be YYYY-MM-DD"})
	}
	if in.SambungGroup == "" {
		errs = append(errs, FieldError{"sambung_group", "sambung group is required"})
	}
	if !models.ValidLevel(in.Level) {
		errs = append(errs, FieldError{"level", "level must be pra-remaja, remaja or usia-mandiri"})
	}
	for _, e := range in.Attendance {
		if e.GenerusID == 0 || !e.Status.Valid() {
			errs = append(errs, FieldError{"attendance", "each entry needs a generus_id and a valid status"})
			break
		}
	}
	if len(errs) > 0 {
		return NewValidationError(errs...)
	}
	return nil
}

// CreateReport inserts the report plus one attendance row per entry in a
// single transaction. An empty attendance list is legal (e.g. a cancelled
// class still logged for its material).
func (s *KBMService) CreateReport(in KBMReportInput) (models.KBMReport, error) {
	if verr := in.validate(); verr != nil {
		return models.KBMReport{}, verr
	}

	var teacher models.Teacher
	if err := s.db.First(&teacher, in.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.KBMReport{}, ErrNotFound
		}
		return models.KBMReport{}, err
	}

	report := models.KBMReport{
		Date:         in.Date,
		SambungGroup: in.SambungGroup,
		TeacherID:    teacher.ID,
		TeacherName:  teacher.FullName,
		Level:        in.Level,
		Material:     in.Material,
		Notes:        in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&report).Error; err != nil {
			return err
		}
		if len(in.Attendance) == 0 {
			return nil
		}
		rows := make([]models.Attendance, 0, len(in.Attendance))
		for _, e := range in.Attendance {
			rows = append(rows, models.Attendance{
				KBMReportID: report.ID,
				GenerusID:   e.GenerusID,
				GenerusName: e.GenerusName,
				Status:      e.Status,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return models.KBMReport{}, err
	}
	return s.GetReport(report.ID)
}

// KBMReportUpdate carries the session-level fields that may change after the
// fact. Nil means "leave as is". Attendance rows are corrected individually
// through the attendance ledger, never here.
type KBMReportUpdate struct {
	Date         *string `json:"date,omitempty"`
	SambungGroup *string `json:"sambung_group,omitempty"`
	Level        *string `json:"level,omitempty"`
	Material     *string `json:"material,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (s *KBMService) UpdateReport(id uint, in KBMReportUpdate) (models.KBMReport, error) {
	var report models.KBMReport
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.KBMReport{}, ErrNotFound
		}
		return models.KBMReport{}, err
	}

	updates := map[string]any{}
	if in.Date != nil {
		if _, err := time.Parse("2006-01-02", *in.Date); err != nil {
			return models.KBMReport{}, NewValidationError(FieldError{"date", "date must be YYYY-MM-DD"})
		}
		updates["date"] = *in.Date
	}
	if in.SambungGroup != nil {
		updates["sambung_group"] = *in.SambungGroup
	}
	if in.Level != nil {
		if !models.ValidLevel(*in.Level) {
			return models.KBMReport{}, NewValidationError(FieldError{"level", "level must be pra-remaja, remaja or usia-mandiri"})
		}
		updates["level"] = *in.Level
	}
	if in.Material != nil {
		updates["material"] = *in.Material
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if len(updates) > 0 {
		if err := s.db.Model(&report).Updates(updates).Error; err != nil {
			return models.KBMReport{}, err
		}
	}
	return s.GetReport(id)
}

// DeleteReport removes the report and all its attendance rows in one
// transaction.
func (s *KBMService) DeleteReport(id uint) error {
	var report models.KBMReport
	if err := s.db.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kbm_report_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	})
}

func (s *KBMService) GetReport(id uint) (models.KBMReport, error) {
	var report models.KBMReport
	if err := s.db.Preload("Attendances").First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.KBMReport{}, ErrNotFound
		}
		return models.KBMReport{}, err
	}
	return report, nil
}

func (s *KBMService) ListByTeacher(teacherID uint) ([]models.KBMReport, error) {
	var out []models.KBMReport
	err := s.db.Where("teacher_id = ?", teacherID).Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

// ListByDateRange returns reports with start <= date <= end (inclusive).
func (s *KBMService) ListByDateRange(start, end string) ([]models.KBMReport, error) {
	var out []models.KBMReport
	err := s.db.Where("date >= ? AND date <= ?", start, end).Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

func (s *KBMService) ListByGroup(group string) ([]models.KBMReport, error) {
	var out []models.KBMReport
	err := s.db.Where("sambung_group = ?", group).Order("date ASC, id ASC").Find(&out).Error
	return out, err
}
