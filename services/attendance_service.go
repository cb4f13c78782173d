package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// AttendanceService owns the attendance ledger: post-hoc status corrections
// and the derived per-generus / system-wide rates.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService { return &AttendanceService{db: db} }

// percent is the single rounding rule for every percentage in the system:
// round half up, 0 when the denominator is 0.
func percent(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(total)*100 + 0.5))
}

// UpdateStatus corrects one attendance mark after the fact.
func (s *AttendanceService) UpdateStatus(id uint, status models.AttendanceStatus) (models.Attendance, error) {
	if !status.Valid() {
		return models.Attendance{}, NewValidationError(FieldError{"status", "status must be present, sick, permitted or absent"})
	}
	var row models.Attendance
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Attendance{}, ErrNotFound
		}
		return models.Attendance{}, err
	}
	if err := s.db.Model(&row).Update("status", status).Error; err != nil {
		return models.Attendance{}, err
	}
	row.Status = status
	return row, nil
}

// StatsForGenerus scans every ledger row for the member. A member with no
// rows gets all-zero counts and percentage 0, never a division error.
func (s *AttendanceService) StatsForGenerus(generusID uint) (models.GenerusAttendanceStats, error) {
	var rows []models.Attendance
	if err := s.db.Where("generus_id = ?", generusID).Find(&rows).Error; err != nil {
		return models.GenerusAttendanceStats{}, err
	}

	stats := models.GenerusAttendanceStats{GenerusID: generusID}
	for _, r := range rows {
		stats.TotalSessions++
		switch r.Status {
		case models.AttendancePresent:
			stats.PresentCount++
		case models.AttendanceSick:
			stats.SickCount++
		case models.AttendancePermitted:
			stats.PermittedCount++
		case models.AttendanceAbsent:
			stats.AbsentCount++
		}
	}
	stats.AttendancePercentage = percent(stats.PresentCount, stats.TotalSessions)
	return stats, nil
}

// SystemSummary rolls up the whole ledger with the same rounding rule.
func (s *AttendanceService) SystemSummary() (models.AttendanceSummary, error) {
	var sum models.AttendanceSummary
	if err := s.db.Model(&models.Attendance{}).Count(&sum.TotalRows).Error; err != nil {
		return models.AttendanceSummary{}, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Where("status = ?", models.AttendancePresent).
		Count(&sum.PresentRows).Error; err != nil {
		return models.AttendanceSummary{}, err
	}
	sum.PresentRate = percent(sum.PresentRows, sum.TotalRows)
	return sum, nil
}
