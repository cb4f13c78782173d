package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// StatsService is the read-side aggregation engine. Everything is recomputed
// from the ledgers on every call; data volumes are small enough that caching
// would only add invalidation problems.
type StatsService struct {
	db         *gorm.DB
	attendance *AttendanceService
	tests      *TestService
	now        func() time.Time
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db:         db,
		attendance: NewAttendanceService(db),
		tests:      NewTestService(db),
		now:        time.Now,
	}
}

// DashboardStats fills the landing-page counters. An empty store yields all
// zeros, not an error.
func (s *StatsService) DashboardStats() (models.DashboardStats, error) {
	var out models.DashboardStats

	if err := s.db.Model(&models.KBMReport{}).Count(&out.TotalReports).Error; err != nil {
		return models.DashboardStats{}, err
	}
	monthPrefix := s.now().Format("2006-01")
	if err := s.db.Model(&models.KBMReport{}).
		Where("date LIKE ?", monthPrefix+"%").
		Count(&out.ThisMonthReports).Error; err != nil {
		return models.DashboardStats{}, err
	}

	sum, err := s.attendance.SystemSummary()
	if err != nil {
		return models.DashboardStats{}, err
	}
	out.AverageAttendance = sum.PresentRate

	if err := s.db.Model(&models.Teacher{}).
		Where("is_active = ?", true).
		Count(&out.ActiveTeachers).Error; err != nil {
		return models.DashboardStats{}, err
	}
	if err := s.db.Model(&models.Generus{}).Count(&out.TotalGenerus).Error; err != nil {
		return models.DashboardStats{}, err
	}
	if err := s.db.Model(&models.Generus{}).
		Where("is_active = ?", true).
		Count(&out.ActiveGenerus).Error; err != nil {
		return models.DashboardStats{}, err
	}
	return out, nil
}

// MonthlyAttendance returns one point per calendar month of the given year
// (current year when 0). The generus rate is row-weighted: present attendance
// rows over total attendance rows whose report falls in the month. The
// teacher rate is the share of active teachers who filed at least one report
// that month. Empty months report 0, not null.
func (s *StatsService) MonthlyAttendance(year int) ([]models.MonthlyAttendancePoint, error) {
	if year == 0 {
		year = s.now().Year()
	}

	var activeTeachers int64
	if err := s.db.Model(&models.Teacher{}).
		Where("is_active = ?", true).
		Count(&activeTeachers).Error; err != nil {
		return nil, err
	}

	points := make([]models.MonthlyAttendancePoint, 0, 12)
	for m := 1; m <= 12; m++ {
		prefix := fmt.Sprintf("%04d-%02d", year, m)

		var total, present int64
		base := s.db.Model(&models.Attendance{}).
			Joins("JOIN kbm_reports r ON r.id = attendances.kbm_report_id").
			Where("r.date LIKE ?", prefix+"%")
		if err := base.Count(&total).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.Attendance{}).
			Joins("JOIN kbm_reports r ON r.id = attendances.kbm_report_id").
			Where("r.date LIKE ?", prefix+"%").
			Where("attendances.status = ?", models.AttendancePresent).
			Count(&present).Error; err != nil {
			return nil, err
		}

		var reporting int64
		if err := s.db.Model(&models.KBMReport{}).
			Where("date LIKE ?", prefix+"%").
			Distinct("teacher_id").
			Count(&reporting).Error; err != nil {
			return nil, err
		}

		points = append(points, models.MonthlyAttendancePoint{
			Month:       prefix,
			GenerusRate: percent(present, total),
			TeacherRate: percent(reporting, activeTeachers),
		})
	}
	return points, nil
}

// TeacherStats summarizes one teacher's reports and how many active generus
// sit in the groups they have taught at least once.
func (s *StatsService) TeacherStats(teacherID uint) (models.TeacherActivityStats, error) {
	var teacher models.Teacher
	if err := s.db.First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TeacherActivityStats{}, ErrNotFound
		}
		return models.TeacherActivityStats{}, err
	}

	out := models.TeacherActivityStats{TeacherID: teacherID}
	if err := s.db.Model(&models.KBMReport{}).
		Where("teacher_id = ?", teacherID).
		Count(&out.TotalReports).Error; err != nil {
		return models.TeacherActivityStats{}, err
	}
	if err := s.db.Model(&models.Attendance{}).
		Joins("JOIN kbm_reports r ON r.id = attendances.kbm_report_id").
		Where("r.teacher_id = ?", teacherID).
		Count(&out.AttendanceRows).Error; err != nil {
		return models.TeacherActivityStats{}, err
	}

	var groups []string
	if err := s.db.Model(&models.KBMReport{}).
		Where("teacher_id = ?", teacherID).
		Distinct().
		Pluck("sambung_group", &groups).Error; err != nil {
		return models.TeacherActivityStats{}, err
	}
	if len(groups) > 0 {
		if err := s.db.Model(&models.Generus{}).
			Where("sambung_group IN ? AND is_active = ?", groups, true).
			Count(&out.GenerusReached).Error; err != nil {
			return models.TeacherActivityStats{}, err
		}
	}
	return out, nil
}

// GenerusOverview bundles the member (active or archived) with attendance
// stats and the test-score average when any scores exist.
func (s *StatsService) GenerusOverview(generusID uint) (models.GenerusOverview, error) {
	g, err := NewGenerusService(s.db).FindByID(generusID)
	if err != nil {
		return models.GenerusOverview{}, err
	}
	att, err := s.attendance.StatsForGenerus(generusID)
	if err != nil {
		return models.GenerusOverview{}, err
	}
	avg, err := s.tests.AverageForGenerus(generusID)
	if err != nil {
		return models.GenerusOverview{}, err
	}
	return models.GenerusOverview{Generus: g, Attendance: att, TestAverage: avg}, nil
}
