package services

import (
	"database/sql"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// TestService records assessment scores and supplies the per-generus average
// consumed by the stats engine.
type TestService struct {
	db *gorm.DB
}

func NewTestService(db *gorm.DB) *TestService { return &TestService{db: db} }

type TestResultInput struct {
	GenerusID uint    `json:"generus_id"`
	Category  string  `json:"category"`
	Score     float64 `json:"score"`
	Date      string  `json:"date"` // YYYY-MM-DD, empty = today
	Notes     string  `json:"notes"`
}

func (s *TestService) RecordResult(in TestResultInput) (models.TestResult, error) {
	var errs []FieldError
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		errs = append(errs, FieldError{"category", "category is required"})
	}
	if in.Score < 0 || in.Score > 100 {
		errs = append(errs, FieldError{"score", "score must be between 0 and 100"})
	}
	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		errs = append(errs, FieldError{"date", "date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return models.TestResult{}, NewValidationError(errs...)
	}

	if _, err := NewGenerusService(s.db).FindByID(in.GenerusID); err != nil {
		return models.TestResult{}, err
	}

	row := models.TestResult{
		GenerusID: in.GenerusID,
		Category:  in.Category,
		Score:     in.Score,
		Date:      in.Date,
		Notes:     strings.TrimSpace(in.Notes),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return models.TestResult{}, err
	}
	return row, nil
}

func (s *TestService) ListByGenerus(generusID uint) ([]models.TestResult, error) {
	var out []models.TestResult
	err := s.db.Where("generus_id = ?", generusID).Order("date ASC, id ASC").Find(&out).Error
	return out, err
}

// AverageForGenerus returns nil when the generus has no recorded scores.
func (s *TestService) AverageForGenerus(generusID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := s.db.Model(&models.TestResult{}).
		Where("generus_id = ?", generusID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}
