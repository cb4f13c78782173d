package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// GenerusService owns the member registry: profiles, barcodes and the
// active/archived flag. Members are never physically deleted so historical
// attendance rows stay resolvable.
type GenerusService struct {
	db *gorm.DB
}

func NewGenerusService(db *gorm.DB) *GenerusService { return &GenerusService{db: db} }

// GenerusProfile is the mutable part of a member record submitted from the
// profile form. Identity is re-derived from (full name, sambung group) on
// every submission, so repeated "login-and-edit" calls resolve to one row.
type GenerusProfile struct {
	FullName     string     `json:"full_name"`
	BirthPlace   string     `json:"birth_place"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Gender       string     `json:"gender"`
	SambungGroup string     `json:"sambung_group"`
	Level        string     `json:"level"`
	Profession   string     `json:"profession"`
	Skill        string     `json:"skill"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	PhotoURL     string     `json:"photo_url"`
}

func (p *GenerusProfile) normalize() {
	p.FullName = strings.Join(strings.Fields(p.FullName), " ")
	p.BirthPlace = strings.TrimSpace(p.BirthPlace)
	p.Gender = strings.TrimSpace(p.Gender)
	p.SambungGroup = strings.TrimSpace(p.SambungGroup)
	p.Level = strings.TrimSpace(p.Level)
	p.Profession = strings.TrimSpace(p.Profession)
	p.Skill = strings.TrimSpace(p.Skill)
	p.Status = strings.TrimSpace(p.Status)
	p.Notes = strings.TrimSpace(p.Notes)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)
}

func (p *GenerusProfile) validate() *ValidationError {
	var errs []FieldError
	if p.FullName == "" {
		errs = append(errs, FieldError{"full_name", "full name is required"})
	}
	if p.SambungGroup == "" {
		errs = append(errs, FieldError{"sambung_group", "sambung group is required"})
	}
	if !models.ValidLevel(p.Level) {
		errs = append(errs, FieldError{"level", "level must be pra-remaja, remaja or usia-mandiri"})
	}
	if len(errs) > 0 {
		return NewValidationError(errs...)
	}
	return nil
}

// UpsertProfile updates the active member matching (full name, sambung group)
// in place, or inserts a new one when no match exists.
func (s *GenerusService) UpsertProfile(p GenerusProfile) (models.Generus, error) {
	p.normalize()
	if verr := p.validate(); verr != nil {
		return models.Generus{}, verr
	}

	var g models.Generus
	err := s.db.
		Where("full_name = ? AND sambung_group = ? AND is_active = ?", p.FullName, p.SambungGroup, true).
		First(&g).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"birth_place": p.BirthPlace,
			"birth_date":  p.BirthDate,
			"gender":      p.Gender,
			"level":       p.Level,
			"profession":  p.Profession,
			"skill":       p.Skill,
			"status":      p.Status,
			"notes":       p.Notes,
			"photo_url":   p.PhotoURL,
		}
		if err := s.db.Model(&g).Updates(updates).Error; err != nil {
			return models.Generus{}, err
		}
		return s.FindByID(g.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		g = models.Generus{
			FullName:     p.FullName,
			BirthPlace:   p.BirthPlace,
			BirthDate:    p.BirthDate,
			Gender:       p.Gender,
			SambungGroup: p.SambungGroup,
			Level:        p.Level,
			Profession:   p.Profession,
			Skill:        p.Skill,
			Status:       p.Status,
			Notes:        p.Notes,
			PhotoURL:     p.PhotoURL,
			IsActive:     true,
		}
		if err := s.db.Create(&g).Error; err != nil {
			return models.Generus{}, err
		}
		return g, nil
	default:
		return models.Generus{}, err
	}
}

// AssignBarcode generates and persists a fresh barcode for the member.
// Calling it again replaces the previous code.
func (s *GenerusService) AssignBarcode(id uint) (models.Generus, error) {
	g, err := s.FindByID(id)
	if err != nil {
		return models.Generus{}, err
	}
	code := fmt.Sprintf("GEN-%d-%s", g.ID, strings.ToUpper(uuid.NewString()[:8]))
	if err := s.db.Model(&g).Update("barcode", code).Error; err != nil {
		return models.Generus{}, err
	}
	g.Barcode = &code
	return g, nil
}

// FindByID returns the member regardless of the active flag; archived members
// stay resolvable for historical views.
func (s *GenerusService) FindByID(id uint) (models.Generus, error) {
	var g models.Generus
	if err := s.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Generus{}, ErrNotFound
		}
		return models.Generus{}, err
	}
	return g, nil
}

func (s *GenerusService) FindByBarcode(code string) (models.Generus, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Generus{}, ErrNotFound
	}
	var g models.Generus
	if err := s.db.Where("barcode = ?", code).First(&g).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Generus{}, ErrNotFound
		}
		return models.Generus{}, err
	}
	return g, nil
}

// Deactivate soft-deletes a member. Attendance and check-in history is kept.
func (s *GenerusService) Deactivate(id uint) error {
	g, err := s.FindByID(id)
	if err != nil {
		return err
	}
	return s.db.Model(&g).Update("is_active", false).Error
}

func (s *GenerusService) ListByGroup(group string, includeInactive bool) ([]models.Generus, error) {
	tx := s.db.Where("sambung_group = ?", group)
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	var out []models.Generus
	if err := tx.Order("full_name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GenerusService) ListAll(includeInactive bool) ([]models.Generus, error) {
	tx := s.db.Session(&gorm.Session{})
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	var out []models.Generus
	if err := tx.Order("full_name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
