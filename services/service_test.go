package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/appdotbuilder/generus-attendance-app-sub000/database"
	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

// newTestDB opens a per-test in-memory sqlite database with the full schema.
// TranslateError mirrors the production config so unique-index violations
// surface as gorm.ErrDuplicatedKey here too.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTeacher(t *testing.T, db *gorm.DB, name string, active bool) models.Teacher {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	tch := models.Teacher{
		FullName: name,
		Username: strings.ToLower(strings.ReplaceAll(name, " ", ".")),
		Password: string(hash),
		Role:     models.RoleTeacher,
		IsActive: active,
	}
	require.NoError(t, db.Create(&tch).Error)
	return tch
}

func createGenerus(t *testing.T, db *gorm.DB, name, group string) models.Generus {
	t.Helper()
	g := models.Generus{
		FullName:     name,
		SambungGroup: group,
		Level:        models.LevelRemaja,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&g).Error)
	return g
}

// createReport inserts a report plus marks through the service, the same path
// production uses.
func createReport(t *testing.T, db *gorm.DB, teacher models.Teacher, date, group string, entries []AttendanceEntry) models.KBMReport {
	t.Helper()
	report, err := NewKBMService(db).CreateReport(KBMReportInput{
		Date:         date,
		SambungGroup: group,
		Level:        models.LevelRemaja,
		Material:     "materi sambung",
		TeacherID:    teacher.ID,
		Attendance:   entries,
	})
	require.NoError(t, err)
	return report
}
