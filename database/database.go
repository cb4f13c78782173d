package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/config"
	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

var DB *gorm.DB

// Connect opens the database and migrates the schema. TranslateError is on so
// unique-index violations surface as gorm.ErrDuplicatedKey; the check-in
// duplicate rule depends on that.
func Connect(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	DB = db
	return Migrate(db)
}

// Migrate runs AutoMigrate for every model. Test code calls this against its
// own sqlite handle.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Teacher{},
		&models.Generus{},
		&models.KBMReport{},
		&models.Attendance{},
		&models.OnlineCheckin{},
		&models.TestResult{},
		&models.Material{},
		&models.Feedback{},
	)
}
