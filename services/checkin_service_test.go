package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

func barcodeFor(t *testing.T, db *gorm.DB, g models.Generus) string {
	t.Helper()
	withCode, err := NewGenerusService(db).AssignBarcode(g.ID)
	require.NoError(t, err)
	return *withCode.Barcode
}

func TestScanThenDuplicateSameDay(t *testing.T) {
	db := newTestDB(t)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")
	code := barcodeFor(t, db, g)
	svc := NewCheckinService(db)

	res, err := svc.Scan(code, tch.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, res.Generus.ID)
	assert.Equal(t, "A1", res.Checkin.SambungGroup)
	assert.Equal(t, time.Now().Format("2006-01-02"), res.Checkin.CheckinDate)

	_, err = svc.Scan(code, tch.ID)
	assert.ErrorIs(t, err, ErrDuplicateCheckinToday)

	var count int64
	require.NoError(t, db.Model(&models.OnlineCheckin{}).Where("generus_id = ?", g.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestScanSucceedsNextDay(t *testing.T) {
	db := newTestDB(t)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")
	code := barcodeFor(t, db, g)

	svc := NewCheckinService(db)
	day1 := time.Date(2024, 1, 15, 19, 30, 0, 0, time.Local)
	svc.now = func() time.Time { return day1 }

	_, err := svc.Scan(code, tch.ID)
	require.NoError(t, err)
	_, err = svc.Scan(code, tch.ID)
	require.ErrorIs(t, err, ErrDuplicateCheckinToday)

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	res, err := svc.Scan(code, tch.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-16", res.Checkin.CheckinDate)
}

func TestScanUnknownBarcode(t *testing.T) {
	db := newTestDB(t)
	_, err := NewCheckinService(db).Scan("GEN-0-NOPE", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanEmptyBarcode(t *testing.T) {
	db := newTestDB(t)
	var verr *ValidationError
	_, err := NewCheckinService(db).Scan("   ", 1)
	assert.ErrorAs(t, err, &verr)
}

// The active check runs before the duplicate check: a deactivated member who
// already checked in today must get the inactive failure, not the duplicate
// one.
func TestScanInactiveTakesPrecedenceOverDuplicate(t *testing.T) {
	db := newTestDB(t)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")
	code := barcodeFor(t, db, g)
	svc := NewCheckinService(db)

	_, err := svc.Scan(code, tch.ID)
	require.NoError(t, err)

	require.NoError(t, NewGenerusService(db).Deactivate(g.ID))
	_, err = svc.Scan(code, tch.ID)
	assert.ErrorIs(t, err, ErrInactive)
}

// The composite unique index is the real guard against two scans racing past
// the application pre-check.
func TestCheckinDayUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	g := createGenerus(t, db, "Ahmad", "A1")

	row := models.OnlineCheckin{
		GenerusID:   g.ID,
		CheckinDate: "2024-01-15",
		Barcode:     "GEN-1-ABCD1234",
		TeacherID:   1,
		CheckinTime: time.Now(),
	}
	require.NoError(t, db.Create(&row).Error)

	dup := models.OnlineCheckin{
		GenerusID:   g.ID,
		CheckinDate: "2024-01-15",
		Barcode:     "GEN-1-ABCD1234",
		TeacherID:   2,
		CheckinTime: time.Now(),
	}
	err := db.Create(&dup).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestListJoinsCurrentNameKeepsGroupSnapshot(t *testing.T) {
	db := newTestDB(t)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")
	code := barcodeFor(t, db, g)
	svc := NewCheckinService(db)

	_, err := svc.Scan(code, tch.ID)
	require.NoError(t, err)

	// the member later moves groups and is renamed
	require.NoError(t, db.Model(&models.Generus{}).Where("id = ?", g.ID).
		Updates(map[string]any{"sambung_group": "B2", "full_name": "Ahmad Fauzi"}).Error)

	records, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A1", records[0].SambungGroup)        // frozen at scan time
	assert.Equal(t, "Ahmad Fauzi", records[0].GenerusName) // current display name

	byGroup, err := svc.ListBySambungGroup("A1")
	require.NoError(t, err)
	assert.Len(t, byGroup, 1)

	byMember, err := svc.ListByGenerus(g.ID)
	require.NoError(t, err)
	assert.Len(t, byMember, 1)
}
