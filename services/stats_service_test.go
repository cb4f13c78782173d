package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

func TestDashboardStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)

	out, err := NewStatsService(db).DashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.TotalReports)
	assert.EqualValues(t, 0, out.ThisMonthReports)
	assert.Equal(t, 0, out.AverageAttendance)
	assert.EqualValues(t, 0, out.ActiveTeachers)
	assert.EqualValues(t, 0, out.TotalGenerus)
	assert.EqualValues(t, 0, out.ActiveGenerus)
}

func TestDashboardStatsCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	svc.now = func() time.Time { return time.Date(2024, 1, 20, 12, 0, 0, 0, time.Local) }

	tch := createTeacher(t, db, "Ibu Sari", true)
	createTeacher(t, db, "Pak Budi", false) // inactive, not counted
	a := createGenerus(t, db, "Ahmad", "A1")
	b := createGenerus(t, db, "Budi", "A1")
	require.NoError(t, NewGenerusService(db).Deactivate(b.ID))

	createReport(t, db, tch, "2024-01-15", "A1", []AttendanceEntry{
		{GenerusID: a.ID, GenerusName: a.FullName, Status: models.AttendancePresent},
		{GenerusID: b.ID, GenerusName: b.FullName, Status: models.AttendanceAbsent},
	})
	createReport(t, db, tch, "2023-12-10", "A1", nil) // previous month

	out, err := svc.DashboardStats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.TotalReports)
	assert.EqualValues(t, 1, out.ThisMonthReports)
	assert.Equal(t, 50, out.AverageAttendance)
	assert.EqualValues(t, 1, out.ActiveTeachers)
	assert.EqualValues(t, 2, out.TotalGenerus)
	assert.EqualValues(t, 1, out.ActiveGenerus)
}

func TestMonthlyAttendanceTwelvePoints(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	sari := createTeacher(t, db, "Ibu Sari", true)
	createTeacher(t, db, "Pak Budi", true) // active but never reports
	a := createGenerus(t, db, "Ahmad", "A1")
	b := createGenerus(t, db, "Budi", "A1")

	// January: 2 present, 2 absent -> 50; 1 of 2 active teachers reported -> 50
	createReport(t, db, sari, "2024-01-07", "A1", []AttendanceEntry{
		{GenerusID: a.ID, GenerusName: a.FullName, Status: models.AttendancePresent},
		{GenerusID: b.ID, GenerusName: b.FullName, Status: models.AttendanceAbsent},
	})
	createReport(t, db, sari, "2024-01-14", "A1", []AttendanceEntry{
		{GenerusID: a.ID, GenerusName: a.FullName, Status: models.AttendancePresent},
		{GenerusID: b.ID, GenerusName: b.FullName, Status: models.AttendanceAbsent},
	})

	points, err := svc.MonthlyAttendance(2024)
	require.NoError(t, err)
	require.Len(t, points, 12)

	jan := points[0]
	assert.Equal(t, "2024-01", jan.Month)
	assert.Equal(t, 50, jan.GenerusRate)
	assert.Equal(t, 50, jan.TeacherRate)

	// months with no data report 0, not an error
	feb := points[1]
	assert.Equal(t, "2024-02", feb.Month)
	assert.Equal(t, 0, feb.GenerusRate)
	assert.Equal(t, 0, feb.TeacherRate)
}

func TestTeacherStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	sari := createTeacher(t, db, "Ibu Sari", true)
	a := createGenerus(t, db, "Ahmad", "A1")
	b := createGenerus(t, db, "Budi", "A1")
	createGenerus(t, db, "Citra", "B2")
	createGenerus(t, db, "Dewi", "C3") // group never taught by Sari

	createReport(t, db, sari, "2024-01-07", "A1", []AttendanceEntry{
		{GenerusID: a.ID, GenerusName: a.FullName, Status: models.AttendancePresent},
		{GenerusID: b.ID, GenerusName: b.FullName, Status: models.AttendanceAbsent},
	})
	createReport(t, db, sari, "2024-01-14", "B2", nil)

	out, err := svc.TeacherStats(sari.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.TotalReports)
	assert.EqualValues(t, 2, out.AttendanceRows)
	assert.EqualValues(t, 3, out.GenerusReached) // A1 (2) + B2 (1)

	_, err = svc.TeacherStats(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerusOverviewIncludesTestAverage(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")

	createReport(t, db, tch, "2024-01-07", "A1", []AttendanceEntry{
		{GenerusID: g.ID, GenerusName: g.FullName, Status: models.AttendancePresent},
	})
	testSvc := NewTestService(db)
	_, err := testSvc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "tilawati", Score: 80, Date: "2024-01-07"})
	require.NoError(t, err)
	_, err = testSvc.RecordResult(TestResultInput{GenerusID: g.ID, Category: "hafalan", Score: 90, Date: "2024-01-14"})
	require.NoError(t, err)

	out, err := svc.GenerusOverview(g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, out.Generus.ID)
	assert.Equal(t, 100, out.Attendance.AttendancePercentage)
	require.NotNil(t, out.TestAverage)
	assert.InDelta(t, 85.0, *out.TestAverage, 0.001)
}

func TestGenerusOverviewNoTests(t *testing.T) {
	db := newTestDB(t)
	g := createGenerus(t, db, "Ahmad", "A1")

	out, err := NewStatsService(db).GenerusOverview(g.ID)
	require.NoError(t, err)
	assert.Nil(t, out.TestAverage)

	_, err = NewStatsService(db).GenerusOverview(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

// The dashboard average and the member detail view must agree on the same
// underlying rows.
func TestRoundingConsistentAcrossViews(t *testing.T) {
	db := newTestDB(t)
	tch := createTeacher(t, db, "Ibu Sari", true)
	g := createGenerus(t, db, "Ahmad", "A1")

	dates := []string{"2024-04-01", "2024-04-08", "2024-04-15"}
	statuses := []models.AttendanceStatus{models.AttendancePresent, models.AttendancePresent, models.AttendanceAbsent}
	for i := range dates {
		createReport(t, db, tch, dates[i], "A1", []AttendanceEntry{
			{GenerusID: g.ID, GenerusName: g.FullName, Status: statuses[i]},
		})
	}

	member, err := NewAttendanceService(db).StatsForGenerus(g.ID)
	require.NoError(t, err)
	dash, err := NewStatsService(db).DashboardStats()
	require.NoError(t, err)
	assert.Equal(t, 67, member.AttendancePercentage)
	assert.Equal(t, member.AttendancePercentage, dash.AverageAttendance)
}
