package models

// Derived statistics. Nothing here is persisted; every query recomputes from
// the ledgers.

// GenerusAttendanceStats is the per-generus breakdown of KBM attendance.
type GenerusAttendanceStats struct {
	GenerusID            uint  `json:"generus_id"`
	TotalSessions        int64 `json:"total_sessions"`
	PresentCount         int64 `json:"present_count"`
	SickCount            int64 `json:"sick_count"`
	PermittedCount       int64 `json:"permitted_count"`
	AbsentCount          int64 `json:"absent_count"`
	AttendancePercentage int   `json:"attendance_percentage"`
}

// AttendanceSummary is the system-wide roll-up of the attendance ledger.
type AttendanceSummary struct {
	TotalRows   int64 `json:"total_rows"`
	PresentRows int64 `json:"present_rows"`
	PresentRate int   `json:"present_rate"`
}

// DashboardStats backs the landing dashboard counters.
type DashboardStats struct {
	TotalReports      int64 `json:"total_reports"`
	ThisMonthReports  int64 `json:"this_month_reports"`
	AverageAttendance int   `json:"average_attendance"`
	ActiveTeachers    int64 `json:"active_teachers"`
	TotalGenerus      int64 `json:"total_generus"`
	ActiveGenerus     int64 `json:"active_generus"`
}

// MonthlyAttendancePoint is one month of the yearly trend chart.
type MonthlyAttendancePoint struct {
	Month       string `json:"month"` // YYYY-MM
	GenerusRate int    `json:"generus_rate"`
	TeacherRate int    `json:"teacher_rate"`
}

// TeacherActivityStats summarizes one teacher's reporting activity.
type TeacherActivityStats struct {
	TeacherID      uint  `json:"teacher_id"`
	TotalReports   int64 `json:"total_reports"`
	AttendanceRows int64 `json:"attendance_rows"`
	GenerusReached int64 `json:"generus_reached"` // active generus across groups taught
}

// GenerusOverview bundles a generus with their derived stats for detail views.
type GenerusOverview struct {
	Generus     Generus                `json:"generus"`
	Attendance  GenerusAttendanceStats `json:"attendance"`
	TestAverage *float64               `json:"test_average,omitempty"`
}
