package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/appdotbuilder/generus-attendance-app-sub000/config"
	"github.com/appdotbuilder/generus-attendance-app-sub000/database"
	"github.com/appdotbuilder/generus-attendance-app-sub000/handlers"
	"github.com/appdotbuilder/generus-attendance-app-sub000/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	db := database.DB

	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(db, cfg.JWTSecret)
	gen := handlers.NewGenerusHandler(db)
	tch := handlers.NewTeacherHandler(db)
	kbm := handlers.NewKBMHandler(db)
	att := handlers.NewAttendanceHandler(db)
	chk := handlers.NewCheckinHandler(db)
	sts := handlers.NewStatsHandler(db)
	tst := handlers.NewTestHandler(db)
	mat := handlers.NewMaterialHandler(db)
	fbk := handlers.NewFeedbackHandler(db)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/generus/login", auth.GenerusLogin)
	e.POST("/feedback", fbk.Create)
	e.GET("/materials", mat.List)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Teacher routes (teacher + coordinator) =====
	teacher := e.Group("", authMW, middlewares.RequireRole("teacher", "coordinator"))

	teacher.PUT("/profile/password", auth.ChangePassword)

	teacher.GET("/generus", gen.List)
	teacher.GET("/generus/:id", gen.Get)
	teacher.POST("/generus", gen.Upsert)
	teacher.POST("/generus/:id/barcode", gen.AssignBarcode)
	teacher.GET("/generus/barcode/:code", gen.FindByBarcode)
	teacher.GET("/generus/:id/attendance", att.StatsForGenerus)
	teacher.GET("/generus/:id/tests", tst.ListByGenerus)

	teacher.POST("/kbm", kbm.Create)
	teacher.GET("/kbm", kbm.List)
	teacher.GET("/kbm/:id", kbm.Get)
	teacher.PUT("/kbm/:id", kbm.Update)
	teacher.DELETE("/kbm/:id", kbm.Delete)

	teacher.PUT("/attendance/:id/status", att.UpdateStatus)
	teacher.GET("/attendance/summary", att.Summary)

	teacher.POST("/checkins/scan", chk.Scan)
	teacher.GET("/checkins", chk.List)

	teacher.GET("/stats/dashboard", sts.Dashboard)
	teacher.GET("/stats/monthly", sts.Monthly)
	teacher.GET("/stats/teachers/:id", sts.Teacher)
	teacher.GET("/stats/generus/:id", sts.Generus)

	teacher.POST("/materials", mat.Create)
	teacher.PUT("/materials/:id", mat.Update)
	teacher.DELETE("/materials/:id", mat.Delete)

	// ===== Coordinator routes =====
	coord := e.Group("/coordinator", authMW, middlewares.RequireRole("coordinator"))
	coord.GET("/teachers", tch.List)
	coord.POST("/teachers", tch.Create)
	coord.PUT("/teachers/:id", tch.Update)
	coord.DELETE("/teachers/:id", tch.Deactivate)
	coord.DELETE("/generus/:id", gen.Deactivate)
	coord.GET("/feedback", fbk.List)
}
