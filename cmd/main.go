package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/appdotbuilder/generus-attendance-app-sub000/config"
	"github.com/appdotbuilder/generus-attendance-app-sub000/database"
	"github.com/appdotbuilder/generus-attendance-app-sub000/pkg/logger"
	"github.com/appdotbuilder/generus-attendance-app-sub000/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := config.Load()

	zl, err := logger.New(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, logger.DefaultServiceName)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zl.Sync()

	if err := database.Connect(cfg); err != nil {
		zl.Fatal("database connect failed", zap.Error(err))
	}
	zl.Info("database connected", zap.String("db", cfg.DBName))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	zl.Info("server listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
