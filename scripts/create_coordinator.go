// scripts/create_coordinator.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/appdotbuilder/generus-attendance-app-sub000/config"
	"github.com/appdotbuilder/generus-attendance-app-sub000/database"
	"github.com/appdotbuilder/generus-attendance-app-sub000/models"
)

func main() {
	cfg := config.Load()
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}

	username := os.Getenv("COORDINATOR_USERNAME")
	if username == "" {
		username = "koordinator"
	}
	password := os.Getenv("COORDINATOR_PASSWORD")
	if password == "" {
		password = "ubah-saya"
	}

	var existing models.Teacher
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query teachers: %v", err)
		}
	} else {
		fmt.Println("coordinator already exists with username:", username)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	t := models.Teacher{
		FullName: "Koordinator",
		Username: username,
		Password: string(hashed),
		Role:     models.RoleCoordinator,
		IsActive: true,
	}
	if err := database.DB.Create(&t).Error; err != nil {
		log.Fatalf("failed to insert coordinator: %v", err)
	}

	fmt.Println("coordinator account created")
	fmt.Println("  username:", username)
	fmt.Println("  password:", password, "(change it after first login)")
}
