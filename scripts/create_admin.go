// scripts/create_admin.go — seed the first admin account.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/patiponrmutl/SchoolMS/auth"
	"github.com/patiponrmutl/SchoolMS/config"
	"github.com/patiponrmutl/SchoolMS/database"
	"github.com/patiponrmutl/SchoolMS/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	var existing models.User
	if err := db.First(&existing, "email = ?", email).Error; err == nil {
		fmt.Println("admin user already exists:", email)
		os.Exit(0)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("query users: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&u).Error; err != nil {
		log.Fatalf("insert admin: %v", err)
	}

	fmt.Println("admin user created:", email)
}
