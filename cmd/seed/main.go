package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timbrapp.com/timbrapp/attendance/auth"
	"timbrapp.com/timbrapp/attendance/model"
)

// Creates the schema and a default admin account. Run once against a
// fresh database:
//
//	DSN="root:development@tcp(localhost:3306)/timbrapp?parseTime=true" go run ./cmd/seed
func main() {

	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal(err)
	}

	models := []interface{}{
		&model.Employee{},
		&model.TimeEntry{},
		&model.AdminUser{},
	}

	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			err := db.Migrator().CreateTable(m)
			if err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	var count int64
	db.Model(&model.AdminUser{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		hash, err := auth.HashPassword("admin123")
		if err != nil {
			log.Fatal(err)
		}
		admin := model.AdminUser{
			ID:           uuid.NewString(),
			Username:     "admin",
			PasswordHash: hash,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal(err)
		}
		log.Println("created default admin user (username: admin)")
	}
}
