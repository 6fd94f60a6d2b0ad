package main

import (
	"log"
	"os"

	"santripay-be/internal/model"
	"santripay-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedPlatformAdmin(db)
	seedMonetizationSettings(db)

	log.Println("Seeding completed.")
}

func seedPlatformAdmin(db *gorm.DB) {
	email := os.Getenv("PLATFORM_ADMIN_EMAIL")
	if email == "" {
		email = "admin@santripay.id"
	}
	password := os.Getenv("PLATFORM_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	db.Model(&model.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("Platform admin already exists, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.Profile{
		Email:        email,
		PasswordHash: &hashStr,
		Name:         "Admin Platform",
		Role:         "platform_admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to seed platform admin: %v", err)
	}
	log.Printf("Seeded platform admin: %s", email)
}

func seedMonetizationSettings(db *gorm.DB) {
	var count int64
	db.Model(&model.MonetizationSettings{}).Count(&count)
	if count > 0 {
		log.Println("Monetization settings already exist, skipping")
		return
	}

	settings := model.MonetizationSettings{
		TagihanFee:         decimal.NewFromInt(2500),
		TopupFee:           decimal.NewFromInt(1000),
		KoperasiCommission: decimal.NewFromFloat(2.5),
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Fatalf("Error: Failed to seed monetization settings: %v", err)
	}
	log.Println("Seeded default monetization settings")
}
