package main

import (
	"log"
	"os"

	"santripay-be/internal/model"
	"santripay-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions (AutoMigrate doesn't handle these)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.Profile{},
		&model.Pesantren{},
		&model.PesantrenFinancials{},
		&model.BankAccount{},
		&model.Santri{},
		&model.Ustadz{},
		&model.Tagihan{},
		&model.Kelas{},
		&model.MataPelajaran{},
		&model.Ruangan{},
		&model.GrupPilihan{},
		&model.Koperasi{},
		&model.KoperasiTransaction{},
		&model.Transaction{},
		&model.PlatformTransaction{},
		&model.WithdrawalRequest{},
		&model.MonetizationSettings{},
		&model.ContentCategory{},
		&model.GlobalContent{},
		&model.Ad{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration completed successfully.")
}
