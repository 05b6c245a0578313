package main

import (
	"log"
	"os"

	"brand-dashboard-be/internal/model"
	"brand-dashboard-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM migration...")

	// gen_random_uuid() defaults need pgcrypto on older Postgres versions.
	log.Println("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	models := []interface{}{
		&model.Organization{},
		&model.User{},
		&model.Campaign{},
		&model.Enrollment{},
		&model.WalletBalance{},
		&model.WalletTransaction{},
		&model.Withdrawal{},
		&model.Invoice{},
		&model.NotificationType{},
		&model.Notification{},
	}

	log.Printf("Step 2: Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Status columns are plain varchar; checks keep the lifecycle values honest.
	log.Println("Step 3: Adding check constraints...")
	constraints := []string{
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_campaigns_status') THEN ALTER TABLE campaigns ADD CONSTRAINT chk_campaigns_status CHECK (status IN ('draft','pending_approval','approved','active','paused','ended','completed','cancelled','archived')); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_wallet_balances_non_negative') THEN ALTER TABLE wallet_balances ADD CONSTRAINT chk_wallet_balances_non_negative CHECK (available >= 0 AND held >= 0); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_invoices_total') THEN ALTER TABLE invoices ADD CONSTRAINT chk_invoices_total CHECK (total >= 0); END IF; END $$;`,
	}
	for _, sql := range constraints {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to add constraint: %v. Continuing...", err)
		}
	}

	log.Println("Migration completed successfully.")
}
