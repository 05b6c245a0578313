package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"brand-dashboard-be/internal/mapper"
	"brand-dashboard-be/internal/repository/memory"
	"brand-dashboard-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	typesOnly := flag.Bool("types-only", false, "seed notification types only")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	set := memory.DemoFixtures(time.Now().UTC())
	if *typesOnly {
		set = &memory.FixtureSet{NotificationTypes: set.NotificationTypes}
	}

	color.Cyan("Seeding %s", describe(set))
	if err := db.Transaction(func(tx *gorm.DB) error {
		return seed(tx, set)
	}); err != nil {
		color.Red("Seed failed: %v", err)
		os.Exit(1)
	}
	color.Green("Seed completed.")
	fmt.Printf("Demo accounts use the password %q\n", memory.DemoPassword)
}

func describe(set *memory.FixtureSet) string {
	return fmt.Sprintf("%d organizations, %d users, %d campaigns, %d enrollments, %d invoices, %d notification types",
		len(set.Organizations), len(set.Users), len(set.Campaigns), len(set.Enrollments), len(set.Invoices), len(set.NotificationTypes))
}

// seed inserts the fixture set. Existing rows with the same key are left untouched.
func seed(tx *gorm.DB, set *memory.FixtureSet) error {
	orgs := mapper.NewOrganizationMapper()
	users := mapper.NewUserMapper()
	campaigns := mapper.NewCampaignMapper()
	enrollments := mapper.NewEnrollmentMapper()
	wallet := mapper.NewWalletMapper()
	invoices := mapper.NewInvoiceMapper()
	notifications := mapper.NewNotificationMapper()

	var rows []interface{}
	for _, t := range set.NotificationTypes {
		rows = append(rows, notifications.TypeToModel(t))
	}
	for _, o := range set.Organizations {
		rows = append(rows, orgs.ToModel(o))
	}
	for _, u := range set.Users {
		rows = append(rows, users.ToModel(u))
	}
	for _, c := range set.Campaigns {
		rows = append(rows, campaigns.ToModel(c))
	}
	for _, e := range set.Enrollments {
		rows = append(rows, enrollments.ToModel(e))
	}
	for _, b := range set.Balances {
		rows = append(rows, wallet.BalanceToModel(b))
	}
	for _, t := range set.Transactions {
		rows = append(rows, wallet.TransactionToModel(t))
	}
	for _, w := range set.Withdrawals {
		rows = append(rows, wallet.WithdrawalToModel(w))
	}
	for _, i := range set.Invoices {
		rows = append(rows, invoices.ToModel(i))
	}
	for _, n := range set.Notifications {
		rows = append(rows, notifications.ToModel(n))
	}

	inserted := 0
	for _, row := range rows {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if res.Error != nil {
			return fmt.Errorf("insert %T: %w", row, res.Error)
		}
		inserted += int(res.RowsAffected)
	}
	if skipped := len(rows) - inserted; skipped > 0 {
		color.Yellow("%d rows already present, skipped", skipped)
	}
	return nil
}
