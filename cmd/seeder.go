package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/vehicle-ledger/internal/expense"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
	"github.com/frahmantamala/vehicle-ledger/internal/trip"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample ledger data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"expenses", "refills", "trips"} {
				if err := gormDB.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			log.Println("cleared existing ledger data")
		}

		day := func(offset int) time.Time {
			return time.Now().AddDate(0, 0, -offset).Truncate(24 * time.Hour)
		}

		liters := 38.5
		seedRefills := []refill.Refill{
			{AmountSpent: 62.40, DistanceTraveled: 510, Liters: &liters, Date: day(21), Notes: "full tank", Efficiency: 62.40 / 510},
			{AmountSpent: 58.10, DistanceTraveled: 480, Date: day(7), Efficiency: 58.10 / 480},
		}
		for i := range seedRefills {
			if err := gormDB.Create(&seedRefills[i]).Error; err != nil {
				log.Fatalf("failed to seed refill: %v", err)
			}
		}

		seedTrips := []trip.Trip{
			{Distance: 45.5, Date: day(14), Purpose: "commute"},
			{Distance: 220, Date: day(10), Purpose: "weekend", Notes: "coast road"},
		}
		for i := range seedTrips {
			if err := gormDB.Create(&seedTrips[i]).Error; err != nil {
				log.Fatalf("failed to seed trip: %v", err)
			}
		}

		seedExpenses := []expense.Expense{
			{Type: "insurance", Amount: 420.00, Date: day(30)},
			{Type: "maintenance", Amount: 89.90, Date: day(12), Description: "oil change"},
		}
		for i := range seedExpenses {
			if err := gormDB.Create(&seedExpenses[i]).Error; err != nil {
				log.Fatalf("failed to seed expense: %v", err)
			}
		}

		log.Printf("seeded %d refills, %d trips, %d expenses",
			len(seedRefills), len(seedTrips), len(seedExpenses))
	},
}
