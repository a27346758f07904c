package sqlite_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
	refillsqlite "github.com/frahmantamala/vehicle-ledger/internal/refill/sqlite"
)

func TestRefillSQLite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Refill Repository Suite")
}

var _ = Describe("RefillRepository", func() {
	var (
		db   *gorm.DB
		repo refill.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&refill.Refill{})
		Expect(err).NotTo(HaveOccurred())

		repo = refillsqlite.NewRefillRepository(db)
	})

	newRefill := func(spent, distance float64, date string) *refill.Refill {
		d, err := time.Parse("2006-01-02", date)
		Expect(err).NotTo(HaveOccurred())
		now := time.Now()
		return &refill.Refill{
			AmountSpent:      spent,
			DistanceTraveled: distance,
			Date:             d,
			Efficiency:       spent / distance,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}

	Describe("Create and GetByID", func() {
		It("should round-trip a refill with optional liters", func() {
			liters := 32.5
			ref := newRefill(50, 400, "2024-01-10")
			ref.Liters = &liters
			ref.Notes = "full tank"

			Expect(repo.Create(ref)).To(Succeed())
			Expect(ref.ID).To(BeNumerically(">", 0))

			fetched, err := repo.GetByID(ref.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.AmountSpent).To(Equal(50.0))
			Expect(fetched.DistanceTraveled).To(Equal(400.0))
			Expect(fetched.Efficiency).To(Equal(0.125))
			Expect(fetched.Liters).NotTo(BeNil())
			Expect(*fetched.Liters).To(Equal(32.5))
			Expect(fetched.Notes).To(Equal("full tank"))
		})

		It("should keep liters nil when never provided", func() {
			ref := newRefill(50, 400, "2024-01-10")
			Expect(repo.Create(ref)).To(Succeed())

			fetched, err := repo.GetByID(ref.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Liters).To(BeNil())
		})

		It("should report not-found for an unknown id", func() {
			_, err := repo.GetByID(7)
			Expect(err).To(Equal(internal.ErrResourceNotFound))
		})
	})

	Describe("List", func() {
		It("should order by date ascending", func() {
			Expect(repo.Create(newRefill(30, 300, "2024-02-01"))).To(Succeed())
			Expect(repo.Create(newRefill(10, 100, "2024-01-01"))).To(Succeed())

			refills, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(refills).To(HaveLen(2))
			Expect(refills[0].AmountSpent).To(Equal(10.0))
			Expect(refills[1].AmountSpent).To(Equal(30.0))
		})
	})

	Describe("UpdateFields", func() {
		It("should update efficiency alongside its inputs", func() {
			ref := newRefill(50, 400, "2024-01-10")
			Expect(repo.Create(ref)).To(Succeed())

			err := repo.UpdateFields(ref.ID, map[string]interface{}{
				"amount_spent": 60.0,
				"efficiency":   60.0 / 400.0,
				"updated_at":   time.Now(),
			})
			Expect(err).NotTo(HaveOccurred())

			fetched, err := repo.GetByID(ref.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.AmountSpent).To(Equal(60.0))
			Expect(fetched.DistanceTraveled).To(Equal(400.0))
			Expect(fetched.Efficiency).To(Equal(0.15))
		})
	})

	Describe("Delete", func() {
		It("should report false for a missing row", func() {
			deleted, err := repo.Delete(123)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})
})
