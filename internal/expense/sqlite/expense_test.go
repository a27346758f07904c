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
	"github.com/frahmantamala/vehicle-ledger/internal/expense"
	expensesqlite "github.com/frahmantamala/vehicle-ledger/internal/expense/sqlite"
)

func TestExpenseSQLite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Expense Repository Suite")
}

var _ = Describe("ExpenseRepository", func() {
	var (
		db   *gorm.DB
		repo expense.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&expense.Expense{})
		Expect(err).NotTo(HaveOccurred())

		repo = expensesqlite.NewExpenseRepository(db)
	})

	newExpense := func(typ string, amount float64, date string) *expense.Expense {
		d, err := time.Parse("2006-01-02", date)
		Expect(err).NotTo(HaveOccurred())
		now := time.Now()
		return &expense.Expense{
			Type:      typ,
			Amount:    amount,
			Date:      d,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	Describe("Create and GetByID", func() {
		It("should round-trip an expense", func() {
			exp := newExpense("maintenance", 89.90, "2024-01-15")
			exp.Description = "oil change"

			Expect(repo.Create(exp)).To(Succeed())
			Expect(exp.ID).To(BeNumerically(">", 0))

			fetched, err := repo.GetByID(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Type).To(Equal("maintenance"))
			Expect(fetched.Amount).To(Equal(89.90))
			Expect(fetched.Description).To(Equal("oil change"))
			Expect(fetched.Date).To(BeTemporally("==", exp.Date))
		})

		It("should report not-found for an unknown id", func() {
			_, err := repo.GetByID(42)
			Expect(err).To(Equal(internal.ErrResourceNotFound))
		})
	})

	Describe("List", func() {
		It("should order by date ascending regardless of insertion order", func() {
			Expect(repo.Create(newExpense("c", 3, "2024-03-01"))).To(Succeed())
			Expect(repo.Create(newExpense("a", 1, "2024-01-01"))).To(Succeed())
			Expect(repo.Create(newExpense("b", 2, "2024-02-01"))).To(Succeed())

			expenses, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses).To(HaveLen(3))
			Expect(expenses[0].Type).To(Equal("a"))
			Expect(expenses[1].Type).To(Equal("b"))
			Expect(expenses[2].Type).To(Equal("c"))
		})

		It("should keep insertion order for equal dates", func() {
			Expect(repo.Create(newExpense("first", 1, "2024-01-01"))).To(Succeed())
			Expect(repo.Create(newExpense("second", 2, "2024-01-01"))).To(Succeed())

			expenses, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses[0].Type).To(Equal("first"))
			Expect(expenses[1].Type).To(Equal("second"))
		})
	})

	Describe("UpdateFields", func() {
		It("should write only the given columns", func() {
			exp := newExpense("maintenance", 100, "2024-01-15")
			Expect(repo.Create(exp)).To(Succeed())

			err := repo.UpdateFields(exp.ID, map[string]interface{}{
				"amount":     150.0,
				"updated_at": time.Now(),
			})
			Expect(err).NotTo(HaveOccurred())

			fetched, err := repo.GetByID(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Amount).To(Equal(150.0))
			Expect(fetched.Type).To(Equal("maintenance"))
			Expect(fetched.CreatedAt).To(BeTemporally("==", exp.CreatedAt))
		})
	})

	Describe("Delete", func() {
		It("should delete an existing row and report true", func() {
			exp := newExpense("maintenance", 100, "2024-01-15")
			Expect(repo.Create(exp)).To(Succeed())

			deleted, err := repo.Delete(exp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			_, err = repo.GetByID(exp.ID)
			Expect(err).To(Equal(internal.ErrResourceNotFound))
		})

		It("should report false for a missing row without touching others", func() {
			exp := newExpense("maintenance", 100, "2024-01-15")
			Expect(repo.Create(exp)).To(Succeed())

			deleted, err := repo.Delete(999)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())

			expenses, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(expenses).To(HaveLen(1))
		})
	})
})
