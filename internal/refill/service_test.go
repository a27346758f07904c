package refill_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
)

func TestRefill(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Refill Service Suite")
}

// Mock repository for testing
type mockRefillRepository struct {
	refills map[int64]*refill.Refill
	nextID  int64
}

func newMockRefillRepository() *mockRefillRepository {
	return &mockRefillRepository{
		refills: make(map[int64]*refill.Refill),
		nextID:  1,
	}
}

func (m *mockRefillRepository) Create(rf *refill.Refill) error {
	rf.ID = m.nextID
	m.nextID++
	m.refills[rf.ID] = rf
	return nil
}

func (m *mockRefillRepository) GetByID(id int64) (*refill.Refill, error) {
	rf, exists := m.refills[id]
	if !exists {
		return nil, internal.ErrResourceNotFound
	}
	cp := *rf
	return &cp, nil
}

func (m *mockRefillRepository) List() ([]*refill.Refill, error) {
	out := make([]*refill.Refill, 0, len(m.refills))
	for _, rf := range m.refills {
		out = append(out, rf)
	}
	return out, nil
}

func (m *mockRefillRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	rf, exists := m.refills[id]
	if !exists {
		return internal.ErrResourceNotFound
	}
	for key, value := range fields {
		switch key {
		case "amount_spent":
			rf.AmountSpent = value.(float64)
		case "distance_traveled":
			rf.DistanceTraveled = value.(float64)
		case "efficiency":
			rf.Efficiency = value.(float64)
		case "liters":
			v := value.(float64)
			rf.Liters = &v
		case "date":
			rf.Date = value.(time.Time)
		case "notes":
			rf.Notes = value.(string)
		case "updated_at":
			rf.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (m *mockRefillRepository) Delete(id int64) (bool, error) {
	if _, exists := m.refills[id]; !exists {
		return false, nil
	}
	delete(m.refills, id)
	return true, nil
}

func strPtr(s string) *string   { return &s }
func numPtr(f float64) *float64 { return &f }

var _ = Describe("RefillService", func() {
	var (
		service *refill.Service
		repo    *mockRefillRepository
	)

	BeforeEach(func() {
		repo = newMockRefillRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = refill.NewService(repo, logger)
	})

	Describe("Create", func() {
		It("should derive efficiency from amount spent over distance", func() {
			result, err := service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(50),
				DistanceTraveled: numPtr(400),
				Date:             strPtr("2024-01-10"),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Efficiency).To(BeNumerically("~", 0.125, 1e-9))
			Expect(result.CreatedAt).To(Equal(result.UpdatedAt))
		})

		It("should reject a zero distance and persist nothing", func() {
			_, err := service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(50),
				DistanceTraveled: numPtr(0),
				Date:             strPtr("2024-01-01"),
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("distanceTraveled must be a positive number"))
			Expect(repo.refills).To(BeEmpty())
		})

		It("should reject a non-positive amount spent", func() {
			_, err := service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(-5),
				DistanceTraveled: numPtr(100),
				Date:             strPtr("2024-01-01"),
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("amountSpent must be a positive number"))
		})

		It("should reject non-positive liters when provided", func() {
			_, err := service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(50),
				DistanceTraveled: numPtr(400),
				Liters:           numPtr(0),
				Date:             strPtr("2024-01-01"),
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("liters must be a positive number"))
		})

		It("should accept absent liters and notes", func() {
			result, err := service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(50),
				DistanceTraveled: numPtr(400),
				Date:             strPtr("2024-01-01"),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Liters).To(BeNil())
			Expect(result.Notes).To(BeEmpty())
		})
	})

	Describe("Update", func() {
		var created *refill.Refill

		BeforeEach(func() {
			var err error
			created, err = service.Create(refill.CreateRefillDTO{
				AmountSpent:      numPtr(60),
				DistanceTraveled: numPtr(300),
				Date:             strPtr("2024-01-10"),
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should recompute efficiency when only amount spent changes", func() {
			updated, err := service.Update(created.ID, refill.UpdateRefillDTO{
				AmountSpent: numPtr(90),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Efficiency).To(BeNumerically("~", 90.0/300.0, 1e-9))
		})

		It("should recompute efficiency when only distance changes", func() {
			updated, err := service.Update(created.ID, refill.UpdateRefillDTO{
				DistanceTraveled: numPtr(600),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Efficiency).To(BeNumerically("~", 60.0/600.0, 1e-9))
		})

		It("should recompute efficiency when both inputs change", func() {
			updated, err := service.Update(created.ID, refill.UpdateRefillDTO{
				AmountSpent:      numPtr(45),
				DistanceTraveled: numPtr(450),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Efficiency).To(BeNumerically("~", 0.1, 1e-9))
		})

		It("should leave efficiency intact when neither input changes", func() {
			updated, err := service.Update(created.ID, refill.UpdateRefillDTO{
				Notes: strPtr("topped up"),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Efficiency).To(Equal(created.Efficiency))
			Expect(updated.Notes).To(Equal("topped up"))
		})

		It("should reject a non-positive distance", func() {
			_, err := service.Update(created.ID, refill.UpdateRefillDTO{
				DistanceTraveled: numPtr(0),
			})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("must be a positive number"))
		})

		It("should never change createdAt", func() {
			updated, err := service.Update(created.ID, refill.UpdateRefillDTO{
				AmountSpent: numPtr(10),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
			Expect(updated.UpdatedAt).To(BeTemporally(">=", created.UpdatedAt))
		})

		It("should surface not-found for an unknown id", func() {
			_, err := service.Update(404, refill.UpdateRefillDTO{AmountSpent: numPtr(10)})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Resource not found"))
		})
	})

	Describe("Delete", func() {
		It("should report false for a missing id without error", func() {
			deleted, err := service.Delete(999)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})
})
