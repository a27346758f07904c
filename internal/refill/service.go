package refill

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Repository defines the data access methods for refills
type Repository interface {
	Create(rf *Refill) error
	GetByID(id int64) (*Refill, error)
	List() ([]*Refill, error)
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) (bool, error)
}

// Service handles refill business logic, including the derived efficiency
// field.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates the payload, computes efficiency and persists the row.
// Validation guarantees distanceTraveled > 0, so the division can never
// produce Inf or NaN.
func (s *Service) Create(dto CreateRefillDTO) (*Refill, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("refill validation failed", "error", err)
		return nil, err
	}

	date, _ := internal.ParseDate(*dto.Date)
	now := time.Now()

	rf := &Refill{
		AmountSpent:      *dto.AmountSpent,
		DistanceTraveled: *dto.DistanceTraveled,
		Liters:           dto.Liters,
		Date:             date,
		Efficiency:       *dto.AmountSpent / *dto.DistanceTraveled,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if dto.Notes != nil && *dto.Notes != "" {
		rf.Notes = *dto.Notes
	}

	if err := s.repo.Create(rf); err != nil {
		s.logger.Error("failed to create refill", "error", err)
		return nil, internal.NewInternalError("failed to create refill", err)
	}

	s.logger.Info("refill created",
		"refill_id", rf.ID,
		"amount_spent", rf.AmountSpent,
		"distance_traveled", rf.DistanceTraveled,
		"efficiency", rf.Efficiency)
	return rf, nil
}

func (s *Service) List() ([]*Refill, error) {
	refills, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list refills", "error", err)
		return nil, internal.NewInternalError("failed to list refills", err)
	}
	return refills, nil
}

func (s *Service) GetByID(id int64) (*Refill, error) {
	rf, err := s.repo.GetByID(id)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to get refill", "error", err, "refill_id", id)
		return nil, internal.NewInternalError("failed to get refill", err)
	}
	return rf, nil
}

// Update applies a partial update. Efficiency is always recomputed from the
// effective post-update amountSpent and distanceTraveled, substituting the
// stored value for whichever field the patch omits.
func (s *Service) Update(id int64, dto UpdateRefillDTO) (*Refill, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("refill update validation failed", "error", err, "refill_id", id)
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}

	amountSpent := existing.AmountSpent
	distanceTraveled := existing.DistanceTraveled
	if dto.AmountSpent != nil {
		amountSpent = *dto.AmountSpent
		fields["amount_spent"] = amountSpent
	}
	if dto.DistanceTraveled != nil {
		distanceTraveled = *dto.DistanceTraveled
		fields["distance_traveled"] = distanceTraveled
	}
	if dto.AmountSpent != nil || dto.DistanceTraveled != nil {
		fields["efficiency"] = amountSpent / distanceTraveled
	}
	if dto.Liters != nil {
		fields["liters"] = *dto.Liters
	}
	if dto.Date != nil {
		date, _ := internal.ParseDate(*dto.Date)
		fields["date"] = date
	}
	if dto.Notes != nil {
		// an explicit empty string persists as empty on update
		fields["notes"] = *dto.Notes
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		s.logger.Error("failed to update refill", "error", err, "refill_id", id)
		return nil, internal.NewInternalError("failed to update refill", err)
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete refill", "error", err, "refill_id", id)
		return false, internal.NewInternalError("failed to delete refill", err)
	}
	return deleted, nil
}
