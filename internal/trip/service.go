package trip

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Repository defines the data access methods for trips
type Repository interface {
	Create(t *Trip) error
	GetByID(id int64) (*Trip, error)
	List() ([]*Trip, error)
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) (bool, error)
}

// Service handles trip business logic
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

func (s *Service) Create(dto CreateTripDTO) (*Trip, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("trip validation failed", "error", err)
		return nil, err
	}

	date, _ := internal.ParseDate(*dto.Date)
	now := time.Now()

	t := &Trip{
		Distance:  *dto.Distance,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if dto.Purpose != nil && *dto.Purpose != "" {
		t.Purpose = *dto.Purpose
	}
	if dto.Notes != nil && *dto.Notes != "" {
		t.Notes = *dto.Notes
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create trip", "error", err)
		return nil, internal.NewInternalError("failed to create trip", err)
	}

	s.logger.Info("trip created", "trip_id", t.ID, "distance", t.Distance)
	return t, nil
}

func (s *Service) List() ([]*Trip, error) {
	trips, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list trips", "error", err)
		return nil, internal.NewInternalError("failed to list trips", err)
	}
	return trips, nil
}

func (s *Service) GetByID(id int64) (*Trip, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to get trip", "error", err, "trip_id", id)
		return nil, internal.NewInternalError("failed to get trip", err)
	}
	return t, nil
}

func (s *Service) Update(id int64, dto UpdateTripDTO) (*Trip, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("trip update validation failed", "error", err, "trip_id", id)
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.Distance != nil {
		fields["distance"] = *dto.Distance
	}
	if dto.Date != nil {
		date, _ := internal.ParseDate(*dto.Date)
		fields["date"] = date
	}
	if dto.Purpose != nil {
		fields["purpose"] = *dto.Purpose
	}
	if dto.Notes != nil {
		// an explicit empty string persists as empty on update
		fields["notes"] = *dto.Notes
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		s.logger.Error("failed to update trip", "error", err, "trip_id", id)
		return nil, internal.NewInternalError("failed to update trip", err)
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete trip", "error", err, "trip_id", id)
		return false, internal.NewInternalError("failed to delete trip", err)
	}
	return deleted, nil
}
