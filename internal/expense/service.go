package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Repository defines the data access methods for expenses
type Repository interface {
	Create(exp *Expense) error
	GetByID(id int64) (*Expense, error)
	List() ([]*Expense, error)
	UpdateFields(id int64, fields map[string]interface{}) error
	Delete(id int64) (bool, error)
}

// Service handles expense business logic
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

// Create validates the payload and persists a new expense. createdAt and
// updatedAt are server-assigned and equal on creation.
func (s *Service) Create(dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err)
		return nil, err
	}

	date, _ := internal.ParseDate(*dto.Date)
	now := time.Now()

	exp := &Expense{
		Type:      *dto.Type,
		Amount:    *dto.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// empty description on create counts as not provided
	if dto.Description != nil && *dto.Description != "" {
		exp.Description = *dto.Description
	}

	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err)
		return nil, internal.NewInternalError("failed to create expense", err)
	}

	s.logger.Info("expense created", "expense_id", exp.ID, "amount", exp.Amount, "type", exp.Type)
	return exp, nil
}

// List returns all expenses ordered ascending by date.
func (s *Service) List() ([]*Expense, error) {
	expenses, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, internal.NewInternalError("failed to list expenses", err)
	}
	return expenses, nil
}

func (s *Service) GetByID(id int64) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, internal.NewInternalError("failed to get expense", err)
	}
	return exp, nil
}

// Update applies a partial update: only the fields present in the DTO are
// validated and written, plus a refreshed updatedAt. createdAt is never
// touched. Returns the re-read entity.
func (s *Service) Update(id int64, dto UpdateExpenseDTO) (*Expense, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if err := dto.Validate(); err != nil {
		s.logger.Error("expense update validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.Type != nil {
		fields["type"] = *dto.Type
	}
	if dto.Amount != nil {
		fields["amount"] = *dto.Amount
	}
	if dto.Date != nil {
		date, _ := internal.ParseDate(*dto.Date)
		fields["date"] = date
	}
	if dto.Description != nil {
		// an explicit empty string persists as empty on update
		fields["description"] = *dto.Description
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, internal.NewInternalError("failed to update expense", err)
	}

	return s.GetByID(id)
}

// Delete removes an expense by id. A missing row reports false, not an
// error: the route layer turns that into a 404.
func (s *Service) Delete(id int64) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return false, internal.NewInternalError("failed to delete expense", err)
	}
	return deleted, nil
}
