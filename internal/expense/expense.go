package expense

import (
	"strings"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Expense is a discrete money event: anything spent on the vehicle that is
// not a fuel refill (tax, insurance, maintenance, parking...).
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Type        string    `json:"type" gorm:"column:type;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Date        time.Time `json:"date" gorm:"column:date;index"`
	Description string    `json:"description,omitempty" gorm:"column:description"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Expense) TableName() string {
	return "expenses"
}

// CreateExpenseDTO is the create payload. Pointer fields distinguish a
// missing key from a zero value so validation can tell "absent" apart from
// "present but invalid".
type CreateExpenseDTO struct {
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

func (dto CreateExpenseDTO) Validate() error {
	if dto.Type == nil {
		return internal.NewRequiredFieldError("type")
	}
	if isBlank(*dto.Type) {
		return internal.NewEmptyFieldError("type")
	}
	if dto.Amount == nil {
		return internal.NewRequiredFieldError("amount")
	}
	if *dto.Amount <= 0 {
		return internal.NewPositiveNumberError("amount")
	}
	if dto.Date == nil || isBlank(*dto.Date) {
		return internal.NewRequiredFieldError("date")
	}
	if _, err := internal.ParseDate(*dto.Date); err != nil {
		return err
	}
	return nil
}

// UpdateExpenseDTO is a partial update: only present fields are validated
// and written. An empty description here persists as empty, unlike on
// create where it counts as not provided.
type UpdateExpenseDTO struct {
	Type        *string  `json:"type"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

func (dto UpdateExpenseDTO) Validate() error {
	if dto.Type != nil && isBlank(*dto.Type) {
		return internal.NewEmptyFieldError("type")
	}
	if dto.Amount != nil && *dto.Amount <= 0 {
		return internal.NewPositiveNumberError("amount")
	}
	if dto.Date != nil {
		if _, err := internal.ParseDate(*dto.Date); err != nil {
			return err
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
