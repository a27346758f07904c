package refill

import (
	"strings"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Refill is a fuel stop. Efficiency is derived (cost per unit distance) and
// never settable by the caller; the service recomputes it whenever either
// input changes.
type Refill struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	AmountSpent      float64   `json:"amountSpent" gorm:"column:amount_spent;not null"`
	DistanceTraveled float64   `json:"distanceTraveled" gorm:"column:distance_traveled;not null"`
	Liters           *float64  `json:"liters,omitempty" gorm:"column:liters"`
	Date             time.Time `json:"date" gorm:"column:date;index"`
	Notes            string    `json:"notes,omitempty" gorm:"column:notes"`
	Efficiency       float64   `json:"efficiency" gorm:"column:efficiency;not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Refill) TableName() string {
	return "refills"
}

type CreateRefillDTO struct {
	AmountSpent      *float64 `json:"amountSpent"`
	DistanceTraveled *float64 `json:"distanceTraveled"`
	Liters           *float64 `json:"liters"`
	Date             *string  `json:"date"`
	Notes            *string  `json:"notes"`
}

func (dto CreateRefillDTO) Validate() error {
	if dto.AmountSpent == nil {
		return internal.NewRequiredFieldError("amountSpent")
	}
	if *dto.AmountSpent <= 0 {
		return internal.NewPositiveNumberError("amountSpent")
	}
	if dto.DistanceTraveled == nil {
		return internal.NewRequiredFieldError("distanceTraveled")
	}
	if *dto.DistanceTraveled <= 0 {
		return internal.NewPositiveNumberError("distanceTraveled")
	}
	if dto.Liters != nil && *dto.Liters <= 0 {
		return internal.NewPositiveNumberError("liters")
	}
	if dto.Date == nil || strings.TrimSpace(*dto.Date) == "" {
		return internal.NewRequiredFieldError("date")
	}
	if _, err := internal.ParseDate(*dto.Date); err != nil {
		return err
	}
	return nil
}

type UpdateRefillDTO struct {
	AmountSpent      *float64 `json:"amountSpent"`
	DistanceTraveled *float64 `json:"distanceTraveled"`
	Liters           *float64 `json:"liters"`
	Date             *string  `json:"date"`
	Notes            *string  `json:"notes"`
}

func (dto UpdateRefillDTO) Validate() error {
	if dto.AmountSpent != nil && *dto.AmountSpent <= 0 {
		return internal.NewPositiveNumberError("amountSpent")
	}
	if dto.DistanceTraveled != nil && *dto.DistanceTraveled <= 0 {
		return internal.NewPositiveNumberError("distanceTraveled")
	}
	if dto.Liters != nil && *dto.Liters <= 0 {
		return internal.NewPositiveNumberError("liters")
	}
	if dto.Date != nil {
		if _, err := internal.ParseDate(*dto.Date); err != nil {
			return err
		}
	}
	return nil
}
