package trip

import (
	"strings"
	"time"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Trip is a recorded journey. Distance feeds into the cumulative mileage
// series alongside refill distances.
type Trip struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Distance  float64   `json:"distance" gorm:"column:distance;not null"`
	Date      time.Time `json:"date" gorm:"column:date;index"`
	Purpose   string    `json:"purpose,omitempty" gorm:"column:purpose"`
	Notes     string    `json:"notes,omitempty" gorm:"column:notes"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Trip) TableName() string {
	return "trips"
}

type CreateTripDTO struct {
	Distance *float64 `json:"distance"`
	Date     *string  `json:"date"`
	Purpose  *string  `json:"purpose"`
	Notes    *string  `json:"notes"`
}

func (dto CreateTripDTO) Validate() error {
	if dto.Distance == nil {
		return internal.NewRequiredFieldError("distance")
	}
	if *dto.Distance <= 0 {
		return internal.NewPositiveNumberError("distance")
	}
	if dto.Date == nil || strings.TrimSpace(*dto.Date) == "" {
		return internal.NewRequiredFieldError("date")
	}
	if _, err := internal.ParseDate(*dto.Date); err != nil {
		return err
	}
	return nil
}

type UpdateTripDTO struct {
	Distance *float64 `json:"distance"`
	Date     *string  `json:"date"`
	Purpose  *string  `json:"purpose"`
	Notes    *string  `json:"notes"`
}

func (dto UpdateTripDTO) Validate() error {
	if dto.Distance != nil && *dto.Distance <= 0 {
		return internal.NewPositiveNumberError("distance")
	}
	if dto.Date != nil {
		if _, err := internal.ParseDate(*dto.Date); err != nil {
			return err
		}
	}
	return nil
}
