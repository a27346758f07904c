package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/trip"
)

// TripRepository implements the trip.Repository interface using GORM
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) trip.Repository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(t *trip.Trip) error {
	return r.db.Create(t).Error
}

func (r *TripRepository) GetByID(id int64) (*trip.Trip, error) {
	var t trip.Trip
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) List() ([]*trip.Trip, error) {
	var trips []*trip.Trip
	err := r.db.Order("date ASC, id ASC").Find(&trips).Error
	return trips, err
}

func (r *TripRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&trip.Trip{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *TripRepository) Delete(id int64) (bool, error) {
	res := r.db.Delete(&trip.Trip{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
