package sqlite

import (
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/refill"
)

// RefillRepository implements the refill.Repository interface using GORM
type RefillRepository struct {
	db *gorm.DB
}

func NewRefillRepository(db *gorm.DB) refill.Repository {
	return &RefillRepository{db: db}
}

func (r *RefillRepository) Create(rf *refill.Refill) error {
	return r.db.Create(rf).Error
}

func (r *RefillRepository) GetByID(id int64) (*refill.Refill, error) {
	var rf refill.Refill
	err := r.db.Where("id = ?", id).First(&rf).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &rf, nil
}

func (r *RefillRepository) List() ([]*refill.Refill, error) {
	var refills []*refill.Refill
	err := r.db.Order("date ASC, id ASC").Find(&refills).Error
	return refills, err
}

func (r *RefillRepository) UpdateFields(id int64, fields map[string]interface{}) error {
	return r.db.Model(&refill.Refill{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *RefillRepository) Delete(id int64) (bool, error) {
	res := r.db.Delete(&refill.Refill{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
