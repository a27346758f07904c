package sqlite

import (
	"gorm.io/gorm"

	"github.com/frahmantamala/vehicle-ledger/internal/mileage"
)

// MileageRepository reads the merged distance projection straight from the
// trip and refill tables.
type MileageRepository struct {
	db *gorm.DB
}

func NewMileageRepository(db *gorm.DB) mileage.Repository {
	return &MileageRepository{db: db}
}

func (r *MileageRepository) DistanceEvents() ([]mileage.DistanceEvent, error) {
	var events []mileage.DistanceEvent
	err := r.db.Raw(`
		SELECT date, distance FROM trips
		UNION ALL
		SELECT date, distance_traveled AS distance FROM refills
	`).Scan(&events).Error
	return events, err
}
