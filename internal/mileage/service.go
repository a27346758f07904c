package mileage

import (
	"log/slog"
	"sort"

	"github.com/frahmantamala/vehicle-ledger/internal"
)

// Repository defines the read-side access the aggregator needs: the merged
// (date, distance) projection of the trip and refill tables.
type Repository interface {
	DistanceEvents() ([]DistanceEvent, error)
}

// Service derives the cumulative mileage series. Pure read-side: nothing is
// cached, the series is recomputed on every call.
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

// MileageOverTime merges trip distances and refill distances, sorts
// ascending by date and prefix-sums. The series has one point per source
// row; empty tables yield an empty series, not an error.
func (s *Service) MileageOverTime() ([]Point, error) {
	events, err := s.repo.DistanceEvents()
	if err != nil {
		s.logger.Error("failed to read distance events", "error", err)
		return nil, internal.NewInternalError("failed to compute mileage series", err)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	points := make([]Point, 0, len(events))
	var total float64
	for _, ev := range events {
		total += ev.Distance
		points = append(points, Point{
			Date:               ev.Date,
			CumulativeDistance: total,
		})
	}

	return points, nil
}
