package mileage

import "time"

// DistanceEvent is the (date, distance) projection of a trip or refill row.
type DistanceEvent struct {
	Date     time.Time `gorm:"column:date"`
	Distance float64   `gorm:"column:distance"`
}

// Point is one entry of the derived mileage series: the running total of
// distance up to and including the event at Date.
type Point struct {
	Date               time.Time `json:"date"`
	CumulativeDistance float64   `json:"cumulativeDistance"`
}
