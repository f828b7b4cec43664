package utils

import (
	"github.com/mmcloughlin/geohash"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// cellPrecision is the geohash precision used for trip cells (~150 m)
const cellPrecision = 7

// TripCell returns the geohash cell of a GPS fix, used to bucket trip
// endpoints for downstream dashboards
func TripCell(p models.GpsPoint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, cellPrecision)
}

// TrackCells returns the geohash cells of the first and last fix of a track,
// empty strings for tracks without fixes
func TrackCells(points []models.GpsPoint) (start, end string) {
	if len(points) == 0 {
		return "", ""
	}
	return TripCell(points[0]), TripCell(points[len(points)-1])
}

// DecodeCell converts a geohash cell back to its center coordinates
func DecodeCell(cell string) (latitude, longitude float64) {
	return geohash.Decode(cell)
}
