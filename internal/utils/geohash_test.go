package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/driveshield/telematics/internal/pkg/models"
)

func TestTripCell(t *testing.T) {
	cell := TripCell(models.GpsPoint{Latitude: -6.2088, Longitude: 106.8456})

	assert.Len(t, cell, 7)

	lat, lng := DecodeCell(cell)
	assert.InDelta(t, -6.2088, lat, 0.001)
	assert.InDelta(t, 106.8456, lng, 0.001)
}

func TestTrackCells(t *testing.T) {
	points := []models.GpsPoint{
		{Latitude: -6.2088, Longitude: 106.8456},
		{Latitude: -6.1751, Longitude: 106.8650},
	}

	start, end := TrackCells(points)

	assert.NotEmpty(t, start)
	assert.NotEmpty(t, end)
	assert.NotEqual(t, start, end)
}

func TestTrackCells_Empty(t *testing.T) {
	start, end := TrackCells(nil)

	assert.Empty(t, start)
	assert.Empty(t, end)
}

func TestTrackCells_SinglePoint(t *testing.T) {
	points := []models.GpsPoint{{Latitude: -6.2088, Longitude: 106.8456}}

	start, end := TrackCells(points)

	assert.Equal(t, start, end)
}
