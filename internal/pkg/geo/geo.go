package geo

import (
	"math"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// earthRadiusM is the mean Earth radius in meters
const earthRadiusM = 6371000.0

// HaversineMeters calculates the great-circle distance in meters between two
// latitude/longitude pairs using the Haversine formula
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lat2Rad := toRadians(lat2)
	deltaLat := toRadians(lat2 - lat1)
	deltaLon := toRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// TrackDistanceKm sums the pairwise Haversine distances along an ordered GPS
// track. Degenerate tracks (fewer than two points) have zero distance.
func TrackDistanceKm(points []models.GpsPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	totalM := 0.0
	for i := 1; i < len(points); i++ {
		totalM += HaversineMeters(
			points[i-1].Latitude,
			points[i-1].Longitude,
			points[i].Latitude,
			points[i].Longitude,
		)
	}
	return totalM / 1000.0
}

// TrackDurationSeconds returns the elapsed time in seconds between the first
// and last point of an ordered GPS track, never negative
func TrackDurationSeconds(points []models.GpsPoint) float64 {
	if len(points) < 2 {
		return 0
	}

	deltaMs := points[len(points)-1].TimestampMs - points[0].TimestampMs
	if deltaMs < 0 {
		return 0
	}
	return float64(deltaMs) / 1000.0
}

// SegmentSpeedKmh derives the average speed in km/h between two consecutive
// GPS points, 0 when the elapsed time is not positive
func SegmentSpeedKmh(from, to models.GpsPoint) float64 {
	deltaMs := to.TimestampMs - from.TimestampMs
	if deltaMs <= 0 {
		return 0
	}
	meters := HaversineMeters(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	return meters / (float64(deltaMs) / 1000.0) * 3.6
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
