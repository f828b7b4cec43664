package engine

import (
	"errors"
	"sort"
	"time"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// ErrNoTrips indicates an aggregation over an empty trip collection, so
// callers can tell "no trips" from trips with uniformly zero metrics
var ErrNoTrips = errors.New("no trips in period")

// trendChangeThreshold is the minimum score movement between two periods
// before a trend is called improving or declining
const trendChangeThreshold = 2.0

// Aggregator rolls already-scored trips into period aggregates, time series
// and trend classification. Stateless; the trip collection is always
// caller-supplied.
type Aggregator struct{}

// NewAggregator creates a score aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AggregatePeriod reduces one date range in a single pass
func (a *Aggregator) AggregatePeriod(userID string, period models.Period, start, end time.Time, trips []models.ScoredTrip) (*models.AggregatedScore, error) {
	if len(trips) == 0 {
		return nil, ErrNoTrips
	}

	agg := &models.AggregatedScore{
		Period:    period,
		StartDate: start,
		EndDate:   end,
		UserID:    userID,
		TripCount: len(trips),
	}

	scoreSum := 0.0
	for _, t := range trips {
		scoreSum += t.Score
		agg.TotalDistanceKm += t.DistanceKm
		agg.TotalDurationMinutes += t.DurationMinutes
		agg.HardBrakingCount += t.HardBrakingCount
		agg.HarshAccelerationCount += t.HarshAccelerationCount
		agg.SpeedViolationsCount += t.SpeedViolationCount
		agg.SharpCornersCount += t.SharpCornerCount
		if t.NightDriving {
			agg.NightDrivingTrips++
		}
	}
	agg.AverageScore = scoreSum / float64(len(trips))

	return agg, nil
}

// TimeSeries groups trips into day/week/month buckets by start time and emits
// one point per non-empty bucket, ascending by date
func (a *Aggregator) TimeSeries(trips []models.ScoredTrip, granularity models.Granularity) []models.TimeSeriesPoint {
	type bucket struct {
		scoreSum   float64
		tripCount  int
		distanceKm float64
	}

	buckets := make(map[time.Time]*bucket)
	for _, t := range trips {
		key := truncateToBucket(t.StartTime, granularity)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.scoreSum += t.Score
		b.tripCount++
		b.distanceKm += t.DistanceKm
	}

	points := make([]models.TimeSeriesPoint, 0, len(buckets))
	for date, b := range buckets {
		points = append(points, models.TimeSeriesPoint{
			Date:       date,
			Score:      b.scoreSum / float64(b.tripCount),
			TripCount:  b.tripCount,
			DistanceKm: b.distanceKm,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return points
}

// Trend compares the two most recent period aggregates. With fewer than two
// periods the trend is stable with zero change by definition.
func (a *Aggregator) Trend(recent, previous *models.AggregatedScore) models.ScoreTrend {
	if recent == nil || previous == nil {
		return models.ScoreTrend{Trend: models.TrendStable}
	}

	change := recent.AverageScore - previous.AverageScore
	trend := models.TrendStable
	switch {
	case change > trendChangeThreshold:
		trend = models.TrendImproving
	case change < -trendChangeThreshold:
		trend = models.TrendDeclining
	}

	return models.ScoreTrend{
		Trend:         trend,
		Change:        change,
		RecentScore:   recent.AverageScore,
		PreviousScore: previous.AverageScore,
	}
}

// truncateToBucket maps a trip start time onto its bucket boundary in UTC
func truncateToBucket(ts time.Time, granularity models.Granularity) time.Time {
	ts = ts.UTC()
	switch granularity {
	case models.GranularityWeek:
		// ISO weeks start on Monday
		offset := (int(ts.Weekday()) + 6) % 7
		day := ts.AddDate(0, 0, -offset)
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	case models.GranularityMonth:
		return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
}
