package models

// SpeedUnit identifies the unit a speed sample was captured in.
type SpeedUnit string

const (
	SpeedUnitUnknown SpeedUnit = ""
	SpeedUnitKmh     SpeedUnit = "kmh"
	SpeedUnitMph     SpeedUnit = "mph"
)

// MphToKmh converts miles per hour to kilometers per hour
const MphToKmh = 1.60934

// GpsPoint represents a single timestamped GPS fix.
// Samples are immutable once captured and assumed time-ordered.
type GpsPoint struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	TimestampMs int64    `json:"timestamp_ms"`
	AccuracyM   float64  `json:"accuracy_m,omitempty"`
	SpeedMps    *float64 `json:"speed_mps,omitempty"`
}

// AccelerometerSample represents a three-axis g-force proxy reading
type AccelerometerSample struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	TimestampMs int64   `json:"timestamp_ms"`
}

// GyroscopeSample represents a three-axis angular-rate proxy reading
type GyroscopeSample struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Z           float64 `json:"z"`
	TimestampMs int64   `json:"timestamp_ms"`
}

// SpeedSample represents a speed reading with an optional posted limit.
// Unit is the explicit capture unit; leaving it empty falls back to the
// legacy magnitude heuristic during anomaly normalization.
type SpeedSample struct {
	Speed       float64   `json:"speed"`
	TimestampMs int64     `json:"timestamp_ms"`
	SpeedLimit  *float64  `json:"speed_limit,omitempty"`
	Unit        SpeedUnit `json:"unit,omitempty"`
}
