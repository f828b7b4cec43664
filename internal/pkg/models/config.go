package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address         string `mapstructure:"address"`
	TripScoredTopic string `mapstructure:"trip_scored_topic"`
	RefundTopic     string `mapstructure:"refund_topic"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// ScoringConfig groups every tunable of the scoring pipeline so thresholds
// are injected rather than scattered through detection logic.
type ScoringConfig struct {
	Thresholds EventThresholds `mapstructure:"thresholds"`
	Weights    ScoreWeights    `mapstructure:"weights"`
	Penalties  ScorePenalties  `mapstructure:"penalties"`
	Anomaly    AnomalyConfig   `mapstructure:"anomaly"`
	Refund     RefundConfig    `mapstructure:"refund"`
	Eco        EcoConfig       `mapstructure:"eco"`
}

// EventThresholds contains the event detection thresholds
type EventThresholds struct {
	HardBrakingDelta        float64 `mapstructure:"hard_braking_delta"` // x-axis g-proxy delta between consecutive samples
	HarshAccelerationDelta  float64 `mapstructure:"harsh_acceleration_delta"`
	SharpCornerMagnitude    float64 `mapstructure:"sharp_corner_magnitude"` // gyro planar magnitude sqrt(x^2+y^2)
	CornerSampleGroup       int     `mapstructure:"corner_sample_group"`    // qualifying samples folded into one corner event
	SpeedToleranceOverLimit float64 `mapstructure:"speed_tolerance_over_limit"`
	SpeedSampleGroup        int     `mapstructure:"speed_sample_group"` // qualifying samples folded into one violation
	NightStartHour          int     `mapstructure:"night_start_hour"`
	NightEndHour            int     `mapstructure:"night_end_hour"`
}

// ScoreWeights contains the per-category weights of the composite score.
// They are expected to sum to 1.0.
type ScoreWeights struct {
	Speed        float64 `mapstructure:"speed"`
	HardBraking  float64 `mapstructure:"hard_braking"`
	Acceleration float64 `mapstructure:"acceleration"`
	Cornering    float64 `mapstructure:"cornering"`
	PhoneUsage   float64 `mapstructure:"phone_usage"`
}

// ScorePenalties contains the per-event deduction applied to each category
// sub-score before weighting.
type ScorePenalties struct {
	Speed        float64 `mapstructure:"speed"`
	HardBraking  float64 `mapstructure:"hard_braking"`
	Acceleration float64 `mapstructure:"acceleration"`
	Cornering    float64 `mapstructure:"cornering"`
}

// AnomalyConfig contains data-integrity detection tunables
type AnomalyConfig struct {
	MaxPlausibleSpeedKmh   float64 `mapstructure:"max_plausible_speed_kmh"`
	GpsJumpDistanceKm      float64 `mapstructure:"gps_jump_distance_km"`
	GpsJumpWindowSeconds   float64 `mapstructure:"gps_jump_window_seconds"`
	DuplicateWindowMinutes float64 `mapstructure:"duplicate_window_minutes"`
	DuplicateDistanceKm    float64 `mapstructure:"duplicate_distance_km"`
	ImpossibleSpeedPenalty float64 `mapstructure:"impossible_speed_penalty"`
	GpsJumpPenalty         float64 `mapstructure:"gps_jump_penalty"`
	DuplicatePenalty       float64 `mapstructure:"duplicate_penalty"`
	ScoreDiscountFactor    float64 `mapstructure:"score_discount_factor"` // applied to (100 - anomaly score)
	LookbackHours          int     `mapstructure:"lookback_hours"`
}

// RefundConfig contains premium refund computation tunables
type RefundConfig struct {
	EligibilityFloor float64 `mapstructure:"eligibility_floor"`
	CommunityAverage float64 `mapstructure:"community_average"`
	PersonalWeight   float64 `mapstructure:"personal_weight"`
	CommunityWeight  float64 `mapstructure:"community_weight"`
	MinRate          float64 `mapstructure:"min_rate"`
	MaxRate          float64 `mapstructure:"max_rate"`
}

// EcoConfig contains the informational eco-score tunables
type EcoConfig struct {
	SpeedThresholdKmh  float64 `mapstructure:"speed_threshold_kmh"`
	SpeedPenaltyPerKmh float64 `mapstructure:"speed_penalty_per_kmh"`
	HarshEventPenalty  float64 `mapstructure:"harsh_event_penalty"`
}

// DefaultScoringConfig returns the canonical tunables used when the config
// file leaves the scoring section empty.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Thresholds: EventThresholds{
			HardBrakingDelta:        0.3,
			HarshAccelerationDelta:  0.2,
			SharpCornerMagnitude:    0.25,
			CornerSampleGroup:       10,
			SpeedToleranceOverLimit: 5,
			SpeedSampleGroup:        5,
			NightStartHour:          22,
			NightEndHour:            5,
		},
		Weights: ScoreWeights{
			Speed:        0.25,
			HardBraking:  0.25,
			Acceleration: 0.20,
			Cornering:    0.20,
			PhoneUsage:   0.10,
		},
		Penalties: ScorePenalties{
			Speed:        15,
			HardBraking:  10,
			Acceleration: 10,
			Cornering:    5,
		},
		Anomaly: AnomalyConfig{
			MaxPlausibleSpeedKmh:   200,
			GpsJumpDistanceKm:      5,
			GpsJumpWindowSeconds:   60,
			DuplicateWindowMinutes: 5,
			DuplicateDistanceKm:    0.5,
			ImpossibleSpeedPenalty: 30,
			GpsJumpPenalty:         25,
			DuplicatePenalty:       40,
			ScoreDiscountFactor:    0.3,
			LookbackHours:          24,
		},
		Refund: RefundConfig{
			EligibilityFloor: 70,
			CommunityAverage: 75,
			PersonalWeight:   0.8,
			CommunityWeight:  0.2,
			MinRate:          0.05,
			MaxRate:          0.15,
		},
		Eco: EcoConfig{
			SpeedThresholdKmh:  70,
			SpeedPenaltyPerKmh: 0.5,
			HarshEventPenalty:  5,
		},
	}
}
