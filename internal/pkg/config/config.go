package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/driveshield/telematics/internal/pkg/models"
)

// Load reads configuration from the given YAML file (optional) and the
// environment, environment taking precedence. Scoring tunables left empty by
// the file fall back to the canonical defaults.
func Load(configPath string) (*models.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("TELEMATICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; env and defaults still apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &models.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "telematics-scoring")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "dev")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9980)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "telematics")
	v.SetDefault("database.database", "telematics")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.address", "localhost:4150")
	v.SetDefault("nsq.trip_scored_topic", "trip_scored")
	v.SetDefault("nsq.refund_topic", "refund_estimated")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "driveshield")

	defaults := models.DefaultScoringConfig()
	v.SetDefault("scoring.thresholds.hard_braking_delta", defaults.Thresholds.HardBrakingDelta)
	v.SetDefault("scoring.thresholds.harsh_acceleration_delta", defaults.Thresholds.HarshAccelerationDelta)
	v.SetDefault("scoring.thresholds.sharp_corner_magnitude", defaults.Thresholds.SharpCornerMagnitude)
	v.SetDefault("scoring.thresholds.corner_sample_group", defaults.Thresholds.CornerSampleGroup)
	v.SetDefault("scoring.thresholds.speed_tolerance_over_limit", defaults.Thresholds.SpeedToleranceOverLimit)
	v.SetDefault("scoring.thresholds.speed_sample_group", defaults.Thresholds.SpeedSampleGroup)
	v.SetDefault("scoring.thresholds.night_start_hour", defaults.Thresholds.NightStartHour)
	v.SetDefault("scoring.thresholds.night_end_hour", defaults.Thresholds.NightEndHour)

	v.SetDefault("scoring.weights.speed", defaults.Weights.Speed)
	v.SetDefault("scoring.weights.hard_braking", defaults.Weights.HardBraking)
	v.SetDefault("scoring.weights.acceleration", defaults.Weights.Acceleration)
	v.SetDefault("scoring.weights.cornering", defaults.Weights.Cornering)
	v.SetDefault("scoring.weights.phone_usage", defaults.Weights.PhoneUsage)

	v.SetDefault("scoring.penalties.speed", defaults.Penalties.Speed)
	v.SetDefault("scoring.penalties.hard_braking", defaults.Penalties.HardBraking)
	v.SetDefault("scoring.penalties.acceleration", defaults.Penalties.Acceleration)
	v.SetDefault("scoring.penalties.cornering", defaults.Penalties.Cornering)

	v.SetDefault("scoring.anomaly.max_plausible_speed_kmh", defaults.Anomaly.MaxPlausibleSpeedKmh)
	v.SetDefault("scoring.anomaly.gps_jump_distance_km", defaults.Anomaly.GpsJumpDistanceKm)
	v.SetDefault("scoring.anomaly.gps_jump_window_seconds", defaults.Anomaly.GpsJumpWindowSeconds)
	v.SetDefault("scoring.anomaly.duplicate_window_minutes", defaults.Anomaly.DuplicateWindowMinutes)
	v.SetDefault("scoring.anomaly.duplicate_distance_km", defaults.Anomaly.DuplicateDistanceKm)
	v.SetDefault("scoring.anomaly.impossible_speed_penalty", defaults.Anomaly.ImpossibleSpeedPenalty)
	v.SetDefault("scoring.anomaly.gps_jump_penalty", defaults.Anomaly.GpsJumpPenalty)
	v.SetDefault("scoring.anomaly.duplicate_penalty", defaults.Anomaly.DuplicatePenalty)
	v.SetDefault("scoring.anomaly.score_discount_factor", defaults.Anomaly.ScoreDiscountFactor)
	v.SetDefault("scoring.anomaly.lookback_hours", defaults.Anomaly.LookbackHours)

	v.SetDefault("scoring.refund.eligibility_floor", defaults.Refund.EligibilityFloor)
	v.SetDefault("scoring.refund.community_average", defaults.Refund.CommunityAverage)
	v.SetDefault("scoring.refund.personal_weight", defaults.Refund.PersonalWeight)
	v.SetDefault("scoring.refund.community_weight", defaults.Refund.CommunityWeight)
	v.SetDefault("scoring.refund.min_rate", defaults.Refund.MinRate)
	v.SetDefault("scoring.refund.max_rate", defaults.Refund.MaxRate)

	v.SetDefault("scoring.eco.speed_threshold_kmh", defaults.Eco.SpeedThresholdKmh)
	v.SetDefault("scoring.eco.speed_penalty_per_kmh", defaults.Eco.SpeedPenaltyPerKmh)
	v.SetDefault("scoring.eco.harsh_event_penalty", defaults.Eco.HarshEventPenalty)
}
