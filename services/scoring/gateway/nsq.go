package gateway

import (
	"context"

	"github.com/driveshield/telematics/internal/pkg/models"
	"github.com/driveshield/telematics/internal/pkg/nsq"
)

// Publisher is the subset of the NSQ producer the gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// ScoringGW publishes scoring events to NSQ
type ScoringGW struct {
	producer Publisher
	cfg      models.NSQConfig
}

// NewScoringGW creates a new scoring gateway
func NewScoringGW(producer Publisher, cfg models.NSQConfig) *ScoringGW {
	return &ScoringGW{
		producer: producer,
		cfg:      cfg,
	}
}

// PublishTripScored publishes a trip scored event
func (g *ScoringGW) PublishTripScored(_ context.Context, event *models.TripScoredEvent) error {
	return g.producer.Publish(g.cfg.TripScoredTopic, event)
}

// PublishRefundEstimated publishes a refund estimated event
func (g *ScoringGW) PublishRefundEstimated(_ context.Context, event *models.RefundEstimatedEvent) error {
	return g.producer.Publish(g.cfg.RefundTopic, event)
}

var _ Publisher = (*nsq.Producer)(nil)
