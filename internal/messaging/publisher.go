package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/hoofledger/hoofledger/internal/domain"
	"github.com/hoofledger/hoofledger/internal/logger"
)

// Publisher defines the interface for publishing marketplace events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishMarketEvent publishes a confirmed marketplace event
	PublishMarketEvent(ctx context.Context, event *domain.MarketEvent) error
	// Close closes the connection
	Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// NewNopPublisher returns a publisher that only logs at debug level
func NewNopPublisher() Publisher {
	return NopPublisher{}
}

func (NopPublisher) PublishMarketEvent(ctx context.Context, event *domain.MarketEvent) error {
	logger.DebugCtx(ctx, "Market event not published, no broker configured",
		zap.String("type", string(event.Type)),
		zap.String("tokenID", event.TokenID))
	return nil
}

func (NopPublisher) Close() {}
