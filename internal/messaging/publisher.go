package messaging

import (
	"context"

	"github.com/bulbafloor/auction-engine/internal/domain"
)

// Publisher defines the interface for publishing auction lifecycle events
// to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishAuctionEvent publishes an auction lifecycle event
	PublishAuctionEvent(ctx context.Context, event *domain.AuctionEvent) error
	// Close closes the connection
	Close()
}
