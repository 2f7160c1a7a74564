package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/logger"
	"github.com/bulbafloor/auction-engine/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
	ConnectionName string
}

type publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// NewPublisher connects to NATS, ensures the auction stream exists and
// returns a JetStream-backed publisher. The initial connection is retried
// with exponential backoff up to ConnectTimeout.
func NewPublisher(ctx context.Context, cfg Config) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.ConnectTimeout

	var nc *nats.Conn
	err := backoff.Retry(func() error {
		var err error
		nc, err = nats.Connect(cfg.URL, opts...)
		return err
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{"auctions.>"},
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{nc: nc, js: js}, nil
}

// PublishAuctionEvent publishes an auction event to NATS JetStream
func (p *publisher) PublishAuctionEvent(ctx context.Context, event *domain.AuctionEvent) error {
	logger.Debug("Publishing auction event",
		zap.String("event_id", event.EventID),
		zap.String("kind", string(event.Kind)))

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := buildSubject(event.Kind)

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject maps an event kind to its NATS subject
func buildSubject(kind domain.EventKind) string {
	switch kind {
	case domain.EventAuctionCreated:
		return "auctions.created"
	case domain.EventAuctionSuccessful:
		return "auctions.sold"
	case domain.EventAuctionCancelled:
		return "auctions.cancelled"
	case domain.EventFeeBasisPointsSet:
		return "auctions.fee_basis_points_set"
	case domain.EventFeeRecipientSet:
		return "auctions.fee_recipient_set"
	default:
		return fmt.Sprintf("auctions.%s", kind)
	}
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
