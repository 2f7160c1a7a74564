package domain

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// EventKind identifies the type of auction event
type EventKind string

const (
	EventAuctionCreated    EventKind = "auction_created"
	EventAuctionSuccessful EventKind = "auction_successful"
	EventAuctionCancelled  EventKind = "auction_cancelled"
	EventFeeBasisPointsSet EventKind = "fee_basis_points_set"
	EventFeeRecipientSet   EventKind = "fee_recipient_set"
)

// AuctionSnapshot is the wire form of an auction record. uint256 values are
// carried as decimal strings.
type AuctionSnapshot struct {
	ID                 uint64    `json:"id"`
	TokenContract      string    `json:"token_contract"`
	TokenID            string    `json:"token_id"`
	TokenType          TokenType `json:"token_type"`
	Amount             string    `json:"amount"`
	SaleToken          string    `json:"sale_token"`
	Seller             string    `json:"seller"`
	StartPrice         string    `json:"start_price"`
	ReservePrice       string    `json:"reserve_price"`
	FeeBasisPoints     uint64    `json:"fee_basis_points"`
	RoyaltyRecipient   string    `json:"royalty_recipient"`
	RoyaltyBasisPoints uint64    `json:"royalty_basis_points"`
	Duration           uint64    `json:"duration"`
	StartTime          time.Time `json:"start_time"`
}

// Snapshot converts an auction record to its wire form.
func (a *Auction) Snapshot() *AuctionSnapshot {
	return &AuctionSnapshot{
		ID:                 a.ID,
		TokenContract:      a.Asset.TokenContract.Hex(),
		TokenID:            a.Asset.TokenID.String(),
		TokenType:          a.Asset.TokenType,
		Amount:             a.Amount.String(),
		SaleToken:          a.SaleToken.Hex(),
		Seller:             a.Seller.Hex(),
		StartPrice:         a.StartPrice.String(),
		ReservePrice:       a.ReservePrice.String(),
		FeeBasisPoints:     a.FeeBasisPoints,
		RoyaltyRecipient:   a.RoyaltyRecipient.Hex(),
		RoyaltyBasisPoints: a.RoyaltyBasisPoints,
		Duration:           a.Duration,
		StartTime:          a.StartTime,
	}
}

// AuctionEvent is the envelope published to the event sink. The ledger
// deletes records on resolution, so downstream consumers reconstruct auction
// history purely from these events.
type AuctionEvent struct {
	EventID   string    `json:"event_id"`
	Kind      EventKind `json:"kind"`
	Timestamp time.Time `json:"timestamp"`

	AuctionID *uint64          `json:"auction_id,omitempty"`
	Auction   *AuctionSnapshot `json:"auction,omitempty"`

	Seller        string `json:"seller,omitempty"`
	Buyer         string `json:"buyer,omitempty"`
	TokenContract string `json:"token_contract,omitempty"`
	TokenID       string `json:"token_id,omitempty"`
	Amount        string `json:"amount,omitempty"`
	SaleToken     string `json:"sale_token,omitempty"`

	Price   string `json:"price,omitempty"`
	Fee     string `json:"fee,omitempty"`
	Royalty string `json:"royalty,omitempty"`

	FeeBasisPoints *uint64 `json:"fee_basis_points,omitempty"`
	FeeRecipient   string  `json:"fee_recipient,omitempty"`
}

// NewAuctionCreatedEvent builds the event emitted after a successful creation.
func NewAuctionCreatedEvent(now time.Time, a *Auction) *AuctionEvent {
	id := a.ID
	return &AuctionEvent{
		EventID:       newEventID(now),
		Kind:          EventAuctionCreated,
		Timestamp:     now,
		AuctionID:     &id,
		Auction:       a.Snapshot(),
		Seller:        a.Seller.Hex(),
		TokenContract: a.Asset.TokenContract.Hex(),
	}
}

// NewAuctionSuccessfulEvent builds the event emitted after a settled sale.
func NewAuctionSuccessfulEvent(now time.Time, s *Sale) *AuctionEvent {
	id := s.AuctionID
	return &AuctionEvent{
		EventID:       newEventID(now),
		Kind:          EventAuctionSuccessful,
		Timestamp:     now,
		AuctionID:     &id,
		Seller:        s.Seller.Hex(),
		Buyer:         s.Buyer.Hex(),
		TokenContract: s.Asset.TokenContract.Hex(),
		TokenID:       s.Asset.TokenID.String(),
		Amount:        s.Amount.String(),
		SaleToken:     s.SaleToken.Hex(),
		Price:         s.Price.String(),
		Fee:           s.Fee.String(),
		Royalty:       s.Royalty.String(),
	}
}

// NewAuctionCancelledEvent builds the event emitted after a cancellation.
func NewAuctionCancelledEvent(now time.Time, c *Cancellation) *AuctionEvent {
	id := c.AuctionID
	return &AuctionEvent{
		EventID:       newEventID(now),
		Kind:          EventAuctionCancelled,
		Timestamp:     now,
		AuctionID:     &id,
		Seller:        c.Seller.Hex(),
		TokenContract: c.Asset.TokenContract.Hex(),
		TokenID:       c.Asset.TokenID.String(),
		Amount:        c.Amount.String(),
	}
}

// NewFeeBasisPointsSetEvent builds the event emitted after an admin fee change.
func NewFeeBasisPointsSetEvent(now time.Time, feeBasisPoints uint64) *AuctionEvent {
	return &AuctionEvent{
		EventID:        newEventID(now),
		Kind:           EventFeeBasisPointsSet,
		Timestamp:      now,
		FeeBasisPoints: &feeBasisPoints,
	}
}

// NewFeeRecipientSetEvent builds the event emitted after an admin recipient change.
func NewFeeRecipientSetEvent(now time.Time, recipient string) *AuctionEvent {
	return &AuctionEvent{
		EventID:      newEventID(now),
		Kind:         EventFeeRecipientSet,
		Timestamp:    now,
		FeeRecipient: recipient,
	}
}

func newEventID(now time.Time) string {
	return ulid.MustNewDefault(now).String()
}
