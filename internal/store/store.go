package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bulbafloor/auction-engine/internal/domain"
)

// Store is the canonical ledger of open auctions and global marketplace
// configuration. Implementations must make each method a single atomic
// unit against the backing database.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// SeedGlobalConfig inserts the configuration row if it does not exist
	// yet. An existing row is left untouched.
	SeedGlobalConfig(ctx context.Context, cfg *domain.GlobalConfig) error

	// GetGlobalConfig returns the current global configuration.
	GetGlobalConfig(ctx context.Context) (*domain.GlobalConfig, error)

	// SetFeeBasisPoints updates the marketplace fee applied to auctions
	// created after the update. Open auctions keep their snapshot.
	SetFeeBasisPoints(ctx context.Context, feeBasisPoints uint64) error

	// SetFeeRecipient updates the fee recipient. Setting the recipient to
	// its current value fails with RecipientUnchangedError.
	SetFeeRecipient(ctx context.Context, recipient common.Address) error

	// CreateAuction validates the given terms, assigns the next sequential
	// auction id, snapshots the current fee basis points, stamps the start
	// time and persists the record. The stored auction is returned.
	CreateAuction(ctx context.Context, terms *domain.Auction) (*domain.Auction, error)

	// GetAuction returns the auction with the given id, or
	// AuctionNotFoundError if no such auction is open.
	GetAuction(ctx context.Context, id uint64) (*domain.Auction, error)

	// ResolveAuction terminates an auction. It locks the auction row,
	// invokes settle with the record and the current global configuration,
	// and deletes the row if settle returns nil. A non-nil error from
	// settle rolls the whole transaction back and the auction stays open.
	ResolveAuction(ctx context.Context, id uint64, settle func(a *domain.Auction, cfg *domain.GlobalConfig) error) error
}
