package engine

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/bulbafloor/auction-engine/internal/adapter"
	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/logger"
	"github.com/bulbafloor/auction-engine/internal/messaging"
	"github.com/bulbafloor/auction-engine/internal/pricing"
	"github.com/bulbafloor/auction-engine/internal/providers/ethereum"
	"github.com/bulbafloor/auction-engine/internal/store"
)

// CreateAuctionRequest carries the seller-chosen terms of a new listing.
// The auction id, fee snapshot and start time are assigned by the ledger.
type CreateAuctionRequest struct {
	Seller             common.Address
	Asset              domain.AssetReference
	Amount             *big.Int
	SaleToken          common.Address
	StartPrice         *big.Int
	ReservePrice       *big.Int
	RoyaltyRecipient   common.Address
	RoyaltyBasisPoints uint64
	Duration           uint64
}

// Engine runs the auction lifecycle: escrowed creation, buy settlement and
// cancellation. Each mutating operation is atomic; an auction either fully
// settles or stays open untouched.
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// CreateAuction escrows the asset and opens the listing.
	CreateAuction(ctx context.Context, req *CreateAuctionRequest) (*domain.Auction, error)

	// Buy settles an auction at its current price. The buyer pays exactly
	// the quoted amount; fee, royalty and seller proceeds are paid out and
	// the asset leaves escrow atomically with the ledger deletion.
	Buy(ctx context.Context, id uint64, buyer common.Address) (*domain.Sale, error)

	// CancelAuction withdraws a listing and returns the asset to the
	// seller. Only the seller may cancel.
	CancelAuction(ctx context.Context, id uint64, caller common.Address) (*domain.Cancellation, error)

	// GetAuction returns an open auction.
	GetAuction(ctx context.Context, id uint64) (*domain.Auction, error)

	// CurrentPrice quotes the live decayed price of an open auction.
	CurrentPrice(ctx context.Context, id uint64) (*domain.Quote, error)
}

type engine struct {
	store      store.Store
	transferor ethereum.Transferor
	publisher  messaging.Publisher
	clock      adapter.Clock
}

// New creates an auction engine.
func New(s store.Store, t ethereum.Transferor, p messaging.Publisher, clock adapter.Clock) Engine {
	return &engine{
		store:      s,
		transferor: t,
		publisher:  p,
		clock:      clock,
	}
}

func (e *engine) CreateAuction(ctx context.Context, req *CreateAuctionRequest) (*domain.Auction, error) {
	terms, err := e.buildTerms(req)
	if err != nil {
		return nil, err
	}

	// Validate terms against the current fee before pulling the asset into
	// escrow. An on-chain transfer cannot be rolled back, so nothing leaves
	// the seller's wallet until the terms are known to be acceptable.
	cfg, err := e.store.GetGlobalConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTerms(terms.Duration, cfg.FeeBasisPoints, terms.RoyaltyBasisPoints); err != nil {
		return nil, err
	}

	custodian := e.transferor.Custodian()
	if err := e.transferAsset(ctx, &terms.Asset, terms.Amount, terms.Seller, custodian); err != nil {
		return nil, err
	}

	created, err := e.store.CreateAuction(ctx, terms)
	if err != nil {
		// The asset is already in escrow with no ledger record claiming it.
		// Return it to the seller; a failed return leaves the asset for
		// manual recovery.
		if returnErr := e.transferAsset(ctx, &terms.Asset, terms.Amount, custodian, terms.Seller); returnErr != nil {
			logger.ErrorCtx(ctx, returnErr,
				zap.String("message", "Failed to return escrowed asset after ledger error"),
				zap.String("seller", terms.Seller.Hex()),
				zap.String("token_contract", terms.Asset.TokenContract.Hex()),
				zap.String("token_id", terms.Asset.TokenID.String()))
		}

		return nil, err
	}

	e.publish(ctx, domain.NewAuctionCreatedEvent(e.clock.Now().UTC(), created))

	return created, nil
}

func (e *engine) Buy(ctx context.Context, id uint64, buyer common.Address) (*domain.Sale, error) {
	var sale *domain.Sale

	err := e.store.ResolveAuction(ctx, id, func(a *domain.Auction, cfg *domain.GlobalConfig) error {
		price := pricing.CurrentPrice(a, e.clock.Now())
		fee, royalty, proceeds := pricing.Split(a, price)

		// Payment legs run first so a buyer without funds or allowance
		// cannot pull the asset out of escrow. The fee recipient is read
		// live from the global config, not snapshotted.
		if fee.Sign() > 0 {
			if err := e.transferor.ERC20TransferFrom(ctx, a.SaleToken, buyer, cfg.FeeRecipient, fee); err != nil {
				return err
			}
		}
		if royalty.Sign() > 0 {
			if err := e.transferor.ERC20TransferFrom(ctx, a.SaleToken, buyer, a.RoyaltyRecipient, royalty); err != nil {
				return err
			}
		}
		if err := e.transferor.ERC20TransferFrom(ctx, a.SaleToken, buyer, a.Seller, proceeds); err != nil {
			return err
		}

		if err := e.transferAsset(ctx, &a.Asset, a.Amount, e.transferor.Custodian(), buyer); err != nil {
			return err
		}

		sale = &domain.Sale{
			AuctionID: a.ID,
			Seller:    a.Seller,
			Buyer:     buyer,
			Asset:     a.Asset,
			Amount:    a.Amount,
			SaleToken: a.SaleToken,
			Price:     price,
			Fee:       fee,
			Royalty:   royalty,
			Proceeds:  proceeds,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, domain.NewAuctionSuccessfulEvent(e.clock.Now().UTC(), sale))

	return sale, nil
}

func (e *engine) CancelAuction(ctx context.Context, id uint64, caller common.Address) (*domain.Cancellation, error) {
	var cancellation *domain.Cancellation

	err := e.store.ResolveAuction(ctx, id, func(a *domain.Auction, cfg *domain.GlobalConfig) error {
		if caller != a.Seller {
			return &domain.UnauthorizedError{Caller: caller, Required: "seller"}
		}

		if err := e.transferAsset(ctx, &a.Asset, a.Amount, e.transferor.Custodian(), a.Seller); err != nil {
			return err
		}

		cancellation = &domain.Cancellation{
			AuctionID: a.ID,
			Seller:    a.Seller,
			Asset:     a.Asset,
			Amount:    a.Amount,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, domain.NewAuctionCancelledEvent(e.clock.Now().UTC(), cancellation))

	return cancellation, nil
}

func (e *engine) GetAuction(ctx context.Context, id uint64) (*domain.Auction, error) {
	return e.store.GetAuction(ctx, id)
}

func (e *engine) CurrentPrice(ctx context.Context, id uint64) (*domain.Quote, error) {
	a, err := e.store.GetAuction(ctx, id)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()

	return &domain.Quote{
		AuctionID: a.ID,
		SaleToken: a.SaleToken,
		Price:     pricing.CurrentPrice(a, now),
		At:        now.UTC(),
	}, nil
}

// buildTerms normalizes a creation request into ledger terms.
func (e *engine) buildTerms(req *CreateAuctionRequest) (*domain.Auction, error) {
	if !req.Asset.TokenType.Valid() {
		return nil, &domain.InvalidTokenTypeError{TokenType: string(req.Asset.TokenType)}
	}

	amount := req.Amount
	if req.Asset.TokenType == domain.TokenTypeERC721 {
		// An ERC721 listing always escrows exactly one token
		amount = big.NewInt(1)
	}
	if amount == nil || amount.Sign() <= 0 {
		return nil, &domain.InvalidAmountError{}
	}

	startPrice := req.StartPrice
	if startPrice == nil {
		startPrice = big.NewInt(0)
	}
	reservePrice := req.ReservePrice
	if reservePrice == nil {
		reservePrice = big.NewInt(0)
	}
	if reservePrice.Cmp(startPrice) > 0 {
		return nil, &domain.ReserveExceedsStartPriceError{
			StartPrice:   startPrice,
			ReservePrice: reservePrice,
		}
	}

	return &domain.Auction{
		Asset:              req.Asset,
		Amount:             amount,
		SaleToken:          req.SaleToken,
		Seller:             req.Seller,
		StartPrice:         startPrice,
		ReservePrice:       reservePrice,
		RoyaltyRecipient:   req.RoyaltyRecipient,
		RoyaltyBasisPoints: req.RoyaltyBasisPoints,
		Duration:           req.Duration,
	}, nil
}

// transferAsset moves the escrowed asset with the transfer call matching its
// token type.
func (e *engine) transferAsset(ctx context.Context, asset *domain.AssetReference, amount *big.Int, from, to common.Address) error {
	switch asset.TokenType {
	case domain.TokenTypeERC1155:
		return e.transferor.ERC1155TransferFrom(ctx, asset.TokenContract, from, to, asset.TokenID, amount)
	default:
		return e.transferor.ERC721TransferFrom(ctx, asset.TokenContract, from, to, asset.TokenID)
	}
}

// publish sends a lifecycle event. The state change is already committed, so
// a broker failure is logged rather than unwound.
func (e *engine) publish(ctx context.Context, event *domain.AuctionEvent) {
	if err := e.publisher.PublishAuctionEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to publish auction event"),
			zap.String("event_id", event.EventID),
			zap.String("kind", string(event.Kind)))
	}
}
