package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Denominator is the basis-point denominator for fee and royalty percentages.
const Denominator uint64 = 10000

// TokenType discriminates the transfer interface of an escrowed asset.
type TokenType string

const (
	TokenTypeERC721  TokenType = "erc721"
	TokenTypeERC1155 TokenType = "erc1155"
)

// Valid checks if a token type is supported
func (t TokenType) Valid() bool {
	return t == TokenTypeERC721 || t == TokenTypeERC1155
}

// AssetReference identifies the single token held in escrow for an auction.
// Immutable once embedded in an auction record.
type AssetReference struct {
	TokenContract common.Address
	TokenID       *big.Int
	TokenType     TokenType
}

// Auction is a live listing. Every field is immutable after creation; the
// only transitions are deletion through a sale or a cancellation, so a
// missing id is indistinguishable between never-existed, sold and cancelled.
type Auction struct {
	ID    uint64
	Asset AssetReference
	// Amount is the escrowed quantity for ERC1155 assets, always 1 for ERC721
	Amount    *big.Int
	SaleToken common.Address
	Seller    common.Address

	StartPrice   *big.Int
	ReservePrice *big.Int
	// FeeBasisPoints is a snapshot of the global fee taken at creation time,
	// immune to later fee changes
	FeeBasisPoints     uint64
	RoyaltyRecipient   common.Address
	RoyaltyBasisPoints uint64

	// Duration is the decay window in seconds; past it the price stays at
	// ReservePrice until the auction is bought or cancelled
	Duration  uint64
	StartTime time.Time
}

// HasRoyalty reports whether a sale of this auction owes a royalty cut.
func (a *Auction) HasRoyalty() bool {
	return a.RoyaltyBasisPoints > 0 && a.RoyaltyRecipient != (common.Address{})
}

// GlobalConfig holds the marketplace-wide parameters. A single record exists;
// it is seeded once at startup and mutated only through the admin controller.
type GlobalConfig struct {
	Owner          common.Address
	FeeBasisPoints uint64
	FeeRecipient   common.Address
}

// ValidateTerms checks the creation-time invariants of new auction terms.
func ValidateTerms(duration, feeBasisPoints, royaltyBasisPoints uint64) error {
	if duration == 0 {
		return &DurationIsZeroError{}
	}
	// Bound each term before comparing the sum so the uint64 addition
	// cannot wrap.
	if royaltyBasisPoints > Denominator || feeBasisPoints > Denominator-royaltyBasisPoints {
		return &FeeRoyaltySumExceedsDenominatorError{
			Denominator:        Denominator,
			FeeBasisPoints:     feeBasisPoints,
			RoyaltyBasisPoints: royaltyBasisPoints,
		}
	}
	return nil
}

// Sale is the outcome of a successful buy. Fee, Royalty and Proceeds always
// sum to Price exactly.
type Sale struct {
	AuctionID uint64
	Seller    common.Address
	Buyer     common.Address
	Asset     AssetReference
	Amount    *big.Int
	SaleToken common.Address
	Price     *big.Int
	Fee       *big.Int
	Royalty   *big.Int
	Proceeds  *big.Int
}

// Cancellation is the outcome of a seller-initiated withdrawal.
type Cancellation struct {
	AuctionID uint64
	Seller    common.Address
	Asset     AssetReference
	Amount    *big.Int
}

// Quote is the read-only live price of an auction at a point in time.
type Quote struct {
	AuctionID uint64
	SaleToken common.Address
	Price     *big.Int
	At        time.Time
}
