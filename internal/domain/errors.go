package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// AuctionNotFoundError is returned when an auction id is absent from the
// ledger. It covers never-existed, already-sold and already-cancelled ids,
// which are indistinguishable once the record is deleted.
type AuctionNotFoundError struct {
	ID uint64
}

func (e *AuctionNotFoundError) Error() string {
	return fmt.Sprintf("auction %d does not exist", e.ID)
}

// DurationIsZeroError is returned when an auction is created with a zero
// duration.
type DurationIsZeroError struct{}

func (e *DurationIsZeroError) Error() string {
	return "auction duration cannot be zero"
}

// FeeRoyaltySumExceedsDenominatorError is returned when the creation-time
// royalty plus the current fee would exceed the basis-point denominator.
type FeeRoyaltySumExceedsDenominatorError struct {
	Denominator        uint64
	FeeBasisPoints     uint64
	RoyaltyBasisPoints uint64
}

func (e *FeeRoyaltySumExceedsDenominatorError) Error() string {
	return fmt.Sprintf("royalty basis points %d plus fee basis points %d exceeds denominator %d",
		e.RoyaltyBasisPoints, e.FeeBasisPoints, e.Denominator)
}

// FeeExceedsDenominatorError is returned when an admin fee update exceeds the
// basis-point denominator.
type FeeExceedsDenominatorError struct {
	Denominator    uint64
	FeeBasisPoints uint64
}

func (e *FeeExceedsDenominatorError) Error() string {
	return fmt.Sprintf("fee basis points %d exceeds denominator %d", e.FeeBasisPoints, e.Denominator)
}

// RecipientUnchangedError is returned when an admin recipient update would
// set the value already configured.
type RecipientUnchangedError struct {
	Recipient common.Address
}

func (e *RecipientUnchangedError) Error() string {
	return fmt.Sprintf("fee recipient already set to %s", e.Recipient.Hex())
}

// UnauthorizedError is returned when a caller fails a role check.
type UnauthorizedError struct {
	Caller common.Address
	// Required names the role the caller lacks, e.g. "owner" or "seller"
	Required string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("caller %s is not %s", e.Caller.Hex(), e.Required)
}

// ArgumentLengthMismatchError is returned by batch recovery operations when
// parallel argument arrays differ in length.
type ArgumentLengthMismatchError struct {
	Lengths []int
}

func (e *ArgumentLengthMismatchError) Error() string {
	return fmt.Sprintf("argument arrays differ in length: %v", e.Lengths)
}

// TransferFailedError is returned when an on-chain transfer could not be
// executed or reverted. Settlement transactions that hit it roll back.
type TransferFailedError struct {
	Op  string
	Err error
}

func (e *TransferFailedError) Error() string {
	return fmt.Sprintf("%s transfer failed: %v", e.Op, e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}

// InvalidTokenTypeError is returned when a listing names an unsupported
// token standard.
type InvalidTokenTypeError struct {
	TokenType string
}

func (e *InvalidTokenTypeError) Error() string {
	return fmt.Sprintf("unsupported token type %q", e.TokenType)
}

// InvalidAmountError is returned when a listing escrows a non-positive
// token quantity.
type InvalidAmountError struct{}

func (e *InvalidAmountError) Error() string {
	return "auction amount must be positive"
}

// ReserveExceedsStartPriceError is returned when a listing's reserve price
// is above its start price.
type ReserveExceedsStartPriceError struct {
	StartPrice   *big.Int
	ReservePrice *big.Int
}

func (e *ReserveExceedsStartPriceError) Error() string {
	return fmt.Sprintf("reserve price %s exceeds start price %s", e.ReservePrice, e.StartPrice)
}
