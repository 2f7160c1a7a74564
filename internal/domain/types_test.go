package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTerms(t *testing.T) {
	tests := []struct {
		name           string
		duration       uint64
		feeBasisPoints uint64
		royaltyBps     uint64
		wantErr        error
	}{
		{
			name:           "valid terms",
			duration:       10000,
			feeBasisPoints: 100,
			royaltyBps:     100,
		},
		{
			name:           "sum exactly at denominator",
			duration:       10000,
			feeBasisPoints: 5000,
			royaltyBps:     5000,
		},
		{
			name:     "zero duration",
			duration: 0,
			wantErr:  &DurationIsZeroError{},
		},
		{
			name:           "sum one over denominator",
			duration:       10000,
			feeBasisPoints: 1,
			royaltyBps:     Denominator,
			wantErr:        &FeeRoyaltySumExceedsDenominatorError{},
		},
		{
			name:           "royalty at max uint64 does not wrap",
			duration:       10000,
			feeBasisPoints: 100,
			royaltyBps:     math.MaxUint64,
			wantErr:        &FeeRoyaltySumExceedsDenominatorError{},
		},
		{
			name:           "fee at max uint64 does not wrap",
			duration:       10000,
			feeBasisPoints: math.MaxUint64,
			royaltyBps:     100,
			wantErr:        &FeeRoyaltySumExceedsDenominatorError{},
		},
		{
			name:           "both terms wrap the sum to a small value",
			duration:       10000,
			feeBasisPoints: math.MaxUint64,
			royaltyBps:     math.MaxUint64,
			wantErr:        &FeeRoyaltySumExceedsDenominatorError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTerms(tt.duration, tt.feeBasisPoints, tt.royaltyBps)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestHasRoyalty(t *testing.T) {
	a := &Auction{RoyaltyBasisPoints: 100, RoyaltyRecipient: common.HexToAddress("0x01")}
	assert.True(t, a.HasRoyalty())

	a = &Auction{RoyaltyBasisPoints: 0, RoyaltyRecipient: common.HexToAddress("0x01")}
	assert.False(t, a.HasRoyalty())

	a = &Auction{RoyaltyBasisPoints: 100}
	assert.False(t, a.HasRoyalty())
}

func TestTokenTypeValid(t *testing.T) {
	assert.True(t, TokenTypeERC721.Valid())
	assert.True(t, TokenTypeERC1155.Valid())
	assert.False(t, TokenType("erc20").Valid())
	assert.False(t, TokenType("").Valid())
}

func TestReserveExceedsStartPriceErrorMessage(t *testing.T) {
	err := &ReserveExceedsStartPriceError{
		StartPrice:   big.NewInt(100),
		ReservePrice: big.NewInt(10000),
	}
	assert.Equal(t, "reserve price 10000 exceeds start price 100", err.Error())
}
