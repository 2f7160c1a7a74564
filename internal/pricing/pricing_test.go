package pricing_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulbafloor/auction-engine/internal/domain"
	"github.com/bulbafloor/auction-engine/internal/pricing"
)

func newTestAuction(startPrice, reservePrice int64, duration uint64) *domain.Auction {
	return &domain.Auction{
		ID: 0,
		Asset: domain.AssetReference{
			TokenContract: common.HexToAddress("0x1111111111111111111111111111111111111111"),
			TokenID:       big.NewInt(1),
			TokenType:     domain.TokenTypeERC721,
		},
		Amount:             big.NewInt(1),
		SaleToken:          common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Seller:             common.HexToAddress("0x3333333333333333333333333333333333333333"),
		StartPrice:         big.NewInt(startPrice),
		ReservePrice:       big.NewInt(reservePrice),
		FeeBasisPoints:     100,
		RoyaltyRecipient:   common.HexToAddress("0x4444444444444444444444444444444444444444"),
		RoyaltyBasisPoints: 100,
		Duration:           duration,
		StartTime:          time.Unix(1_700_000_000, 0),
	}
}

func TestCurrentPrice(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  int64
		expected int64
	}{
		{name: "start price at creation", elapsed: 0, expected: 10000},
		{name: "midpoint", elapsed: 5000, expected: 5125}, // 250 + 9750*5000/10000
		{name: "one second before expiry", elapsed: 9999, expected: 250 + 9750*1/10000},
		{name: "reserve at exact expiry", elapsed: 10000, expected: 250},
		{name: "reserve far past expiry", elapsed: 10_000_000, expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAuction(10000, 250, 10000)
			now := a.StartTime.Add(time.Duration(tt.elapsed) * time.Second)
			price := pricing.CurrentPrice(a, now)
			assert.Equal(t, tt.expected, price.Int64())
		})
	}
}

func TestCurrentPrice_MonotonicallyNonIncreasing(t *testing.T) {
	a := newTestAuction(987654, 321, 3600)

	prev := pricing.CurrentPrice(a, a.StartTime)
	require.Equal(t, a.StartPrice, prev)

	for elapsed := int64(1); elapsed <= 4000; elapsed += 7 {
		now := a.StartTime.Add(time.Duration(elapsed) * time.Second)
		price := pricing.CurrentPrice(a, now)

		assert.LessOrEqual(t, price.Cmp(prev), 0, "price increased at elapsed=%d", elapsed)
		assert.GreaterOrEqual(t, price.Cmp(a.ReservePrice), 0, "price fell below reserve at elapsed=%d", elapsed)
		assert.LessOrEqual(t, price.Cmp(a.StartPrice), 0, "price exceeded start at elapsed=%d", elapsed)
		prev = price
	}

	// Constant at reserve once the duration has passed.
	assert.Equal(t, a.ReservePrice, pricing.CurrentPrice(a, a.StartTime.Add(3600*time.Second)))
	assert.Equal(t, a.ReservePrice, pricing.CurrentPrice(a, a.StartTime.Add(100*3600*time.Second)))
}

func TestCurrentPrice_MultiplyBeforeDivide(t *testing.T) {
	// With a spread smaller than the duration a divide-first implementation
	// would floor the per-second decay to zero and pin the price at reserve
	// plus zero; the correct ordering keeps intermediate precision.
	a := newTestAuction(100, 0, 10000)
	now := a.StartTime.Add(5000 * time.Second)
	assert.Equal(t, int64(50), pricing.CurrentPrice(a, now).Int64())
}

func TestCurrentPrice_DoesNotMutateAuction(t *testing.T) {
	a := newTestAuction(10000, 250, 10000)
	_ = pricing.CurrentPrice(a, a.StartTime.Add(5000*time.Second))

	assert.Equal(t, int64(10000), a.StartPrice.Int64())
	assert.Equal(t, int64(250), a.ReservePrice.Int64())
}

func TestSplit(t *testing.T) {
	a := newTestAuction(10000, 250, 10000)

	fee, royalty, proceeds := pricing.Split(a, big.NewInt(5125))
	assert.Equal(t, int64(51), fee.Int64())
	assert.Equal(t, int64(51), royalty.Int64())
	assert.Equal(t, int64(5023), proceeds.Int64())
}

func TestSplit_Conservation(t *testing.T) {
	a := newTestAuction(10000, 250, 10000)
	a.FeeBasisPoints = 333
	a.RoyaltyBasisPoints = 77

	for _, price := range []int64{0, 1, 3, 9999, 5125, 123456789} {
		p := big.NewInt(price)
		fee, royalty, proceeds := pricing.Split(a, p)

		sum := new(big.Int).Add(fee, royalty)
		sum.Add(sum, proceeds)
		assert.Equal(t, p, sum, "fee+royalty+proceeds != price for price=%d", price)
		assert.GreaterOrEqual(t, proceeds.Sign(), 0)
	}
}

func TestSplit_ZeroBasisPoints(t *testing.T) {
	a := newTestAuction(10000, 250, 10000)
	a.FeeBasisPoints = 0
	a.RoyaltyBasisPoints = 0

	fee, royalty, proceeds := pricing.Split(a, big.NewInt(5125))
	assert.Zero(t, fee.Sign())
	assert.Zero(t, royalty.Sign())
	assert.Equal(t, int64(5125), proceeds.Int64())
}

func TestSplit_NoRoyaltyForZeroRecipient(t *testing.T) {
	a := newTestAuction(10000, 250, 10000)
	a.RoyaltyRecipient = common.Address{}
	a.RoyaltyBasisPoints = 500

	_, royalty, proceeds := pricing.Split(a, big.NewInt(10000))
	assert.Zero(t, royalty.Sign())
	assert.Equal(t, int64(9900), proceeds.Int64()) // only the 1% fee deducted
}
