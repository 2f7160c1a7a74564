// Package pricing computes the live price of a Dutch auction as a pure
// function of wall-clock time. The price decays linearly from the start
// price to the reserve price over the auction duration and stays at the
// reserve price thereafter.
package pricing

import (
	"math/big"
	"time"

	"github.com/bulbafloor/auction-engine/internal/domain"
)

// CurrentPrice returns the price of the auction at the given instant.
//
// For elapsed >= duration the price is exactly the reserve price. Otherwise
// it is reserve + (start-reserve)*(duration-elapsed)/duration with truncating
// integer division applied after the multiplication; dividing first would
// lose precision. The caller guarantees the auction exists and has a
// non-zero duration, so no validation happens here.
func CurrentPrice(a *domain.Auction, now time.Time) *big.Int {
	elapsed := now.Unix() - a.StartTime.Unix()
	if elapsed < 0 {
		elapsed = 0
	}
	if uint64(elapsed) >= a.Duration {
		return new(big.Int).Set(a.ReservePrice)
	}

	remaining := new(big.Int).SetUint64(a.Duration - uint64(elapsed))
	spread := new(big.Int).Sub(a.StartPrice, a.ReservePrice)

	price := new(big.Int).Mul(spread, remaining)
	price.Div(price, new(big.Int).SetUint64(a.Duration))
	price.Add(price, a.ReservePrice)
	return price
}

// Split divides a sale price into fee, royalty and seller proceeds using the
// auction's basis-point snapshot. Fee and royalty round down, so
// fee + royalty + proceeds == price holds exactly.
func Split(a *domain.Auction, price *big.Int) (fee, royalty, proceeds *big.Int) {
	fee = cut(price, a.FeeBasisPoints)
	if a.HasRoyalty() {
		royalty = cut(price, a.RoyaltyBasisPoints)
	} else {
		royalty = new(big.Int)
	}

	proceeds = new(big.Int).Sub(price, fee)
	proceeds.Sub(proceeds, royalty)
	return fee, royalty, proceeds
}

func cut(price *big.Int, basisPoints uint64) *big.Int {
	if basisPoints == 0 {
		return new(big.Int)
	}
	c := new(big.Int).Mul(price, new(big.Int).SetUint64(basisPoints))
	return c.Div(c, new(big.Int).SetUint64(domain.Denominator))
}
