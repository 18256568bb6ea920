package position

import (
	"math/big"
)

// RateModel gives the borrow rate per second for a market's totals at a given
// timestamp.
type RateModel interface {
	BorrowRate(totalBorrowAssets *big.Int, totalSupplyAssets *big.Int, timestamp uint64) (*big.Int, error)
}
