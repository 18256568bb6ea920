// Package wad implements signed fixed-point arithmetic with 18 decimals, with
// every division rounding down.
package wad

import (
	"math/big"
)

// FloorDiv returns floor(x / y), rounding toward negative infinity for every
// combination of signs. It panics if y is zero.
//
// big.Int offers Quo (truncation) and Div (Euclidean); neither floors when the
// divisor is negative, so the remainder is adjusted explicitly.
func FloorDiv(x *big.Int, y *big.Int) *big.Int {
	q, r := big.NewInt(0).QuoRem(x, y, big.NewInt(0))
	if r.Sign() != 0 && (r.Sign() < 0) != (y.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}
