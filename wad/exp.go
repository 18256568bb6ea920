package wad

import (
	"math/big"

	"github.com/optakt/irm/b"
)

var (
	halfLN2    = FloorDiv(b.LN2, b.D2)
	negHalfLN2 = FloorDiv(big.NewInt(0).Neg(b.LN2), b.D2)
)

// Exp approximates e^x for a WAD-scaled x, reproducing the on-chain wExp bit
// for bit.
//
// x is split as q*ln(2) + r with q the nearest integer and r in
// [-ln(2)/2, ln(2)/2]; e^r is taken to the second order and scaled by 2^q with
// shifts. Below ln(1e-18) the result is 0; from the upper bound on it is the
// constant value at the bound.
func Exp(x *big.Int) *big.Int {

	if x.Cmp(b.LNWei) < 0 {
		return big.NewInt(0)
	}
	if x.Cmp(b.WExpUpperBound) >= 0 {
		return big.NewInt(0).Set(b.WExpUpperValue)
	}

	adjustment := halfLN2
	if x.Sign() < 0 {
		adjustment = negHalfLN2
	}
	q := FloorDiv(big.NewInt(0).Add(x, adjustment), b.LN2)
	r := big.NewInt(0).Mul(q, b.LN2)
	r.Sub(x, r)

	r2 := FloorDiv(big.NewInt(0).Mul(r, r), b.WAD)
	r2 = FloorDiv(r2, b.D2)

	expR := big.NewInt(0).Add(b.WAD, r)
	expR.Add(expR, r2)

	// expR > 0 here, and big.Int shifts floor for negative values anyway.
	shift := uint(big.NewInt(0).Abs(q).Uint64())
	if q.Sign() >= 0 {
		return Check(expR.Lsh(expR, shift))
	}
	return expR.Rsh(expR, shift)
}
