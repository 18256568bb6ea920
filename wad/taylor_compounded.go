package wad

import (
	"math/big"

	"github.com/optakt/irm/b"
)

// TaylorCompounded approximates (1 + x)^n - 1 for a WAD-scaled per-second rate
// x over n seconds with the first three terms of the Taylor expansion of
// e^(x*n) - 1:
//
//	t1 = x * n
//	t2 = t1^2 / (2 * WAD)
//	t3 = t2 * t1 / (3 * WAD)
func TaylorCompounded(x *big.Int, n *big.Int) *big.Int {

	t1 := Check(big.NewInt(0).Mul(x, n))

	twoWAD := big.NewInt(0).Mul(b.D2, b.WAD)
	t2 := MulDivDown(t1, t1, twoWAD)

	threeWAD := big.NewInt(0).Mul(b.D3, b.WAD)
	t3 := MulDivDown(t2, t1, threeWAD)

	out := big.NewInt(0).Add(t1, t2)
	out.Add(out, t3)

	return Check(out)
}
