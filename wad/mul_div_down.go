package wad

import (
	"math/big"

	"github.com/optakt/irm/b"
)

// MulDivDown returns floor(x * y / d). The product is checked against the
// signed 256-bit range before dividing.
func MulDivDown(x *big.Int, y *big.Int, d *big.Int) *big.Int {
	product := Check(big.NewInt(0).Mul(x, y))
	return FloorDiv(product, d)
}

// MulDown returns floor(x * y / WAD).
func MulDown(x *big.Int, y *big.Int) *big.Int {
	return MulDivDown(x, y, b.WAD)
}

// DivDown returns floor(x * WAD / y).
func DivDown(x *big.Int, y *big.Int) *big.Int {
	return MulDivDown(x, b.WAD, y)
}
