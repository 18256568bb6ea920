package wad

import (
	"math/big"

	"github.com/holiman/uint256"
)

// MulDivDownUint256 returns x * y / d for unsigned 256-bit operands. It panics
// with ErrOverflow if an operand is negative or wider than 256 bits, or if the
// product does not fit 256 bits.
func MulDivDownUint256(x *big.Int, y *big.Int, d *big.Int) *big.Int {

	ux := toUint256(x)
	uy := toUint256(y)
	ud := toUint256(d)

	product, overflow := new(uint256.Int).MulOverflow(ux, uy)
	if overflow {
		panic(ErrOverflow)
	}

	return product.Div(product, ud).ToBig()
}

func toUint256(x *big.Int) *uint256.Int {
	if x.Sign() < 0 {
		panic(ErrOverflow)
	}
	v, overflow := uint256.FromBig(x)
	if overflow {
		panic(ErrOverflow)
	}
	return v
}
