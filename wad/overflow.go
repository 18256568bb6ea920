package wad

import (
	"errors"
	"math/big"

	"github.com/optakt/irm/b"
)

// ErrOverflow is the panic value raised when an intermediate value leaves the
// signed or unsigned 256-bit range of its operation. On-chain, the same
// computation would revert.
var ErrOverflow = errors.New("256-bit overflow")

// Check panics with ErrOverflow if x does not fit a signed 256-bit integer and
// returns x otherwise.
func Check(x *big.Int) *big.Int {
	if x.Cmp(b.MaxInt256) > 0 || x.Cmp(b.MinInt256) < 0 {
		panic(ErrOverflow)
	}
	return x
}
