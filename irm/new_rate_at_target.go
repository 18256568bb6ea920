package irm

import (
	"math/big"

	"github.com/optakt/irm/wad"
)

// newRateAtTarget moves the rate at target by e^linearAdaptation and clamps
// the result to the configured bounds.
func newRateAtTarget(cfg Config, start *big.Int, linearAdaptation *big.Int) *big.Int {

	rate := wad.MulDown(start, wad.Exp(linearAdaptation))

	if rate.Cmp(cfg.MaxRateAtTarget) > 0 {
		return big.NewInt(0).Set(cfg.MaxRateAtTarget)
	}
	if rate.Cmp(cfg.MinRateAtTarget) < 0 {
		return big.NewInt(0).Set(cfg.MinRateAtTarget)
	}

	return rate
}
