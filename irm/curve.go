package irm

import (
	"math/big"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/wad"
)

// Curve maps a rate at target and a normalized utilization error (deviation)
// to a rate. Below target the multiplier goes linearly down to 1/steepness at
// a deviation of -1; above target it goes up to steepness at +1.
func Curve(steepness *big.Int, rateAtTarget *big.Int, deviation *big.Int) *big.Int {

	var coeff *big.Int
	if deviation.Sign() < 0 {
		coeff = big.NewInt(0).Sub(b.WAD, wad.DivDown(b.WAD, steepness))
	} else {
		coeff = big.NewInt(0).Sub(steepness, b.WAD)
	}

	multiplier := wad.MulDown(coeff, deviation)
	multiplier.Add(multiplier, b.WAD)

	return wad.MulDown(multiplier, rateAtTarget)
}
