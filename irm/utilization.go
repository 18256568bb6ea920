package irm

import (
	"math/big"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/wad"
)

// Utilization returns borrowed / supplied in WAD, or zero without supply. The
// totals are unsigned, so borrowed * WAD may use the full 256 bits.
func Utilization(totalBorrowAssets *big.Int, totalSupplyAssets *big.Int) *big.Int {
	if totalSupplyAssets.Sign() <= 0 {
		return big.NewInt(0)
	}
	return wad.MulDivDownUint256(totalBorrowAssets, b.WAD, totalSupplyAssets)
}

// UtilizationError normalizes the distance between utilization and target to
// [-WAD, WAD]: deviations above target are divided by WAD - target, the ones
// below by target.
func UtilizationError(utilization *big.Int, target *big.Int) *big.Int {

	factor := target
	if utilization.Cmp(target) > 0 {
		factor = big.NewInt(0).Sub(b.WAD, target)
	}

	delta := big.NewInt(0).Sub(utilization, target)
	return wad.DivDown(delta, factor)
}
