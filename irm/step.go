package irm

import (
	"math/big"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/wad"
)

// Input is one observation of a market.
type Input struct {
	TotalBorrowAssets *big.Int
	TotalSupplyAssets *big.Int
	Timestamp         uint64
}

// Step advances the state of a market to the input's timestamp and returns the
// new state with the borrow rate per second to apply until the next step. It
// does not modify its arguments.
//
// The rate is the curve evaluated at the average rate at target over the
// elapsed period, estimated from its values at the start, middle and end:
// (start + 2 * mid + end) / 4.
//
// Timestamps are expected to be non-decreasing. A timestamp earlier than the
// last update is not rejected; it yields a negative elapsed time that runs
// through the same computation.
//
// Step panics with wad.ErrOverflow if an intermediate value leaves the signed
// 256-bit range.
func Step(cfg Config, state State, in Input) (State, *big.Int) {

	utilization := Utilization(in.TotalBorrowAssets, in.TotalSupplyAssets)
	deviation := UtilizationError(utilization, cfg.TargetUtilization)

	var avgRateAtTarget, endRateAtTarget *big.Int
	switch {

	case !state.Initialized():
		avgRateAtTarget = big.NewInt(0).Set(cfg.InitialRateAtTarget)
		endRateAtTarget = big.NewInt(0).Set(cfg.InitialRateAtTarget)

	default:
		start := state.RateAtTarget

		speed := wad.MulDown(cfg.AdjustmentSpeed, deviation)
		elapsed := big.NewInt(0).SetUint64(in.Timestamp)
		elapsed.Sub(elapsed, big.NewInt(0).SetUint64(state.LastUpdate))
		linearAdaptation := wad.Check(big.NewInt(0).Mul(speed, elapsed))

		if linearAdaptation.Sign() == 0 {
			avgRateAtTarget = big.NewInt(0).Set(start)
			endRateAtTarget = big.NewInt(0).Set(start)
			break
		}

		endRateAtTarget = newRateAtTarget(cfg, start, linearAdaptation)
		midRateAtTarget := newRateAtTarget(cfg, start, wad.FloorDiv(linearAdaptation, b.D2))

		avgRateAtTarget = big.NewInt(0).Mul(midRateAtTarget, b.D2)
		avgRateAtTarget.Add(avgRateAtTarget, start)
		avgRateAtTarget.Add(avgRateAtTarget, endRateAtTarget)
		avgRateAtTarget = wad.FloorDiv(avgRateAtTarget, b.D4)
	}

	next := State{
		RateAtTarget: endRateAtTarget,
		LastUpdate:   in.Timestamp,
	}
	rate := Curve(cfg.CurveSteepness, avgRateAtTarget, deviation)

	return next, rate
}
