package irm

import (
	"fmt"
	"math/big"

	"github.com/optakt/irm/b"
)

// Config holds the immutable parameters of one adaptive curve. Every value is
// WAD-scaled; rates are per second.
type Config struct {
	CurveSteepness      *big.Int
	AdjustmentSpeed     *big.Int
	TargetUtilization   *big.Int
	InitialRateAtTarget *big.Int
	MinRateAtTarget     *big.Int
	MaxRateAtTarget     *big.Int
}

// DefaultConfig returns the parameters of the deployed curve: a steepness of
// 4, an adjustment speed of 50 per year, 90% target utilization, and a rate at
// target starting at 4% per year, bounded by 0.1% and 200% per year.
func DefaultConfig() Config {

	speed := big.NewInt(0).Mul(b.D50, b.WAD)
	speed.Div(speed, b.SPY)

	target := big.NewInt(0).Mul(b.D9, b.WAD)
	target.Div(target, b.D10)

	initial := big.NewInt(0).Mul(b.D4, b.WAD)
	initial.Div(initial, b.D100)
	initial.Div(initial, b.SPY)

	minRate := big.NewInt(0).Div(b.WAD, b.D1000)
	minRate.Div(minRate, b.SPY)

	maxRate := big.NewInt(0).Mul(b.D2, b.WAD)
	maxRate.Div(maxRate, b.SPY)

	cfg := Config{
		CurveSteepness:      big.NewInt(0).Mul(b.D4, b.WAD),
		AdjustmentSpeed:     speed,
		TargetUtilization:   target,
		InitialRateAtTarget: initial,
		MinRateAtTarget:     minRate,
		MaxRateAtTarget:     maxRate,
	}

	return cfg
}

// Validate checks the parameters against the bounds the on-chain contract
// accepts.
func (c Config) Validate() error {

	fields := map[string]*big.Int{
		"curve steepness":        c.CurveSteepness,
		"adjustment speed":       c.AdjustmentSpeed,
		"target utilization":     c.TargetUtilization,
		"initial rate at target": c.InitialRateAtTarget,
		"min rate at target":     c.MinRateAtTarget,
		"max rate at target":     c.MaxRateAtTarget,
	}
	for name, value := range fields {
		if value == nil {
			return fmt.Errorf("%w: missing %s", ErrInvalidConfig, name)
		}
		if value.Sign() < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidConfig, name)
		}
	}

	maxSteepness := big.NewInt(0).Mul(b.D100, b.WAD)
	if c.CurveSteepness.Cmp(b.WAD) < 0 || c.CurveSteepness.Cmp(maxSteepness) > 0 {
		return fmt.Errorf("%w: curve steepness %s outside [WAD, 100 WAD]", ErrInvalidConfig, c.CurveSteepness)
	}

	maxSpeed := big.NewInt(0).Mul(b.D1000, b.WAD)
	maxSpeed.Div(maxSpeed, b.SPY)
	if c.AdjustmentSpeed.Cmp(maxSpeed) > 0 {
		return fmt.Errorf("%w: adjustment speed %s above 1000 per year", ErrInvalidConfig, c.AdjustmentSpeed)
	}

	if c.TargetUtilization.Sign() <= 0 || c.TargetUtilization.Cmp(b.WAD) >= 0 {
		return fmt.Errorf("%w: target utilization %s outside (0, WAD)", ErrInvalidConfig, c.TargetUtilization)
	}

	if c.MinRateAtTarget.Cmp(c.InitialRateAtTarget) > 0 || c.InitialRateAtTarget.Cmp(c.MaxRateAtTarget) > 0 {
		return fmt.Errorf("%w: rate at target bounds not ordered (min %s, initial %s, max %s)",
			ErrInvalidConfig, c.MinRateAtTarget, c.InitialRateAtTarget, c.MaxRateAtTarget)
	}

	return nil
}

func (c Config) clone() Config {
	return Config{
		CurveSteepness:      big.NewInt(0).Set(c.CurveSteepness),
		AdjustmentSpeed:     big.NewInt(0).Set(c.AdjustmentSpeed),
		TargetUtilization:   big.NewInt(0).Set(c.TargetUtilization),
		InitialRateAtTarget: big.NewInt(0).Set(c.InitialRateAtTarget),
		MinRateAtTarget:     big.NewInt(0).Set(c.MinRateAtTarget),
		MaxRateAtTarget:     big.NewInt(0).Set(c.MaxRateAtTarget),
	}
}
