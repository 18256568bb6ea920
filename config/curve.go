package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/wad"
)

// CurveConfig holds the curve parameters as decimal strings. Speed and rates
// are per year; they are converted to WAD-scaled values per second by flooring
// twice, first to WAD and then to seconds. Empty values take the defaults.
type CurveConfig struct {
	Steepness           string `yaml:"steepness"`
	AdjustmentSpeed     string `yaml:"adjustment_speed"`
	TargetUtilization   string `yaml:"target_utilization"`
	InitialRateAtTarget string `yaml:"initial_rate_at_target"`
	MinRateAtTarget     string `yaml:"min_rate_at_target"`
	MaxRateAtTarget     string `yaml:"max_rate_at_target"`
}

func (c *CurveConfig) normalize() {
	set := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	set(&c.Steepness, "4")
	set(&c.AdjustmentSpeed, "50")
	set(&c.TargetUtilization, "0.9")
	set(&c.InitialRateAtTarget, "0.04")
	set(&c.MinRateAtTarget, "0.001")
	set(&c.MaxRateAtTarget, "2")
}

// Build converts the parameters into a validated curve configuration.
func (c CurveConfig) Build() (irm.Config, error) {

	steepness, err := scaled(c.Steepness)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse steepness: %w", err)
	}
	speed, err := perSecond(c.AdjustmentSpeed)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse adjustment speed: %w", err)
	}
	target, err := scaled(c.TargetUtilization)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse target utilization: %w", err)
	}
	initial, err := perSecond(c.InitialRateAtTarget)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse initial rate at target: %w", err)
	}
	minRate, err := perSecond(c.MinRateAtTarget)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse min rate at target: %w", err)
	}
	maxRate, err := perSecond(c.MaxRateAtTarget)
	if err != nil {
		return irm.Config{}, fmt.Errorf("could not parse max rate at target: %w", err)
	}

	cfg := irm.Config{
		CurveSteepness:      steepness,
		AdjustmentSpeed:     speed,
		TargetUtilization:   target,
		InitialRateAtTarget: initial,
		MinRateAtTarget:     minRate,
		MaxRateAtTarget:     maxRate,
	}
	err = cfg.Validate()
	if err != nil {
		return irm.Config{}, err
	}

	return cfg, nil
}

// scaled returns floor(value * WAD) for an exact decimal value.
func scaled(value string) (*big.Int, error) {
	r, ok := big.NewRat(0, 1).SetString(value)
	if !ok {
		return nil, fmt.Errorf("invalid decimal %q", value)
	}
	num := big.NewInt(0).Mul(r.Num(), b.WAD)
	return wad.FloorDiv(num, r.Denom()), nil
}

// perSecond returns floor(floor(value * WAD) / SPY).
func perSecond(value string) (*big.Int, error) {
	perYear, err := scaled(value)
	if err != nil {
		return nil, err
	}
	return wad.FloorDiv(perYear, b.SPY), nil
}
