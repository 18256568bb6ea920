package irm

import (
	"fmt"
	"math/big"
)

// State is the mutable part of one market's curve. The zero value is a market
// that was never updated.
//
// LastUpdate == 0 is the "never updated" sentinel. A step made at timestamp 0
// therefore keeps the market in that state, and the next step is again treated
// as the first one.
type State struct {
	RateAtTarget *big.Int `json:"rate_at_target"`
	LastUpdate   uint64   `json:"last_update"`
}

// Initialized reports whether the state has been through a step at a non-zero
// timestamp.
func (s State) Initialized() bool {
	return s.LastUpdate != 0
}

// Copy returns a deep copy of the state.
func (s State) Copy() State {
	out := State{
		LastUpdate: s.LastUpdate,
	}
	if s.RateAtTarget != nil {
		out.RateAtTarget = big.NewInt(0).Set(s.RateAtTarget)
	}
	return out
}

// Validate checks that an initialized state holds a rate at target within the
// configured bounds.
func (s State) Validate(cfg Config) error {
	if !s.Initialized() {
		return nil
	}
	if s.RateAtTarget == nil {
		return fmt.Errorf("%w: missing rate at target", ErrInvalidState)
	}
	if s.RateAtTarget.Cmp(cfg.MinRateAtTarget) < 0 || s.RateAtTarget.Cmp(cfg.MaxRateAtTarget) > 0 {
		return fmt.Errorf("%w: rate at target %s outside [%s, %s]",
			ErrInvalidState, s.RateAtTarget, cfg.MinRateAtTarget, cfg.MaxRateAtTarget)
	}
	return nil
}
