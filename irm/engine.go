// Package irm reproduces the adaptive curve interest rate model of an on-chain
// lending market with the same integer arithmetic, rounding and clamping, so
// that its rates match the contract's exactly.
package irm

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/holiman/uint256"

	"github.com/optakt/irm/wad"
)

// Engine is the adaptive curve of a single market. It is safe for concurrent
// use; calls to BorrowRate are serialized.
type Engine struct {
	mu    sync.Mutex
	cfg   Config
	state State
}

// NewEngine validates the configuration and returns an engine for a market
// that was never updated.
func NewEngine(cfg Config) (*Engine, error) {

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	e := Engine{
		cfg: cfg.clone(),
	}

	return &e, nil
}

// BorrowRate returns the borrow rate per second, WAD-scaled, for a market with
// the given totals at the given timestamp, and moves the engine's state to that
// timestamp. Both totals must fit an unsigned 256-bit integer.
//
// If the computation overflows, the error wraps wad.ErrOverflow and the state
// is left as it was.
func (e *Engine) BorrowRate(totalBorrowAssets *big.Int, totalSupplyAssets *big.Int, timestamp uint64) (*big.Int, error) {

	err := checkAmount(totalBorrowAssets)
	if err != nil {
		return nil, fmt.Errorf("could not use borrow assets: %w", err)
	}
	err = checkAmount(totalSupplyAssets)
	if err != nil {
		return nil, fmt.Errorf("could not use supply assets: %w", err)
	}

	in := Input{
		TotalBorrowAssets: totalBorrowAssets,
		TotalSupplyAssets: totalSupplyAssets,
		Timestamp:         timestamp,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, rate, err := safeStep(e.cfg, e.state, in)
	if err != nil {
		return nil, fmt.Errorf("could not compute borrow rate: %w", err)
	}
	e.state = next

	return rate, nil
}

// State returns a copy of the engine's current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Copy()
}

// Restore replaces the engine's state, for example with one saved from a
// previous run.
func (e *Engine) Restore(state State) error {

	err := state.Validate(e.cfg)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state.Copy()

	return nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg.clone()
}

func safeStep(cfg Config, state State, in Input) (next State, rate *big.Int, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(error)
		if !ok || !errors.Is(perr, wad.ErrOverflow) {
			panic(r)
		}
		err = perr
	}()
	next, rate = Step(cfg, state, in)
	return next, rate, nil
}

func checkAmount(amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf("%w: missing", ErrInvalidAmount)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: negative value %s", ErrInvalidAmount, amount)
	}
	_, overflow := uint256.FromBig(amount)
	if overflow {
		return fmt.Errorf("%w: %s does not fit 256 bits", ErrInvalidAmount, amount)
	}
	return nil
}
