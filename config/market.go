package config

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Totals returns the market's initial borrowed and supplied amounts.
func (m MarketConfig) Totals() (*big.Int, *big.Int, error) {

	borrowed, err := uint256.FromDecimal(m.Borrowed)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse borrowed amount %q: %w", m.Borrowed, err)
	}

	supplied, err := uint256.FromDecimal(m.Supplied)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse supplied amount %q: %w", m.Supplied, err)
	}

	return borrowed.ToBig(), supplied.ToBig(), nil
}
