package position

import (
	"math/big"

	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/wad"
)

// Market tracks the totals of a lending pool. Interest accrues to borrowers
// and suppliers alike, without fees.
type Market struct {
	Name     string
	Borrowed *big.Int
	Supplied *big.Int
	Interest *big.Int
}

// NewMarket returns a market with the given initial totals.
func NewMarket(name string, borrowed *big.Int, supplied *big.Int) *Market {
	return &Market{
		Name:     name,
		Borrowed: big.NewInt(0).Set(borrowed),
		Supplied: big.NewInt(0).Set(supplied),
		Interest: big.NewInt(0),
	}
}

// Utilization returns the WAD-scaled share of supplied assets that is borrowed.
func (m *Market) Utilization() *big.Int {
	return irm.Utilization(m.Borrowed, m.Supplied)
}

// Accrue compounds the per-second rate over the given number of seconds on the
// borrowed total, adds the interest to both totals and returns it.
//
//	interest = borrowed * taylorCompounded(rate, seconds) / WAD
func (m *Market) Accrue(rate *big.Int, seconds uint64) *big.Int {

	growth := wad.TaylorCompounded(rate, big.NewInt(0).SetUint64(seconds))
	interest := wad.MulDown(m.Borrowed, growth)

	m.Borrowed.Add(m.Borrowed, interest)
	m.Supplied.Add(m.Supplied, interest)
	m.Interest.Add(m.Interest, interest)

	return interest
}
