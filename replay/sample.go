package replay

import (
	"math/big"

	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/position"
)

// Model is a rate model whose state can be inspected after each call.
type Model interface {
	position.RateModel
	State() irm.State
}

// Sample is the outcome of one call to the rate model. Market points to the
// live market; recorders must read it before returning.
type Sample struct {
	Timestamp    uint64
	Market       *position.Market
	Rate         *big.Int
	RateAtTarget *big.Int
}

// Recorder receives every sample of a replay, in order.
type Recorder func(sample Sample)
