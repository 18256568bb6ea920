package b

import (
	"math/big"
)

var (
	E18 = big.NewInt(0).Exp(D10, D18, nil)
)
