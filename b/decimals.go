package b

import (
	"math/big"
)

var (
	D1    = big.NewInt(1)
	D2    = big.NewInt(2)
	D3    = big.NewInt(3)
	D4    = big.NewInt(4)
	D9    = big.NewInt(9)
	D10   = big.NewInt(10)
	D18   = big.NewInt(18)
	D24   = big.NewInt(24)
	D50   = big.NewInt(50)
	D100  = big.NewInt(100)
	D365  = big.NewInt(365)
	D1000 = big.NewInt(1000)
	D3600 = big.NewInt(3600)
)
