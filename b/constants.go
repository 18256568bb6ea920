package b

import (
	"math/big"
)

var (
	WAD = E18                           // fixed-point one
	HPY = big.NewInt(0).Mul(D365, D24)  // hours per year
	SPY = big.NewInt(0).Mul(HPY, D3600) // seconds per year
)

// Exponential literals, as deployed on-chain.
var (
	LN2            = FromString("693147180559945309")                                          // ln(2) * WAD
	LNWei          = FromString("-41446531673892822312")                                       // ln(1e-18) * WAD
	WExpUpperBound = FromString("93859467695000404319")                                        // ln(type(int256).max / 1e36) * WAD
	WExpUpperValue = FromString("57716089161558943949701069502944508345128422502756744429568") // wExp(WExpUpperBound)
)

// Signed 256-bit range.
var (
	MaxInt256 = big.NewInt(0).Sub(big.NewInt(0).Lsh(D1, 255), D1)
	MinInt256 = big.NewInt(0).Neg(big.NewInt(0).Lsh(D1, 255))
)
