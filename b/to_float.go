package b

import (
	"math"
	"math/big"
)

// ToFloat converts a scaled integer to a float for reporting only. It is never
// used on the computation path.
func ToFloat(b *big.Int, decimals uint) float64 {
	n, _ := big.NewFloat(0).SetInt(b).Float64()
	d := math.Pow(10, float64(decimals))
	f := n / d
	return f
}

// Annualize converts a WAD-scaled per-second rate into a yearly float.
func Annualize(rate *big.Int) float64 {
	perYear := big.NewInt(0).Mul(rate, SPY)
	return ToFloat(perYear, 18)
}
