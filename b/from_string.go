package b

import (
	"fmt"
	"math/big"
	"strings"
)

// FromString parses a base-10 integer literal, or a hexadecimal one with a
// 0x prefix. It panics on malformed input, so it is only meant for constants.
func FromString(s string) *big.Int {
	digits, base := s, 10
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	v, ok := big.NewInt(0).SetString(sign+digits, base)
	if !ok {
		panic(fmt.Sprintf("invalid integer literal %q", s))
	}
	return v
}
