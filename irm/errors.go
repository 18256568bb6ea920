package irm

import (
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid curve configuration")
	ErrInvalidAmount = errors.New("invalid asset amount")
	ErrInvalidState  = errors.New("invalid engine state")
)
