package replay

import (
	"errors"
	"fmt"

	"github.com/optakt/irm/irm"
)

// ErrBackwards is returned when a replay would start before the model's last
// update.
var ErrBackwards = errors.New("replay starts before last update")

func checkStart(state irm.State, start uint64) error {
	if state.Initialized() && start < state.LastUpdate {
		return fmt.Errorf("%w: start %d, last update %d", ErrBackwards, start, state.LastUpdate)
	}
	return nil
}
