package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/position"
)

// Checkpoint is the persisted state of several markets, keyed by market name.
type Checkpoint struct {
	Markets map[string]MarketCheckpoint `json:"markets"`
}

// MarketCheckpoint is the curve state of one market together with the totals
// it had reached.
type MarketCheckpoint struct {
	State    irm.State `json:"state"`
	Borrowed *big.Int  `json:"borrowed"`
	Supplied *big.Int  `json:"supplied"`
	Interest *big.Int  `json:"interest"`
}

// Snapshot captures the model's state and the market's totals.
func Snapshot(model Model, market *position.Market) MarketCheckpoint {
	return MarketCheckpoint{
		State:    model.State(),
		Borrowed: big.NewInt(0).Set(market.Borrowed),
		Supplied: big.NewInt(0).Set(market.Supplied),
		Interest: big.NewInt(0).Set(market.Interest),
	}
}

// Market rebuilds the market from the checkpointed totals. It reports false if
// the checkpoint holds no totals.
func (m MarketCheckpoint) Market(name string) (*position.Market, bool) {
	if m.Borrowed == nil || m.Supplied == nil {
		return nil, false
	}
	market := position.NewMarket(name, m.Borrowed, m.Supplied)
	if m.Interest != nil {
		market.Interest.Set(m.Interest)
	}
	return market, true
}

// LoadCheckpoint reads a checkpoint file. A missing file is not an error; the
// boolean reports whether a checkpoint was found.
func LoadCheckpoint(path string) (Checkpoint, bool, error) {

	if path == "" {
		return Checkpoint{}, false, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Checkpoint{}, false, nil
	}
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("could not read checkpoint: %w", err)
	}

	var cp Checkpoint
	err = json.Unmarshal(data, &cp)
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("could not parse checkpoint %s: %w", path, err)
	}

	return cp, true, nil
}

// SaveCheckpoint writes the checkpoint through a temporary file, so a crash
// never leaves a truncated checkpoint behind.
func SaveCheckpoint(path string, cp Checkpoint) error {

	if path == "" {
		return nil
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("could not create checkpoint directory: %w", err)
	}

	data, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode checkpoint: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	err = os.WriteFile(tmp, data, 0o644)
	if err != nil {
		return fmt.Errorf("could not write checkpoint: %w", err)
	}

	return os.Rename(tmp, path)
}
