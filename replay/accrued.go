package replay

import (
	"fmt"
	"math/big"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/position"
)

// Drive describes a replay in which the model is called at a fixed interval
// and the interest it prices is accrued on the market in between.
type Drive struct {
	Start    uint64
	Interval uint64
	Steps    uint64
}

// After returns the drive moved so that its first step comes one interval
// after the state's last update, unless it already starts later.
func (d Drive) After(state irm.State) Drive {
	if !state.Initialized() {
		return d
	}
	next := state.LastUpdate + d.Interval
	if d.Start < next {
		d.Start = next
	}
	return d
}

// Accrued calls the model every interval, starting at the drive's start, and
// accrues the returned rate on the market over the following interval. The
// start must not precede the model's last update.
func Accrued(log zerolog.Logger, model Model, market *position.Market, drive Drive, record Recorder) error {

	if drive.Interval == 0 {
		return fmt.Errorf("drive interval must be positive")
	}
	err := checkStart(model.State(), drive.Start)
	if err != nil {
		return err
	}

	timestamp := drive.Start
	for step := uint64(0); step < drive.Steps; step++ {

		rate, err := model.BorrowRate(market.Borrowed, market.Supplied, timestamp)
		if err != nil {
			return fmt.Errorf("could not get borrow rate at %d: %w", timestamp, err)
		}

		sample := Sample{
			Timestamp:    timestamp,
			Market:       market,
			Rate:         rate,
			RateAtTarget: model.State().RateAtTarget,
		}
		record(sample)

		interest := market.Accrue(rate, drive.Interval)

		log.Debug().
			Uint64("timestamp", timestamp).
			Float64("utilization", b.ToFloat(market.Utilization(), 18)).
			Float64("rate", b.Annualize(rate)).
			Str("interest", interest.String()).
			Msg("interval accrued")

		timestamp += drive.Interval
	}

	// BigComma divides its argument in place.
	total := big.NewInt(0).Set(market.Interest)

	span := time.Duration(drive.Interval*drive.Steps) * time.Second
	log.Info().
		Str("market", market.Name).
		Dur("span", span).
		Str("interest", humanize.BigComma(total)).
		Float64("utilization", b.ToFloat(market.Utilization(), 18)).
		Msg("accrued replay done")

	return nil
}
