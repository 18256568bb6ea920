package replay

import (
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/position"
	"github.com/optakt/irm/schedule"
)

// Observed feeds recorded market totals to the model, one call per
// observation, and records the resulting rates. The market's totals are
// replaced by each observation; no interest is accrued. The first observation
// must not precede the model's last update.
func Observed(log zerolog.Logger, model Model, market *position.Market, observations []schedule.Observation, record Recorder) error {

	if len(observations) > 0 {
		err := checkStart(model.State(), observations[0].Timestamp)
		if err != nil {
			return err
		}
	}

	for _, observation := range observations {

		market.Borrowed = big.NewInt(0).Set(observation.Borrowed)
		market.Supplied = big.NewInt(0).Set(observation.Supplied)

		rate, err := model.BorrowRate(market.Borrowed, market.Supplied, observation.Timestamp)
		if err != nil {
			return fmt.Errorf("could not get borrow rate at %d: %w", observation.Timestamp, err)
		}

		sample := Sample{
			Timestamp:    observation.Timestamp,
			Market:       market,
			Rate:         rate,
			RateAtTarget: model.State().RateAtTarget,
		}
		record(sample)

		log.Debug().
			Uint64("timestamp", observation.Timestamp).
			Float64("utilization", b.ToFloat(market.Utilization(), 18)).
			Float64("rate", b.Annualize(rate)).
			Msg("observation replayed")
	}

	log.Info().
		Str("market", market.Name).
		Int("observations", len(observations)).
		Msg("observed replay done")

	return nil
}
