package write

import (
	"math/big"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/position"
)

// RatePoint writes the borrow rate returned for a market, together with the
// rate at target the engine moved to, both annualized.
func RatePoint(timestamp time.Time, market *position.Market, decimals uint, rate *big.Int, rateAtTarget *big.Int, outbound Outbound) {

	number, suffix := humanize.ComputeSI(b.ToFloat(market.Supplied, decimals))
	size := humanize.Ftoa(number) + suffix

	tags := map[string]string{
		"curve":  "adaptive",
		"market": market.Name,
		"size":   size,
	}
	fields := map[string]interface{}{
		"rate":           b.Annualize(rate),
		"rate_at_target": b.Annualize(rateAtTarget),
		"utilization":    b.ToFloat(market.Utilization(), 18),
	}

	point := write.NewPoint("borrow_rate", tags, fields, timestamp)
	outbound.WritePoint(point)
}
