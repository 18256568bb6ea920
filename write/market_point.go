package write

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/position"
)

// MarketPoint writes the totals of a market in whole asset units.
func MarketPoint(timestamp time.Time, market *position.Market, decimals uint, outbound Outbound) {

	tags := map[string]string{
		"market": market.Name,
	}
	fields := map[string]interface{}{
		"borrowed": b.ToFloat(market.Borrowed, decimals),
		"supplied": b.ToFloat(market.Supplied, decimals),
		"interest": b.ToFloat(market.Interest, decimals),
	}

	point := write.NewPoint("market", tags, fields, timestamp)
	outbound.WritePoint(point)
}
