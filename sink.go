package main

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/optakt/irm/replay"
	"github.com/optakt/irm/write"
)

func recorder(decimals uint, outbound api.WriteAPI) replay.Recorder {

	if outbound == nil {
		return func(replay.Sample) {}
	}

	return func(sample replay.Sample) {
		timestamp := time.Unix(int64(sample.Timestamp), 0)
		write.RatePoint(timestamp, sample.Market, decimals, sample.Rate, sample.RateAtTarget, outbound)
		write.MarketPoint(timestamp, sample.Market, decimals, outbound)
	}
}
