package replay

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/irm/b"
	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/position"
	"github.com/optakt/irm/schedule"
	"github.com/optakt/irm/wad"
)

func newEngine(t *testing.T) *irm.Engine {
	t.Helper()
	engine, err := irm.NewEngine(irm.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func TestObserved(t *testing.T) {
	engine := newEngine(t)
	market := position.NewMarket("usdc", big.NewInt(0), big.NewInt(0))
	observations := []schedule.Observation{
		{Timestamp: 1, Borrowed: b.FromString("900000000000000000"), Supplied: b.WAD},
		{Timestamp: 1 + 45*24*60*60, Borrowed: b.FromString("950000000000000000"), Supplied: b.WAD},
	}

	var samples []Sample
	err := Observed(zerolog.Nop(), engine, market, observations, func(sample Sample) {
		samples = append(samples, sample)
	})
	require.NoError(t, err)

	require.Len(t, samples, 2)
	assert.Equal(t, "1268391679", samples[0].Rate.String())
	assert.Equal(t, "1268391679", samples[0].RateAtTarget.String())
	assert.Equal(t, "25411234497", samples[1].Rate.String())
	assert.Equal(t, "27550077831", samples[1].RateAtTarget.String())
	assert.Equal(t, "950000000000000000", market.Borrowed.String())
	assert.Equal(t, int64(0), market.Interest.Int64())
}

func TestObservedInvalidAmount(t *testing.T) {
	engine := newEngine(t)
	market := position.NewMarket("usdc", big.NewInt(0), big.NewInt(0))
	observations := []schedule.Observation{
		{Timestamp: 1, Borrowed: big.NewInt(-1), Supplied: b.WAD},
	}

	err := Observed(zerolog.Nop(), engine, market, observations, func(Sample) {})
	assert.ErrorIs(t, err, irm.ErrInvalidAmount)
}

func TestAccrued(t *testing.T) {
	target := b.FromString("900000000000000000")
	start := b.FromString("950000000000000000")
	interval := uint64(60)
	steps := uint64(24 * 60)

	// reference: the same loop driven by hand
	reference := newEngine(t)
	_, err := reference.BorrowRate(target, b.WAD, 1)
	require.NoError(t, err)
	borrowed := big.NewInt(0).Set(start)
	supplied := big.NewInt(0).Set(b.WAD)
	var rates []*big.Int
	for i := uint64(0); i < steps; i++ {
		rate, err := reference.BorrowRate(borrowed, supplied, 2+i*interval)
		require.NoError(t, err)
		rates = append(rates, rate)
		interest := wad.MulDown(borrowed, wad.TaylorCompounded(rate, big.NewInt(int64(interval))))
		borrowed.Add(borrowed, interest)
		supplied.Add(supplied, interest)
	}

	engine := newEngine(t)
	_, err = engine.BorrowRate(target, b.WAD, 1)
	require.NoError(t, err)
	market := position.NewMarket("usdc", start, b.WAD)
	drive := Drive{Start: 2, Interval: interval, Steps: steps}

	var recorded []*big.Int
	err = Accrued(zerolog.Nop(), engine, market, drive, func(sample Sample) {
		recorded = append(recorded, sample.Rate)
	})
	require.NoError(t, err)

	assert.Equal(t, rates, recorded)
	assert.Equal(t, borrowed.String(), market.Borrowed.String())
	assert.Equal(t, supplied.String(), market.Supplied.String())
	assert.Equal(t, reference.State(), engine.State())

	interest := big.NewInt(0).Sub(market.Borrowed, start)
	assert.Equal(t, interest.String(), market.Interest.String())
	assert.Equal(t, 1, market.Utilization().Cmp(start))
}

func TestAccruedZeroInterval(t *testing.T) {
	market := position.NewMarket("usdc", big.NewInt(0), b.WAD)
	err := Accrued(zerolog.Nop(), newEngine(t), market, Drive{Start: 1, Steps: 3}, func(Sample) {})
	assert.Error(t, err)
}

func TestCheckpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "checkpoint.json")

	_, found, err := LoadCheckpoint(path)
	require.NoError(t, err)
	assert.False(t, found)

	cp := Checkpoint{
		Markets: map[string]MarketCheckpoint{
			"usdc": {
				State:    irm.State{RateAtTarget: big.NewInt(27550077831), LastUpdate: 3888001},
				Borrowed: b.FromString("1037341995407133506"),
				Supplied: b.FromString("1087341995407133506"),
				Interest: b.FromString("87341995407133506"),
			},
			"weth": {},
		},
	}
	require.NoError(t, SaveCheckpoint(path, cp))

	loaded, found, err := LoadCheckpoint(path)
	require.NoError(t, err)
	require.True(t, found)

	usdc := loaded.Markets["usdc"]
	assert.Equal(t, "27550077831", usdc.State.RateAtTarget.String())
	assert.Equal(t, uint64(3888001), usdc.State.LastUpdate)

	market, ok := usdc.Market("usdc")
	require.True(t, ok)
	assert.Equal(t, "1037341995407133506", market.Borrowed.String())
	assert.Equal(t, "1087341995407133506", market.Supplied.String())
	assert.Equal(t, "87341995407133506", market.Interest.String())

	weth := loaded.Markets["weth"]
	assert.Nil(t, weth.State.RateAtTarget)
	assert.False(t, weth.State.Initialized())
	_, ok = weth.Market("weth")
	assert.False(t, ok)

	engine := newEngine(t)
	require.NoError(t, engine.Restore(usdc.State))
	assert.Equal(t, uint64(3888001), engine.State().LastUpdate)
}

func TestSnapshot(t *testing.T) {
	engine := newEngine(t)
	market := position.NewMarket("usdc", b.FromString("950000000000000000"), b.WAD)

	err := Accrued(zerolog.Nop(), engine, market, Drive{Start: 1, Interval: 60, Steps: 10}, func(Sample) {})
	require.NoError(t, err)

	cp := Snapshot(engine, market)
	market.Borrowed.SetInt64(0)

	assert.Equal(t, uint64(541), cp.State.LastUpdate)
	assert.Equal(t, 1, cp.Borrowed.Cmp(b.FromString("950000000000000000")))
	assert.Equal(t, cp.Interest.String(), big.NewInt(0).Sub(cp.Supplied, b.WAD).String())
}

func TestDriveAfter(t *testing.T) {
	drive := Drive{Start: 1, Interval: 60, Steps: 3}

	assert.Equal(t, drive, drive.After(irm.State{}))

	resumed := drive.After(irm.State{RateAtTarget: big.NewInt(1268391679), LastUpdate: 86341})
	assert.Equal(t, uint64(86401), resumed.Start)
	assert.Equal(t, drive.Steps, resumed.Steps)

	later := Drive{Start: 100000, Interval: 60}
	assert.Equal(t, later, later.After(irm.State{RateAtTarget: big.NewInt(1268391679), LastUpdate: 86341}))
}

func TestReplayRejectsEarlierStart(t *testing.T) {
	engine := newEngine(t)
	require.NoError(t, engine.Restore(irm.State{RateAtTarget: big.NewInt(1358259161), LastUpdate: 86341}))
	market := position.NewMarket("usdc", b.FromString("950000000000000000"), b.WAD)

	err := Accrued(zerolog.Nop(), engine, market, Drive{Start: 1, Interval: 60, Steps: 1}, func(Sample) {})
	assert.ErrorIs(t, err, ErrBackwards)

	observations := []schedule.Observation{
		{Timestamp: 86340, Borrowed: b.FromString("950000000000000000"), Supplied: b.WAD},
	}
	err = Observed(zerolog.Nop(), engine, market, observations, func(Sample) {})
	assert.ErrorIs(t, err, ErrBackwards)

	assert.Equal(t, uint64(86341), engine.State().LastUpdate)
	assert.Equal(t, "1358259161", engine.State().RateAtTarget.String())
}

func TestCheckpointEmptyPath(t *testing.T) {
	_, found, err := LoadCheckpoint("")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SaveCheckpoint("", Checkpoint{}))
}
