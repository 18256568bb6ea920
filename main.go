package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/optakt/irm/config"
	"github.com/optakt/irm/irm"
	"github.com/optakt/irm/position"
	"github.com/optakt/irm/replay"
	"github.com/optakt/irm/schedule"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	var (
		configPath     string
		schedulePath   string
		checkpointPath string
		marketName     string
		logLevel       string

		start    uint64
		interval uint64
		steps    uint64

		influxURL   string
		influxToken string
	)

	pflag.StringVarP(&configPath, "config", "c", "", "path to the YAML market configuration (default single market)")
	pflag.StringVarP(&schedulePath, "schedule", "s", "", "CSV file of observed market totals to replay instead of accruing")
	pflag.StringVar(&checkpointPath, "checkpoint", "", "JSON file to resume curve states from and save them to")
	pflag.StringVarP(&marketName, "market", "m", "", "market the schedule applies to (default first market)")
	pflag.StringVarP(&logLevel, "log-level", "l", "info", "log output level")

	pflag.Uint64Var(&start, "start", 1, "unix timestamp of the first accrual step")
	pflag.Uint64VarP(&interval, "interval", "i", 60, "seconds between accrual steps")
	pflag.Uint64VarP(&steps, "steps", "n", 45*24*60, "number of accrual steps")

	pflag.StringVar(&influxURL, "influx-url", "", "InfluxDB server URL (overrides configuration)")
	pflag.StringVar(&influxToken, "influx-token", "", "InfluxDB authentication token (overrides configuration)")

	pflag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		log.Error().Err(err).Str("level", logLevel).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("could not load configuration")
			return failure
		}
	}
	if influxURL != "" {
		cfg.Influx.URL = influxURL
	}
	if influxToken != "" {
		cfg.Influx.Token = influxToken
	}

	var observations []schedule.Observation
	if schedulePath != "" {
		observations, err = schedule.Load(schedulePath)
		if err != nil {
			log.Error().Err(err).Str("path", schedulePath).Msg("could not load schedule")
			return failure
		}
		if marketName == "" {
			marketName = cfg.Markets[0].Name
		}
		if !hasMarket(cfg, marketName) {
			log.Error().Str("market", marketName).Msg("schedule market not configured")
			return failure
		}
	}

	checkpoint, found, err := replay.LoadCheckpoint(checkpointPath)
	if err != nil {
		log.Error().Err(err).Str("path", checkpointPath).Msg("could not load checkpoint")
		return failure
	}
	if found {
		log.Info().Str("path", checkpointPath).Int("markets", len(checkpoint.Markets)).Msg("resuming from checkpoint")
	}
	if checkpoint.Markets == nil {
		checkpoint.Markets = make(map[string]replay.MarketCheckpoint)
	}

	var outbound api.WriteAPI
	if cfg.Influx.URL != "" {
		client := influxdb2.NewClient(cfg.Influx.URL, cfg.Influx.Token)
		defer client.Close()
		outbound = client.WriteAPI(cfg.Influx.Org, cfg.Influx.Bucket)
		defer outbound.Flush()
		go func() {
			for err := range outbound.Errors() {
				log.Warn().Err(err).Msg("could not write points")
			}
		}()
	}

	for _, marketCfg := range cfg.Markets {

		if schedulePath != "" && marketCfg.Name != marketName {
			continue
		}

		mlog := log.With().Str("market", marketCfg.Name).Logger()

		snapshot, err := simulate(mlog, marketCfg, checkpoint.Markets[marketCfg.Name], observations, replay.Drive{
			Start:    start,
			Interval: interval,
			Steps:    steps,
		}, outbound)
		if err != nil {
			mlog.Error().Err(err).Msg("could not simulate market")
			return failure
		}
		checkpoint.Markets[marketCfg.Name] = snapshot
	}

	err = replay.SaveCheckpoint(checkpointPath, checkpoint)
	if err != nil {
		log.Error().Err(err).Str("path", checkpointPath).Msg("could not save checkpoint")
		return failure
	}

	return success
}

func simulate(log zerolog.Logger, cfg config.MarketConfig, previous replay.MarketCheckpoint, observations []schedule.Observation, drive replay.Drive, outbound api.WriteAPI) (replay.MarketCheckpoint, error) {

	curve, err := cfg.Curve.Build()
	if err != nil {
		return replay.MarketCheckpoint{}, fmt.Errorf("could not build curve: %w", err)
	}
	engine, err := irm.NewEngine(curve)
	if err != nil {
		return replay.MarketCheckpoint{}, fmt.Errorf("could not create engine: %w", err)
	}
	err = engine.Restore(previous.State)
	if err != nil {
		return replay.MarketCheckpoint{}, fmt.Errorf("could not restore engine state: %w", err)
	}

	market, ok := previous.Market(cfg.Name)
	if !ok {
		borrowed, supplied, err := cfg.Totals()
		if err != nil {
			return replay.MarketCheckpoint{}, fmt.Errorf("could not get market totals: %w", err)
		}
		market = position.NewMarket(cfg.Name, borrowed, supplied)
	}

	record := recorder(cfg.Decimals, outbound)
	if observations != nil {
		err = replay.Observed(log, engine, market, observations, record)
	} else {
		resumed := drive.After(previous.State)
		if resumed.Start != drive.Start {
			log.Info().Uint64("start", resumed.Start).Uint64("last_update", previous.State.LastUpdate).Msg("resuming drive after checkpoint")
		}
		err = replay.Accrued(log, engine, market, resumed, record)
	}
	if err != nil {
		return replay.MarketCheckpoint{}, err
	}

	return replay.Snapshot(engine, market), nil
}

func hasMarket(cfg config.Config, name string) bool {
	for _, market := range cfg.Markets {
		if market.Name == name {
			return true
		}
	}
	return false
}
