package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the markets to simulate and where to send their history.
type Config struct {
	Influx  InfluxConfig   `yaml:"influx"`
	Markets []MarketConfig `yaml:"markets"`
}

// InfluxConfig is the InfluxDB sink. An empty URL disables it.
type InfluxConfig struct {
	URL    string `yaml:"url"`
	Token  string `yaml:"token"`
	Org    string `yaml:"org"`
	Bucket string `yaml:"bucket"`
}

// MarketConfig is one lending market with its own curve. Amounts are base-10
// integers in the asset's base units.
type MarketConfig struct {
	Name     string      `yaml:"name"`
	Decimals uint        `yaml:"decimals"`
	Borrowed string      `yaml:"borrowed"`
	Supplied string      `yaml:"supplied"`
	Curve    CurveConfig `yaml:"curve"`
}

// Default returns a single market at the halfway point between the default
// target utilization and full utilization.
func Default() Config {
	cfg := Config{
		Markets: []MarketConfig{{
			Name:     "default",
			Decimals: 18,
			Borrowed: "950000000000000000",
			Supplied: "1000000000000000000",
		}},
	}
	cfg.normalize()
	return cfg
}

// Load reads the YAML configuration from disk and validates the result.
func Load(path string) (Config, error) {

	if path == "" {
		return Config{}, fmt.Errorf("config path required")
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	err = decoder.Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	cfg.normalize()
	err = cfg.validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) normalize() {
	cfg.Influx.URL = strings.TrimSpace(cfg.Influx.URL)
	cfg.Influx.Org = strings.TrimSpace(cfg.Influx.Org)
	cfg.Influx.Bucket = strings.TrimSpace(cfg.Influx.Bucket)
	for i := range cfg.Markets {
		market := &cfg.Markets[i]
		market.Name = strings.TrimSpace(market.Name)
		market.Borrowed = strings.TrimSpace(market.Borrowed)
		market.Supplied = strings.TrimSpace(market.Supplied)
		if market.Borrowed == "" {
			market.Borrowed = "0"
		}
		if market.Supplied == "" {
			market.Supplied = "0"
		}
		market.Curve.normalize()
	}
}

func (cfg Config) validate() error {

	if cfg.Influx.URL != "" && (cfg.Influx.Org == "" || cfg.Influx.Bucket == "") {
		return fmt.Errorf("influx: org and bucket are required with a url")
	}

	if len(cfg.Markets) == 0 {
		return fmt.Errorf("at least one market is required")
	}

	names := make(map[string]struct{}, len(cfg.Markets))
	for _, market := range cfg.Markets {
		if market.Name == "" {
			return fmt.Errorf("market name is required")
		}
		_, ok := names[market.Name]
		if ok {
			return fmt.Errorf("duplicate market %q", market.Name)
		}
		names[market.Name] = struct{}{}

		_, _, err := market.Totals()
		if err != nil {
			return fmt.Errorf("market %s: %w", market.Name, err)
		}
		_, err = market.Curve.Build()
		if err != nil {
			return fmt.Errorf("market %s: %w", market.Name, err)
		}
	}

	return nil
}
