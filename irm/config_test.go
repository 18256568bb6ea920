package irm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/irm/b"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "4000000000000000000", cfg.CurveSteepness.String())
	assert.Equal(t, "1585489599188", cfg.AdjustmentSpeed.String())
	assert.Equal(t, "900000000000000000", cfg.TargetUtilization.String())
	assert.Equal(t, "1268391679", cfg.InitialRateAtTarget.String())
	assert.Equal(t, "31709791", cfg.MinRateAtTarget.String())
	assert.Equal(t, "63419583967", cfg.MaxRateAtTarget.String())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"missing steepness", func(cfg *Config) { cfg.CurveSteepness = nil }},
		{"flat curve", func(cfg *Config) { cfg.CurveSteepness = big.NewInt(0).Sub(b.WAD, b.D1) }},
		{"steep curve", func(cfg *Config) { cfg.CurveSteepness = big.NewInt(0).Mul(big.NewInt(101), b.WAD) }},
		{"fast adjustment", func(cfg *Config) { cfg.AdjustmentSpeed = big.NewInt(0).Mul(b.D1000, b.WAD) }},
		{"negative adjustment", func(cfg *Config) { cfg.AdjustmentSpeed = big.NewInt(-1) }},
		{"zero target", func(cfg *Config) { cfg.TargetUtilization = big.NewInt(0) }},
		{"full target", func(cfg *Config) { cfg.TargetUtilization = big.NewInt(0).Set(b.WAD) }},
		{"initial below min", func(cfg *Config) { cfg.InitialRateAtTarget = big.NewInt(1) }},
		{"min above max", func(cfg *Config) { cfg.MinRateAtTarget = big.NewInt(0).Add(cfg.MaxRateAtTarget, b.D1) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)

			_, err = NewEngine(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewEngineCopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	engine, err := NewEngine(cfg)
	require.NoError(t, err)

	cfg.InitialRateAtTarget.SetInt64(0)

	assert.Equal(t, "1268391679", engine.Config().InitialRateAtTarget.String())
}
