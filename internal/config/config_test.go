package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yinpa-bot/yinpa/internal/config"
	"github.com/yinpa-bot/yinpa/internal/errors"
)

func TestDefaultTuning(t *testing.T) {
	tuning := config.DefaultTuning()

	assert.Equal(t, 1000, tuning.MaxHP)
	assert.Equal(t, -1000, tuning.MinHP)
	assert.Equal(t, 150, tuning.CostPerAction)
	assert.Equal(t, 5*time.Second, tuning.HPRecoveryUnit)
	assert.InDelta(t, 2.5, tuning.MinPersistence, 1e-9)
	assert.InDelta(t, 0.02, tuning.SensitivityPerAction, 1e-9)
	assert.InDelta(t, 2.0, tuning.StrengthSensitivityPerAction, 1e-9)
	assert.Equal(t, 200, tuning.SensitivityDemarcation)
	assert.InDelta(t, 1.5, tuning.OverdraftPersistencePenalty, 1e-9)
	assert.InDelta(t, 0.1, tuning.OverdraftLengthPenalty, 1e-9)
	assert.InDelta(t, 0.25, tuning.SnatchChestBase, 1e-9)
	assert.Equal(t, []string{"群主", "管理"}, tuning.ReservedNames)
	assert.Equal(t, 15, tuning.MaxNameLength)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"YINPA_MAX_HP":     "500",
		"YINPA_STORE":      "redis",
		"YINPA_REDIS_ADDR": "cache:6379",
	})
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Tuning.MaxHP)
	assert.Equal(t, config.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.RedisAddr)
}

func TestLoadFrom_ParseError(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"YINPA_MAX_HP": "lots"})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadFrom_UnknownBackend(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"YINPA_STORE": "postgres"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Backend")
}

func TestTuningValidate(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.MaxHP = 0
	tuning.MinHP = 10
	tuning.HPRecoveryUnit = 0

	err := tuning.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "MaxHP")
	assert.Contains(t, err.Error(), "MinHP")
	assert.Contains(t, err.Error(), "HPRecoveryUnit")
}

func TestTuningValidate_Magnifications(t *testing.T) {
	tuning := config.DefaultTuning()
	tuning.SoloMagnification = 0.5
	tuning.SnatchLengthMagnification = 0
	tuning.SnatchChestMagnification = 0.9

	for range 5 {
		err := tuning.Validate()
		require.Error(t, err)
		assert.Equal(t,
			"INVALID_ARGUMENT: validation failed: "+
				"SnatchChestMagnification: must be at least 1, got 0.9; "+
				"SnatchLengthMagnification: must be at least 1, got 0; "+
				"SoloMagnification: must be at least 1, got 0.5",
			err.Error())
	}
}
