package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "club.yaml", config.Club.DataFile)
	assert.Equal(t, 1, config.Matching.MaxDistance)
	assert.Equal(t, ",", config.Report.Delimiter)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("CLUBDUES_LOG_LEVEL", "debug")
	t.Setenv("CLUBDUES_MATCHING_MAX_DISTANCE", "2")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, 2, config.Matching.MaxDistance)
}

func TestValidateConfig(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)

	config.Log.Level = "verbose"
	assert.Error(t, validateConfig(config))

	config.Log.Level = "info"
	config.Matching.MaxDistance = 0
	assert.Error(t, validateConfig(config))

	config.Matching.MaxDistance = 1
	config.Report.Delimiter = ";;"
	assert.Error(t, validateConfig(config))
}

func TestDelimiterRune(t *testing.T) {
	config, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, ',', config.DelimiterRune())

	config.Report.Delimiter = ";"
	assert.Equal(t, ';', config.DelimiterRune())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CLUBDUES_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("CLUBDUES_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("CLUBDUES_ABSENT_KEY", "fallback"))
}
