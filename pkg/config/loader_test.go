package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mongokit/pkg/config"
)

type defaultsConfig struct {
	Host string `env:"CONFIG_TEST_HOST" envDefault:"localhost"`
	Port int    `env:"CONFIG_TEST_PORT" envDefault:"27017"`
	Safe bool   `env:"CONFIG_TEST_SAFE" envDefault:"true"`
}

type requiredConfig struct {
	Database string `env:"CONFIG_TEST_REQUIRED_DB,required"`
}

type overrideConfig struct {
	Host string `env:"CONFIG_TEST_OVERRIDE_HOST" envDefault:"localhost"`
}

type invalidConfig struct {
	Port int `env:"CONFIG_TEST_INVALID_PORT" envDefault:"27017"`
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load[defaultsConfig]()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 27017, cfg.Port)
	assert.True(t, cfg.Safe)
}

func TestLoad_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_OVERRIDE_HOST", "mongo.internal")

	cfg, err := config.Load[overrideConfig]()
	require.NoError(t, err)
	assert.Equal(t, "mongo.internal", cfg.Host)
}

func TestLoad_MissingRequiredVariable(t *testing.T) {
	_, err := config.Load[requiredConfig]()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_UnparsableValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_INVALID_PORT", "not-a-number")

	_, err := config.Load[invalidConfig]()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		_ = config.MustLoad[requiredConfig]()
	})
}

func TestMustLoad_ReturnsValue(t *testing.T) {
	cfg := config.MustLoad[defaultsConfig]()
	assert.Equal(t, 27017, cfg.Port)
}
