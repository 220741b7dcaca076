package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type defaultsConfig struct {
	Level   string `env:"TEST_LEVEL_DEFAULT" envDefault:"info"`
	Retries int    `env:"TEST_RETRIES_DEFAULT" envDefault:"3"`
	Strict  bool   `env:"TEST_STRICT_DEFAULT" envDefault:"true"`
}

type successConfig struct {
	Level   string `env:"TEST_LEVEL_SUCCESS" envDefault:"info"`
	Retries int    `env:"TEST_RETRIES_SUCCESS" envDefault:"3"`
	Strict  bool   `env:"TEST_STRICT_SUCCESS" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Required string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Value    string `env:"TEST_FILE_VALUE"`
	Override string `env:"TEST_FILE_OVERRIDE"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_LEVEL_SUCCESS", "debug")
	t.Setenv("TEST_RETRIES_SUCCESS", "5")
	t.Setenv("TEST_STRICT_SUCCESS", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, 5, cfg.Retries)
	assert.False(t, cfg.Strict)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_LEVEL_DEFAULT")
	os.Unsetenv("TEST_RETRIES_DEFAULT")
	os.Unsetenv("TEST_STRICT_DEFAULT")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 3, cfg.Retries)
	assert.True(t, cfg.Strict)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("TEST_REQUIRED_VALUE")
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("reads variables from file", func(t *testing.T) {
		os.Unsetenv("TEST_FILE_VALUE")
		t.Setenv("TEST_FILE_OVERRIDE", "process")
		t.Cleanup(func() { os.Unsetenv("TEST_FILE_VALUE") })
		config.ResetCache()

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from_file", cfg.Value)
		assert.Equal(t, "process", cfg.Override)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}
