package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alquimiadental/site/core/config"
)

type localeSettings struct {
	Default   string   `env:"CONFIG_TEST_LOCALE_DEFAULT" envDefault:"es"`
	Supported []string `env:"CONFIG_TEST_LOCALE_SUPPORTED" envDefault:"es,en" envSeparator:","`
}

type requiredSettings struct {
	URL string `env:"CONFIG_TEST_REQUIRED_URL,required"`
}

type cachedSettings struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME"`
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("CONFIG_TEST_LOCALE_DEFAULT", "en")
	config.Reset()

	var cfg localeSettings
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "en", cfg.Default)
	assert.Equal(t, []string{"es", "en"}, cfg.Supported)
}

func TestLoadRequiredMissing(t *testing.T) {
	config.Reset()

	var cfg requiredSettings
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIG_TEST_REQUIRED_URL")

	assert.Panics(t, func() { config.MustLoad(&requiredSettings{}) })
}

func TestLoadCachesPerType(t *testing.T) {
	config.Reset()
	t.Setenv("CONFIG_TEST_CACHED_NAME", "first")

	var first cachedSettings
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED_NAME", "second")
	var second cachedSettings
	require.NoError(t, config.Load(&second))

	assert.Equal(t, "first", second.Name)

	config.Reset()
	var third cachedSettings
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoadRejectsNonStruct(t *testing.T) {
	var n int
	assert.ErrorIs(t, config.Load(&n), config.ErrNotPointer)

	var nilCfg *localeSettings
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNotPointer)
}
