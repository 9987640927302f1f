package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.False(t, cfg.Debug)
		assert.Equal(t, "colorado-lottery", cfg.ServiceName)
		assert.Equal(t, "CO", cfg.Lottery.HomeState)
		assert.Equal(t, 18, cfg.Lottery.MinimumAge)
		assert.Equal(t, "06/09/2020", cfg.Lottery.DrawDate)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DEBUG", "true")
		t.Setenv("LOTTERY_HOME_STATE", "NM")
		t.Setenv("LOTTERY_MINIMUM_AGE", "21")
		t.Setenv("LOTTERY_DRAW_DATE", "01/02/2021")

		cfg, err := Load()
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, "NM", cfg.Lottery.HomeState)
		assert.Equal(t, 21, cfg.Lottery.MinimumAge)
		assert.Equal(t, "01/02/2021", cfg.Lottery.DrawDate)
	})

	t.Run("invalid age", func(t *testing.T) {
		t.Setenv("LOTTERY_MINIMUM_AGE", "eighteen")

		_, err := Load()
		assert.Error(t, err)
	})
}
