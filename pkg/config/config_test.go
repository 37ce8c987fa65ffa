package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsWithoutDBPath(t *testing.T) {
	t.Setenv("DB_PATH", "")

	err := Load()
	assert.ErrorIs(t, err, ErrMissingDBPath)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "./test.db")

	require.NoError(t, Load())

	assert.Equal(t, "4065", AppConfig.Server.Port)
	assert.Equal(t, "development", AppConfig.Server.Env)
	assert.False(t, AppConfig.IsProduction())
	assert.Equal(t, 14, AppConfig.Session.TTLDays)
}

func TestProductionFlag(t *testing.T) {
	t.Setenv("DB_PATH", "./test.db")
	t.Setenv("APP_ENV", "production")

	require.NoError(t, Load())

	assert.True(t, AppConfig.IsProduction())
}
