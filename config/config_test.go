package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGINS", "")

	InitConfig()

	require.NotNil(t, AppConfig)
	assert.Equal(t, "ticket-booking-service", AppConfig.App.Name)
	assert.Equal(t, "8080", AppConfig.App.Port)
	assert.Equal(t, "production", AppConfig.App.Environment)
	assert.Equal(t, "", AppConfig.CORS.Origins)
}

func TestInitConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("CORS_ORIGINS", "https://tickets.example.com")

	InitConfig()

	require.NotNil(t, AppConfig)
	assert.Equal(t, "9090", AppConfig.App.Port)
	assert.Equal(t, "staging", AppConfig.App.Environment)
	assert.Equal(t, "https://tickets.example.com", AppConfig.CORS.Origins)
}
