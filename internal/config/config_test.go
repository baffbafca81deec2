package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("VALIDATION_LOG", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, LogOff, cfg.ValidationLog)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("VALIDATION_LOG", " Stderr ")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "prod", cfg.AppEnv)
	assert.Equal(t, LogStderr, cfg.ValidationLog)
}

func TestLoad_UnknownLogModeFallsBackToOff(t *testing.T) {
	t.Setenv("VALIDATION_LOG", "verbose")

	assert.Equal(t, LogOff, Load().ValidationLog)
}
