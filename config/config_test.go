package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshotsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "value")

	cfg := New()

	assert.Equal(t, "value", cfg["PORTFOLIO_TEST_KEY"])
}

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "not-a-number"}

	assert.Equal(t, 30, GetInt(cfg, "TIMEOUT", 60))
	assert.Equal(t, 60, GetInt(cfg, "MISSING", 60))
	assert.Equal(t, 60, GetInt(cfg, "BAD", 60))
	assert.Equal(t, 60, GetInt(nil, "TIMEOUT", 60))
}
