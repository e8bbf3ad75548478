package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_KEY_MISSING", "fallback"))

	// empty values fall back too
	t.Setenv("TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("TEST_INT", 7))

	t.Setenv("TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, GetIntEnv("TEST_INT_BAD", 7))
	assert.Equal(t, 7, GetIntEnv("TEST_INT_MISSING", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR_BAD", "soon")
	assert.Equal(t, time.Minute, GetDurationEnv("TEST_DUR_BAD", time.Minute))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())

	t.Setenv("ENV", "")
	assert.False(t, IsProduction())
}
