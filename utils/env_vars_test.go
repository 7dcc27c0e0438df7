package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GRID_TEST_STRING", "fr")
	t.Setenv("GRID_TEST_INT", "12")
	t.Setenv("GRID_TEST_BOOL", "true")
	t.Setenv("GRID_TEST_DURATION", "3s")
	t.Setenv("GRID_TEST_EMPTY", "")

	assert.Equal(t, "fr", GetEnv("GRID_TEST_STRING", "en"))
	assert.Equal(t, 12, GetEnv("GRID_TEST_INT", 100))
	assert.True(t, GetEnv("GRID_TEST_BOOL", false))
	assert.Equal(t, 3*time.Second, GetEnv("GRID_TEST_DURATION", time.Minute))
	assert.Equal(t, "en", GetEnv("GRID_TEST_EMPTY", "en"))
	assert.Equal(t, 100, GetEnv("GRID_TEST_UNSET", 100))
}

func TestGetEnv_invalidValuePanics(t *testing.T) {
	t.Setenv("GRID_TEST_INT", "twelve")

	assert.Panics(t, func() { GetEnv("GRID_TEST_INT", 0) })
}
