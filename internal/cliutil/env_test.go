package cliutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("P2O_TEST_BOOL", "")
	assert.True(t, EnvBool("P2O_TEST_BOOL", true))

	t.Setenv("P2O_TEST_BOOL", "false")
	assert.False(t, EnvBool("P2O_TEST_BOOL", true))

	t.Setenv("P2O_TEST_BOOL", "maybe")
	assert.True(t, EnvBool("P2O_TEST_BOOL", true))
}

func TestEnvInt(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 4},
		{"0", 0},
		{"12", 12},
		{"-1", 4},
		{"abc", 4},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("P2O_TEST_INT", tt.value)
			assert.Equal(t, tt.want, EnvInt("P2O_TEST_INT", 4))
		})
	}
}

func TestEnvDuration(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{"", 30 * time.Second},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"0s", 30 * time.Second},
		{"soon", 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("P2O_TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, EnvDuration("P2O_TEST_DURATION", 30*time.Second))
		})
	}
}
