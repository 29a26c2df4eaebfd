package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxSubscribers, cfg.MaxSubscribers)
	assert.Equal(t, DefaultMaxMessageLength, cfg.MaxMessageLength)
	assert.False(t, cfg.WithCaller)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("TAPLOG_MAX_SUBSCRIBERS", "12")
	t.Setenv("TAPLOG_MAX_MESSAGE_LENGTH", "256")
	t.Setenv("TAPLOG_WITH_CALLER", "true")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MaxSubscribers)
	assert.Equal(t, 256, cfg.MaxMessageLength)
	assert.True(t, cfg.WithCaller)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("TAPLOG_MAX_SUBSCRIBERS", "many")

	_, err := ConfigFromEnv()
	require.Error(t, err)
}
