package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AI_RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 10, cfg.AIRateLimitPerMinute)
	assert.Empty(t, cfg.AnthropicAPIKey)
	assert.False(t, cfg.FirebaseEnabled())
}
