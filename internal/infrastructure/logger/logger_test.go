package logger

import (
	"testing"

	"comanda/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	l, err := New(config.LogConfig{Level: "warn", Encoding: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	_, err = New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestInstall(t *testing.T) {
	before := zap.L()
	restore, err := Install(config.LogConfig{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.NotSame(t, before, zap.L())
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	restore()
	assert.Same(t, before, zap.L())
}
