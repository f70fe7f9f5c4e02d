package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestConfig_Format(t *testing.T) {
	jsonCfg := Config("info", FormatJSON)
	assert.Equal(t, "json", jsonCfg.Encoding)
	assert.False(t, jsonCfg.Development)

	consoleCfg := Config("debug", FormatConsole)
	assert.Equal(t, "console", consoleCfg.Encoding)
	assert.True(t, consoleCfg.Development)
	assert.Equal(t, zapcore.DebugLevel, consoleCfg.Level.Level())
	assert.Equal(t, []string{"stderr"}, consoleCfg.OutputPaths)
}

func TestNew(t *testing.T) {
	l, err := New("warn", FormatJSON)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}
