package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNew_Formats(t *testing.T) {
	for _, cfg := range []Config{
		{Level: "info", Format: "json"},
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "console", EnableColor: true},
	} {
		l, err := New(cfg)
		require.NoError(t, err, cfg.Format)
		assert.NotNil(t, l)
	}
}

func TestColoredConsoleEncoder_HighlightsFields(t *testing.T) {
	enc := NewColoredConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	buf, err := enc.EncodeEntry(zapcore.Entry{Message: "hello"}, []zapcore.Field{zap.String("provider", "openai")})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "openai")
}

func TestShouldEnableColor(t *testing.T) {
	t.Setenv("LOG_COLOR", "0")
	assert.False(t, shouldEnableColor())
}
