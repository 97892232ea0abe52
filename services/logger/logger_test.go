package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.WarnLevel, WarnLevel.zapLevel())
}

func TestZapLogger(t *testing.T) {
	log, err := NewZapLogger(ErrorLevel, false)
	require.NoError(t, err)

	child := log.With("run_id", "abc")
	assert.NotNil(t, child)
	child.Info("không in ở mức error %d", 1)

	var _ Logger = NewNopLogger()
}
