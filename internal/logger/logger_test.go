package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitialize_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			err := Initialize(lvl, "gw-transfer-ledger", "test")
			assert.NoError(t, err, "expected no error for level %s", lvl)
			assert.NotNil(t, Log)
			assert.IsType(t, &zap.SugaredLogger{}, Log)
			assert.True(t, Log.Desugar().Core().Enabled(zap.FatalLevel))

			assert.NotPanics(t, func() {
				Log.Debugw("test log", "level", lvl)
			})
		})
	}
}

func TestInitialize_LevelFiltering(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	assert.NoError(t, Initialize("warn", "gw-transfer-ledger", ""))
	assert.False(t, Log.Desugar().Core().Enabled(zap.InfoLevel))
	assert.True(t, Log.Desugar().Core().Enabled(zap.WarnLevel))
}

func TestInitialize_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	err := Initialize("not-a-level", "gw-transfer-ledger", "main")
	assert.Error(t, err)
	assert.Same(t, originalLog, Log)
}

func TestLog_NopBeforeInitialize(t *testing.T) {
	assert.NotNil(t, Log)
	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
		Sync()
	})
}
