package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/warp/pay-engine/config"
)

func TestNew_Levels(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := New(config.Log{Level: "warn", Format: format})
		require.NoError(t, err, format)

		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel), format)
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel), format)
	}
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New(config.Log{Level: "verbose"})
	assert.Error(t, err)
}
