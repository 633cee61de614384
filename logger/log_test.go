package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNamedLoggerEnabledLevels(t *testing.T) {
	config := Config{
		Level:  "warn",
		Format: "console",
	}
	loggerName := "Test Kernel Logger"
	err := config.Configure()
	require.NoError(t, err)

	testLogger, err := GetLogger(loggerName)
	require.NoError(t, err)
	testLogger.Infof("testing logging")
	testLogger.Warnf("WARN testing logging %s", "args")
	testLogger.Warn("msg 1", "msg 2")

	// uses the globally-configured log level by default
	require.False(t, testLogger.logger.Core().Enabled(zap.DebugLevel))
	require.False(t, testLogger.logger.Core().Enabled(zap.InfoLevel))
	require.True(t, testLogger.logger.Core().Enabled(zap.WarnLevel))

	// same name cannot be re-levelled
	sameLogger, err := GetLoggerWithLevel(loggerName, zap.DebugLevel)
	require.NoError(t, err)
	require.Same(t, testLogger, sameLogger)
	require.False(t, sameLogger.logger.Core().Enabled(zap.DebugLevel))
	require.True(t, sameLogger.logger.Core().Enabled(zap.WarnLevel))
}

func TestNamedLogger(t *testing.T) {
	config := Config{
		Level:  "debug",
		Format: "console",
	}
	err := config.Configure()
	require.NoError(t, err)
	require.True(t, DebugEnabled)

	testLogger, err := GetLoggerWithLevel("Test-Kernel-Logger", zap.DebugLevel)
	require.NoError(t, err)

	testLogger.Debug("debug 1", " debug 2")
	testLogger.Debugf("debug %d debug %d", 1, 2)
	testLogger.Info("info 1", " info 2")
	testLogger.Infof("info %d info %d", 1, 2)
	testLogger.Warn("warn 1", " warn 2")
	testLogger.Warnf("warn %d warn %d", 1, 2)
	testLogger.Error("error 1", " error 2")
	testLogger.Errorf("error %d error %d", 1, 2)
}

func TestConfigureRejectsBadValues(t *testing.T) {
	err := (&Config{Level: "info", Format: "xml"}).Configure()
	require.Error(t, err)
	err = (&Config{Level: "loud", Format: "json"}).Configure()
	require.Error(t, err)
}

func TestNamedLoggerRequiresName(t *testing.T) {
	_, err := GetLogger("")
	require.Error(t, err)
}
