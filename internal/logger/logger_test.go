package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	Init()
	require.NotNil(t, log)
}

func TestLoggingDoesNotPanic(t *testing.T) {
	Init()

	require.NotPanics(t, func() {
		Info("info message")
		Infof("info %s", "formatted")
		Error("error message")
		Errorf("error %d", 42)
		Debug("debug message")
		Debugf("debug %v", true)
		Warnf("warn %s", "message")
	})
}

func TestGetBeforeInit(t *testing.T) {
	log = nil
	require.NotPanics(t, func() {
		Info("lazy init")
	})
	require.NotNil(t, log)
}
