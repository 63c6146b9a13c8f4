package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitGlobalLogger(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()

	out := &bytes.Buffer{}
	require.NoError(t, InitGlobalLoggerWithWriter("info", out))

	log := GetLoggerWithPrefix("[TEST]")
	log.Debug("hidden")
	log.Info("visible")

	require.Contains(t, out.String(), "[TEST]: visible")
	require.NotContains(t, out.String(), "hidden")
}

func TestInitGlobalLoggerRejectsUnknownLevel(t *testing.T) {
	initialized = false
	defer func() { initialized = false }()

	require.Error(t, InitGlobalLoggerWithWriter("LOUD", &bytes.Buffer{}))
	require.False(t, initialized)
}

func TestInitGlobalLoggerOnlyOnce(t *testing.T) {
	initialized = true
	defer func() { initialized = false }()

	require.NoError(t, InitGlobalLoggerWithWriter("not-a-level", &bytes.Buffer{}))
}
