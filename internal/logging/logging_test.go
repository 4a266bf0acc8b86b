package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_PlainWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info")

	log.Warnf("ignoring tag %q", "7.4.1")

	assert.Equal(t, "WARN: ignoring tag \"7.4.1\"\n", buf.String())
}

func TestFormatter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug")

	log.WithFields(logrus.Fields{"image": "ubuntu", "args": 2}).Debug("resolved")

	assert.Equal(t, "DEBUG: resolved args=2 image=ubuntu\n", buf.String())
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info("hidden")
	log.Debug("hidden")
	log.Error("shown")

	assert.Equal(t, "ERROR: shown\n", buf.String())
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New(&bytes.Buffer{}, "chatty")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNew_BufferIsNotTerminal(t *testing.T) {
	log := New(&bytes.Buffer{}, "info")
	f, ok := log.Formatter.(*Formatter)
	require.True(t, ok)
	assert.False(t, f.Color)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "WARN", Label(logrus.WarnLevel))
	assert.Equal(t, "ERROR", Label(logrus.ErrorLevel))
	assert.Equal(t, "ERROR", Label(logrus.FatalLevel))
	assert.Equal(t, "DEBUG", Label(logrus.DebugLevel))
	assert.Equal(t, "INFO", Label(logrus.InfoLevel))
}

func TestFormatter_ColorKeepsMessage(t *testing.T) {
	f := &Formatter{Color: true}
	out, err := f.Format(&logrus.Entry{Level: logrus.WarnLevel, Message: "careful", Data: logrus.Fields{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "WARN")
	assert.Contains(t, string(out), ": careful\n")
}
