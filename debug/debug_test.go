//go:build !js
// +build !js

package debug

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := sink
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { sink = prev })
	return buf
}

func TestDebug_WritesWhenEnabled(t *testing.T) {
	buf := captureLogs(t)
	EnableDebug = true

	Debug("health:", 990)

	assert.Contains(t, buf.String(), "health: 990")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestDebug_SilentWhenDisabled(t *testing.T) {
	buf := captureLogs(t)
	EnableDebug = false
	t.Cleanup(func() { EnableDebug = true })

	Debug("nope")
	Debugf("nope %d", 1)

	assert.Empty(t, buf.String())
}

func TestDebugWarn_IgnoresSwitch(t *testing.T) {
	buf := captureLogs(t)
	EnableDebug = false
	t.Cleanup(func() { EnableDebug = true })

	DebugWarn("pool exhausted")
	DebugError("load failed")

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "level=ERROR")
}
