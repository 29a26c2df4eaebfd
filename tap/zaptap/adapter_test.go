package zaptap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taplog/taplog/core"
	"github.com/taplog/taplog/dispatch"
)

func TestEmit_Forwarding(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	tap := New(zap.New(obs))

	tap.Emit(core.WarningLevel, core.CallerInfo{}, []byte("queue depth high"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "queue depth high", entry.Message)
}

func TestEmit_CallerField(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	tap := New(zap.New(obs))

	caller := core.CallerInfo{File: "/src/sensor.go", Line: 9, Defined: true}
	tap.Emit(core.ErrorLevel, caller, []byte("read failed"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "sensor.go:9", fields["caller"])
}

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		in   core.Level
		want zapcore.Level
	}{
		{core.TraceLevel, zapcore.DebugLevel},
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.WarningLevel, zapcore.WarnLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		{core.CriticalLevel, zapcore.ErrorLevel},
		{core.Level(42), zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, toZapLevel(tt.in))
		})
	}
}

func TestNew_NilLogger(t *testing.T) {
	tap := New(nil)
	// Must not panic; the nop logger swallows everything.
	tap.Emit(core.CriticalLevel, core.CallerInfo{}, []byte("ignored"))
}

func TestSubscribedToDispatcher(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	tap := New(zap.New(obs))

	d := dispatch.New(dispatch.Config{})
	require.NoError(t, d.Subscribe(tap, core.DebugLevel))

	d.Error("worker %d down", 3)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "worker 3 down", logs.All()[0].Message)
}
