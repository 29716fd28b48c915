package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("fetching %s", "stats")
	l.Info("screen %d drawn", 2)
	l.Warn("stale cache")
	l.Error("fetch failed: %v", "timeout")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "fetching stats", l.Messages[0].Message)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "screen 2 drawn", l.Messages[1].Message)

	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("fatal"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestNoop(t *testing.T) {
	l := Noop()
	// Should not panic or emit anything
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)
	Default().Info("hello")

	assert.Len(t, buf.Messages, 1)
}
