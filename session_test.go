package prompt

import (
	"bytes"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func noExit(int) {}

func TestSessionHidesAndRestoresCursor(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("")
	var out bytes.Buffer

	s, err := enterSession(terminal, &out, true, zap.NewNop(), noExit)
	require.NoError(t, err)
	assert.True(t, terminal.rawMode)
	assert.Equal(t, ansi.HideCursor, out.String())

	s.close()
	assert.False(t, terminal.rawMode)
	assert.Equal(t, ansi.HideCursor+ansi.ShowCursor, out.String())

	s.close()
	assert.Equal(t, 1, terminal.restores, "close must restore only once")
	assert.Equal(t, ansi.HideCursor+ansi.ShowCursor, out.String())
}

func TestSessionVisibleCursor(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("")
	var out bytes.Buffer

	s, err := enterSession(terminal, &out, false, zap.NewNop(), noExit)
	require.NoError(t, err)
	s.close()

	assert.Empty(t, out.String())
	assert.Equal(t, 1, terminal.rawCount)
	assert.Equal(t, 1, terminal.restores)
}

func TestSessionRawModeFailure(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("")
	terminal.rawErr = errors.New("inappropriate ioctl for device")

	s, err := enterSession(terminal, &bytes.Buffer{}, true, zap.NewNop(), noExit)
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to enter raw mode")
	assert.Equal(t, 0, terminal.restores)
}

func TestSessionRestoreFailureIsLogged(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	terminal := newMockTerminal("")
	terminal.restoreErr = errors.New("bad file descriptor")

	s, err := enterSession(terminal, &bytes.Buffer{}, false, zap.New(core), noExit)
	require.NoError(t, err)

	assert.NotPanics(t, s.close)
	entries := logs.FilterMessage("failed to restore terminal mode").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bad file descriptor", entries[0].ContextMap()["error"])
}

func TestPromptSucceedsWhenRestoreFails(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	tp := newForTesting(t, "y", WithLogger(zap.New(core)))
	tp.terminal.restoreErr = errors.New("bad file descriptor")

	ok, err := tp.Confirm("Continue?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, logs.Len())
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  os.Signal
		want int
	}{
		{name: "interrupt", sig: os.Interrupt, want: 130},
		{name: "hangup", sig: syscall.SIGHUP, want: 129},
		{name: "terminate", sig: syscall.SIGTERM, want: 143},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitStatus(tt.sig))
		})
	}
}

func TestSessionReleaseClosesTerminal(t *testing.T) {
	t.Parallel()

	terminal := newMockTerminal("")
	s, err := enterSession(terminal, &bytes.Buffer{}, false, zap.NewNop(), noExit)
	require.NoError(t, err)

	s.close()
	s.release()
	assert.True(t, terminal.closed)
	assert.Equal(t, 1, terminal.restores)
}
