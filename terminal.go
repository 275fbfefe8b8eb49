package prompt

import (
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the terminal operations a prompt needs.
//
// Implementations:
//   - realTerminal: go-tty for key input, golang.org/x/term for raw mode
//   - mockTerminal: scripted input for tests
//
// Buffered reports whether more input is already waiting. It is used to tell
// a lone Esc key apart from the first byte of an escape sequence without
// blocking on the next key press.
type terminalInterface interface {
	SetRaw() error                // Enter raw mode for immediate key processing
	Restore() error               // Restore original terminal settings
	ReadRune() (rune, int, error) // Read a single Unicode character from input
	Buffered() bool               // Report whether input is already pending
	Close() error                 // Release the tty handle
}

// realTerminal implements terminalInterface on top of go-tty and x/term.
//
// The original terminal state is captured on every SetRaw so Restore always
// returns to whatever mode the caller had before the prompt started.
type realTerminal struct {
	tty           *tty.TTY    // TTY handle from go-tty for cross-platform key reads
	closed        bool        // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd       int         // File descriptor for stdin for raw mode management
	originalState *term.State // Original terminal state to restore on exit
}

func newRealTerminal() (*realTerminal, error) {
	stdinFd := int(os.Stdin.Fd())
	if !term.IsTerminal(stdinFd) {
		return nil, ErrNotTerminal
	}

	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	return &realTerminal{
		tty:     t,
		stdinFd: stdinFd,
	}, nil
}

func (t *realTerminal) SetRaw() error {
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state

	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Reset the state so that SetRaw can capture a fresh baseline next time
	t.originalState = nil
	return err
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed || t.tty == nil {
		return nil
	}
	t.closed = true
	return t.tty.Close()
}

// output is the controlling terminal's output side. Prompts draw there so
// the process's stdout stays free for results.
func (t *realTerminal) output() *os.File {
	return t.tty.Output()
}

// terminalWriter wraps f for ANSI support where the platform needs it.
func terminalWriter(f *os.File) io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorable(f)
	}
	return f
}

// colorEnabled reports whether f should receive colour sequences.
func colorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
