package prompt

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// interruptedStatus is the conventional exit status for a process stopped by
// SIGINT (128 + 2).
const interruptedStatus = 130

// exitStatus is the shell convention for a process ended by sig: 128 plus
// the signal number.
func exitStatus(sig os.Signal) int {
	if n, ok := sig.(syscall.Signal); ok {
		return 128 + int(n)
	}
	return interruptedStatus
}

// session owns raw mode and cursor visibility for the lifetime of one prompt.
//
// close restores both exactly once, whichever exit path gets there first:
// the prompt returning, Ctrl+C read as a key, or a termination signal
// delivered to the process. The paths that end the process also release the
// terminal handle, since only that puts back the mode the shell had before
// the terminal was opened.
type session struct {
	terminal     terminalInterface
	output       io.Writer
	cursorHidden bool
	logger       *zap.Logger

	once    sync.Once
	signals chan os.Signal
	done    chan struct{}
}

// enterSession switches the terminal to raw mode and optionally hides the
// cursor. A failure to enter raw mode is returned; nothing is left to undo in
// that case.
func enterSession(t terminalInterface, output io.Writer, hideCursor bool, logger *zap.Logger, exit func(int)) (*session, error) {
	if err := t.SetRaw(); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	s := &session{
		terminal: t,
		output:   output,
		logger:   logger,
		signals:  make(chan os.Signal, 1),
		done:     make(chan struct{}),
	}

	if hideCursor {
		if _, err := io.WriteString(output, ansi.HideCursor); err != nil {
			s.close()
			return nil, fmt.Errorf("failed to hide cursor: %w", err)
		}
		s.cursorHidden = true
	}

	signal.Notify(s.signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go s.watchSignals(exit)

	return s, nil
}

func (s *session) watchSignals(exit func(int)) {
	select {
	case sig := <-s.signals:
		s.logger.Debug("terminating on signal", zap.String("signal", sig.String()))
		s.close()
		s.release()
		exit(exitStatus(sig))
	case <-s.done:
	}
}

// close restores the terminal. Errors are logged, never returned, so a
// cleanup failure cannot mask the prompt's own result.
func (s *session) close() {
	s.once.Do(func() {
		signal.Stop(s.signals)
		close(s.done)

		if s.cursorHidden {
			if _, err := io.WriteString(s.output, ansi.ShowCursor); err != nil {
				s.logger.Warn("failed to show cursor", zap.Error(err))
			}
		}
		if err := s.terminal.Restore(); err != nil {
			s.logger.Warn("failed to restore terminal mode", zap.Error(err))
		}
	})
}

// release closes the terminal handle before the process exits.
func (s *session) release() {
	if err := s.terminal.Close(); err != nil {
		s.logger.Warn("failed to close terminal", zap.Error(err))
	}
}
