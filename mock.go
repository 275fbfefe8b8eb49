package prompt

import "io"

// mockTerminal implements terminalInterface for tests.
//
// Input is a pre-configured rune sequence; once it is consumed ReadRune
// returns io.EOF, which the prompts surface as a read failure. Raw-mode
// transitions are counted so tests can assert the terminal was restored.
type mockTerminal struct {
	input      []rune // Pre-configured input sequence for testing
	inputPos   int    // Current position in the input sequence
	rawMode    bool   // Track raw mode state for test verification
	rawCount   int    // Number of SetRaw calls
	restores   int    // Number of Restore calls
	closed     bool
	rawErr     error // Returned from SetRaw when set
	restoreErr error // Returned from Restore when set
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input: []rune(input),
	}
}

func (m *mockTerminal) SetRaw() error {
	if m.rawErr != nil {
		return m.rawErr
	}
	m.rawMode = true
	m.rawCount++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restores++
	return m.restoreErr
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

// Buffered treats an Esc as the start of a sequence only when it is
// immediately followed by a CSI or SS3 introducer.
func (m *mockTerminal) Buffered() bool {
	if m.inputPos >= len(m.input) {
		return false
	}
	next := m.input[m.inputPos]
	return next == '[' || next == 'O'
}

func (m *mockTerminal) Close() error {
	m.closed = true
	return nil
}
