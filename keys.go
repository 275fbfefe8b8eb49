package prompt

import "strings"

// KeyCode identifies a decoded key press.
type KeyCode int

// Key codes understood by the prompts. Every printable character, Space
// included, arrives as KeyRune with the character in Key.Rune.
const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyEsc
	KeyInterrupt
)

// Key is one decoded keyboard event.
type Key struct {
	Code KeyCode
	Rune rune
}

// KeyMap holds the key binding configuration
type KeyMap struct {
	bindings  map[rune]KeyCode
	sequences map[string]KeyCode
}

// NewDefaultKeyMap creates the default key bindings.
//
// Default key bindings:
//   - Enter/Return: KeyEnter
//   - Ctrl+C: KeyInterrupt
//   - Backspace (DEL or Ctrl+H): KeyBackspace
//   - Arrow Up/Down (CSI and SS3 forms): KeyUp/KeyDown
//   - Ctrl+P/Ctrl+N: KeyUp/KeyDown
//
// Example:
//
//	keyMap := prompt.NewDefaultKeyMap()
//	// Use k/j style navigation on Ctrl+K / Ctrl+J
//	keyMap.Bind('\x0B', prompt.KeyUp)
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]KeyCode),
		sequences: make(map[string]KeyCode),
	}

	km.bindings['\r'] = KeyEnter
	km.bindings['\n'] = KeyEnter
	km.bindings['\x03'] = KeyInterrupt // Ctrl+C
	km.bindings['\x7f'] = KeyBackspace
	km.bindings['\b'] = KeyBackspace
	km.bindings['\x10'] = KeyUp   // Ctrl+P
	km.bindings['\x0E'] = KeyDown // Ctrl+N

	km.sequences["[A"] = KeyUp
	km.sequences["[B"] = KeyDown
	km.sequences["OA"] = KeyUp
	km.sequences["OB"] = KeyDown

	return km
}

// Bind adds or updates a key binding for a single character.
// Ctrl+C cannot be rebound; it always interrupts.
func (km *KeyMap) Bind(key rune, code KeyCode) {
	if key == '\x03' {
		return
	}
	km.bindings[key] = code
}

// BindSequence adds or updates an escape sequence binding.
// The sequence should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, code KeyCode) {
	km.sequences[seq] = code
}

// lookup returns the code bound to a single rune.
func (km *KeyMap) lookup(r rune) (KeyCode, bool) {
	if km == nil || km.bindings == nil {
		return KeyUnknown, false
	}
	code, ok := km.bindings[r]
	return code, ok
}

// lookupSequence returns the code bound to an escape sequence, or KeyUnknown.
func (km *KeyMap) lookupSequence(seq string) KeyCode {
	if km == nil || km.sequences == nil {
		return KeyUnknown
	}
	if code, ok := km.sequences[seq]; ok {
		return code
	}
	return KeyUnknown
}

// keyReader turns raw runes from the terminal into Key events.
type keyReader struct {
	terminal terminalInterface
	keyMap   *KeyMap
}

// next blocks until a full key event is available.
func (kr *keyReader) next() (Key, error) {
	r, _, err := kr.terminal.ReadRune()
	if err != nil {
		return Key{}, err
	}

	if r == '\x1b' {
		if !kr.terminal.Buffered() {
			return Key{Code: KeyEsc}, nil
		}
		seq, err := kr.readEscapeSequence()
		if err != nil {
			return Key{}, err
		}
		return Key{Code: kr.keyMap.lookupSequence(seq)}, nil
	}

	if r == '\x03' {
		return Key{Code: KeyInterrupt}, nil
	}
	if code, ok := kr.keyMap.lookup(r); ok {
		return Key{Code: code, Rune: r}, nil
	}
	if isPrintable(r) {
		return Key{Code: KeyRune, Rune: r}, nil
	}
	return Key{Code: KeyUnknown, Rune: r}, nil
}

// readEscapeSequence reads the remainder of a CSI or SS3 sequence after ESC.
func (kr *keyReader) readEscapeSequence() (string, error) {
	seq := make([]rune, 0, 8)
	for i := 0; i < 8; i++ { // Limit to prevent runaway reads on garbage input
		r, _, err := kr.terminal.ReadRune()
		if err != nil {
			return "", err
		}
		seq = append(seq, r)

		s := string(seq)
		switch {
		case len(seq) == 1 && r != '[' && r != 'O':
			// Alt+key: not a sequence we understand
			return s, nil
		case len(seq) == 2 && strings.HasPrefix(s, "O"):
			return s, nil
		case len(seq) >= 2 && (r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r == '~'):
			return s, nil
		}
	}
	return string(seq), nil
}

func isPrintable(r rune) bool {
	return r >= 32 && r != 127
}
