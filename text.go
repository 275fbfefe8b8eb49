package prompt

import (
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// textInput is a single-line editor with a default value.
type textInput struct {
	prompt string
	def    string
	buffer []rune
}

func (t *textInput) hidesCursor() bool { return false }

func (t *textInput) handle(k Key) bool {
	switch k.Code {
	case KeyEnter:
		return true
	case KeyBackspace:
		if len(t.buffer) > 0 {
			t.buffer = t.buffer[:len(t.buffer)-1]
		}
	case KeyRune:
		t.buffer = append(t.buffer, k.Rune)
	}
	return false
}

// value is the buffer, or the default when nothing was typed.
func (t *textInput) value() string {
	if len(t.buffer) == 0 {
		return t.def
	}
	return string(t.buffer)
}

func (t *textInput) summary() string { return t.value() }

func (t *textInput) view(r *renderer) frame {
	line := r.question(t.prompt) + " "
	typed := string(t.buffer)
	if typed == "" {
		// The placeholder is drawn but the cursor stays at the start of it
		line += r.muted(t.def)
	} else {
		line += typed
	}
	return frame{
		lines:        []string{line},
		cursorRow:    0,
		cursorCol:    questionWidth(t.prompt) + ansi.StringWidth(typed),
		parkAtCursor: true,
	}
}

// TextInput asks for a single line of text. Committing an empty line
// returns def.
func (p *Prompter) TextInput(prompt, def string) (string, error) {
	w := &textInput{prompt: prompt, def: def}
	if err := p.run(prompt, w); err != nil {
		return "", err
	}
	p.logger.Debug("text input committed", zap.String("prompt", prompt), zap.String("value", w.value()))
	return w.value(), nil
}

// TextInput opens the terminal, asks for one line of text and closes it.
func TextInput(prompt, def string, options ...Option) (string, error) {
	var value string
	err := withPrompter(options, func(p *Prompter) error {
		var err error
		value, err = p.TextInput(prompt, def)
		return err
	})
	return value, err
}
