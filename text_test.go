package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "typed value", input: "space-game\r", expected: "space-game"},
		{name: "default on empty", input: "\r", expected: "my-app"},
		{name: "backspace", input: "gamf\x7fe\r", expected: "game"},
		{name: "backspace on empty buffer", input: "\x7f\x7f\r", expected: "my-app"},
		{name: "erased back to default", input: "ab\x7f\x7f\r", expected: "my-app"},
		{name: "space is text", input: "my game\r", expected: "my game"},
		{name: "arrows ignored", input: "a\x1b[A\x1b[Bb\r", expected: "ab"},
		{name: "unicode", input: "ゲーム\r", expected: "ゲーム"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tp := newForTesting(t, tt.input)
			got, err := tp.TextInput("Project name:", "my-app")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Contains(t, tp.output.String(), "✔ Project name: "+tt.expected+"\r\n")
			assert.False(t, tp.terminal.rawMode)
		})
	}
}

func TestTextInputView(t *testing.T) {
	t.Parallel()

	r := newRenderer(nil, painter{scheme: ThemeDefault})
	w := &textInput{prompt: "Project name:", def: "my-app"}

	f := w.view(r)
	assert.Equal(t, []string{"? Project name: my-app"}, f.lines)
	assert.True(t, f.parkAtCursor)
	assert.Equal(t, 0, f.cursorRow)
	assert.Equal(t, 16, f.cursorCol, "cursor sits before the placeholder")

	w.handle(Key{Code: KeyRune, Rune: 'g'})
	w.handle(Key{Code: KeyRune, Rune: 'o'})
	f = w.view(r)
	assert.Equal(t, []string{"? Project name: go"}, f.lines)
	assert.Equal(t, 18, f.cursorCol)
}

func TestTextInputHandle(t *testing.T) {
	t.Parallel()

	w := &textInput{def: "x"}
	assert.False(t, w.handle(Key{Code: KeyRune, Rune: 'a'}))
	assert.False(t, w.handle(Key{Code: KeyEsc}))
	assert.False(t, w.handle(Key{Code: KeyUp}))
	assert.True(t, w.handle(Key{Code: KeyEnter}))
	assert.Equal(t, "a", w.summary())
	assert.False(t, w.hidesCursor())
}
