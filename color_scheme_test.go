package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{name: "rgb", color: Color{R: 255, G: 0, B: 0}, expected: "\x1b[38;2;255;0;0m"},
		{name: "bold rgb", color: Color{R: 0, G: 255, B: 0, Bold: true}, expected: "\x1b[1;38;2;0;255;0m"},
		{name: "plain bold", color: Color{Plain: true, Bold: true}, expected: "\x1b[1m"},
		{name: "plain", color: Color{Plain: true}, expected: ""},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.color.ToANSI())
		})
	}
}

func TestColorReset(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\x1b[0m", Reset())
}

func TestPainter(t *testing.T) {
	t.Parallel()

	off := painter{scheme: ThemeDefault}
	assert.Equal(t, "text", off.active("text"))
	assert.Equal(t, "text", off.notice("text"))

	on := painter{scheme: ThemeDefault, enabled: true}
	assert.Equal(t, ThemeDefault.Checked.ToANSI()+"text"+Reset(), on.checked("text"))
	assert.Equal(t, "", on.muted(""), "empty text stays empty")

	mono := painter{scheme: ThemeMonochrome, enabled: true}
	assert.Equal(t, "text", mono.checked("text"), "plain colours emit nothing")
	assert.Equal(t, "\x1b[1mtext"+Reset(), mono.active("text"))
}

func TestThemesAreComplete(t *testing.T) {
	t.Parallel()

	for _, scheme := range []*ColorScheme{ThemeDefault, ThemeAccessible, ThemeMonochrome} {
		assert.NotEmpty(t, scheme.Name)
		p := painter{scheme: scheme, enabled: true}
		for _, paint := range []func(string) string{p.marker, p.prompt, p.active, p.checked, p.muted, p.notice, p.value} {
			assert.Contains(t, paint("x"), "x", scheme.Name)
		}
	}
}

func TestThemeNames(t *testing.T) {
	t.Parallel()

	var names []string
	for _, scheme := range []*ColorScheme{ThemeDefault, ThemeAccessible, ThemeMonochrome} {
		names = append(names, scheme.Name)
	}
	assert.Equal(t, []string{"Default", "Accessible", "Monochrome"}, names)
}
