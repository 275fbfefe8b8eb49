package prompt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWidget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		locked    []string
		installed []string
		expected  AddResult
	}{
		{
			name:     "feature and font",
			input:    keySpace + keyDown + keyDown + "open" + keyEnter + keyDown + keyEnter,
			expected: AddResult{Features: []string{"a"}, Fonts: []string{"Open Sans"}},
		},
		{
			name:     "several fonts keep their order",
			input:    keyDown + keyDown + "lat" + keyEnter + "rob" + keyEnter + "pop" + keyEnter + keyDown + keySpace,
			expected: AddResult{Features: []string{}, Fonts: []string{"Lato", "Roboto", "Poppins"}},
		},
		{
			name:      "installed font rejected",
			input:     keyDown + keyDown + "rob" + keyEnter + keyDown + keyEnter,
			installed: []string{"Roboto"},
			expected:  AddResult{Features: []string{}, Fonts: []string{}},
		},
		{
			name:     "font added twice kept once",
			input:    keyDown + keyDown + "lato" + keyEnter + "lato" + keyEnter + keyDown + keyEnter,
			expected: AddResult{Features: []string{}, Fonts: []string{"Lato"}},
		},
		{
			name:     "locked feature excluded",
			input:    keySpace + keyDown + keySpace + keyDown + keyDown + keyEnter,
			locked:   []string{"a"},
			expected: AddResult{Features: []string{"b"}, Fonts: []string{}},
		},
		{
			name:     "enter on empty result does nothing",
			input:    keyDown + keyDown + "zzz" + keyEnter + keyDown + keyEnter,
			expected: AddResult{Features: []string{}, Fonts: []string{}},
		},
		{
			name:     "done is reached back through the search",
			input:    keyDown + keyDown + keyDown + keyUp + keyUp + keySpace + keyDown + keyDown + keyEnter,
			expected: AddResult{Features: []string{"b"}, Fonts: []string{}},
		},
		{
			name:     "space in font search is text",
			input:    keyDown + keyDown + "roboto m" + keyEnter + keyDown + keyEnter,
			expected: AddResult{Features: []string{}, Fonts: []string{"Roboto Mono"}},
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tp := newForTesting(t, tt.input)
			got, err := tp.AddWidget("Add to project:", abFeatures, testFonts, tt.locked, tt.installed, "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.False(t, tp.terminal.rawMode)
		})
	}
}

func TestAddWidgetConfirmationLine(t *testing.T) {
	t.Parallel()

	tp := newForTesting(t, keySpace+keyDown+keyDown+"lato"+keyEnter+keyDown+keyEnter)
	_, err := tp.AddWidget("Add to project:", abFeatures, testFonts, nil, nil, "")
	require.NoError(t, err)
	assert.Contains(t, tp.output.String(), "✔ Add to project: Features: A | Fonts: Lato\r\n")

	tp = newForTesting(t, keyDown+keyDown+keyDown+keyEnter)
	_, err = tp.AddWidget("Add to project:", abFeatures, testFonts, nil, nil, "")
	require.NoError(t, err)
	assert.Contains(t, tp.output.String(), "✔ Add to project: (no changes)\r\n")
}

func TestAddWidgetZoneTraversal(t *testing.T) {
	t.Parallel()

	w := newAddWidget("Add:", abFeatures, testFonts, nil, nil, "", DefaultNotice)
	assert.Equal(t, addCursor(featureCursor(0)), w.cursor)

	steps := []struct {
		key      KeyCode
		expected addCursor
	}{
		{KeyUp, featureCursor(0)},
		{KeyDown, featureCursor(1)},
		{KeyDown, fontSearchCursor{}},
		{KeyDown, doneCursor{}},
		{KeyDown, doneCursor{}},
		{KeyUp, fontSearchCursor{}},
		{KeyUp, featureCursor(1)},
		{KeyDown, fontSearchCursor{}},
		{KeyUp, featureCursor(1)},
		{KeyUp, featureCursor(0)},
	}
	for i, step := range steps {
		assert.False(t, w.handle(Key{Code: step.key}))
		assert.Equal(t, step.expected, w.cursor, "step %d", i)
	}
}

func TestAddWidgetWithoutFeatures(t *testing.T) {
	t.Parallel()

	w := newAddWidget("Add:", nil, testFonts, nil, nil, "", DefaultNotice)
	assert.Equal(t, addCursor(fontSearchCursor{}), w.cursor)

	w.handle(Key{Code: KeyUp})
	assert.Equal(t, addCursor(fontSearchCursor{}), w.cursor)
	w.handle(Key{Code: KeyDown})
	assert.Equal(t, addCursor(doneCursor{}), w.cursor)
	assert.True(t, w.handle(Key{Code: KeyEnter}))
}

func TestAddWidgetDuplicateFontNotice(t *testing.T) {
	t.Parallel()

	r := newRenderer(&bytes.Buffer{}, painter{scheme: ThemeDefault})
	w := newAddWidget("Add:", abFeatures, testFonts, nil, []string{"Roboto"}, "", "already there")
	w.cursor = fontSearchCursor{}

	for _, ch := range "rob" {
		w.handle(Key{Code: KeyRune, Rune: ch})
	}
	assert.False(t, w.handle(Key{Code: KeyEnter}))
	assert.Empty(t, w.added)
	assert.True(t, w.fontNotice)
	assert.Empty(t, w.query, "query is cleared after a rejected add")

	f := w.view(r)
	assert.Equal(t, []string{
		"? Add:",
		"    [ ] A: descA",
		"    [ ] B: descB",
		"  Add fonts: " + searchPlaceholder,
		"    already there",
		"    > Done!",
	}, f.lines)

	w.handle(Key{Code: KeyRune, Rune: 'l'})
	assert.False(t, w.fontNotice)
}

func TestAddWidgetView(t *testing.T) {
	t.Parallel()

	r := newRenderer(&bytes.Buffer{}, painter{scheme: ThemeDefault})
	w := newAddWidget("Add:", abFeatures, testFonts, []string{"a"}, nil, "Esc clears the search", DefaultNotice)

	w.handle(Key{Code: KeyDown})
	w.handle(Key{Code: KeyRune, Rune: ' '})
	w.handle(Key{Code: KeyDown})
	for _, ch := range "lato" {
		w.handle(Key{Code: KeyRune, Rune: ch})
	}
	w.handle(Key{Code: KeyEnter})
	for _, ch := range "ro" {
		w.handle(Key{Code: KeyRune, Rune: ch})
	}

	f := w.view(r)
	assert.Equal(t, []string{
		"? Add:",
		"    [x] A: descA",
		"    [x] B: descB",
		"  Add fonts: ro",
		"    Roboto",
		"    Roboto Condensed",
		"    Roboto Mono",
		"    > Done!",
		"  +B  +Lato",
		"  Esc clears the search",
	}, f.lines)
	assert.True(t, f.parkAtCursor)
	assert.True(t, f.manageCursor)
	assert.Equal(t, 3, f.cursorRow)
	assert.Equal(t, 15, f.cursorCol)

	occupied, err := r.draw(f, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, occupied, "parked on the search row")

	w.handle(Key{Code: KeyDown})
	f = w.view(r)
	assert.False(t, f.parkAtCursor)
	occupied, err = r.draw(f, occupied)
	require.NoError(t, err)
	assert.Equal(t, len(f.lines), occupied)
}

func TestAddWidgetFontStyles(t *testing.T) {
	t.Parallel()

	r := newRenderer(&bytes.Buffer{}, painter{scheme: ThemeDefault, enabled: true})
	w := newAddWidget("Add:", nil, []string{"Lato", "Inter", "Roboto"}, nil, []string{"Inter"}, "", DefaultNotice)

	lines := w.view(r).lines
	assert.Equal(t, r.active("    Lato"), lines[2], "top match while searching")
	assert.Equal(t, r.checked("    Inter"), lines[3], "installed font")
	assert.Equal(t, "    Roboto", lines[4])

	w.handle(Key{Code: KeyDown})
	lines = w.view(r).lines
	assert.Equal(t, "    Lato", lines[2], "no highlight once the search is left")
}
