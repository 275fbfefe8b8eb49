package prompt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// frame is one complete drawing of a widget.
//
// When parkAtCursor is set the terminal cursor is moved back to
// (cursorRow, cursorCol) after drawing, so the user can see where they type.
// Otherwise the cursor is left below the last line; those widgets hide the
// cursor and show the active row by highlighting alone.
//
// manageCursor is for widgets that mix both kinds of zone: the cursor is
// hidden while drawing and shown again only when it is parked.
type frame struct {
	lines        []string
	cursorRow    int
	cursorCol    int
	parkAtCursor bool
	manageCursor bool
}

// renderer draws frames and erases the previous one before each redraw.
//
// There is no cell diffing: a redraw moves up by the occupied-line count
// returned from the previous draw, clears to the end of the screen, and
// writes the whole frame again. Every line ends in an explicit CR LF so
// nothing depends on the terminal's auto-wrap or newline translation, which
// raw mode turns off.
type renderer struct {
	output io.Writer
	painter
}

func newRenderer(output io.Writer, p painter) *renderer {
	return &renderer{
		output:  output,
		painter: p,
	}
}

// draw erases the previous frame and writes f. It returns the number of rows
// between the frame's first line and where the terminal cursor now sits,
// which is what the next draw must move up by.
func (r *renderer) draw(f frame, prevLines int) (int, error) {
	var buf bytes.Buffer
	if f.manageCursor {
		buf.WriteString(ansi.HideCursor)
	}
	eraseFrom(&buf, prevLines)

	for _, line := range f.lines {
		buf.WriteString(line)
		buf.WriteString("\r\n")
	}

	occupied := len(f.lines)
	if f.parkAtCursor {
		moveUp(&buf, len(f.lines)-f.cursorRow)
		buf.WriteString(ansi.CursorHorizontalAbsolute(f.cursorCol + 1))
		occupied = f.cursorRow
		if f.manageCursor {
			buf.WriteString(ansi.ShowCursor)
		}
	}

	if _, err := r.output.Write(buf.Bytes()); err != nil {
		return 0, fmt.Errorf("failed to render: %w", err)
	}
	return occupied, nil
}

// finish replaces the frame with a single "✔ prompt value" line.
func (r *renderer) finish(prevLines int, prompt, value string) error {
	var buf bytes.Buffer
	eraseFrom(&buf, prevLines)
	buf.WriteString(r.confirmation(prompt, value))
	buf.WriteString("\r\n")

	if _, err := r.output.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

// write emits text as is.
func (r *renderer) write(text string) error {
	if _, err := io.WriteString(r.output, text); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}

// question renders "? prompt".
func (r *renderer) question(prompt string) string {
	return r.marker("? ") + r.prompt(prompt)
}

func (r *renderer) confirmation(prompt, value string) string {
	return r.marker("✔ ") + r.prompt(prompt) + " " + r.value(value)
}

// questionWidth is the display width of "? prompt ", the column where typed
// text starts on a question line.
func questionWidth(prompt string) int {
	return 2 + ansi.StringWidth(prompt) + 1
}

func eraseFrom(buf *bytes.Buffer, prevLines int) {
	moveUp(buf, prevLines)
	buf.WriteString("\r")
	buf.WriteString(ansi.EraseScreenBelow)
}

// moveUp moves the cursor up n rows. CUU with a zero count still moves one
// row, so n == 0 writes nothing.
func moveUp(buf *bytes.Buffer, n int) {
	if n > 0 {
		buf.WriteString(ansi.CursorUp(n))
	}
}
