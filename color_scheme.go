package prompt

import (
	"fmt"
	"strings"
)

// ColorScheme defines the colours used by every prompt.
type ColorScheme struct {
	Name    string `json:"name"`
	Marker  Color  `json:"marker"`  // "? " in front of the question, "✔ " after commit
	Prompt  Color  `json:"prompt"`  // Question text
	Active  Color  `json:"active"`  // Row under the cursor, top search match
	Checked Color  `json:"checked"` // Checked or already installed rows
	Muted   Color  `json:"muted"`   // Placeholders, help and summary lines
	Notice  Color  `json:"notice"`  // Transient "cannot modify" notice
	Value   Color  `json:"value"`   // Committed value on the confirmation line
}

// Color represents an RGB color with optional formatting.
// A Color with Plain set emits no colour code, only the bold attribute.
type Color struct {
	R     uint8 `json:"r"`
	G     uint8 `json:"g"`
	B     uint8 `json:"b"`
	Bold  bool  `json:"bold"`
	Plain bool  `json:"plain"`
}

// ThemeDefault mirrors the classic green question mark, blue cursor and
// green checked rows.
var ThemeDefault = &ColorScheme{
	Name:    "Default",
	Marker:  Color{R: 0, G: 205, B: 0, Bold: true},
	Prompt:  Color{Plain: true, Bold: true},
	Active:  Color{R: 59, G: 142, B: 234},
	Checked: Color{R: 0, G: 205, B: 0},
	Muted:   Color{R: 128, G: 128, B: 128},
	Notice:  Color{R: 205, G: 49, B: 49},
	Value:   Color{R: 17, G: 168, B: 205},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &ColorScheme{
	Name:    "Accessible",
	Marker:  Color{R: 0, G: 114, B: 178, Bold: true},
	Prompt:  Color{R: 255, G: 255, B: 255, Bold: true},
	Active:  Color{R: 230, G: 159, B: 0, Bold: true},
	Checked: Color{R: 86, G: 180, B: 233},
	Muted:   Color{R: 204, G: 204, B: 204},
	Notice:  Color{R: 213, G: 94, B: 0, Bold: true},
	Value:   Color{R: 240, G: 228, B: 66},
}

// ThemeMonochrome relies on weight alone.
var ThemeMonochrome = &ColorScheme{
	Name:    "Monochrome",
	Marker:  Color{Plain: true, Bold: true},
	Prompt:  Color{Plain: true, Bold: true},
	Active:  Color{Plain: true, Bold: true},
	Checked: Color{Plain: true},
	Muted:   Color{Plain: true},
	Notice:  Color{Plain: true, Bold: true},
	Value:   Color{Plain: true, Bold: true},
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}
	if !c.Plain {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
	}
	if len(codes) == 0 {
		return ""
	}

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}

// painter applies a ColorScheme, or nothing when colour is disabled.
type painter struct {
	scheme  *ColorScheme
	enabled bool
}

func (p painter) paint(c Color, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	code := c.ToANSI()
	if code == "" {
		return text
	}
	return code + text + Reset()
}

func (p painter) marker(text string) string  { return p.paint(p.scheme.Marker, text) }
func (p painter) prompt(text string) string  { return p.paint(p.scheme.Prompt, text) }
func (p painter) active(text string) string  { return p.paint(p.scheme.Active, text) }
func (p painter) checked(text string) string { return p.paint(p.scheme.Checked, text) }
func (p painter) muted(text string) string   { return p.paint(p.scheme.Muted, text) }
func (p painter) notice(text string) string  { return p.paint(p.scheme.Notice, text) }
func (p painter) value(text string) string   { return p.paint(p.scheme.Value, text) }
