package prompt

import (
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// maxVisibleResults caps how many filtered entries are drawn. Selection
// always works on the full filtered list.
const maxVisibleResults = 6

const searchPlaceholder = "(type to search)"

// searchSelect picks one item by typing. The top match is always the
// selection; there is no cursor to move.
type searchSelect struct {
	prompt   string
	items    []string
	help     string
	query    []rune
	selected string
}

func (s *searchSelect) hidesCursor() bool { return false }

func (s *searchSelect) matches() []string {
	return Filter(s.items, string(s.query))
}

func (s *searchSelect) handle(k Key) bool {
	switch k.Code {
	case KeyEnter:
		// Nothing to pick: stay put until the query matches something
		if m := s.matches(); len(m) > 0 {
			s.selected = m[0]
			return true
		}
	case KeyBackspace:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
	case KeyEsc:
		s.query = s.query[:0]
	case KeyRune:
		s.query = append(s.query, k.Rune)
	}
	return false
}

func (s *searchSelect) summary() string { return s.selected }

func (s *searchSelect) view(r *renderer) frame {
	query := string(s.query)
	head := r.question(s.prompt) + " "
	if query == "" {
		head += r.muted(searchPlaceholder)
	} else {
		head += query
	}

	lines := []string{head}
	for i, item := range visible(s.matches()) {
		text := "  " + item
		if i == 0 {
			text = r.active(text)
		}
		lines = append(lines, text)
	}
	if s.help != "" {
		lines = append(lines, r.muted("  "+s.help))
	}

	return frame{
		lines:        lines,
		cursorRow:    0,
		cursorCol:    questionWidth(s.prompt) + ansi.StringWidth(query),
		parkAtCursor: true,
	}
}

func visible(items []string) []string {
	if len(items) > maxVisibleResults {
		return items[:maxVisibleResults]
	}
	return items
}

// SearchSelect lets the user pick one of items by typing. The best match
// for the current query is highlighted and Enter picks it; Enter does
// nothing while no item matches. help, when non-empty, is shown beneath the
// results.
func (p *Prompter) SearchSelect(prompt string, items []string, help string) (string, error) {
	w := &searchSelect{prompt: prompt, items: items, help: help}
	if err := p.run(prompt, w); err != nil {
		return "", err
	}
	p.logger.Debug("search select committed", zap.String("prompt", prompt), zap.String("value", w.selected))
	return w.selected, nil
}

// SearchSelect opens the terminal, runs a single search select and closes it.
func SearchSelect(prompt string, items []string, help string, options ...Option) (string, error) {
	var value string
	err := withPrompter(options, func(p *Prompter) error {
		var err error
		value, err = p.SearchSelect(prompt, items, help)
		return err
	})
	return value, err
}
