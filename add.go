package prompt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

const fontSearchLabel = "Add fonts: "

// AddResult is what the add widget commits.
type AddResult struct {
	Features []string // Newly checked feature keys, locked ones excluded
	Fonts    []string // Fonts added this session, in the order they were added
}

// addCursor is where the cursor sits in the add widget: on a feature row,
// in the font search, or on the Done row.
type addCursor interface {
	isAddCursor()
}

type featureCursor int

type fontSearchCursor struct{}

type doneCursor struct{}

func (featureCursor) isAddCursor()    {}
func (fontSearchCursor) isAddCursor() {}
func (doneCursor) isAddCursor()       {}

// addWidget combines a feature checklist, a font search that accumulates
// fonts, and a Done row.
type addWidget struct {
	prompt     string
	help       string
	notice     string
	set        *featureSet
	fonts      []string
	installed  map[string]bool
	cursor     addCursor
	query      []rune
	added      []string
	fontNotice bool
}

func newAddWidget(prompt string, features []Feature, fonts, lockedFeatures, installedFonts []string, help, notice string) *addWidget {
	w := &addWidget{
		prompt:    prompt,
		help:      help,
		notice:    notice,
		set:       newFeatureSet(features, nil, lockedFeatures),
		fonts:     fonts,
		installed: toSet(installedFonts),
		cursor:    featureCursor(0),
		added:     []string{},
	}
	if len(features) == 0 {
		w.cursor = fontSearchCursor{}
	}
	return w
}

func (w *addWidget) hidesCursor() bool { return true }

func (w *addWidget) handle(k Key) bool {
	switch c := w.cursor.(type) {
	case featureCursor:
		w.handleFeature(int(c), k)
	case fontSearchCursor:
		w.handleFontSearch(k)
	case doneCursor:
		switch {
		case k.Code == KeyUp:
			w.cursor = fontSearchCursor{}
		case k.Code == KeyEnter, k.Code == KeyRune && k.Rune == ' ':
			return true
		}
	}
	return false
}

func (w *addWidget) handleFeature(i int, k Key) {
	switch {
	case k.Code == KeyUp:
		if i > 0 {
			w.cursor = featureCursor(i - 1)
		}
		w.set.clearNotice()
	case k.Code == KeyDown:
		if i+1 < len(w.set.features) {
			w.cursor = featureCursor(i + 1)
		} else {
			w.cursor = fontSearchCursor{}
		}
		w.set.clearNotice()
	case k.Code == KeyEnter, k.Code == KeyRune && k.Rune == ' ':
		w.set.toggle(i)
	case k.Code == KeyEsc:
		w.set.clearNotice()
	}
}

func (w *addWidget) handleFontSearch(k Key) {
	switch k.Code {
	case KeyUp:
		if n := len(w.set.features); n > 0 {
			w.cursor = featureCursor(n - 1)
		}
		w.fontNotice = false
	case KeyDown:
		w.cursor = doneCursor{}
		w.fontNotice = false
	case KeyEnter:
		matches := Filter(w.fonts, string(w.query))
		if len(matches) == 0 {
			return
		}
		top := matches[0]
		if w.hasFont(top) {
			w.fontNotice = true
		} else {
			w.added = append(w.added, top)
			w.fontNotice = false
		}
		w.query = w.query[:0]
	case KeyBackspace:
		if len(w.query) > 0 {
			w.query = w.query[:len(w.query)-1]
		}
		w.fontNotice = false
	case KeyRune:
		w.query = append(w.query, k.Rune)
		w.fontNotice = false
	case KeyEsc:
		w.query = w.query[:0]
		w.fontNotice = false
	}
}

// hasFont reports whether name is installed already or was added this
// session.
func (w *addWidget) hasFont(name string) bool {
	if w.installed[name] {
		return true
	}
	for _, f := range w.added {
		if f == name {
			return true
		}
	}
	return false
}

func (w *addWidget) result() AddResult {
	return AddResult{
		Features: w.set.selectedKeys(),
		Fonts:    w.added,
	}
}

func (w *addWidget) summary() string {
	var parts []string
	if labels := w.set.selectedLabels(); len(labels) > 0 {
		parts = append(parts, "Features: "+strings.Join(labels, ", "))
	}
	if len(w.added) > 0 {
		parts = append(parts, "Fonts: "+strings.Join(w.added, ", "))
	}
	return joinOr(parts, " | ", "(no changes)")
}

func (w *addWidget) view(r *renderer) frame {
	lines := []string{r.question(w.prompt)}

	for i := range w.set.features {
		isCursor := w.cursor == addCursor(featureCursor(i))
		lines = append(lines, w.set.line(r, i, isCursor, w.notice))
	}

	_, searching := w.cursor.(fontSearchCursor)
	query := string(w.query)
	label := fontSearchLabel
	if searching {
		label = r.active(label)
	}
	search := "  " + label
	if query == "" {
		search += r.muted(searchPlaceholder)
	} else {
		search += query
	}
	searchRow := len(lines)
	lines = append(lines, search)

	if w.fontNotice {
		lines = append(lines, r.notice("    "+w.notice))
	} else {
		for i, font := range visible(Filter(w.fonts, query)) {
			text := "    " + font
			switch {
			case i == 0 && searching:
				text = r.active(text)
			case w.hasFont(font):
				text = r.checked(text)
			}
			lines = append(lines, text)
		}
	}

	_, onDone := w.cursor.(doneCursor)
	lines = append(lines, actionLine(r, "Done!", onDone))

	if s := w.running(); s != "" {
		lines = append(lines, r.muted("  "+s))
	}
	if w.help != "" {
		lines = append(lines, r.muted("  "+w.help))
	}

	f := frame{lines: lines, manageCursor: true}
	if searching {
		f.parkAtCursor = true
		f.cursorRow = searchRow
		f.cursorCol = 2 + ansi.StringWidth(fontSearchLabel) + ansi.StringWidth(query)
	}
	return f
}

// running is the "+Feature  +Font" line shown while anything is pending.
func (w *addWidget) running() string {
	var parts []string
	if labels := w.set.selectedLabels(); len(labels) > 0 {
		parts = append(parts, "+"+strings.Join(labels, ", +"))
	}
	if len(w.added) > 0 {
		parts = append(parts, "+"+strings.Join(w.added, ", +"))
	}
	return strings.Join(parts, "  ")
}

// AddWidget combines a feature checklist, a font search and a Done row.
//
// Up and Down move through the feature rows, then into the font search, then
// onto Done. In the font search, Enter adds the top match to the list of
// added fonts and clears the query; fonts that are installed or were
// already added show the notice instead. Done commits.
func (p *Prompter) AddWidget(prompt string, features []Feature, fonts, lockedFeatures, installedFonts []string, help string) (AddResult, error) {
	w := newAddWidget(prompt, features, fonts, lockedFeatures, installedFonts, help, p.config.Notice)
	if err := p.run(prompt, w); err != nil {
		return AddResult{}, err
	}
	res := w.result()
	p.logger.Debug("add widget committed",
		zap.String("prompt", prompt),
		zap.Strings("features", res.Features),
		zap.Strings("fonts", res.Fonts),
	)
	return res, nil
}

// AddWidget opens the terminal, runs the add widget once and closes it.
func AddWidget(prompt string, features []Feature, fonts, lockedFeatures, installedFonts []string, help string, options ...Option) (AddResult, error) {
	var res AddResult
	err := withPrompter(options, func(p *Prompter) error {
		var err error
		res, err = p.AddWidget(prompt, features, fonts, lockedFeatures, installedFonts, help)
		return err
	})
	return res, err
}
