package prompt

import "go.uber.org/zap"

// checklist is a multi-select over features with a trailing action row.
type checklist struct {
	prompt      string
	help        string
	actionLabel string
	notice      string
	set         *featureSet
	cursor      int // len(set.features) is the action row
}

func (c *checklist) hidesCursor() bool { return true }

func (c *checklist) actionRow() int { return len(c.set.features) }

func (c *checklist) handle(k Key) bool {
	switch {
	case k.Code == KeyUp:
		if c.cursor > 0 {
			c.cursor--
		}
		c.set.clearNotice()
	case k.Code == KeyDown:
		if c.cursor < c.actionRow() {
			c.cursor++
		}
		c.set.clearNotice()
	case k.Code == KeyEnter, k.Code == KeyRune && k.Rune == ' ':
		if c.cursor == c.actionRow() {
			return true
		}
		c.set.toggle(c.cursor)
	case k.Code == KeyEsc:
		c.set.clearNotice()
	}
	return false
}

func (c *checklist) summary() string {
	return joinOr(c.set.selectedLabels(), ", ", "(none)")
}

func (c *checklist) view(r *renderer) frame {
	lines := []string{r.question(c.prompt)}
	for i := range c.set.features {
		lines = append(lines, c.set.line(r, i, i == c.cursor, c.notice))
	}
	lines = append(lines, actionLine(r, c.actionLabel, c.cursor == c.actionRow()))
	if c.help != "" {
		lines = append(lines, r.muted("  "+c.help))
	}
	return frame{lines: lines}
}

// FeatureSelect shows a checklist of features followed by an action row
// labelled actionLabel. Space or Enter toggles the row under the cursor;
// on the action row it commits.
//
// preChecked keys start checked. locked keys are shown checked but cannot be
// toggled; trying shows the notice instead. The result holds the checked,
// unlocked keys in input order.
func (p *Prompter) FeatureSelect(prompt string, features []Feature, help string, preChecked, locked []string, actionLabel string) ([]string, error) {
	w := &checklist{
		prompt:      prompt,
		help:        help,
		actionLabel: actionLabel,
		notice:      p.config.Notice,
		set:         newFeatureSet(features, preChecked, locked),
	}
	if err := p.run(prompt, w); err != nil {
		return nil, err
	}
	keys := w.set.selectedKeys()
	p.logger.Debug("feature select committed", zap.String("prompt", prompt), zap.Strings("keys", keys))
	return keys, nil
}

// FeatureSelect opens the terminal, runs a single feature checklist and
// closes it.
func FeatureSelect(prompt string, features []Feature, help string, preChecked, locked []string, actionLabel string, options ...Option) ([]string, error) {
	var keys []string
	err := withPrompter(options, func(p *Prompter) error {
		var err error
		keys, err = p.FeatureSelect(prompt, features, help, preChecked, locked, actionLabel)
		return err
	})
	return keys, err
}
