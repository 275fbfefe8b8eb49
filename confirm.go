package prompt

import (
	"fmt"

	"go.uber.org/zap"
)

// Confirm asks a yes/no question and reports whether the answer was yes.
//
// Enter, y and Y answer yes; n, N and Esc answer no. Every other key is
// ignored. The decision is echoed after the question.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	s, err := enterSession(p.terminal, p.config.Output, false, p.logger, p.config.Exit)
	if err != nil {
		return false, err
	}
	defer s.close()

	if err := p.renderer.write(p.renderer.question(prompt) + " " + p.renderer.muted("[Y/n]") + " "); err != nil {
		return false, err
	}

	for {
		k, err := p.keys.next()
		if err != nil {
			return false, fmt.Errorf("failed to read input: %w", err)
		}

		var (
			answer  bool
			decided bool
		)
		switch {
		case k.Code == KeyInterrupt:
			return false, p.interrupt(s)
		case k.Code == KeyEnter, k.Code == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
			answer, decided = true, true
		case k.Code == KeyEsc, k.Code == KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
			answer, decided = false, true
		}
		if !decided {
			continue
		}

		echo := "No"
		if answer {
			echo = "Yes"
		}
		if err := p.renderer.write(echo + "\r\n"); err != nil {
			return false, err
		}
		p.logger.Debug("confirm committed", zap.String("prompt", prompt), zap.Bool("answer", answer))
		return answer, nil
	}
}

// Confirm opens the terminal, asks a single yes/no question and closes it.
func Confirm(prompt string, options ...Option) (bool, error) {
	var answer bool
	err := withPrompter(options, func(p *Prompter) error {
		var err error
		answer, err = p.Confirm(prompt)
		return err
	})
	return answer, err
}
