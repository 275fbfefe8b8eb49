package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Common errors
var (
	// ErrInterrupted is returned when the user presses Ctrl+C and the
	// configured exit function returns instead of terminating the process.
	ErrInterrupted = errors.New("interrupted")
	// ErrNotTerminal is returned by New when stdin is not a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// DefaultNotice is shown in place of a row the user is not allowed to change.
const DefaultNotice = "Sorry, that one is already in place :("

// Config holds the configuration shared by all prompts of a Prompter.
type Config struct {
	ColorScheme *ColorScheme // Color scheme (nil for default)
	Color       *bool        // Force colour on or off (nil detects from stdout)
	KeyMap      *KeyMap      // Key bindings (nil for default)
	Logger      *zap.Logger  // Logger (nil for no logging)
	Notice      string       // Text of the transient notice (empty for DefaultNotice)
	Output      io.Writer    // Output writer (nil for the controlling terminal)
	Exit        func(int)    // Called after cleanup on Ctrl+C (nil for os.Exit)
}

// Option represents a configuration option for a Prompter
type Option func(*Config)

// WithColorScheme sets the color scheme
func WithColorScheme(colorScheme *ColorScheme) Option {
	return func(c *Config) {
		c.ColorScheme = colorScheme
	}
}

// WithColor forces colour output on or off.
func WithColor(enabled bool) Option {
	return func(c *Config) {
		c.Color = &enabled
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithLogger sets the logger used for diagnostics such as a failed terminal
// restore.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithNotice sets the text shown when the user tries to change a locked
// feature or add a font that is already present.
func WithNotice(notice string) Option {
	return func(c *Config) {
		c.Notice = notice
	}
}

// WithOutput sets the writer prompts are drawn on. By default they draw on
// the controlling terminal, not stdout.
func WithOutput(output io.Writer) Option {
	return func(c *Config) {
		c.Output = output
	}
}

// WithExitFunc replaces os.Exit as the action taken on Ctrl+C. The terminal
// is already restored when it is called.
func WithExitFunc(exit func(int)) Option {
	return func(c *Config) {
		c.Exit = exit
	}
}

// Prompter runs prompts against one terminal.
//
// Only one prompt may run at a time; a Prompter is not safe for concurrent
// use.
type Prompter struct {
	config   Config
	terminal terminalInterface
	keys     *keyReader
	renderer *renderer
	logger   *zap.Logger
}

// New opens the controlling terminal and returns a Prompter.
//
// Prompts are drawn on the terminal itself, so stdout may be redirected or
// captured without picking up any prompt output.
//
// Example:
//
//	p, err := prompt.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	name, err := p.TextInput("Project name:", "my-app")
func New(options ...Option) (*Prompter, error) {
	config := Config{}
	for _, option := range options {
		option(&config)
	}

	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal: %w", err)
	}
	if config.Output == nil {
		config.Output = terminalWriter(terminal.output())
		if config.Color == nil {
			enabled := colorEnabled(terminal.output())
			config.Color = &enabled
		}
	}
	return newPrompter(config, terminal), nil
}

func newPrompter(config Config, terminal terminalInterface) *Prompter {
	if config.ColorScheme == nil {
		config.ColorScheme = ThemeDefault
	}
	if config.KeyMap == nil {
		config.KeyMap = NewDefaultKeyMap()
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Notice == "" {
		config.Notice = DefaultNotice
	}
	if config.Output == nil {
		config.Output = terminalWriter(os.Stdout)
	}
	if config.Exit == nil {
		config.Exit = os.Exit
	}
	useColor := config.Color != nil && *config.Color
	if config.Color == nil {
		useColor = colorEnabled(os.Stdout)
	}

	return &Prompter{
		config:   config,
		terminal: terminal,
		keys:     &keyReader{terminal: terminal, keyMap: config.KeyMap},
		renderer: newRenderer(config.Output, painter{scheme: config.ColorScheme, enabled: useColor}),
		logger:   config.Logger,
	}
}

// Close releases the terminal. It's safe to call Close multiple times.
func (p *Prompter) Close() error {
	if p.terminal == nil {
		return nil
	}
	return p.terminal.Close()
}

// widget is the state machine behind one interactive prompt.
type widget interface {
	// hidesCursor reports whether the session should hide the cursor.
	hidesCursor() bool
	// view renders the current state.
	view(r *renderer) frame
	// handle applies one key and reports whether the widget committed.
	handle(k Key) bool
	// summary is the value shown on the confirmation line after commit.
	summary() string
}

// run drives w until it commits, then replaces its frame with the
// confirmation line.
func (p *Prompter) run(prompt string, w widget) error {
	s, err := enterSession(p.terminal, p.config.Output, w.hidesCursor(), p.logger, p.config.Exit)
	if err != nil {
		return err
	}
	defer s.close()

	prev, err := p.renderer.draw(w.view(p.renderer), 0)
	if err != nil {
		return err
	}

	for {
		k, err := p.keys.next()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if k.Code == KeyInterrupt {
			return p.interrupt(s)
		}
		if w.handle(k) {
			return p.renderer.finish(prev, prompt, w.summary())
		}
		if prev, err = p.renderer.draw(w.view(p.renderer), prev); err != nil {
			return err
		}
	}
}

// interrupt restores and releases the terminal, then hands control to the
// exit function. It only returns when that function does, and the Prompter
// cannot run further prompts afterwards.
func (p *Prompter) interrupt(s *session) error {
	s.close()
	if err := p.renderer.write("^C\r\n"); err != nil {
		p.logger.Warn("failed to echo interrupt", zap.Error(err))
	}
	s.release()
	p.logger.Debug("prompt interrupted")
	p.config.Exit(interruptedStatus)
	return ErrInterrupted
}

// withPrompter opens a Prompter for a single call.
func withPrompter(options []Option, fn func(p *Prompter) error) error {
	p, err := New(options...)
	if err != nil {
		return err
	}
	defer p.Close()
	return fn(p)
}
