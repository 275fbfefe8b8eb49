// Package catalog loads the feature and font lists offered by the
// interactive prompts.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/plyx/prompt"
)

// DefaultSuffix marks the default font among the first-font options.
const DefaultSuffix = " (Default)"

//go:embed default.yaml
var defaultYAML []byte

// Feature is one optional engine feature.
type Feature struct {
	Key         string `yaml:"key"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Catalog is the set of choices shown by the prompts.
type Catalog struct {
	DefaultFont    string    `yaml:"default_font"`
	SuggestedFonts []string  `yaml:"suggested_fonts"`
	Features       []Feature `yaml:"features"`
	Fonts          []string  `yaml:"fonts"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that feature keys are present and unique and that no font
// is listed twice.
func (c *Catalog) Validate() error {
	var errs []error

	keys := make(map[string]bool, len(c.Features))
	for i, f := range c.Features {
		switch {
		case strings.TrimSpace(f.Key) == "":
			errs = append(errs, fmt.Errorf("features[%d]: key is required", i))
		case keys[f.Key]:
			errs = append(errs, fmt.Errorf("features[%d]: duplicate key %q", i, f.Key))
		}
		keys[f.Key] = true
		if strings.TrimSpace(f.Label) == "" {
			errs = append(errs, fmt.Errorf("features[%d]: label is required", i))
		}
	}

	fonts := make(map[string]bool, len(c.Fonts))
	for i, name := range c.Fonts {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("fonts[%d]: name is required", i))
			continue
		}
		if fonts[name] {
			errs = append(errs, fmt.Errorf("fonts[%d]: duplicate font %q", i, name))
		}
		fonts[name] = true
	}

	return errors.Join(errs...)
}

// PromptFeatures converts the features for the prompt package.
func (c *Catalog) PromptFeatures() []prompt.Feature {
	out := make([]prompt.Feature, 0, len(c.Features))
	for _, f := range c.Features {
		out = append(out, prompt.Feature{Key: f.Key, Label: f.Label, Description: f.Description})
	}
	return out
}

// HasFeature reports whether key names a feature in the catalog.
func (c *Catalog) HasFeature(key string) bool {
	for _, f := range c.Features {
		if f.Key == key {
			return true
		}
	}
	return false
}

// FirstFontOptions lists the suggested fonts first, the default one marked
// with DefaultSuffix, followed by every other font in catalog order.
func (c *Catalog) FirstFontOptions() []string {
	options := make([]string, 0, len(c.SuggestedFonts)+len(c.Fonts))
	for _, s := range c.SuggestedFonts {
		if s == c.DefaultFont {
			options = append(options, s+DefaultSuffix)
		} else {
			options = append(options, s)
		}
	}
	for _, f := range c.Fonts {
		if !containsFold(c.SuggestedFonts, f) {
			options = append(options, f)
		}
	}
	return options
}

// ResolveFont maps a chosen option back to a catalog font name.
func (c *Catalog) ResolveFont(option string) string {
	name := strings.TrimSuffix(option, DefaultSuffix)
	for _, f := range c.Fonts {
		if strings.EqualFold(f, name) {
			return f
		}
	}
	return name
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
