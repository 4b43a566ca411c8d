// Package lists provides the document stage that converts HTML lists to
// plain text. Every outermost ol and ul in a document is replaced, on the
// parsed tree, by either its indented outline or a one-line summary of its
// item markers.
package lists

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("invalid lists config")

// Mode selects what a list is replaced with.
type Mode string

const (
	ModeOutline Mode = "outline"
	ModeSummary Mode = "summary"
)

// OutputFormat specifies the output format of the cleaner.
type OutputFormat string

const (
	OutputHTML OutputFormat = "html"
	OutputText OutputFormat = "text"
)

// LineBreak selects how outline lines are separated in HTML output.
type LineBreak string

const (
	LineBreakBR      LineBreak = "br"
	LineBreakNewline LineBreak = "newline"
)

// Content values mirror builder.ContentMode names.
const (
	ContentText = "text"
	ContentHTML = "html"
)

// Config defines all configuration options for the lists cleaner.
type Config struct {
	// Mode is outline (indented, numbered lines) or summary (one paragraph
	// of item markers such as "1, 2a, 2b, 3").
	Mode Mode `json:"mode" yaml:"mode" mapstructure:"mode" validate:"oneof=outline summary"`

	// IndentWidth is the number of spaces per nesting level in outlines.
	IndentWidth int `json:"indent_width" yaml:"indent_width" mapstructure:"indent_width" validate:"min=0,max=16"`

	// Content is "text" (item text, whitespace collapsed) or "html" (item
	// inner markup kept as-is).
	Content string `json:"content" yaml:"content" mapstructure:"content" validate:"oneof=text html"`

	// LineBreaks separates outline lines with <br> elements or keeps them
	// as newlines inside a single text node.
	LineBreaks LineBreak `json:"line_breaks" yaml:"line_breaks" mapstructure:"line_breaks" validate:"oneof=br newline"`

	// NonBreakingSpaces turns outline spaces into U+00A0 so indentation
	// survives whitespace collapsing further down the pipeline.
	NonBreakingSpaces bool `json:"non_breaking_spaces" yaml:"non_breaking_spaces" mapstructure:"non_breaking_spaces"`

	// SummarySeparator joins markers in summary mode.
	SummarySeparator string `json:"summary_separator" yaml:"summary_separator" mapstructure:"summary_separator" validate:"required"`

	// Output specifies the output format: html or text.
	Output OutputFormat `json:"output" yaml:"output" mapstructure:"output" validate:"oneof=html text"`

	// PrettyHTML indents HTML output for reading. Ignored for text output.
	PrettyHTML bool `json:"pretty_html" yaml:"pretty_html" mapstructure:"pretty_html"`

	// Debug includes rendered list text in debug logs.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns the outline configuration: two-space indentation,
// text item content, <br> line breaks and non-breaking spaces, HTML output.
func DefaultConfig() *Config {
	return &Config{
		Mode:              ModeOutline,
		IndentWidth:       2,
		Content:           ContentText,
		LineBreaks:        LineBreakBR,
		NonBreakingSpaces: true,
		SummarySeparator:  ", ",
		Output:            OutputHTML,
	}
}

// PresetSummary returns DefaultConfig switched to summary mode.
func PresetSummary() *Config {
	cfg := DefaultConfig()
	cfg.Mode = ModeSummary
	return cfg
}

// PresetText returns an outline configuration producing plain text.
func PresetText() *Config {
	cfg := DefaultConfig()
	cfg.Output = OutputText
	return cfg
}

// Merge merges another config into this one.
// Non-zero/non-empty values from other override this config; false and
// zero values in other never override.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	merged := *c

	if other.Mode != "" {
		merged.Mode = other.Mode
	}
	if other.IndentWidth > 0 {
		merged.IndentWidth = other.IndentWidth
	}
	if other.Content != "" {
		merged.Content = other.Content
	}
	if other.LineBreaks != "" {
		merged.LineBreaks = other.LineBreaks
	}
	if other.NonBreakingSpaces {
		merged.NonBreakingSpaces = true
	}
	if other.SummarySeparator != "" {
		merged.SummarySeparator = other.SummarySeparator
	}
	if other.Output != "" {
		merged.Output = other.Output
	}
	if other.PrettyHTML {
		merged.PrettyHTML = true
	}
	if other.Debug {
		merged.Debug = true
	}

	return &merged
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks the config against its field constraints.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads a YAML config file over DefaultConfig and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
