package lists

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats captures metrics about what the cleaner did.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes" yaml:"input_bytes"`
	OutputBytes int `json:"output_bytes" yaml:"output_bytes"`

	// List counts
	ListsFound     int            `json:"lists_found" yaml:"lists_found"`
	ListsConverted int            `json:"lists_converted" yaml:"lists_converted"`
	ListsSkipped   int            `json:"lists_skipped" yaml:"lists_skipped"`
	ListsByStyle   map[string]int `json:"lists_by_style" yaml:"lists_by_style"` // root style token -> count

	// Item metrics
	ItemsConverted int `json:"items_converted" yaml:"items_converted"`
	MaxDepth       int `json:"max_depth" yaml:"max_depth"`

	// Summary metrics
	MarkersEmitted int `json:"markers_emitted" yaml:"markers_emitted"`
	EmptySummaries int `json:"empty_summaries" yaml:"empty_summaries"`

	// Timing
	ParseDuration     time.Duration `json:"parse_duration" yaml:"parse_duration"`
	TransformDuration time.Duration `json:"transform_duration" yaml:"transform_duration"`
	OutputDuration    time.Duration `json:"output_duration" yaml:"output_duration"`
	TotalDuration     time.Duration `json:"total_duration" yaml:"total_duration"`
}

// NewStats creates a new Stats instance with initialized maps.
func NewStats() *Stats {
	return &Stats{
		ListsByStyle: make(map[string]int),
	}
}

// RecordList records a converted list tree.
func (s *Stats) RecordList(style string, items, depth int) {
	s.ListsConverted++
	s.ListsByStyle[style]++
	s.ItemsConverted += items
	s.MaxDepth = max(s.MaxDepth, depth)
}

// RecordSummary records the markers one list contributed.
func (s *Stats) RecordSummary(markers int) {
	s.MarkersEmitted += markers
	if markers == 0 {
		s.EmptySummaries++
	}
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %s -> %s\n",
		humanize.Bytes(uint64(s.InputBytes)), humanize.Bytes(uint64(s.OutputBytes))))

	sb.WriteString(fmt.Sprintf("Lists: %d found, %d converted, %d skipped\n",
		s.ListsFound, s.ListsConverted, s.ListsSkipped))

	if len(s.ListsByStyle) > 0 {
		styles := make([]string, 0, len(s.ListsByStyle))
		for style := range s.ListsByStyle {
			styles = append(styles, style)
		}
		sort.Strings(styles)

		parts := make([]string, 0, len(styles))
		for _, style := range styles {
			parts = append(parts, fmt.Sprintf("%s=%d", style, s.ListsByStyle[style]))
		}
		sb.WriteString("By style: ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Items: %s (max depth %d)\n",
		humanize.Comma(int64(s.ItemsConverted)), s.MaxDepth))

	if s.MarkersEmitted > 0 || s.EmptySummaries > 0 {
		sb.WriteString(fmt.Sprintf("Markers: %d (%d empty summaries)\n", s.MarkersEmitted, s.EmptySummaries))
	}

	sb.WriteString(fmt.Sprintf("Timing: parse=%v, transform=%v, output=%v, total=%v\n",
		s.ParseDuration.Round(time.Millisecond),
		s.TransformDuration.Round(time.Millisecond),
		s.OutputDuration.Round(time.Millisecond),
		s.TotalDuration.Round(time.Millisecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Phase   string `json:"phase" yaml:"phase"`     // "config", "parse", "build", "render", "output"
	Message string `json:"message" yaml:"message"` // Human-readable description
	Context string `json:"context" yaml:"context"` // Element path or config field that caused it
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// ListResult describes one converted top-level list.
type ListResult struct {
	Position int      `json:"position" yaml:"position"` // 1-based, document order
	Tag      string   `json:"tag" yaml:"tag"`
	Style    string   `json:"style" yaml:"style"`
	Items    int      `json:"items" yaml:"items"`
	Depth    int      `json:"depth" yaml:"depth"`
	Outline  string   `json:"outline" yaml:"outline"`
	Summary  []string `json:"summary" yaml:"summary"`
}

// Result contains the output of a conversion.
type Result struct {
	// Content is the converted output. On failure, this contains the original input.
	Content string `json:"content" yaml:"content"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats" yaml:"stats"`

	// Lists describes every converted list in document order.
	Lists []ListResult `json:"lists,omitempty" yaml:"lists,omitempty"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`

	// Error is set only on catastrophic failures (content is still returned).
	Error error `json:"-" yaml:"-"`
}

// AddWarning adds a warning to the result.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
