package lists

import (
	"strings"
	"testing"

	"github.com/jmylchreest/listconv/pkg/cleaner"
)

const nestedList = `<ol><li>a</li><li>b<ol type="a"><li>x</li><li>y</li></ol></li><li>c</li></ol>`

func TestCleaner_Interface(t *testing.T) {
	var c cleaner.Cleaner = New(nil)
	if c.Name() != "lists" {
		t.Errorf("Name() = %q, want %q", c.Name(), "lists")
	}
}

// --- Outline Tests ---

func TestCleaner_OutlineBR(t *testing.T) {
	c := New(nil)

	got, err := c.Clean(`<ol><li>a</li><li>b</li></ol>`)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}

	want := "1.\u00a0a<br/>2.\u00a0b<br/>"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_OutlinePlainSpaces(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NonBreakingSpaces = false
	c := New(cfg)

	got, _ := c.Clean(nestedList)
	want := "1. a<br/>2. b<br/><br/>  a. x<br/>  b. y<br/><br/>3. c<br/>"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_OutlineNewline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineBreaks = LineBreakNewline
	cfg.NonBreakingSpaces = false
	c := New(cfg)

	got, _ := c.Clean(`<div><ul><li>one</li><li>two</li></ul></div>`)
	want := "<div>* one\n* two\n</div>"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_OutlineIndentWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IndentWidth = 4
	cfg.NonBreakingSpaces = false
	cfg.LineBreaks = LineBreakNewline
	c := New(cfg)

	got, _ := c.Clean(nestedList)
	if !strings.Contains(got, "\n    a. x\n    b. y\n") {
		t.Errorf("Clean() = %q, want nested items indented by 4", got)
	}
}

func TestCleaner_OutlineHTMLContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content = ContentHTML
	c := New(cfg)

	got, _ := c.Clean(`<ol><li><b>bold</b> item</li></ol>`)
	if !strings.Contains(got, "<b>bold</b> item") {
		t.Errorf("Clean() = %q, want item markup preserved", got)
	}
	if !strings.HasPrefix(got, "1. <b>") {
		t.Errorf("Clean() = %q, want marker before markup", got)
	}
	if strings.Contains(got, "<ol>") || strings.Contains(got, "<li>") {
		t.Errorf("Clean() = %q, list markup should be gone", got)
	}
}

func TestCleaner_SurroundingContentKept(t *testing.T) {
	c := New(nil)

	got, _ := c.Clean(`<p>Intro</p><ol><li>a</li></ol><p>Outro</p>`)
	if !strings.HasPrefix(got, "<p>Intro</p>") || !strings.HasSuffix(got, "<p>Outro</p>") {
		t.Errorf("Clean() = %q, surrounding content changed", got)
	}
	if !strings.Contains(got, "1.\u00a0a") {
		t.Errorf("Clean() = %q, want converted list", got)
	}
}

func TestCleaner_IdenticalSiblingLists(t *testing.T) {
	c := New(nil)

	input := `<ol><li>same</li></ol><p>between</p><ol><li>same</li></ol>`
	result := c.CleanWithStats(input)

	if strings.Contains(result.Content, "<ol>") {
		t.Errorf("Content = %q, both lists should be replaced", result.Content)
	}
	if n := strings.Count(result.Content, "1.\u00a0same"); n != 2 {
		t.Errorf("Content has %d outlines, want 2: %q", n, result.Content)
	}
	if len(result.Lists) != 2 {
		t.Fatalf("len(Lists) = %d, want 2", len(result.Lists))
	}
	if result.Lists[0].Position != 1 || result.Lists[1].Position != 2 {
		t.Errorf("positions = %d, %d", result.Lists[0].Position, result.Lists[1].Position)
	}
}

func TestCleaner_NestedListsReplacedOnce(t *testing.T) {
	c := New(nil)

	result := c.CleanWithStats(nestedList)

	if result.Stats.ListsFound != 1 {
		t.Errorf("ListsFound = %d, want 1", result.Stats.ListsFound)
	}
	if len(result.Lists) != 1 {
		t.Fatalf("len(Lists) = %d, want 1", len(result.Lists))
	}

	lr := result.Lists[0]
	if lr.Tag != "ol" || lr.Style != "1" || lr.Items != 5 || lr.Depth != 2 {
		t.Errorf("ListResult = %+v", lr)
	}
	if lr.Outline != "1. a\n2. b\n\n  a. x\n  b. y\n\n3. c\n" {
		t.Errorf("Outline = %q", lr.Outline)
	}
	if strings.Join(lr.Summary, ",") != "1,2a,2b,3" {
		t.Errorf("Summary = %v", lr.Summary)
	}
}

// --- Summary Tests ---

func TestCleaner_Summary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "nested alpha",
			input: nestedList,
			want:  "<p>1, 2a, 2b, 3</p>",
		},
		{
			name:  "roman parent",
			input: `<ol type="I"><li>x<ol type="a"><li>y</li></ol></li></ol>`,
			want:  "<p>I-a</p>",
		},
		{
			name:  "unordered list removed",
			input: `<p>before</p><ul><li>a</li><li>b</li></ul><p>after</p>`,
			want:  "<p>before</p><p>after</p>",
		},
		{
			name:  "start attribute",
			input: `<ol start="4"><li>a</li><li>b</li></ol>`,
			want:  "<p>4, 5</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(PresetSummary())
			got, err := c.Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleaner_SummarySeparator(t *testing.T) {
	cfg := PresetSummary()
	cfg.SummarySeparator = " / "
	c := New(cfg)

	got, _ := c.Clean(`<ol><li>a</li><li>b</li></ol>`)
	if got != "<p>1 / 2</p>" {
		t.Errorf("Clean() = %q", got)
	}
}

func TestCleaner_SummaryStats(t *testing.T) {
	c := New(PresetSummary())

	c.CleanWithStats(nestedList + `<ul><li>z</li></ul>`)
	stats := c.Stats()
	if stats == nil {
		t.Fatal("Stats() = nil after CleanWithStats")
	}
	if stats.ListsConverted != 2 {
		t.Errorf("ListsConverted = %d, want 2", stats.ListsConverted)
	}
	if stats.MarkersEmitted != 4 {
		t.Errorf("MarkersEmitted = %d, want 4", stats.MarkersEmitted)
	}
	if stats.EmptySummaries != 1 {
		t.Errorf("EmptySummaries = %d, want 1", stats.EmptySummaries)
	}
	if stats.ListsByStyle["ul"] != 1 || stats.ListsByStyle["1"] != 1 {
		t.Errorf("ListsByStyle = %v", stats.ListsByStyle)
	}
}

// --- Output Tests ---

func TestCleaner_FullDocument(t *testing.T) {
	c := New(nil)

	got, _ := c.Clean(`<!DOCTYPE html><html><head><title>t</title></head><body><ol><li>a</li></ol></body></html>`)
	if !strings.Contains(got, "<html>") || !strings.Contains(got, "<title>t</title>") {
		t.Errorf("Clean() = %q, want document wrapper kept", got)
	}
	if strings.Contains(got, "<ol>") {
		t.Errorf("Clean() = %q, list not replaced", got)
	}
}

func TestCleaner_FragmentHasNoWrapper(t *testing.T) {
	c := New(nil)

	got, _ := c.Clean(`<ol><li>a</li></ol>`)
	if strings.Contains(got, "<html>") || strings.Contains(got, "<body>") {
		t.Errorf("Clean() = %q, fragment should not gain a wrapper", got)
	}
}

func TestCleaner_TextOutput(t *testing.T) {
	c := New(PresetText())

	got, _ := c.Clean(`<h1>Steps</h1>` + nestedList + `<script>var x = 1;</script>`)
	want := "Steps\n1. a\n2. b\n\n  a. x\n  b. y\n\n3. c"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestCleaner_TextOutputSummary(t *testing.T) {
	cfg := PresetSummary()
	cfg.Output = OutputText
	c := New(cfg)

	got, _ := c.Clean(`<p>See</p>` + nestedList)
	if got != "See\n\n1, 2a, 2b, 3" {
		t.Errorf("Clean() = %q", got)
	}
}

// --- Failure and Warning Tests ---

func TestCleaner_InvalidConfigReturnsOriginal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "sideways"
	c := New(cfg)

	input := `<ol><li>a</li></ol>`
	result := c.CleanWithStats(input)

	if result.Content != input {
		t.Errorf("Content = %q, want original", result.Content)
	}
	if result.Error == nil {
		t.Error("Error = nil, want config error")
	}
	if !result.HasWarnings() || result.Warnings[0].Phase != "config" {
		t.Errorf("Warnings = %v", result.Warnings)
	}

	got, err := c.Clean(input)
	if err != nil || got != input {
		t.Errorf("Clean() = %q, %v; want original and nil", got, err)
	}
}

func TestCleaner_BuildWarnings(t *testing.T) {
	c := New(nil)

	result := c.CleanWithStats(`<ol start="zero" type="q"><li value="-2">a</li></ol>`)

	var build []Warning
	for _, w := range result.Warnings {
		if w.Phase == "build" {
			build = append(build, w)
		}
	}
	if len(build) != 3 {
		t.Fatalf("build warnings = %v, want 3", build)
	}
	for _, w := range build {
		if !strings.HasPrefix(w.Context, "list 1: ol") {
			t.Errorf("Context = %q, want list position and path", w.Context)
		}
	}
	if result.Content != "1.\u00a0a<br/>" {
		t.Errorf("Content = %q, recovered list should still convert", result.Content)
	}
}

func TestCleaner_NoLists(t *testing.T) {
	c := New(nil)

	input := `<p>Nothing <em>here</em></p>`
	result := c.CleanWithStats(input)
	if result.Content != input {
		t.Errorf("Content = %q, want %q", result.Content, input)
	}
	if result.Stats.ListsFound != 0 || result.HasWarnings() {
		t.Errorf("unexpected stats %+v or warnings %v", result.Stats, result.Warnings)
	}
}

func TestCleaner_InChain(t *testing.T) {
	chain := cleaner.NewChain(cleaner.NewNoop(), New(PresetSummary()))

	got, err := chain.Clean(`<ol type="i"><li>a</li><li>b</li></ol>`)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got != "<p>i, ii</p>" {
		t.Errorf("Clean() = %q", got)
	}
}

func TestCleaner_PrettyHTML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrettyHTML = true
	cfg.NonBreakingSpaces = false
	c := New(cfg)

	got, _ := c.Clean(`<div><p>Intro</p><ol><li>a</li></ol></div>`)
	if !strings.Contains(got, "\n") {
		t.Errorf("Clean() = %q, want indented markup", got)
	}
	if !strings.Contains(got, "Intro") || !strings.Contains(got, "1. a") {
		t.Errorf("Clean() = %q, content lost", got)
	}
	if strings.Contains(got, "<ol>") {
		t.Errorf("Clean() = %q, list not replaced", got)
	}
}
