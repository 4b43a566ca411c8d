package lists

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jmylchreest/listconv/internal/logger"
	"github.com/jmylchreest/listconv/pkg/builder"
	"github.com/jmylchreest/listconv/pkg/cleaner"
	"github.com/jmylchreest/listconv/pkg/outline"
)

var _ cleaner.Cleaner = (*Cleaner)(nil)

// nbsp replaces spaces when Config.NonBreakingSpaces is set.
const nbsp = "\u00a0"

// documentRegex detects input that is a full document rather than a
// fragment, so the html/head wrapper goquery adds is kept only when the
// input had one.
var documentRegex = regexp.MustCompile(`(?i)<(!doctype|html)[\s>]`)

// Cleaner replaces the lists of an HTML document with plain text.
// It implements the cleaner.Cleaner interface.
type Cleaner struct {
	config *Config
	stats  *Stats
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "lists"
}

// Clean converts the lists in html according to the configuration.
// This method implements the cleaner.Cleaner interface.
func (c *Cleaner) Clean(html string) (string, error) {
	result := c.CleanWithStats(html)
	// Failures degrade to the original content, which Result already holds.
	return result.Content, nil
}

// CleanWithStats performs the conversion and returns detailed stats.
func (c *Cleaner) CleanWithStats(input string) *Result {
	startTime := time.Now()
	result := &Result{
		Stats: NewStats(),
	}
	result.Stats.InputBytes = len(input)

	fail := func(phase, message string, err error) *Result {
		result.Content = input
		result.Error = err
		result.AddWarning(phase, message, err.Error())
		result.Stats.OutputBytes = len(input)
		result.Stats.TotalDuration = time.Since(startTime)
		c.stats = result.Stats
		return result
	}

	if err := c.config.Validate(); err != nil {
		return fail("config", "Invalid configuration, returning original", err)
	}

	parseStart := time.Now()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	result.Stats.ParseDuration = time.Since(parseStart)
	if err != nil {
		return fail("parse", "HTML parse failed, returning original", err)
	}

	transformStart := time.Now()
	c.transform(doc, result)
	result.Stats.TransformDuration = time.Since(transformStart)

	outputStart := time.Now()
	output, err := c.generateOutput(doc, input)
	result.Stats.OutputDuration = time.Since(outputStart)
	if err != nil {
		return fail("output", "Output generation failed, returning original", err)
	}

	result.Content = output
	result.Stats.OutputBytes = len(output)
	result.Stats.TotalDuration = time.Since(startTime)
	c.stats = result.Stats

	return result
}

// Stats returns the stats from the last Clean operation.
func (c *Cleaner) Stats() *Stats {
	return c.stats
}

// transform replaces every outermost list in the document.
func (c *Cleaner) transform(doc *goquery.Document, result *Result) {
	contentMode, _ := builder.ParseContentMode(c.config.Content)

	found := builder.FindLists(doc.Selection)
	result.Stats.ListsFound = found.Length()

	found.Each(func(i int, s *goquery.Selection) {
		position := i + 1
		b := builder.New(
			builder.WithContentMode(contentMode),
			builder.WithWarningHandler(func(w builder.Warning) {
				logger.Debug("list input recovered", "list", position, "path", w.Path, "issue", w.Message)
				result.AddWarning("build", w.Message, fmt.Sprintf("list %d: %s", position, w.Path))
			}),
		)

		tree, err := b.Build(s)
		if err == nil {
			err = tree.Validate()
		}
		if err != nil {
			result.Stats.ListsSkipped++
			result.AddWarning("render", "List left unconverted", fmt.Sprintf("list %d: %v", position, err))
			return
		}

		rendered := tree.RenderWith(0, c.config.IndentWidth)
		markers := outline.Summarize(tree)

		result.Lists = append(result.Lists, ListResult{
			Position: position,
			Tag:      goquery.NodeName(s),
			Style:    tree.Style.String(),
			Items:    tree.Count(),
			Depth:    tree.Depth(),
			Outline:  rendered,
			Summary:  markers,
		})
		result.Stats.RecordList(tree.Style.String(), tree.Count(), tree.Depth())

		switch c.config.Mode {
		case ModeSummary:
			result.Stats.RecordSummary(len(markers))
			c.replaceWithSummary(s, markers)
		default:
			c.replaceWithOutline(s, rendered, contentMode)
		}

		args := []any{"list", position, "style", tree.Style.String(), "items", tree.Count(), "depth", tree.Depth()}
		if c.config.Debug {
			args = append(args, "outline", rendered, "summary", strings.Join(markers, c.config.SummarySeparator))
		}
		logger.Debug("list converted", args...)
	})
}

// replaceWithSummary swaps the list for a paragraph of markers, or removes
// it when the list has no ordered leaves.
func (c *Cleaner) replaceWithSummary(s *goquery.Selection, markers []string) {
	if len(markers) == 0 {
		s.Remove()
		return
	}

	p := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.P,
		Data:     "p",
	}
	p.AppendChild(textNode(strings.Join(markers, c.config.SummarySeparator)))
	s.ReplaceWithNodes(p)
}

// replaceWithOutline swaps the list for its rendered outline.
func (c *Cleaner) replaceWithOutline(s *goquery.Selection, rendered string, mode builder.ContentMode) {
	if mode == builder.ContentHTML {
		s.ReplaceWithHtml(c.outlineMarkup(rendered))
		return
	}

	if c.lineBreaks() == LineBreakNewline {
		s.ReplaceWithNodes(textNode(c.spaces(rendered)))
		return
	}

	lines := strings.Split(rendered, "\n")
	nodes := make([]*html.Node, 0, len(lines)*2)
	for i, line := range lines {
		if line != "" {
			nodes = append(nodes, textNode(c.spaces(line)))
		}
		if i < len(lines)-1 {
			nodes = append(nodes, brNode())
		}
	}
	s.ReplaceWithNodes(nodes...)
}

// outlineMarkup renders an outline whose item values are markup. Only the
// indentation becomes non-breaking, so whitespace inside item markup is
// left alone.
func (c *Cleaner) outlineMarkup(rendered string) string {
	lines := strings.Split(rendered, "\n")
	if c.nonBreaking() {
		for i, line := range lines {
			trimmed := strings.TrimLeft(line, " ")
			lines[i] = strings.Repeat("&nbsp;", len(line)-len(trimmed)) + trimmed
		}
	}

	if c.lineBreaks() == LineBreakNewline {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines, "<br />")
}

func (c *Cleaner) spaces(s string) string {
	if !c.nonBreaking() {
		return s
	}
	return strings.ReplaceAll(s, " ", nbsp)
}

// lineBreaks returns the effective line break style. Text output always
// uses <br> so that lines survive text extraction.
func (c *Cleaner) lineBreaks() LineBreak {
	if c.config.Output == OutputText {
		return LineBreakBR
	}
	return c.config.LineBreaks
}

// nonBreaking reports whether outline spaces are made non-breaking. Text
// output always does, so that indentation survives whitespace collapsing.
func (c *Cleaner) nonBreaking() bool {
	return c.config.NonBreakingSpaces || c.config.Output == OutputText
}

func textNode(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}

func brNode() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Br,
		Data:     "br",
	}
}

// generateOutput produces the final output in the configured format.
func (c *Cleaner) generateOutput(doc *goquery.Document, input string) (string, error) {
	if c.config.Output == OutputText {
		return htmlToText(doc.Selection), nil
	}

	var (
		out string
		err error
	)
	if documentRegex.MatchString(input) {
		out, err = doc.Html()
	} else if body := doc.Find("body"); body.Length() > 0 {
		// Fragment input: skip the wrapper goquery adds.
		out, err = body.Html()
	} else {
		out, err = doc.Html()
	}
	if err != nil {
		return "", err
	}

	if c.config.PrettyHTML {
		return gohtml.Format(out), nil
	}
	return out, nil
}
