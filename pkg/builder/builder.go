// Package builder turns parsed HTML list elements into outline trees.
//
// The builder is permissive: malformed attributes never fail a build. An
// unrecognized type falls back to the list default, a non-numeric or
// non-positive start or value is ignored, and a duplicate index replaces
// the earlier item. Each of these is reported through the warning handler.
package builder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jmylchreest/listconv/pkg/numbering"
	"github.com/jmylchreest/listconv/pkg/outline"
)

// ErrNotAList is returned when the input is not an ol or ul element.
var ErrNotAList = errors.New("not an ol or ul element")

// ListSelector matches the elements the builder accepts.
const ListSelector = "ol, ul"

// ContentMode selects how an item's own content becomes its value.
type ContentMode int

const (
	// ContentText uses the item's text with whitespace collapsed.
	ContentText ContentMode = iota
	// ContentHTML uses the item's inner markup, trimmed.
	ContentHTML
)

// String returns the mode name.
func (m ContentMode) String() string {
	if m == ContentHTML {
		return "html"
	}
	return "text"
}

// ParseContentMode maps "text" or "html" to a ContentMode.
func ParseContentMode(s string) (ContentMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return ContentText, nil
	case "html":
		return ContentHTML, nil
	default:
		return ContentText, fmt.Errorf("unknown content mode %q", s)
	}
}

// Warning describes input the builder recovered from.
type Warning struct {
	Path    string `json:"path"`    // e.g. "ol>li[2]>ul"
	Message string `json:"message"` // Human-readable description
}

// String returns a formatted warning message.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Builder builds outline trees from list elements.
type Builder struct {
	content   ContentMode
	onWarning func(Warning)
}

// Option configures a Builder.
type Option func(*Builder)

// WithContentMode sets how item values are extracted.
func WithContentMode(mode ContentMode) Option {
	return func(b *Builder) {
		b.content = mode
	}
}

// WithWarningHandler registers a function called for every recovered
// problem, in document order.
func WithWarningHandler(fn func(Warning)) Option {
	return func(b *Builder) {
		b.onWarning = fn
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build builds a tree from the first element of sel.
func Build(sel *goquery.Selection, opts ...Option) (*outline.OrderedList, error) {
	return New(opts...).Build(sel)
}

// Build builds a tree from the first element of sel.
func (b *Builder) Build(sel *goquery.Selection) (*outline.OrderedList, error) {
	if sel == nil || sel.Length() == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrNotAList)
	}
	return b.BuildNode(sel.Get(0))
}

// BuildNode builds a tree from an ol or ul node.
func (b *Builder) BuildNode(n *html.Node) (*outline.OrderedList, error) {
	if !isList(n) {
		name := "<nil>"
		if n != nil {
			name = n.Data
		}
		return nil, fmt.Errorf("%w: %s", ErrNotAList, name)
	}
	return b.buildList(n, n.Data), nil
}

// FindLists returns the outermost lists within sel. Lists nested inside
// another list are part of that list's tree and are not returned.
func FindLists(sel *goquery.Selection) *goquery.Selection {
	return sel.Find(ListSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsFiltered(ListSelector).Length() == 0
	})
}

func (b *Builder) buildList(n *html.Node, path string) *outline.OrderedList {
	style := numbering.Number
	if n.Data == "ul" {
		style = numbering.Unordered
	}
	if token, ok := attr(n, "type"); ok && token != "" {
		if parsed, known := numbering.ParseStyle(token); known {
			style = parsed
		} else {
			b.warn(path, "unrecognized list type %q, using %s", token, style)
		}
	}

	list := outline.New(style)

	counter := 0
	if raw, ok := attr(n, "start"); ok && raw != "" {
		if start, valid := positiveInt(raw); valid {
			counter = start - 1
		} else {
			b.warn(path, "ignoring start %q, expected a positive number", raw)
		}
	}

	position := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != "li" {
			continue
		}
		position++
		itemPath := fmt.Sprintf("%s>li[%d]", path, position)

		if raw, ok := attr(child, "value"); ok && raw != "" {
			if value, valid := positiveInt(raw); valid {
				counter = value
			} else {
				b.warn(itemPath, "ignoring value %q, expected a positive number", raw)
				counter++
			}
		} else {
			counter++
		}

		if _, exists := list.Item(counter); exists {
			b.warn(itemPath, "duplicate index %d replaces an earlier item", counter)
		}
		b.buildItem(list.Add(counter), child, itemPath)
	}

	return list
}

func (b *Builder) buildItem(item *outline.ListItem, li *html.Node, path string) {
	if token, ok := attr(li, "type"); ok && token != "" {
		if style, known := numbering.ParseStyle(token); known {
			item.SetOverride(style)
		} else {
			b.warn(path, "unrecognized item type %q, using the list style", token)
		}
	}

	switch b.content {
	case ContentHTML:
		item.SetValue(innerHTML(li))
	default:
		item.SetValue(innerText(li))
	}

	for _, nested := range nestedLists(li) {
		item.AddList(b.buildList(nested, path+">"+nested.Data))
	}
}

func (b *Builder) warn(path, format string, args ...any) {
	if b.onWarning == nil {
		return
	}
	b.onWarning(Warning{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

func isList(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && (n.Data == "ol" || n.Data == "ul")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val), true
		}
	}
	return "", false
}

// positiveInt parses a numeric start or value attribute. Fractions are
// truncated, so "2.5" is 2; the result must be at least 1.
func positiveInt(s string) (int, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
