package lists

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// asciiSpaceRegex matches runs of collapsible whitespace. U+00A0 is not
// collapsible, which is what keeps outline indentation intact.
var asciiSpaceRegex = regexp.MustCompile(`[ \t\r\n\f]+`)

// blockElements start and end on their own line in text output.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "table": true, "tr": true,
	"ul": true,
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"head": true, "noscript": true, "script": true, "style": true, "template": true,
}

// htmlToText extracts plain text from a converted document. <br> and block
// boundaries become newlines; other whitespace is collapsed.
func htmlToText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
	}
	return normalizeLines(sb.String())
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(asciiSpaceRegex.ReplaceAllString(n.Data, " "))
		return
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
	case html.DocumentNode:
	default:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		sb.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte('\n')
	}
}

// normalizeLines trims collapsible spaces from each line, turns
// non-breaking spaces back into plain spaces and allows at most one blank
// line in a row.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	blankCount := 0

	for _, line := range lines {
		line = strings.Trim(line, " ")
		line = strings.TrimRight(strings.ReplaceAll(line, nbsp, " "), " ")
		if line == "" {
			blankCount++
			if blankCount <= 1 {
				result = append(result, "")
			}
			continue
		}
		blankCount = 0
		result = append(result, line)
	}

	return strings.Trim(strings.Join(result, "\n"), "\n")
}
