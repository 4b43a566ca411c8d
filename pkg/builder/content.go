package builder

import (
	"strings"

	"golang.org/x/net/html"
)

// nestedLists returns the lists below li that are not themselves inside a
// deeper list, in document order. They need not be direct children: a list
// wrapped in a div still belongs to the item.
func nestedLists(li *html.Node) []*html.Node {
	var lists []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isList(c) {
				lists = append(lists, c)
				continue
			}
			walk(c)
		}
	}
	walk(li)
	return lists
}

// innerText returns the text of n without nested lists, with runs of
// whitespace collapsed to single spaces.
func innerText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				if isList(c) {
					continue
				}
				if c.Data == "br" {
					sb.WriteByte(' ')
					continue
				}
				walk(c)
			}
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// innerHTML returns the markup inside n without nested lists.
func innerHTML(n *html.Node) string {
	stripped := cloneWithoutLists(n)

	var sb strings.Builder
	for c := stripped.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return strings.TrimSpace(sb.String())
		}
	}
	return strings.TrimSpace(sb.String())
}

// cloneWithoutLists deep-copies n, dropping every ol and ul below it. The
// source tree is left untouched.
func cloneWithoutLists(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isList(c) {
			continue
		}
		clone.AppendChild(cloneWithoutLists(c))
	}
	return clone
}
