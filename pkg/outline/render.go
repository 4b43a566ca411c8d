package outline

import (
	"strings"

	"github.com/jmylchreest/listconv/pkg/numbering"
)

// DefaultIndent is the number of spaces added per nesting level.
const DefaultIndent = 2

// Render returns the indented outline of the list. Top-level items start
// at column zero; each nested level is indented by DefaultIndent spaces.
func (l *OrderedList) Render() string {
	return l.RenderWith(0, DefaultIndent)
}

// RenderLevel renders the list as if it were nested level levels deep.
func (l *OrderedList) RenderLevel(level int) string {
	return l.RenderWith(level, DefaultIndent)
}

// RenderWith renders the list at the given level using indent spaces per
// level. Every item ends with a newline.
func (l *OrderedList) RenderWith(level, indent int) string {
	var sb strings.Builder
	l.writeTo(&sb, level, max(indent, 0))
	return sb.String()
}

func (l *OrderedList) writeTo(sb *strings.Builder, level, indent int) {
	prefix := strings.Repeat(" ", level*indent)
	for index, item := range l.Items() {
		style := item.EffectiveStyle(l)

		sb.WriteString(prefix)
		sb.WriteString(numbering.Format(index, style))
		if style.IsOrdered() {
			sb.WriteByte('.')
		}
		sb.WriteByte(' ')
		item.writeTo(sb, level, indent)
		sb.WriteByte('\n')
	}
}

// Render returns the item's value followed by each nested list, separated
// from what precedes it by a blank line and rendered one level deeper.
func (i *ListItem) Render(level int) string {
	var sb strings.Builder
	i.writeTo(&sb, level, DefaultIndent)
	return sb.String()
}

func (i *ListItem) writeTo(sb *strings.Builder, level, indent int) {
	sb.WriteString(i.Value)
	for _, child := range i.lists {
		sb.WriteString("\n\n")
		child.writeTo(sb, level+1, indent)
	}
}
