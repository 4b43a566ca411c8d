package outline

import (
	"strings"

	"github.com/jmylchreest/listconv/pkg/numbering"
)

// SummarySeparator joins markers in SummaryLine.
const SummarySeparator = ", "

// Summarize reduces the tree to the markers of its leaf items, in document
// order. A nested item's marker is its ancestors' markers concatenated with
// its own:
//
//	1. one            1
//	2. two            2a
//	   a. alpha  -->  2b
//	   b. beta        3
//	3. three
//
// Unordered lists contribute nothing, so an item whose only nested lists
// are unordered disappears from the summary.
func Summarize(list *OrderedList) []string {
	if list == nil || !list.Style.IsOrdered() {
		return nil
	}

	var markers []string
	for index, item := range list.Items() {
		marker := numbering.Format(index, item.EffectiveStyle(list))
		if len(item.lists) == 0 {
			markers = append(markers, marker)
			continue
		}

		for _, child := range item.lists {
			prefix := marker + separator(list.Style, child.Style)
			for _, sub := range Summarize(child) {
				markers = append(markers, prefix+sub)
			}
		}
	}
	return markers
}

// SummaryLine returns the summary joined with SummarySeparator.
func SummaryLine(list *OrderedList) string {
	return strings.Join(Summarize(list), SummarySeparator)
}

// separator returns what goes between a parent marker and a nested marker.
// Roman numerals and same-style nesting are hyphenated ("i-ii", "2-1");
// other style pairs, such as "1" + "a", are joined directly.
func separator(parent, child numbering.Style) string {
	switch {
	case child.IsRoman(), parent.IsRoman(), child == parent:
		return "-"
	default:
		return ""
	}
}
