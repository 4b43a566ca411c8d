// Package outline holds the in-memory tree of nested lists and the two
// plain-text forms derived from it: the indented outline and the marker
// summary.
//
// A tree is built once, top-down, by a single owner (see package builder)
// and is read-only afterwards. Rendering and summarizing never mutate it,
// so both may run concurrently on the same tree.
package outline

import (
	"errors"
	"fmt"
	"iter"

	"github.com/speakeasy-api/openapi/sequencedmap"

	"github.com/jmylchreest/listconv/pkg/numbering"
)

// ErrInvalidIndex is returned by Validate when a tree holds an index that
// cannot be rendered.
var ErrInvalidIndex = errors.New("invalid item index")

// OrderedList is a list of items keyed by their 1-based index.
// Unordered lists are OrderedLists with the Unordered style.
type OrderedList struct {
	// Style is the default numbering style of the list's direct items.
	Style numbering.Style

	items *sequencedmap.Map[int, *ListItem]
}

// New creates an empty list with the given default style.
func New(style numbering.Style) *OrderedList {
	return &OrderedList{
		Style: style,
		items: sequencedmap.New[int, *ListItem](),
	}
}

// Add creates an item for index, stores it and returns it for the caller to
// populate.
//
// Indexes are not checked for order or uniqueness. Adding an index that is
// already present replaces the earlier item at its original position: the
// last write wins.
func (l *OrderedList) Add(index int) *ListItem {
	if l.items == nil {
		l.items = sequencedmap.New[int, *ListItem]()
	}
	item := &ListItem{Index: index}
	l.items.Set(index, item)
	return item
}

// Item returns the item stored under index.
func (l *OrderedList) Item(index int) (*ListItem, bool) {
	if l.items == nil {
		return nil, false
	}
	return l.items.Get(index)
}

// Items iterates the list's items in key order.
func (l *OrderedList) Items() iter.Seq2[int, *ListItem] {
	return func(yield func(int, *ListItem) bool) {
		if l.items == nil {
			return
		}
		for index, item := range l.items.All() {
			if !yield(index, item) {
				return
			}
		}
	}
}

// Len returns the number of direct items.
func (l *OrderedList) Len() int {
	if l.items == nil {
		return 0
	}
	return l.items.Len()
}

// Count returns the number of items in the whole tree.
func (l *OrderedList) Count() int {
	total := 0
	for _, item := range l.Items() {
		total++
		for _, child := range item.lists {
			total += child.Count()
		}
	}
	return total
}

// Depth returns the nesting depth of the tree; a flat list has depth 1.
func (l *OrderedList) Depth() int {
	deepest := 0
	for _, item := range l.Items() {
		for _, child := range item.lists {
			deepest = max(deepest, child.Depth())
		}
	}
	return deepest + 1
}

// Validate checks that every index in the tree is positive.
func (l *OrderedList) Validate() error {
	for index, item := range l.Items() {
		if index < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidIndex, index)
		}
		for _, child := range item.lists {
			if err := child.Validate(); err != nil {
				return fmt.Errorf("item %d: %w", index, err)
			}
		}
	}
	return nil
}

// RenderIndex renders index in the list's own style.
func (l *OrderedList) RenderIndex(index int) string {
	return numbering.Format(index, l.Style)
}

// RenderIndexAs renders index in the given style.
func (l *OrderedList) RenderIndexAs(index int, style numbering.Style) string {
	return numbering.Format(index, style)
}

// ListItem is a single entry of an OrderedList.
type ListItem struct {
	// Index is the key the item is stored under in its list.
	Index int

	// Value is the item's own content, without any nested list markup.
	Value string

	// Override replaces the owning list's style for this item's own marker.
	// Nested lists are unaffected.
	Override *numbering.Style

	lists []*OrderedList
}

// SetValue sets the item's content.
func (i *ListItem) SetValue(value string) *ListItem {
	i.Value = value
	return i
}

// SetOverride sets a per-item style.
func (i *ListItem) SetOverride(style numbering.Style) *ListItem {
	i.Override = &style
	return i
}

// AddList appends a nested list.
func (i *ListItem) AddList(list *OrderedList) {
	i.lists = append(i.lists, list)
}

// Lists returns the nested lists in document order.
func (i *ListItem) Lists() []*OrderedList {
	return i.lists
}

// EffectiveStyle returns the style the item's marker is rendered in when it
// belongs to owner.
func (i *ListItem) EffectiveStyle(owner *OrderedList) numbering.Style {
	if i.Override != nil {
		return *i.Override
	}
	return owner.Style
}
