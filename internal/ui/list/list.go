package list

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Item is one row of a scrollable view. Rows without an ID are graph
// connector lines: rendered for alignment, never selectable.
type Item struct {
	ID    string
	Label string
}

func (i Item) Selectable() bool {
	return i.ID != ""
}

// List holds per-view cursor, filter, and viewport state. The full item
// set is kept alongside the filtered one so clearing the filter restores
// the previous position.
type List struct {
	Full           []Item
	Items          []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

func New(items []Item) *List {
	l := &List{Cursor: -1, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// UpdateItems replaces the rows, keeping the cursor on the same ID when
// it survives the refresh.
func (l *List) UpdateItems(items []Item) {
	keep := ""
	if current, ok := l.Current(); ok {
		keep = current.ID
	}
	l.Full = cloneItems(items)
	l.applyFilter()
	if keep != "" {
		if idx := l.IndexOf(keep); idx >= 0 {
			l.Cursor = idx
			return
		}
	}
	l.Cursor = l.firstSelectable()
}

// IndexOf returns the filtered-row index carrying the given ID.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	item := l.Items[l.Cursor]
	if !item.Selectable() {
		return Item{}, false
	}
	return item, true
}

// MoveUp moves the cursor to the previous selectable row.
func (l *List) MoveUp() {
	for i := l.Cursor - 1; i >= 0; i-- {
		if l.Items[i].Selectable() {
			l.Cursor = i
			return
		}
	}
}

// MoveDown moves the cursor to the next selectable row.
func (l *List) MoveDown() {
	for i := l.Cursor + 1; i < len(l.Items); i++ {
		if l.Items[i].Selectable() {
			l.Cursor = i
			return
		}
	}
}

// MoveTop and MoveBottom jump to the outermost selectable rows.
func (l *List) MoveTop() {
	l.Cursor = l.firstSelectable()
}

func (l *List) MoveBottom() {
	for i := len(l.Items) - 1; i >= 0; i-- {
		if l.Items[i].Selectable() {
			l.Cursor = i
			return
		}
	}
}

func (l *List) firstSelectable() int {
	for i, item := range l.Items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}

// EnsureVisible scrolls the viewport so the cursor row is inside a
// window of the given height.
func (l *List) EnsureVisible(height int) {
	if height <= 0 || l.Cursor < 0 {
		return
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if l.Cursor >= l.ViewportOffset+height {
		l.ViewportOffset = l.Cursor - height + 1
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}

// Visible returns the viewport window of the given height.
func (l *List) Visible(height int) []Item {
	if height <= 0 || l.ViewportOffset >= len(l.Items) {
		return nil
	}
	end := l.ViewportOffset + height
	if end > len(l.Items) {
		end = len(l.Items)
	}
	return l.Items[l.ViewportOffset:end]
}

// SetFilter replaces the filter query, remembering the pre-filter cursor
// so clearing restores it.
func (l *List) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	l.Filter = query
	runes := []rune(query)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	l.FilterCursor = cursor
	if trimmed != "" && prevTrimmed == "" {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	if trimmed == "" && prevTrimmed != "" {
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else {
			l.Cursor = l.firstSelectable()
		}
		l.LastCursor = -1
	}
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = -1
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= len(l.Items) || !l.Items[l.Cursor].Selectable() {
		l.Cursor = l.firstSelectable()
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// InsertFilterText inserts text at the filter cursor.
func (l *List) InsertFilterText(text string) bool {
	if text == "" {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.filterCursorPos()
	updated := make([]rune, 0, len(runes)+len(text))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, []rune(text)...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len([]rune(text)))
	return true
}

// DeleteFilterRuneBackward removes the rune before the filter cursor.
func (l *List) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.filterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetFilter(string(updated), pos-1)
	return true
}

// ClearFilter drops the query entirely.
func (l *List) ClearFilter() {
	if l.Filter == "" {
		return
	}
	l.SetFilter("", 0)
}

func (l *List) filterCursorPos() int {
	runes := []rune(l.Filter)
	if l.FilterCursor < 0 {
		return 0
	}
	if l.FilterCursor > len(runes) {
		return len(runes)
	}
	return l.FilterCursor
}

// FilterItems returns the rows matching the query. A non-empty query
// drops connector rows: the graph is already broken by filtering, so
// only real entries remain. Fuzzy matching is tried first, plain
// substring matching as the fallback.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneItems(items)
	}
	selectable := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Selectable() {
			selectable = append(selectable, item)
		}
	}
	labels := make([]string, len(selectable))
	for i, item := range selectable {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range selectable {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(selectable))
	for _, item := range selectable {
		if strings.Contains(strings.ToLower(item.Label), lower) ||
			strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
