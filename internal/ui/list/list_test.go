package list

import "testing"

func graphItems() []Item {
	return []Item{
		{ID: "aaaa", Label: "@  aaaa working copy"},
		{Label: "│ ╮"},
		{ID: "bbbb", Label: "○  bbbb add parser"},
		{ID: "cccc", Label: "○  cccc initial import"},
	}
}

func TestCursorSkipsConnectorRows(t *testing.T) {
	l := New(graphItems())
	if l.Cursor != 0 {
		t.Fatalf("initial cursor = %d", l.Cursor)
	}
	l.MoveDown()
	if l.Cursor != 2 {
		t.Fatalf("MoveDown landed on %d, want 2", l.Cursor)
	}
	l.MoveUp()
	if l.Cursor != 0 {
		t.Fatalf("MoveUp landed on %d, want 0", l.Cursor)
	}
}

func TestCurrentNeverReturnsConnector(t *testing.T) {
	l := New(graphItems())
	l.Cursor = 1
	if _, ok := l.Current(); ok {
		t.Fatal("Current() returned a connector row")
	}
}

func TestUpdateItemsKeepsCursorByID(t *testing.T) {
	l := New(graphItems())
	l.MoveDown()
	l.MoveDown()
	l.UpdateItems([]Item{
		{ID: "dddd", Label: "@  dddd new"},
		{ID: "cccc", Label: "○  cccc initial import"},
	})
	current, ok := l.Current()
	if !ok || current.ID != "cccc" {
		t.Fatalf("cursor after refresh on %+v", current)
	}
}

func TestFilterDropsConnectorsAndRestoresCursor(t *testing.T) {
	l := New(graphItems())
	l.MoveBottom()
	l.InsertFilterText("parser")
	if len(l.Items) != 1 {
		t.Fatalf("filtered rows = %d, want 1", len(l.Items))
	}
	if l.Items[0].ID != "bbbb" {
		t.Fatalf("filtered to %q", l.Items[0].ID)
	}
	for _, item := range l.Items {
		if !item.Selectable() {
			t.Fatal("connector row survived filtering")
		}
	}
	l.ClearFilter()
	current, ok := l.Current()
	if !ok || current.ID != "cccc" {
		t.Fatalf("cursor not restored after clearing filter: %+v", current)
	}
}

func TestFilterNoMatches(t *testing.T) {
	l := New(graphItems())
	l.InsertFilterText("zzz-no-such")
	if len(l.Items) != 0 {
		t.Fatalf("rows = %d, want 0", len(l.Items))
	}
	if _, ok := l.Current(); ok {
		t.Fatal("Current() returned an item with no matches")
	}
}

func TestEnsureVisibleScrolls(t *testing.T) {
	items := make([]Item, 20)
	for i := range items {
		items[i] = Item{ID: string(rune('a' + i)), Label: "row"}
	}
	l := New(items)
	l.MoveBottom()
	l.EnsureVisible(5)
	if l.ViewportOffset != 15 {
		t.Fatalf("ViewportOffset = %d, want 15", l.ViewportOffset)
	}
	visible := l.Visible(5)
	if len(visible) != 5 || visible[4].ID != items[19].ID {
		t.Fatalf("Visible window wrong: %v", visible)
	}
	l.MoveTop()
	l.EnsureVisible(5)
	if l.ViewportOffset != 0 {
		t.Fatalf("ViewportOffset after MoveTop = %d", l.ViewportOffset)
	}
}
