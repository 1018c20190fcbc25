package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/data/dispatcher"
	"github.com/jjconsole/jjconsole/internal/jj"
)

func TestInitLoadsEveryView(t *testing.T) {
	m, backend := newTestModel(t)
	if backend.logCalls != 1 || backend.statusCalls != 1 || backend.opLogCalls != 1 || backend.bookmarkCalls != 1 {
		t.Fatalf("load counts: log=%d status=%d oplog=%d bookmarks=%d",
			backend.logCalls, backend.statusCalls, backend.opLogCalls, backend.bookmarkCalls)
	}
	if m.dirty != dirtyNone {
		t.Fatalf("dirty bits set after full load: %b", m.dirty)
	}
	current, ok := m.lists[ViewLog].Current()
	if !ok || current.ID != "aaaa" {
		t.Fatalf("log cursor = %+v, want aaaa selected", current)
	}
	if entries := m.revisions.Entries(); len(entries) != 2 {
		t.Fatalf("revision store holds %d entries, want 2", len(entries))
	}
	if wc := m.revisions.WorkingCopy(); wc != "aaaa" {
		t.Fatalf("working copy = %q", wc)
	}
}

func TestSnapshotErrorKeepsStore(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(snapshotMsg{event: dispatcher.Event{
		Kind: dispatcher.KindRevisions,
		Err:  errors.New("transient failure"),
	}})
	if cmd != nil {
		t.Fatal("error snapshot produced a follow-up command")
	}
	if m.errMsg != "transient failure" {
		t.Fatalf("errMsg = %q", m.errMsg)
	}
	if len(m.revisions.Entries()) != 2 {
		t.Fatal("error snapshot clobbered the revision store")
	}
}

func TestSnapshotKeepsCursorByID(t *testing.T) {
	m, backend := newTestModel(t)
	m.lists[ViewLog].MoveDown()

	// Refreshed data lists the selected change in a new position.
	backend.logOut = "○  bbbb\tc200\tdev@example.com\t2026-03-01 09:00:00\tsecond change\tfalse\tfalse\tmain\n" +
		"@  aaaa\tc100\tdev@example.com\t2026-03-01 10:00:00\ttop change\ttrue\tfalse\n"
	_, cmd := m.Update(keyMsg("r"))
	drain(t, m, cmd)

	current, ok := m.lists[ViewLog].Current()
	if !ok || current.ID != "bbbb" {
		t.Fatalf("cursor = %+v, want to stay on bbbb", current)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatal("quitting model must render nothing")
	}
}

func TestFilterKeysRouteToActiveList(t *testing.T) {
	m, _ := newTestModel(t)
	_, _ = m.Update(keyMsg("/"))
	if !m.filtering {
		t.Fatal("filter mode not entered")
	}

	// Typed runes go into the query, not the action table.
	_, cmd := m.Update(keyMsg("t"))
	drain(t, m, cmd)
	if got := m.activeList().Filter; got != "t" {
		t.Fatalf("filter = %q", got)
	}
	if items := m.activeList().Items; len(items) != 1 || items[0].ID != "aaaa" {
		t.Fatalf("filtered rows = %+v, want only the change matching %q", items, "t")
	}

	_, _ = m.Update(keyMsg("esc"))
	if m.filtering {
		t.Fatal("esc did not leave filter mode")
	}
	if m.activeList().Filter != "" {
		t.Fatal("esc did not clear the query")
	}
}

func TestKeyPressConsumesMessages(t *testing.T) {
	m, _ := newTestModel(t)
	m.infoMsg = "done"
	m.errMsg = "failed"
	_, _ = m.Update(keyMsg("j"))
	if m.infoMsg != "" || m.errMsg != "" {
		t.Fatalf("message slots survived a key press: info=%q err=%q", m.infoMsg, m.errMsg)
	}
}

func TestFormatError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{jj.ErrNotRepository, "no jj repository here (try --repository)"},
		{jj.ErrToolNotFound, "jj executable not found in PATH"},
		{&jj.CommandError{Stderr: "Error: broken\nHint: try harder"}, "Error: broken"},
		{errors.New("plain"), "plain"},
	}
	for _, tc := range cases {
		if got := formatError(tc.err); got != tc.want {
			t.Errorf("formatError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestSetInfoCollapsesNewlines(t *testing.T) {
	m, _ := newTestModel(t)
	m.setInfo("first line\nsecond line", "(note)")
	if !strings.Contains(m.infoMsg, " · ") || strings.Contains(m.infoMsg, "\n") {
		t.Fatalf("infoMsg = %q", m.infoMsg)
	}
	if !strings.HasSuffix(m.infoMsg, "(note)") {
		t.Fatalf("note not appended: %q", m.infoMsg)
	}
}
