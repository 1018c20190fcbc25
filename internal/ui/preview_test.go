package ui

import (
	"strings"
	"testing"

	"github.com/jjconsole/jjconsole/internal/jj"
)

func TestPreviewLookupEvictsStaleEntry(t *testing.T) {
	var p previewState
	p.init()
	p.store("xyzk", previewEntry{commitID: "c1"})

	if _, ok := p.lookup("xyzk", "c2"); ok {
		t.Fatal("entry served despite a rewritten commit id")
	}
	// The mismatch evicts; the old content must not resurface even for
	// the commit id it was cached under.
	if _, ok := p.lookup("xyzk", "c1"); ok {
		t.Fatal("stale entry resurrected after eviction")
	}
}

func TestPreviewRefetchesWhenCommitRewritten(t *testing.T) {
	m, backend := newTestModel(t)
	if _, hit := m.preview.lookup("aaaa", "c100"); !hit {
		t.Fatal("expected the selected change cached after init")
	}
	shows := backend.showCalls

	// Same change id, new commit id: history was rewritten underneath.
	backend.logOut = strings.Replace(stubLogOut, "c100", "c150", 1)
	_, cmd := m.Update(keyMsg("r"))
	drain(t, m, cmd)

	if backend.showCalls != shows+1 {
		t.Fatalf("stale preview served without a re-fetch: showCalls=%d", backend.showCalls)
	}
	if _, hit := m.preview.lookup("aaaa", "c150"); !hit {
		t.Fatal("re-fetched entry not cached under the new commit id")
	}
}

func TestPreviewCacheHitSkipsFetch(t *testing.T) {
	m, backend := newTestModel(t)
	shows := backend.showCalls

	// Down to bbbb (fetches), back up to the cached aaaa (must not).
	_, cmd := m.Update(keyMsg("j"))
	drain(t, m, cmd)
	if backend.showCalls != shows+1 {
		t.Fatalf("uncached selection not fetched: showCalls=%d", backend.showCalls)
	}
	_, cmd = m.Update(keyMsg("k"))
	drain(t, m, cmd)
	if backend.showCalls != shows+1 {
		t.Fatalf("cached selection fetched again: showCalls=%d", backend.showCalls)
	}
	if m.preview.currentID != "aaaa" {
		t.Fatalf("currentID = %q, want aaaa", m.preview.currentID)
	}
}

func TestPreviewTickIgnoresMovedSelection(t *testing.T) {
	m, backend := newTestModel(t)
	shows := backend.showCalls

	// The selection moved on before the idle tick fired.
	m.preview.pendingID = "bbbb"
	m.lists[ViewLog].MoveTop()
	_, cmd := m.Update(previewTickMsg{})
	if cmd != nil {
		t.Fatal("tick for an abandoned selection must not fetch")
	}
	if backend.showCalls != shows {
		t.Fatalf("show run for abandoned selection: showCalls=%d", backend.showCalls)
	}

	// A tick whose pending id still matches the selection fetches.
	delete(m.preview.cache, "aaaa")
	m.preview.pendingID = "aaaa"
	_, cmd = m.Update(previewTickMsg{})
	drain(t, m, cmd)
	if backend.showCalls != shows+1 {
		t.Fatalf("show not run for resting selection: showCalls=%d", backend.showCalls)
	}
}

func TestPreviewMsgForStaleFormatDropped(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(previewMsg{changeID: "bbbb", format: jj.DiffGit})
	if cmd != nil {
		t.Fatal("unexpected follow-up command")
	}
	if _, ok := m.preview.cache["bbbb"]; ok {
		t.Fatal("result for a superseded format must be discarded")
	}
}

func TestCycleDiffFormatClearsCache(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(keyMsg("d"))
	if m.preview.format != jj.DiffGit {
		t.Fatalf("format = %v, want git", m.preview.format)
	}
	if m.preview.pendingID != "aaaa" {
		t.Fatalf("pendingID = %q, want re-fetch of the selection", m.preview.pendingID)
	}
	drain(t, m, cmd)
	entry, ok := m.preview.cache["aaaa"]
	if !ok {
		t.Fatal("selection not re-cached in the new format")
	}
	if entry.commitID != "c100" {
		t.Fatalf("entry commit id = %q", entry.commitID)
	}
}
