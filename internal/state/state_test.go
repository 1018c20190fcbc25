package state

import (
	"testing"

	"github.com/jjconsole/jjconsole/internal/jj"
)

func TestRevisionStoreDerivesWorkingCopy(t *testing.T) {
	store := NewRevisionStore()
	store.SetEntries([]jj.Change{
		{ChangeID: "aaaa"},
		{ChangeID: "bbbb", WorkingCopy: true},
	})
	if got := store.WorkingCopy(); got != "bbbb" {
		t.Fatalf("WorkingCopy() = %q, want bbbb", got)
	}
	store.SetEntries(nil)
	if got := store.WorkingCopy(); got != "" {
		t.Fatalf("WorkingCopy() after clear = %q, want empty", got)
	}
}

func TestRevisionStoreClonesEntries(t *testing.T) {
	store := NewRevisionStore()
	original := []jj.Change{{ChangeID: "aaaa"}}
	store.SetEntries(original)
	original[0].ChangeID = "mutated"

	entries := store.Entries()
	if entries[0].ChangeID != "aaaa" {
		t.Fatalf("store absorbed caller mutation: %q", entries[0].ChangeID)
	}
	entries[0].ChangeID = "mutated-again"
	if got := store.Entries()[0].ChangeID; got != "aaaa" {
		t.Fatalf("store leaked internal slice: %q", got)
	}
}

func TestRevisionStoreFind(t *testing.T) {
	store := NewRevisionStore()
	store.SetEntries([]jj.Change{{ChangeID: "aaaa"}, {GraphOnly: true}, {ChangeID: "bbbb"}})
	if _, ok := store.Find("bbbb"); !ok {
		t.Fatal("Find(bbbb) not found")
	}
	if _, ok := store.Find("zzzz"); ok {
		t.Fatal("Find(zzzz) unexpectedly found")
	}
}

func TestStatusStoreClones(t *testing.T) {
	store := NewStatusStore()
	store.Set(jj.Status{
		Files:        []jj.FileEntry{{Path: "a.go", State: jj.FileModified}},
		HasConflicts: true,
	})
	files := store.Files()
	files[0].Path = "mutated"
	if got := store.Files()[0].Path; got != "a.go" {
		t.Fatalf("status store leaked internal slice: %q", got)
	}
	if !store.HasConflicts() {
		t.Fatal("HasConflicts() = false, want true")
	}
}

func TestOpLogStoreRedoTarget(t *testing.T) {
	store := NewOpLogStore()
	store.SetEntries([]jj.Operation{
		{ID: "abc123", Description: "undo operation 9f8e7d6c"},
	})
	target, ok := store.RedoTarget()
	if !ok || target != "9f8e7d6c" {
		t.Fatalf("RedoTarget() = %q, %v", target, ok)
	}
	store.SetEntries([]jj.Operation{{ID: "abc123", Description: "new empty commit"}})
	if _, ok := store.RedoTarget(); ok {
		t.Fatal("RedoTarget() eligible after non-undo operation")
	}
}

func TestBookmarkStoreLocalNames(t *testing.T) {
	store := NewBookmarkStore()
	store.SetEntries([]jj.Bookmark{
		{Name: "main"},
		{Name: "main", Remote: "origin"},
		{Name: "feature"},
	})
	names := store.LocalNames()
	if len(names) != 2 || names[0] != "main" || names[1] != "feature" {
		t.Fatalf("LocalNames() = %v", names)
	}
}
