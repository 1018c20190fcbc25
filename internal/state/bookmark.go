package state

import "github.com/jjconsole/jjconsole/internal/jj"

type BookmarkStore interface {
	Entries() []jj.Bookmark
	SetEntries([]jj.Bookmark)
	LocalNames() []string
}

type bookmarkStore struct {
	entries []jj.Bookmark
}

func NewBookmarkStore() BookmarkStore {
	return &bookmarkStore{}
}

func (s *bookmarkStore) Entries() []jj.Bookmark {
	return cloneBookmarks(s.entries)
}

func (s *bookmarkStore) SetEntries(entries []jj.Bookmark) {
	s.entries = cloneBookmarks(entries)
}

func (s *bookmarkStore) LocalNames() []string {
	return jj.LocalBookmarkNames(s.entries)
}

func cloneBookmarks(entries []jj.Bookmark) []jj.Bookmark {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]jj.Bookmark, len(entries))
	copy(dup, entries)
	return dup
}
