package jj

// Snapshots bundle one refresh's parsed output with the query that
// produced it, so stale responses can be recognized and dropped.

type RevisionSnapshot struct {
	Revset  string
	Changes []Change
}

type StatusSnapshot struct {
	Status Status
}

type OpLogSnapshot struct {
	Operations []Operation
}

type BookmarkSnapshot struct {
	Bookmarks []Bookmark
}
