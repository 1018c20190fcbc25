package dispatcher

import (
	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/state"
)

// Kind names which repository facet a snapshot refreshes.
type Kind int

const (
	KindRevisions Kind = iota
	KindStatus
	KindOpLog
	KindBookmarks
)

// Event is one completed refresh: the parsed snapshot or the error that
// replaced it.
type Event struct {
	Kind Kind
	Data any
	Err  error
}

type Result struct {
	RevisionsUpdated bool
	StatusUpdated    bool
	OpLogUpdated     bool
	BookmarksUpdated bool
}

// Dispatcher routes snapshots into the stores. Errors leave every store
// untouched; the caller decides how to surface them.
type Dispatcher struct {
	revisions state.RevisionStore
	status    state.StatusStore
	oplog     state.OpLogStore
	bookmarks state.BookmarkStore
}

func New(r state.RevisionStore, s state.StatusStore, o state.OpLogStore, b state.BookmarkStore) *Dispatcher {
	return &Dispatcher{revisions: r, status: s, oplog: o, bookmarks: b}
}

func (d *Dispatcher) Handle(evt Event) Result {
	var res Result
	if evt.Err != nil {
		return res
	}
	switch evt.Kind {
	case KindRevisions:
		if snapshot, ok := evt.Data.(jj.RevisionSnapshot); ok {
			d.revisions.SetEntries(snapshot.Changes)
			d.revisions.SetRevset(snapshot.Revset)
			res.RevisionsUpdated = true
		}
	case KindStatus:
		if snapshot, ok := evt.Data.(jj.StatusSnapshot); ok {
			d.status.Set(snapshot.Status)
			res.StatusUpdated = true
		}
	case KindOpLog:
		if snapshot, ok := evt.Data.(jj.OpLogSnapshot); ok {
			d.oplog.SetEntries(snapshot.Operations)
			res.OpLogUpdated = true
		}
	case KindBookmarks:
		if snapshot, ok := evt.Data.(jj.BookmarkSnapshot); ok {
			d.bookmarks.SetEntries(snapshot.Bookmarks)
			res.BookmarksUpdated = true
		}
	}
	return res
}
