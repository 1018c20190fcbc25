package ui

import "github.com/jjconsole/jjconsole/internal/jj"

// Backend is the slice of the jj runner the UI drives. The indirection
// exists so tests can script repository responses without a jj binary.
type Backend interface {
	Log(revset string, limit int) (string, error)
	Status() (string, error)
	Show(changeID string, format jj.DiffFormat) (string, error)
	OpLog(limit int) (string, error)
	BookmarkList() (string, error)
	ResolveList(changeID string) (string, error)
	Annotate(path, changeID string) (string, error)
	Evolog(changeID string) (string, error)
	PushDryRun(bookmarks []string) (string, error)

	New(parents ...string) (string, error)
	Edit(changeID string) (string, error)
	Abandon(changeID string) (string, error)
	Describe(changeID, message string) (string, error)
	CommitWorkingCopy(message string) (string, error)
	Squash(from, into string) (string, error)
	Absorb(changeID string) (string, error)
	Undo() (string, error)
	OpRestore(opID string) (string, error)
	Duplicate(changeID string) (string, error)
	GitFetch() (string, error)
	Rebase(source, destination string, mode jj.RebaseMode) (jj.Outcome, error)

	BookmarkCreate(name, changeID string) (string, error)
	BookmarkMove(name, changeID string) (string, error)
	BookmarkDelete(name string) (string, error)
	BookmarkRename(oldName, newName string) (string, error)
	BookmarkTrack(ref string) (string, error)
	BookmarkUntrack(ref string) (string, error)
	BookmarkForget(name string) (string, error)

	PushChange(changeID string) (jj.Outcome, error)
	PushBookmarks(names []string, allowNew bool) jj.BulkResult

	DescribeEditorSpec(changeID string) jj.ExecSpec
	ResolveToolSpec(changeID, path string) jj.ExecSpec
	DiffEditSpec(changeID string) jj.ExecSpec
	SquashInteractiveSpec(changeID string) jj.ExecSpec
	RepoPath() string
}

var _ Backend = (*jj.Runner)(nil)
