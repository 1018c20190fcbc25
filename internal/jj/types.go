package jj

// Change is one parsed entry from the revision log. Connector lines carry
// only a graph prefix; GraphOnly marks them so the DAG stays aligned when
// rendering.
type Change struct {
	ChangeID    string
	CommitID    string
	Author      string
	Timestamp   string
	Description string
	WorkingCopy bool
	Empty       bool
	Bookmarks   []string
	GraphPrefix string
	GraphOnly   bool
	Conflict    bool
}

// FileState classifies a single status entry.
type FileState int

const (
	FileAdded FileState = iota
	FileModified
	FileDeleted
	FileRenamed
	FileConflicted
)

// FileEntry is one per-file line from the status output.
type FileEntry struct {
	Path   string
	Origin string // previous path for renames
	State  FileState
}

// Status captures the working-copy summary.
type Status struct {
	Files         []FileEntry
	HasConflicts  bool
	WorkingCopyID string
	ParentID      string
}

// DiffLineKind classifies one line of parsed diff output.
type DiffLineKind int

const (
	DiffFileHeader DiffLineKind = iota
	DiffSeparator
	DiffContext
	DiffAdded
	DiffDeleted
)

// DiffOp is the per-file operation a file-header line announces.
type DiffOp int

const (
	DiffOpNone DiffOp = iota
	DiffOpAdded
	DiffOpModified
	DiffOpDeleted
)

// DiffLine is a single classified diff line. OldLine/NewLine are zero when
// the format carries no line numbers for that side.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
	OldLine int
	NewLine int
}

// DiffContent is a parsed diff: header metadata plus the classified body.
type DiffContent struct {
	CommitID    string
	Author      string
	Timestamp   string
	Description string
	Lines       []DiffLine
}

// PushActionKind enumerates what a push dry-run says it would do to a
// bookmark.
type PushActionKind int

const (
	PushMoveForward PushActionKind = iota
	PushMoveSideways
	PushMoveBackward
	PushAdd
	PushDelete
)

// PushAction is one bookmark movement from a push dry-run.
type PushAction struct {
	Kind     PushActionKind
	Bookmark string
	From     string
	To       string
}

// PushPreview is the classified outcome of a push dry-run. Unrecognized is
// distinct from an empty action list: it means the output matched neither
// the action prefixes nor the nothing-changed sentinel, and callers should
// fall back to showing the raw text.
type PushPreview struct {
	NothingChanged bool
	Actions        []PushAction
	Unrecognized   bool
}

// Operation is one entry from the operation log.
type Operation struct {
	ID          string
	Description string
	Tags        string
	Time        string
}

// Bookmark is one entry from the bookmark list. ChangeID may be empty for
// remote-only bookmarks.
type Bookmark struct {
	Name     string
	Remote   string
	Tracked  bool
	ChangeID string
	CommitID string
}

// ConflictFile is one entry from the resolve listing.
type ConflictFile struct {
	Path        string
	Description string
}

// AnnotationLine is one annotated source line.
type AnnotationLine struct {
	ChangeID string
	Author   string
	LineNum  int
	Content  string
}

// AnnotationContent is a parsed file annotation.
type AnnotationContent struct {
	Path  string
	Lines []AnnotationLine
}

// EvologEntry is one entry from a change's evolution log.
type EvologEntry struct {
	ChangeID    string
	CommitID    string
	Description string
	Time        string
}
