package jj

import "strings"

// jj signals most special conditions only through stderr wording, so every
// detection below is a single named predicate over that text. When a jj
// release rewords a message, the predicate here is the one place to fix.
// There is no compile-time guarantee these stay correct; the strings were
// pinned against observed output and the tests record them.

// isNoRepository matches the "not a repo" failure for both the current and
// older wordings.
func isNoRepository(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "there is no jj repo in") ||
		strings.Contains(lower, "not a jj repo")
}

// isUnknownFlag reports that the installed jj rejected a flag this build
// passed; the command should be retried without it.
func isUnknownFlag(stderr string) bool {
	lower := strings.ToLower(stderr)
	for _, marker := range []string{
		"unexpected argument",
		"unrecognized",
		"unknown flag",
		"unknown option",
	} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// isSnapshotSizeWarning matches the benign warning jj emits when a file
// exceeds the snapshot size limit. The exit code goes non-zero, but any
// requested output is still produced and usable.
func isSnapshotSizeWarning(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "exceeds the maximum file size") ||
		strings.Contains(lower, "snapshot.max-new-file-size")
}

// isPrivateCommitRejection matches a push refused because a commit is
// marked private.
func isPrivateCommitRejection(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "would push a commit that is private") ||
		strings.Contains(lower, "commits that are private")
}

// isEmptyDescriptionRejection matches a push refused because a commit has
// no description.
func isEmptyDescriptionRejection(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "no description") &&
		strings.Contains(lower, "push")
}

// isUntrackedBookmark matches a push refused because the bookmark has no
// tracked remote counterpart; the caller may offer --allow-new.
func isUntrackedBookmark(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "non-tracking remote bookmark") ||
		(strings.Contains(lower, "bookmark") && strings.Contains(lower, "--allow-new"))
}

// isBookmarkExists matches a bookmark-create failure for a name already in
// use; the caller may offer a move instead.
func isBookmarkExists(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "already exists")
}

// isImmutableCommit matches a mutation refused because the target commit
// is immutable.
func isImmutableCommit(stderr string) bool {
	lower := strings.ToLower(stderr)
	return strings.Contains(lower, "is immutable")
}

// RedoTarget inspects the newest operations and, when the latest one is an
// undo, returns the id of the operation it reverted so it can be restored.
// Degrades to not-eligible on anything it cannot recognize.
func RedoTarget(ops []Operation) (string, bool) {
	if len(ops) == 0 {
		return "", false
	}
	desc := strings.ToLower(ops[0].Description)
	if !strings.HasPrefix(desc, "undo operation ") {
		return "", false
	}
	target := strings.TrimSpace(ops[0].Description[len("undo operation "):])
	if i := strings.IndexByte(target, ' '); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return "", false
	}
	return target, true
}

// FailureKind classifies what the caller can sensibly do with an executor
// failure: offer an allow-flag retry, a move dialog, or just report it.
type FailureKind int

const (
	FailureGeneric FailureKind = iota
	FailureUntrackedBookmark
	FailureBookmarkExists
	FailureImmutableCommit
)

// ClassifyFailure maps a CommandError onto the dialog-worthy conditions.
// Anything ambiguous falls through to FailureGeneric rather than guessing.
func ClassifyFailure(err error) FailureKind {
	ce, ok := err.(*CommandError)
	if !ok {
		return FailureGeneric
	}
	switch {
	case isUntrackedBookmark(ce.Stderr):
		return FailureUntrackedBookmark
	case isBookmarkExists(ce.Stderr):
		return FailureBookmarkExists
	case isImmutableCommit(ce.Stderr):
		return FailureImmutableCommit
	default:
		return FailureGeneric
	}
}
