package jj

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Runner builds and executes jj invocations. It keeps no mutable state
// beyond the repository override, so independent read calls are safe to
// issue from any caller; write calls must not overlap (the event loop runs
// everything sequentially, which keeps that trivially true).
type Runner struct {
	repoPath string
}

// NewRunner returns a Runner for the given repository path override.
// An empty path lets jj resolve the repository from the working directory.
func NewRunner(repoPath string) *Runner {
	return &Runner{repoPath: repoPath}
}

// ErrNotRepository reports that the working directory holds no jj repo.
var ErrNotRepository = errors.New("there is no jj repository here")

// ErrToolNotFound reports that the jj executable is not installed or not
// on PATH.
var ErrToolNotFound = errors.New("jj executable not found")

// CommandError is a jj invocation that ran and exited non-zero.
type CommandError struct {
	Stderr   string
	ExitCode int
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = fmt.Sprintf("jj exited with code %d", e.ExitCode)
	}
	return msg
}

// IOError is a spawn or pipe failure; the command never produced a usable
// exit status. Never retried.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to run jj: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Outcome pairs captured output with a note describing any fallback the
// retry protocol applied. The note annotates the original notification; it
// never downgrades its severity.
type Outcome struct {
	Output       string
	FallbackNote string
}

// execCommand is swapped out by tests.
var execCommand = exec.Command

// run executes jj with the global flags prepended and returns captured
// stdout and stderr. contentQuery marks show-style calls whose stdout may
// legitimately be empty, which widens the large-file salvage rule.
func (r *Runner) run(contentQuery bool, args ...string) (string, string, error) {
	full := append(baseArgs(r.repoPath), args...)
	cmd := execCommand("jj", full...)
	// An empty reader keeps the child from blocking on a TTY prompt.
	cmd.Stdin = strings.NewReader("")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		errText := stderr.String()
		if isNoRepository(errText) {
			return "", "", ErrNotRepository
		}
		// A non-zero exit caused solely by the snapshot size warning is
		// benign; the requested output is still usable.
		if isSnapshotSizeWarning(errText) && (stdout.Len() > 0 || contentQuery) {
			return stdout.String(), errText, nil
		}
		return "", "", &CommandError{Stderr: strings.TrimSpace(errText), ExitCode: exitErr.ExitCode()}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return "", "", ErrToolNotFound
	}
	return "", "", &IOError{Err: err}
}

func (r *Runner) output(args ...string) (string, error) {
	out, _, err := r.run(false, args...)
	return out, err
}

// feedback returns jj's human-readable report, which arrives on stderr for
// mutating commands; stdout is folded in for the few that use both.
func (r *Runner) feedback(args ...string) (string, error) {
	out, errText, err := r.run(false, args...)
	if err != nil {
		return "", err
	}
	if out == "" {
		return errText, nil
	}
	if errText == "" {
		return out, nil
	}
	return out + "\n" + errText, nil
}

// runWithFlagFallback issues args plus the optional flags; when the
// installed jj rejects one of them as unknown, the identical command is
// reissued without any optional flag. The bool reports whether the
// fallback path produced the result.
func (r *Runner) runWithFlagFallback(args []string, optional ...string) (string, bool, error) {
	if len(optional) > 0 {
		out, err := r.feedback(append(append([]string{}, args...), optional...)...)
		if err == nil {
			return out, false, nil
		}
		var ce *CommandError
		if !errors.As(err, &ce) || !isUnknownFlag(ce.Stderr) {
			return "", false, err
		}
	}
	out, err := r.feedback(args...)
	return out, len(optional) > 0, err
}

// allowFlagsFor inspects a failure and returns the allow-flags a retry
// should add. Private-commit and empty-description rejections are detected
// independently and may combine on a single retry.
func allowFlagsFor(err error) []string {
	var ce *CommandError
	if !errors.As(err, &ce) {
		return nil
	}
	var flags []string
	if isPrivateCommitRejection(ce.Stderr) {
		flags = append(flags, "--allow-private")
	}
	if isEmptyDescriptionRejection(ce.Stderr) {
		flags = append(flags, "--allow-empty-description")
	}
	return flags
}

// Read operations.

// Log fetches the revision log for a revset using the pinned template.
func (r *Runner) Log(revset string, limit int) (string, error) {
	args := []string{"log", "--template", logTemplate}
	if revset != "" {
		args = append(args, "--revisions", revset)
	}
	if limit > 0 {
		args = append(args, "--limit", strconv.Itoa(limit))
	}
	return r.output(args...)
}

// Status fetches the working-copy status.
func (r *Runner) Status() (string, error) {
	return r.output("status")
}

// DiffFormat selects one of the three diff layouts jj can emit.
type DiffFormat int

const (
	DiffColorWords DiffFormat = iota
	DiffGit
	DiffStat
)

// Show fetches commit details plus a diff in the requested format. Empty
// output is legitimate here (an empty commit), so the salvage rule for the
// snapshot warning applies even without stdout.
func (r *Runner) Show(changeID string, format DiffFormat) (string, error) {
	args := []string{"show", "--revision", changeID}
	switch format {
	case DiffGit:
		args = append(args, "--git")
	case DiffStat:
		args = append(args, "--stat")
	}
	out, _, err := r.run(true, args...)
	return out, err
}

// OpLog fetches the operation log using the pinned template.
func (r *Runner) OpLog(limit int) (string, error) {
	args := []string{"operation", "log", "--template", opLogTemplate}
	if limit > 0 {
		args = append(args, "--limit", strconv.Itoa(limit))
	}
	return r.output(args...)
}

// BookmarkList fetches all bookmarks, including remote-only ones.
func (r *Runner) BookmarkList() (string, error) {
	return r.output("bookmark", "list", "--all-remotes", "--template", bookmarkTemplate)
}

// ResolveList lists files with unresolved conflicts in a revision.
func (r *Runner) ResolveList(changeID string) (string, error) {
	return r.output("resolve", "--revision", changeID, "--list")
}

// Annotate fetches per-line origin information for a file.
func (r *Runner) Annotate(path, changeID string) (string, error) {
	args := []string{"file", "annotate", "--template", annotateTemplate}
	if changeID != "" {
		args = append(args, "--revision", changeID)
	}
	args = append(args, path)
	return r.output(args...)
}

// Evolog fetches the evolution log of a change.
func (r *Runner) Evolog(changeID string) (string, error) {
	return r.output("evolog", "--revision", changeID, "--template", evologTemplate)
}

// PushDryRun previews what a push would do. The report arrives on stderr,
// one English sentence per bookmark movement.
func (r *Runner) PushDryRun(bookmarks []string) (string, error) {
	args := []string{"git", "push", "--dry-run"}
	for _, name := range bookmarks {
		args = append(args, "--bookmark", name)
	}
	_, errText, err := r.run(false, args...)
	if err != nil {
		return "", err
	}
	return errText, nil
}

// Mutating operations.

// New creates a change on top of the given parents.
func (r *Runner) New(parents ...string) (string, error) {
	args := []string{"new"}
	args = append(args, parents...)
	return r.feedback(args...)
}

// Edit makes the given change the working copy.
func (r *Runner) Edit(changeID string) (string, error) {
	return r.feedback("edit", changeID)
}

// Abandon discards a change.
func (r *Runner) Abandon(changeID string) (string, error) {
	return r.feedback("abandon", changeID)
}

// Describe sets a change's description.
func (r *Runner) Describe(changeID, message string) (string, error) {
	return r.feedback("describe", "--revision", changeID, "--message", message)
}

// CommitWorkingCopy finalizes the working copy with a message and starts a
// new change on top.
func (r *Runner) CommitWorkingCopy(message string) (string, error) {
	return r.feedback("commit", "--message", message)
}

// Squash folds a change into its destination.
func (r *Runner) Squash(from, into string) (string, error) {
	return r.feedback("squash", "--from", from, "--into", into)
}

// Absorb distributes working-copy hunks into the ancestors that last
// touched them.
func (r *Runner) Absorb(changeID string) (string, error) {
	return r.feedback("absorb", "--from", changeID)
}

// Undo reverts the latest operation.
func (r *Runner) Undo() (string, error) {
	return r.feedback("undo")
}

// OpRestore resets the repository to the state after the given operation.
func (r *Runner) OpRestore(opID string) (string, error) {
	return r.feedback("operation", "restore", opID)
}

// Duplicate copies a change; the report names the new change id.
func (r *Runner) Duplicate(changeID string) (string, error) {
	return r.feedback("duplicate", changeID)
}

// GitFetch pulls from the default remotes.
func (r *Runner) GitFetch() (string, error) {
	return r.feedback("git", "fetch")
}

// RebaseMode selects whether a rebase moves a single revision or the whole
// branch rooted at it.
type RebaseMode int

const (
	RebaseRevision RebaseMode = iota
	RebaseBranch
)

// Rebase moves source onto destination. Newer jj versions support
// --skip-emptied; when the installed version rejects it the command is
// reissued without it and the outcome says so. A conflict reported by the
// first attempt keeps its severity on the retried result.
func (r *Runner) Rebase(source, destination string, mode RebaseMode) (Outcome, error) {
	args := []string{"rebase", "--destination", destination}
	switch mode {
	case RebaseBranch:
		args = append(args, "--branch", source)
	default:
		args = append(args, "--revisions", source)
	}
	out, fellBack, err := r.runWithFlagFallback(args, "--skip-emptied")
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Output: out}
	if fellBack {
		outcome.FallbackNote = "(--skip-emptied not supported by this jj; rebased without it)"
	}
	return outcome, nil
}

// BookmarkCreate creates a bookmark pointing at a revision.
func (r *Runner) BookmarkCreate(name, changeID string) (string, error) {
	return r.feedback("bookmark", "create", name, "--revision", changeID)
}

// BookmarkMove repoints an existing bookmark, allowing backward moves.
func (r *Runner) BookmarkMove(name, changeID string) (string, error) {
	out, _, err := r.runWithFlagFallback(
		[]string{"bookmark", "move", name, "--to", changeID},
		"--allow-backwards",
	)
	return out, err
}

// BookmarkDelete removes a bookmark (and schedules remote deletion on the
// next push).
func (r *Runner) BookmarkDelete(name string) (string, error) {
	return r.feedback("bookmark", "delete", name)
}

// BookmarkRename renames a bookmark.
func (r *Runner) BookmarkRename(oldName, newName string) (string, error) {
	return r.feedback("bookmark", "rename", oldName, newName)
}

// BookmarkTrack starts tracking a remote bookmark ("name@remote").
func (r *Runner) BookmarkTrack(ref string) (string, error) {
	return r.feedback("bookmark", "track", ref)
}

// BookmarkUntrack stops tracking a remote bookmark.
func (r *Runner) BookmarkUntrack(ref string) (string, error) {
	return r.feedback("bookmark", "untrack", ref)
}

// BookmarkForget drops a bookmark without scheduling remote deletion.
func (r *Runner) BookmarkForget(name string) (string, error) {
	return r.feedback("bookmark", "forget", name)
}

// PushChange pushes a single change under a generated bookmark name.
func (r *Runner) PushChange(changeID string) (Outcome, error) {
	return r.pushWithAllowances([]string{"git", "push", "--change", changeID})
}

// pushWithAllowances runs a push and, when the rejection is one jj can be
// told to allow, retries once with every applicable allow-flag added.
func (r *Runner) pushWithAllowances(args []string) (Outcome, error) {
	out, err := r.feedback(args...)
	if err == nil {
		return Outcome{Output: out}, nil
	}
	allow := allowFlagsFor(err)
	if len(allow) == 0 {
		return Outcome{}, err
	}
	out, retryErr := r.feedback(append(append([]string{}, args...), allow...)...)
	if retryErr != nil {
		return Outcome{}, retryErr
	}
	return Outcome{
		Output:       out,
		FallbackNote: fmt.Sprintf("(pushed with %s)", strings.Join(allow, " ")),
	}, nil
}
