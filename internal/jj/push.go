package jj

import (
	"errors"
	"fmt"
	"strings"
)

// PushBookmark pushes one bookmark. Older jj versions only understand the
// deprecated --branch spelling, so an unknown-flag rejection of --bookmark
// falls back to it; private-commit and empty-description rejections retry
// once with the applicable allow-flags added.
func (r *Runner) PushBookmark(name string, allowNew bool) (Outcome, error) {
	outcome, err := r.pushBookmarkArgs(name, "--bookmark", allowNew)
	if err != nil {
		var ce *CommandError
		if errors.As(err, &ce) && isUnknownFlag(ce.Stderr) {
			outcome, err = r.pushBookmarkArgs(name, "--branch", allowNew)
			if err == nil {
				outcome.FallbackNote = joinNotes(
					"(used deprecated --branch flag)", outcome.FallbackNote,
				)
			}
		}
	}
	return outcome, err
}

func (r *Runner) pushBookmarkArgs(name, flag string, allowNew bool) (Outcome, error) {
	args := []string{"git", "push", flag, name}
	if allowNew {
		args = append(args, "--allow-new")
	}
	return r.pushWithAllowances(args)
}

// BulkFailure records one failed target of a bulk operation.
type BulkFailure struct {
	Name string
	Err  error
}

// BulkResult accumulates the independent outcomes of a bulk operation.
// Successes and failures are tracked separately; both may be non-empty.
type BulkResult struct {
	Succeeded      []string
	Failures       []BulkFailure
	UsedDeprecated bool
}

// SuccessSummary renders the comma-joined success report, annotated when
// any target needed the deprecated fallback flag.
func (b BulkResult) SuccessSummary() string {
	if len(b.Succeeded) == 0 {
		return ""
	}
	summary := fmt.Sprintf("Pushed %s", strings.Join(b.Succeeded, ", "))
	if b.UsedDeprecated {
		summary += " (deprecated --branch flag used)"
	}
	return summary
}

// FailureSummary renders the semicolon-joined failure report.
func (b BulkResult) FailureSummary() string {
	if len(b.Failures) == 0 {
		return ""
	}
	parts := make([]string, 0, len(b.Failures))
	for _, f := range b.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Name, f.Err))
	}
	return "Failed: " + strings.Join(parts, "; ")
}

// PushBookmarks pushes every named bookmark independently; a failure on
// one target never aborts the rest.
func (r *Runner) PushBookmarks(names []string, allowNew bool) BulkResult {
	var result BulkResult
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		outcome, err := r.PushBookmark(name, allowNew)
		if err != nil {
			result.Failures = append(result.Failures, BulkFailure{Name: name, Err: err})
			continue
		}
		result.Succeeded = append(result.Succeeded, name)
		if strings.Contains(outcome.FallbackNote, "--branch") {
			result.UsedDeprecated = true
		}
	}
	return result
}

func joinNotes(notes ...string) string {
	kept := make([]string, 0, len(notes))
	for _, n := range notes {
		if strings.TrimSpace(n) != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, " ")
}
