package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
	"github.com/jjconsole/jjconsole/internal/ui/dialog"
)

// dialogCallback is the closed set of multi-step workflows. Each variant
// carries exactly what its dispatch arm needs; adding a workflow means
// one new variant and one new arm in dispatchDialog.
type dialogCallback interface {
	dialogCallback()
}

type abandonCallback struct{ changeID string }
type squashCallback struct{ from, into string }
type opRestoreCallback struct{ opID string }
type pushSelectCallback struct{}
type pushConfirmCallback struct{ names []string }
type untrackedPushCallback struct{ names []string }
type bookmarkMoveCallback struct{ name, changeID string }
type bookmarkMoveHereCallback struct{ changeID string }
type bookmarkDeleteCallback struct{ name string }
type bookmarkForgetCallback struct{ name string }

func (abandonCallback) dialogCallback()          {}
func (squashCallback) dialogCallback()           {}
func (opRestoreCallback) dialogCallback()        {}
func (pushSelectCallback) dialogCallback()       {}
func (pushConfirmCallback) dialogCallback()      {}
func (untrackedPushCallback) dialogCallback()    {}
func (bookmarkMoveCallback) dialogCallback()     {}
func (bookmarkMoveHereCallback) dialogCallback() {}
func (bookmarkDeleteCallback) dialogCallback()   {}
func (bookmarkForgetCallback) dialogCallback()   {}

func (m *Model) openConfirm(title, prompt string, cb dialogCallback) {
	m.dlg = dialog.NewConfirm(title, prompt)
	m.dlgCallback = cb
	events.Dialog.Open("confirm", title)
}

func (m *Model) openSelect(title, prompt string, items []dialog.Item, cb dialogCallback) {
	m.dlg = dialog.NewSelect(title, prompt, items)
	m.dlgCallback = cb
	events.Dialog.Open("select", title)
}

// handleDialogKey feeds a key to the active dialog. When it finishes,
// the slot is cleared before dispatch so a handler opening the next
// dialog never fights leftover state.
func (m *Model) handleDialogKey(key tea.KeyMsg) tea.Cmd {
	done, result := m.dlg.Update(key)
	if !done {
		return nil
	}
	cb := m.dlgCallback
	m.dlg = nil
	m.dlgCallback = nil
	events.Dialog.Close("dialog", result.Confirmed, len(result.Values))
	return m.dispatchDialog(cb, result)
}

// dispatchDialog is the single exhaustive match over callback and result.
func (m *Model) dispatchDialog(cb dialogCallback, result dialog.Result) tea.Cmd {
	if cb == nil || result.Cancelled() {
		return nil
	}
	backend := m.backend
	switch c := cb.(type) {
	case abandonCallback:
		events.Revision.Abandon(c.changeID)
		return runCmd(ActionAbandon, func() (string, error) { return backend.Abandon(c.changeID) })
	case squashCallback:
		events.Revision.Squash(c.from, c.into)
		return runCmd(ActionSquash, func() (string, error) { return backend.Squash(c.from, c.into) })
	case opRestoreCallback:
		events.Op.Restore(c.opID)
		return runCmd(ActionOpRestore, func() (string, error) { return backend.OpRestore(c.opID) })
	case pushSelectCallback:
		return m.pushDryRunCmd(result.Values)
	case pushConfirmCallback:
		return m.bulkPushCmd(c.names, false)
	case untrackedPushCallback:
		return m.bulkPushCmd(c.names, true)
	case bookmarkMoveCallback:
		events.Bookmark.Move(c.name, c.changeID)
		return runCmd(ActionBookmarkMoveHere, func() (string, error) {
			return backend.BookmarkMove(c.name, c.changeID)
		})
	case bookmarkMoveHereCallback:
		if len(result.Values) == 0 {
			return nil
		}
		name := result.Values[0]
		events.Bookmark.Move(name, c.changeID)
		return runCmd(ActionBookmarkMoveHere, func() (string, error) {
			return backend.BookmarkMove(name, c.changeID)
		})
	case bookmarkDeleteCallback:
		events.Bookmark.Delete(c.name)
		return runCmd(ActionBookmarkDelete, func() (string, error) { return backend.BookmarkDelete(c.name) })
	case bookmarkForgetCallback:
		return runCmd(ActionBookmarkForget, func() (string, error) { return backend.BookmarkForget(c.name) })
	default:
		return nil
	}
}

// handlePushPreviewMsg turns a dry-run report into the confirm dialog.
func (m *Model) handlePushPreviewMsg(msg tea.Msg) tea.Cmd {
	pm := msg.(pushPreviewMsg)
	if pm.err != nil {
		m.setError(pm.err)
		return nil
	}
	switch {
	case pm.preview.NothingChanged:
		m.setInfo("Nothing to push", "")
		return nil
	case pm.preview.Unrecognized:
		// Fall back to the unparsed report rather than claiming a no-op.
		m.openConfirm("Push "+strings.Join(pm.names, ", "), strings.TrimSpace(pm.raw),
			pushConfirmCallback{names: pm.names})
		return nil
	default:
		m.openConfirm("Push "+strings.Join(pm.names, ", "), formatPushActions(pm.preview.Actions),
			pushConfirmCallback{names: pm.names})
		return nil
	}
}

func formatPushActions(actions []jj.PushAction) string {
	lines := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a.Kind {
		case jj.PushAdd:
			lines = append(lines, fmt.Sprintf("add %s → %s", a.Bookmark, a.To))
		case jj.PushDelete:
			lines = append(lines, fmt.Sprintf("delete %s (was %s)", a.Bookmark, a.From))
		default:
			lines = append(lines, fmt.Sprintf("move %s %s → %s", a.Bookmark, a.From, a.To))
		}
	}
	return strings.Join(lines, "\n")
}

// handleBulkPushDoneMsg reports the aggregate and, when every failure is
// the untracked-bookmark rejection, offers one retry with --allow-new.
func (m *Model) handleBulkPushDoneMsg(msg tea.Msg) tea.Cmd {
	bm := msg.(bulkPushDoneMsg)
	result := bm.result
	m.markDirty(ActionPushBookmarks)

	if len(result.Failures) > 0 && !bm.allowNew {
		untracked := make([]string, 0, len(result.Failures))
		for _, f := range result.Failures {
			if jj.ClassifyFailure(f.Err) == jj.FailureUntrackedBookmark {
				untracked = append(untracked, f.Name)
			}
		}
		if len(untracked) == len(result.Failures) && len(untracked) > 0 {
			if summary := result.SuccessSummary(); summary != "" {
				m.setInfo(summary, "")
			}
			m.openConfirm("Push new bookmarks",
				fmt.Sprintf("%s not tracked on the remote. Push with --allow-new?",
					strings.Join(untracked, ", ")),
				untrackedPushCallback{names: untracked})
			return m.refreshIfDirty()
		}
	}

	switch {
	case len(result.Failures) == 0:
		m.setInfo(result.SuccessSummary(), "")
	case len(result.Succeeded) == 0:
		m.errMsg = result.FailureSummary()
	default:
		// Partial outcome: both halves are real and both are shown.
		m.setInfo(result.SuccessSummary(), "")
		m.errMsg = result.FailureSummary()
	}
	return m.refreshIfDirty()
}
