package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
	"github.com/jjconsole/jjconsole/internal/ui/dialog"
)

// handleAction executes one mapped action against the current selection.
func (m *Model) handleAction(action Action, key tea.KeyMsg) tea.Cmd {
	switch action {
	case ActionNone:
		return nil
	case ActionQuit:
		m.quitting = true
		return tea.Quit
	case ActionNextView:
		return m.setView((m.view + 1) % viewCount)
	case ActionPrevView:
		return m.setView((m.view + viewCount - 1) % viewCount)
	case ActionShowLog:
		return m.setView(ViewLog)
	case ActionShowStatus:
		return m.setView(ViewStatus)
	case ActionShowOpLog:
		return m.setView(ViewOpLog)
	case ActionShowBookmarks:
		return m.setView(ViewBookmarks)
	case ActionRefresh:
		m.loading = true
		m.dirty = m.dirty.clear(m.view)
		return m.loadCmdForView(m.view)
	case ActionStartFilter:
		m.filtering = true
		return nil
	case ActionRevsetPrompt:
		return m.openPrompt(promptRevset, "revset", "", m.revisions.Revset())
	case ActionCursorUp:
		m.activeList().MoveUp()
		return m.schedulePreview()
	case ActionCursorDown:
		m.activeList().MoveDown()
		return m.schedulePreview()
	case ActionCursorTop:
		m.activeList().MoveTop()
		return m.schedulePreview()
	case ActionCursorBottom:
		m.activeList().MoveBottom()
		return m.schedulePreview()
	case ActionCycleDiffFormat:
		return m.cycleDiffFormat()
	case ActionPreviewDown:
		m.preview.scroll += 10
		return nil
	case ActionPreviewUp:
		m.preview.scroll -= 10
		if m.preview.scroll < 0 {
			m.preview.scroll = 0
		}
		return nil
	case ActionUndo:
		events.Op.Undo()
		return runCmd(ActionUndo, m.backend.Undo)
	case ActionRedo:
		return m.startRedo()
	case ActionFetch:
		return runCmd(ActionFetch, m.backend.GitFetch)
	case ActionPushBookmarks:
		return m.startPushDialog()
	}
	switch m.view {
	case ViewLog:
		return m.handleLogAction(action)
	case ViewStatus:
		return m.handleStatusAction(action)
	case ViewOpLog:
		return m.handleOpLogAction(action)
	case ViewBookmarks:
		return m.handleBookmarkAction(action)
	}
	return nil
}

func (m *Model) selectedChange() (jj.Change, bool) {
	item, ok := m.lists[ViewLog].Current()
	if !ok {
		return jj.Change{}, false
	}
	return m.revisions.Find(item.ID)
}

func (m *Model) handleLogAction(action Action) tea.Cmd {
	change, haveChange := m.selectedChange()
	backend := m.backend
	switch action {
	case ActionNew:
		parents := []string{}
		if haveChange {
			parents = append(parents, change.ChangeID)
		}
		events.Revision.New(parents)
		return runCmd(ActionNew, func() (string, error) { return backend.New(parents...) })
	case ActionEdit:
		if !haveChange {
			return nil
		}
		events.Revision.Edit(change.ChangeID)
		return runCmd(ActionEdit, func() (string, error) { return backend.Edit(change.ChangeID) })
	case ActionAbandon:
		if !haveChange {
			return nil
		}
		m.openConfirm("Abandon change", "Abandon "+change.ChangeID+"?",
			abandonCallback{changeID: change.ChangeID})
		return nil
	case ActionDescribePrompt:
		if !haveChange {
			return nil
		}
		return m.openPrompt(promptDescribe, "describe "+change.ChangeID, change.ChangeID, change.Description)
	case ActionDescribeEditor:
		if !haveChange {
			return nil
		}
		return m.execCmd(ActionDescribeEditor, backend.DescribeEditorSpec(change.ChangeID))
	case ActionCommitPrompt:
		return m.openPrompt(promptCommit, "commit message", "", "")
	case ActionSquash:
		if !haveChange {
			return nil
		}
		m.openConfirm("Squash change", "Squash "+change.ChangeID+" into its parent?",
			squashCallback{from: change.ChangeID, into: change.ChangeID + "-"})
		return nil
	case ActionSquashInteractive:
		if !haveChange {
			return nil
		}
		return m.execCmd(ActionSquashInteractive, backend.SquashInteractiveSpec(change.ChangeID))
	case ActionDiffEdit:
		if !haveChange {
			return nil
		}
		return m.execCmd(ActionDiffEdit, backend.DiffEditSpec(change.ChangeID))
	case ActionAbsorb:
		if !haveChange {
			return nil
		}
		events.Revision.Absorb(change.ChangeID)
		return runCmd(ActionAbsorb, func() (string, error) { return backend.Absorb(change.ChangeID) })
	case ActionDuplicate:
		if !haveChange {
			return nil
		}
		id := change.ChangeID
		return func() tea.Msg {
			report, err := backend.Duplicate(id)
			return actionDoneMsg{action: ActionDuplicate, report: report, subject: id, err: err}
		}
	case ActionRebasePrompt:
		if !haveChange {
			return nil
		}
		return m.openPrompt(promptRebaseDest, "rebase "+change.ChangeID+" onto", change.ChangeID, "")
	case ActionRebaseBranchPrompt:
		if !haveChange {
			return nil
		}
		return m.openPrompt(promptRebaseBranchDest, "rebase branch "+change.ChangeID+" onto", change.ChangeID, "")
	case ActionEvolog:
		if !haveChange {
			return nil
		}
		return m.loadEvologCmd(change.ChangeID)
	case ActionConflictList:
		if !haveChange {
			return nil
		}
		if !change.Conflict {
			m.setInfo("no conflicts in "+change.ChangeID, "")
			return nil
		}
		return m.loadConflictsCmd(change.ChangeID)
	case ActionPushChange:
		if !haveChange {
			return nil
		}
		return runOutcomeCmd(ActionPushChange, func() (jj.Outcome, error) {
			return backend.PushChange(change.ChangeID)
		})
	case ActionBookmarkSetPrompt:
		if !haveChange {
			return nil
		}
		return m.openPrompt(promptBookmarkSet, "bookmark at "+change.ChangeID, change.ChangeID, "")
	case ActionBookmarkMoveHere:
		if !haveChange {
			return nil
		}
		names := m.bookmarks.LocalNames()
		if len(names) == 0 {
			m.setInfo("no local bookmarks to move", "")
			return nil
		}
		items := make([]dialog.Item, 0, len(names))
		for _, name := range names {
			items = append(items, dialog.Item{Label: name, Value: name})
		}
		m.openSelect("Move bookmark to "+change.ChangeID, "", items,
			bookmarkMoveHereCallback{changeID: change.ChangeID})
		return nil
	}
	return nil
}

func (m *Model) handleStatusAction(action Action) tea.Cmd {
	item, ok := m.lists[ViewStatus].Current()
	if !ok {
		return nil
	}
	switch action {
	case ActionAnnotateFile:
		return m.loadAnnotateCmd(item.ID, m.status.Current().WorkingCopyID)
	case ActionResolveFile:
		if !m.status.HasConflicts() {
			return nil
		}
		return m.execCmd(ActionResolveFile, m.backend.ResolveToolSpec("@", item.ID))
	}
	return nil
}

func (m *Model) handleOpLogAction(action Action) tea.Cmd {
	if action != ActionOpRestore {
		return nil
	}
	item, ok := m.lists[ViewOpLog].Current()
	if !ok {
		return nil
	}
	m.openConfirm("Restore operation", "Restore repository to operation "+item.ID+"?",
		opRestoreCallback{opID: item.ID})
	return nil
}

func (m *Model) handleBookmarkAction(action Action) tea.Cmd {
	if action == ActionBookmarkCreatePrompt {
		return m.openPrompt(promptBookmarkCreate, "new bookmark at @", "@", "")
	}
	item, ok := m.lists[ViewBookmarks].Current()
	if !ok {
		return nil
	}
	bm, found := m.findBookmark(item.ID)
	if !found {
		return nil
	}
	backend := m.backend
	switch action {
	case ActionBookmarkDelete:
		if bm.Remote != "" {
			m.setInfo("delete applies to local bookmarks; use untrack for remotes", "")
			return nil
		}
		m.openConfirm("Delete bookmark",
			"Delete "+bm.Name+"? The remote copy is deleted on the next push.",
			bookmarkDeleteCallback{name: bm.Name})
		return nil
	case ActionBookmarkRenamePrompt:
		if bm.Remote != "" {
			return nil
		}
		return m.openPrompt(promptBookmarkRename, "rename "+bm.Name, bm.Name, bm.Name)
	case ActionBookmarkTrack:
		if bm.Remote == "" || bm.Tracked {
			return nil
		}
		ref := bm.Name + "@" + bm.Remote
		events.Bookmark.Track(ref, true)
		return runCmd(ActionBookmarkTrack, func() (string, error) { return backend.BookmarkTrack(ref) })
	case ActionBookmarkUntrack:
		if bm.Remote == "" || !bm.Tracked {
			return nil
		}
		ref := bm.Name + "@" + bm.Remote
		events.Bookmark.Track(ref, false)
		return runCmd(ActionBookmarkUntrack, func() (string, error) { return backend.BookmarkUntrack(ref) })
	case ActionBookmarkForget:
		if bm.Remote != "" {
			return nil
		}
		m.openConfirm("Forget bookmark",
			"Forget "+bm.Name+" without scheduling remote deletion?",
			bookmarkForgetCallback{name: bm.Name})
		return nil
	case ActionPushBookmark:
		name := bm.Name
		return m.pushDryRunCmd([]string{name})
	}
	return nil
}

func (m *Model) findBookmark(itemID string) (jj.Bookmark, bool) {
	for _, bm := range m.bookmarks.Entries() {
		if bookmarkItemID(bm) == itemID {
			return bm, true
		}
	}
	return jj.Bookmark{}, false
}

// startRedo restores the operation the latest undo reverted. Eligibility
// comes from the already-loaded operation log; when the latest operation
// is not an undo there is nothing to redo.
func (m *Model) startRedo() tea.Cmd {
	target, ok := m.oplog.RedoTarget()
	if !ok {
		m.setInfo("nothing to redo", "")
		return nil
	}
	events.Op.Redo(target)
	backend := m.backend
	return runCmd(ActionRedo, func() (string, error) { return backend.OpRestore(target) })
}

func (m *Model) startPushDialog() tea.Cmd {
	names := m.bookmarks.LocalNames()
	if len(names) == 0 {
		m.setInfo("no local bookmarks to push", "")
		return nil
	}
	items := make([]dialog.Item, 0, len(names))
	for _, name := range names {
		items = append(items, dialog.Item{Label: name, Value: name})
	}
	m.openSelect("Push bookmarks", "", items, pushSelectCallback{})
	return nil
}

// handleSnapshotMsg routes a completed refresh into the stores and
// rebuilds the affected list.
func (m *Model) handleSnapshotMsg(msg tea.Msg) tea.Cmd {
	sm := msg.(snapshotMsg)
	m.loading = false
	if sm.event.Err != nil {
		m.setError(sm.event.Err)
		return nil
	}
	res := m.routes.Handle(sm.event)
	switch {
	case res.RevisionsUpdated:
		m.lists[ViewLog].UpdateItems(logItems(m.revisions.Entries()))
	case res.StatusUpdated:
		m.lists[ViewStatus].UpdateItems(statusItems(m.status.Files()))
	case res.OpLogUpdated:
		m.lists[ViewOpLog].UpdateItems(opLogItems(m.oplog.Entries()))
	case res.BookmarksUpdated:
		m.lists[ViewBookmarks].UpdateItems(bookmarkItems(m.bookmarks.Entries()))
	}
	if res.RevisionsUpdated || res.BookmarksUpdated {
		return m.schedulePreview()
	}
	return nil
}

// handleActionDoneMsg finishes a mutation: surface the report, merge the
// dirty bits, then refresh only the active view.
func (m *Model) handleActionDoneMsg(msg tea.Msg) tea.Cmd {
	am := msg.(actionDoneMsg)
	if am.err != nil {
		return m.handleActionError(am)
	}
	if m.verbose || am.note != "" {
		m.setInfo(am.report, am.note)
	}
	if am.action == ActionDuplicate {
		if created, ok := jj.ParseDuplicate(am.report); ok {
			events.Revision.Duplicate(am.subject, created)
			m.setInfo("duplicated as "+created, am.note)
		}
	}
	m.markDirty(am.action)
	return m.refreshIfDirty()
}

// handleActionError maps dialog-worthy failures onto their follow-up
// workflow; everything else lands in the error slot.
func (m *Model) handleActionError(am actionDoneMsg) tea.Cmd {
	switch jj.ClassifyFailure(am.err) {
	case jj.FailureBookmarkExists:
		if (am.action == ActionBookmarkSetPrompt || am.action == ActionBookmarkCreatePrompt) && am.subject != "" {
			// The name is taken; offer to repoint it instead.
			target := "@"
			if change, ok := m.selectedChange(); ok && am.action == ActionBookmarkSetPrompt {
				target = change.ChangeID
			}
			m.openConfirm("Bookmark exists",
				"Bookmark "+am.subject+" already exists. Move it to "+target+"?",
				bookmarkMoveCallback{name: am.subject, changeID: target})
			return nil
		}
	case jj.FailureImmutableCommit:
		m.errMsg = "target commit is immutable"
		return nil
	}
	m.setError(am.err)
	return nil
}

func (m *Model) handleExecDoneMsg(msg tea.Msg) tea.Cmd {
	em := msg.(execDoneMsg)
	if em.err != nil {
		m.setError(em.err)
	}
	m.markDirty(em.action)
	return m.refreshIfDirty()
}
