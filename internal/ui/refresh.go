package ui

import tea "github.com/charmbracelet/bubbletea"

// dirty is the set of views whose data is stale. Bits persist until the
// view becomes active; only the active view's bit triggers a re-read, so
// a mutation costs at most one subprocess call no matter how many views
// it touched.
type dirty uint8

const (
	dirtyLog dirty = 1 << iota
	dirtyStatus
	dirtyOpLog
	dirtyBookmarks

	dirtyAll  = dirtyLog | dirtyStatus | dirtyOpLog | dirtyBookmarks
	dirtyNone = dirty(0)
)

func viewBit(view View) dirty {
	switch view {
	case ViewLog:
		return dirtyLog
	case ViewStatus:
		return dirtyStatus
	case ViewOpLog:
		return dirtyOpLog
	case ViewBookmarks:
		return dirtyBookmarks
	default:
		return dirtyNone
	}
}

func (d dirty) has(view View) bool {
	return d&viewBit(view) != 0
}

func (d dirty) clear(view View) dirty {
	return d &^ viewBit(view)
}

// dirtyByAction declares which views each mutation invalidates. Undo,
// redo, and operation restore have unknown blast radius and dirty
// everything, which also wipes the preview cache.
var dirtyByAction = map[Action]dirty{
	ActionNew:                dirtyLog | dirtyStatus,
	ActionEdit:               dirtyLog | dirtyStatus,
	ActionAbandon:            dirtyLog | dirtyStatus,
	ActionDescribePrompt:     dirtyLog,
	ActionDescribeEditor:     dirtyLog,
	ActionCommitPrompt:       dirtyLog | dirtyStatus,
	ActionSquash:             dirtyLog | dirtyStatus,
	ActionSquashInteractive:  dirtyLog | dirtyStatus,
	ActionDiffEdit:           dirtyLog | dirtyStatus,
	ActionAbsorb:             dirtyLog | dirtyStatus,
	ActionDuplicate:          dirtyLog,
	ActionRebasePrompt:       dirtyLog | dirtyStatus,
	ActionRebaseBranchPrompt: dirtyLog | dirtyStatus,
	ActionResolveFile:        dirtyLog | dirtyStatus,

	ActionUndo:      dirtyAll,
	ActionRedo:      dirtyAll,
	ActionOpRestore: dirtyAll,

	ActionFetch:                dirtyLog | dirtyBookmarks,
	ActionPushChange:           dirtyLog | dirtyBookmarks,
	ActionPushBookmark:         dirtyBookmarks,
	ActionPushBookmarks:        dirtyBookmarks,
	ActionBookmarkSetPrompt:    dirtyLog | dirtyBookmarks,
	ActionBookmarkMoveHere:     dirtyLog | dirtyBookmarks,
	ActionBookmarkCreatePrompt: dirtyLog | dirtyBookmarks,
	ActionBookmarkDelete:       dirtyLog | dirtyBookmarks,
	ActionBookmarkRenamePrompt: dirtyLog | dirtyBookmarks,
	ActionBookmarkTrack:        dirtyBookmarks,
	ActionBookmarkUntrack:      dirtyBookmarks,
	ActionBookmarkForget:       dirtyLog | dirtyBookmarks,
}

// markDirty merges an action's declared bits, invalidating the preview
// cache when the blast radius is unknown.
func (m *Model) markDirty(action Action) {
	bits, ok := dirtyByAction[action]
	if !ok {
		return
	}
	m.dirty |= bits
	if bits == dirtyAll {
		m.preview.invalidateAll()
	}
}

// refreshIfDirty re-reads the active view's data when its bit is set,
// clearing just that bit. Called after every mutation and every view
// switch; the merge always happens before the re-read.
func (m *Model) refreshIfDirty() tea.Cmd {
	if !m.dirty.has(m.view) {
		return nil
	}
	m.dirty = m.dirty.clear(m.view)
	return m.loadCmdForView(m.view)
}
