package ui

// View names one of the four trackable views.
type View int

const (
	ViewLog View = iota
	ViewStatus
	ViewOpLog
	ViewBookmarks
	viewCount
)

func (v View) String() string {
	switch v {
	case ViewLog:
		return "log"
	case ViewStatus:
		return "status"
	case ViewOpLog:
		return "oplog"
	case ViewBookmarks:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// Action is what a key press means in the active view. Input mapping is a
// pure function; the handlers decide what the action does with the
// current selection.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextView
	ActionPrevView
	ActionShowLog
	ActionShowStatus
	ActionShowOpLog
	ActionShowBookmarks
	ActionRefresh
	ActionStartFilter
	ActionRevsetPrompt
	ActionCursorUp
	ActionCursorDown
	ActionCursorTop
	ActionCursorBottom
	ActionCycleDiffFormat
	ActionPreviewDown
	ActionPreviewUp

	ActionUndo
	ActionRedo
	ActionFetch

	ActionNew
	ActionEdit
	ActionAbandon
	ActionDescribePrompt
	ActionDescribeEditor
	ActionCommitPrompt
	ActionSquash
	ActionSquashInteractive
	ActionDiffEdit
	ActionAbsorb
	ActionDuplicate
	ActionRebasePrompt
	ActionRebaseBranchPrompt
	ActionEvolog
	ActionConflictList
	ActionPushChange
	ActionPushBookmarks
	ActionBookmarkSetPrompt
	ActionBookmarkMoveHere

	ActionAnnotateFile
	ActionResolveFile

	ActionOpRestore

	ActionBookmarkCreatePrompt
	ActionBookmarkDelete
	ActionBookmarkRenamePrompt
	ActionBookmarkTrack
	ActionBookmarkUntrack
	ActionBookmarkForget
	ActionPushBookmark
)

var globalKeys = map[string]Action{
	"q":         ActionQuit,
	"ctrl+c":    ActionQuit,
	"tab":       ActionNextView,
	"shift+tab": ActionPrevView,
	"1":         ActionShowLog,
	"2":         ActionShowStatus,
	"3":         ActionShowOpLog,
	"4":         ActionShowBookmarks,
	"r":         ActionRefresh,
	"/":         ActionStartFilter,
	"up":        ActionCursorUp,
	"k":         ActionCursorUp,
	"down":      ActionCursorDown,
	"j":         ActionCursorDown,
	"g":         ActionCursorTop,
	"G":         ActionCursorBottom,
	"d":         ActionCycleDiffFormat,
	"ctrl+d":    ActionPreviewDown,
	"ctrl+u":    ActionPreviewUp,
	"u":         ActionUndo,
	"U":         ActionRedo,
	"f":         ActionFetch,
	"P":         ActionPushBookmarks,
}

var logKeys = map[string]Action{
	"n": ActionNew,
	"e": ActionEdit,
	"a": ActionAbandon,
	"m": ActionDescribePrompt,
	"D": ActionDescribeEditor,
	"c": ActionCommitPrompt,
	"s": ActionSquash,
	"S": ActionSquashInteractive,
	"E": ActionDiffEdit,
	"A": ActionAbsorb,
	"y": ActionDuplicate,
	"R": ActionRebasePrompt,
	"B": ActionRebaseBranchPrompt,
	"v": ActionEvolog,
	"x": ActionConflictList,
	"p": ActionPushChange,
	"b": ActionBookmarkSetPrompt,
	"M": ActionBookmarkMoveHere,
	"L": ActionRevsetPrompt,
}

var statusKeys = map[string]Action{
	"enter": ActionAnnotateFile,
	"x":     ActionResolveFile,
}

var opLogKeys = map[string]Action{
	"enter": ActionOpRestore,
	"o":     ActionOpRestore,
}

var bookmarkKeys = map[string]Action{
	"c": ActionBookmarkCreatePrompt,
	"x": ActionBookmarkDelete,
	"n": ActionBookmarkRenamePrompt,
	"t": ActionBookmarkTrack,
	"T": ActionBookmarkUntrack,
	"F": ActionBookmarkForget,
	"p": ActionPushBookmark,
}

var viewKeys = map[View]map[string]Action{
	ViewLog:       logKeys,
	ViewStatus:    statusKeys,
	ViewOpLog:     opLogKeys,
	ViewBookmarks: bookmarkKeys,
}

// actionForKey maps a key to an action for the active view. View-local
// bindings shadow global ones.
func actionForKey(view View, key string) Action {
	if keys, ok := viewKeys[view]; ok {
		if action, ok := keys[key]; ok {
			return action
		}
	}
	if action, ok := globalKeys[key]; ok {
		return action
	}
	return ActionNone
}
