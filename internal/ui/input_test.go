package ui

import "testing"

func TestActionForKey(t *testing.T) {
	cases := []struct {
		view View
		key  string
		want Action
	}{
		// View-local bindings shadow global ones.
		{ViewLog, "n", ActionNew},
		{ViewBookmarks, "n", ActionBookmarkRenamePrompt},
		{ViewLog, "c", ActionCommitPrompt},
		{ViewBookmarks, "c", ActionBookmarkCreatePrompt},
		{ViewLog, "p", ActionPushChange},
		{ViewBookmarks, "p", ActionPushBookmark},
		{ViewLog, "x", ActionConflictList},
		{ViewStatus, "x", ActionResolveFile},
		{ViewBookmarks, "x", ActionBookmarkDelete},
		{ViewStatus, "enter", ActionAnnotateFile},
		{ViewOpLog, "enter", ActionOpRestore},

		// Globals reach every view that does not shadow them.
		{ViewStatus, "q", ActionQuit},
		{ViewOpLog, "P", ActionPushBookmarks},
		{ViewBookmarks, "tab", ActionNextView},
		{ViewLog, "u", ActionUndo},
		{ViewStatus, "U", ActionRedo},
		{ViewLog, "ctrl+d", ActionPreviewDown},

		// Unbound keys do nothing.
		{ViewLog, "enter", ActionNone},
		{ViewStatus, "n", ActionNone},
		{ViewLog, "Z", ActionNone},
	}
	for _, tc := range cases {
		if got := actionForKey(tc.view, tc.key); got != tc.want {
			t.Errorf("actionForKey(%s, %q) = %d, want %d", tc.view, tc.key, got, tc.want)
		}
	}
}
