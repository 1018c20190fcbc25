package ui

import (
	"github.com/jjconsole/jjconsole/internal/data/dispatcher"
	"github.com/jjconsole/jjconsole/internal/jj"
)

type snapshotMsg struct {
	event dispatcher.Event
}

type previewMsg struct {
	changeID string
	format   jj.DiffFormat
	content  jj.DiffContent
	err      error
}

// specialPreviewMsg carries preview content that bypasses the cache:
// evolog and per-file annotations, which are explicit requests rather
// than selection-driven lookups.
type specialPreviewMsg struct {
	title string
	lines []string
	err   error
}

type previewTickMsg struct{}

type pushPreviewMsg struct {
	names   []string
	raw     string
	preview jj.PushPreview
	err     error
}

type bulkPushDoneMsg struct {
	names    []string
	allowNew bool
	result   jj.BulkResult
}

type actionDoneMsg struct {
	action Action
	report string
	note   string
	// subject is the id or name the action applied to, for follow-up
	// workflows that need it back (duplicate, bookmark-exists).
	subject string
	err     error
}

type execDoneMsg struct {
	action Action
	err    error
}
