package ui

import (
	"errors"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/data/dispatcher"
	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
	"github.com/jjconsole/jjconsole/internal/state"
	"github.com/jjconsole/jjconsole/internal/theme"
	"github.com/jjconsole/jjconsole/internal/ui/dialog"
	"github.com/jjconsole/jjconsole/internal/ui/list"
)

var styles = theme.Default()

const logLimit = 500

type msgHandler func(tea.Msg) tea.Cmd

// Model is the single owner of all orchestration state: dirty flags,
// preview cache, the active dialog slot, and the per-view lists. Only
// the event loop mutates it.
type Model struct {
	backend Backend

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	view  View
	lists [viewCount]*list.List

	revisions state.RevisionStore
	status    state.StatusStore
	oplog     state.OpLogStore
	bookmarks state.BookmarkStore
	routes    *dispatcher.Dispatcher

	dirty   dirty
	loading bool

	preview previewState

	dlg         *dialog.Model
	dlgCallback dialogCallback

	prompt        *promptState
	filtering     bool
	revsetHistory []string

	errMsg  string
	infoMsg string

	quitting bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI with the given backend and launch options.
func NewModel(backend Backend, revset string, width, height int, showFooter, verbose bool) *Model {
	revisions := state.NewRevisionStore()
	revisions.SetRevset(revset)
	status := state.NewStatusStore()
	oplog := state.NewOpLogStore()
	bookmarks := state.NewBookmarkStore()
	m := &Model{
		backend:    backend,
		showFooter: showFooter,
		verbose:    verbose,
		revisions:  revisions,
		status:     status,
		oplog:      oplog,
		bookmarks:  bookmarks,
		routes:     dispatcher.New(revisions, status, oplog, bookmarks),
		dirty:      dirtyAll,
		loading:    true,
	}
	for v := View(0); v < viewCount; v++ {
		m.lists[v] = list.New(nil)
	}
	m.preview.init()
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init loads every view up front so the first paint has data; the dirty
// bits are cleared because nothing is stale after a full load.
func (m *Model) Init() tea.Cmd {
	m.dirty = dirtyNone
	return tea.Batch(
		m.loadCmdForView(ViewLog),
		m.loadCmdForView(ViewStatus),
		m.loadCmdForView(ViewOpLog),
		m.loadCmdForView(ViewBookmarks),
	)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(snapshotMsg{}):       m.handleSnapshotMsg,
		reflect.TypeOf(previewMsg{}):        m.handlePreviewMsg,
		reflect.TypeOf(specialPreviewMsg{}): m.handleSpecialPreviewMsg,
		reflect.TypeOf(previewTickMsg{}):    m.handlePreviewTickMsg,
		reflect.TypeOf(pushPreviewMsg{}):    m.handlePushPreviewMsg,
		reflect.TypeOf(bulkPushDoneMsg{}):   m.handleBulkPushDoneMsg,
		reflect.TypeOf(actionDoneMsg{}):     m.handleActionDoneMsg,
		reflect.TypeOf(execDoneMsg{}):       m.handleExecDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key := msg.(tea.KeyMsg)
	// The message slots show one result each; any key consumes them.
	m.errMsg = ""
	m.infoMsg = ""

	if m.prompt != nil {
		return m.handlePromptKey(key)
	}
	if m.dlg != nil {
		return m.handleDialogKey(key)
	}
	if m.filtering {
		if cmd, handled := m.handleFilterKey(key); handled {
			return cmd
		}
	}
	return m.handleAction(actionForKey(m.view, key.String()), key)
}

func (m *Model) handleFilterKey(key tea.KeyMsg) (tea.Cmd, bool) {
	l := m.activeList()
	switch key.String() {
	case "esc":
		l.ClearFilter()
		m.filtering = false
		return nil, true
	case "enter":
		m.filtering = false
		return nil, true
	case "backspace":
		l.DeleteFilterRuneBackward()
		return m.schedulePreview(), true
	case "up", "down", "ctrl+p", "ctrl+n":
		return nil, false
	}
	if key.Type == tea.KeyRunes || key.Type == tea.KeySpace {
		l.InsertFilterText(string(key.Runes))
		return m.schedulePreview(), true
	}
	return nil, false
}

func (m *Model) activeList() *list.List {
	return m.lists[m.view]
}

func (m *Model) setView(view View) tea.Cmd {
	if view < 0 || view >= viewCount || view == m.view {
		return nil
	}
	m.view = view
	m.filtering = false
	events.App.ViewSwitch(view.String())
	return tea.Batch(m.refreshIfDirty(), m.schedulePreview())
}

func (m *Model) setError(err error) {
	m.errMsg = formatError(err)
}

func (m *Model) setInfo(report, note string) {
	report = strings.TrimSpace(report)
	if note != "" {
		if report == "" {
			report = note
		} else {
			report = report + " " + note
		}
	}
	if report == "" {
		return
	}
	// Multi-line reports collapse into the single-line info slot.
	m.infoMsg = strings.ReplaceAll(report, "\n", " · ")
}

// formatError folds the error taxonomy into one user-facing line.
func formatError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, jj.ErrNotRepository):
		return "no jj repository here (try --repository)"
	case errors.Is(err, jj.ErrToolNotFound):
		return "jj executable not found in PATH"
	}
	var ce *jj.CommandError
	if errors.As(err, &ce) {
		line := ce.Stderr
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		return strings.TrimSpace(line)
	}
	return err.Error()
}
