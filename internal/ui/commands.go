package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/data/dispatcher"
	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
)

func (m *Model) loadCmdForView(view View) tea.Cmd {
	switch view {
	case ViewLog:
		return m.loadRevisionsCmd(m.revisions.Revset())
	case ViewStatus:
		return m.loadStatusCmd()
	case ViewOpLog:
		return m.loadOpLogCmd()
	case ViewBookmarks:
		return m.loadBookmarksCmd()
	default:
		return nil
	}
}

func (m *Model) loadRevisionsCmd(revset string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.Log(revset, logLimit)
		if err != nil {
			return snapshotMsg{dispatcher.Event{Kind: dispatcher.KindRevisions, Err: err}}
		}
		changes, err := jj.ParseLog(out)
		if err != nil {
			return snapshotMsg{dispatcher.Event{Kind: dispatcher.KindRevisions, Err: err}}
		}
		events.Revision.Loaded(revset, len(changes))
		return snapshotMsg{dispatcher.Event{
			Kind: dispatcher.KindRevisions,
			Data: jj.RevisionSnapshot{Revset: revset, Changes: changes},
		}}
	}
}

func (m *Model) loadStatusCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.Status()
		if err != nil {
			return snapshotMsg{dispatcher.Event{Kind: dispatcher.KindStatus, Err: err}}
		}
		return snapshotMsg{dispatcher.Event{
			Kind: dispatcher.KindStatus,
			Data: jj.StatusSnapshot{Status: jj.ParseStatus(out)},
		}}
	}
}

func (m *Model) loadOpLogCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.OpLog(logLimit)
		if err != nil {
			return snapshotMsg{dispatcher.Event{Kind: dispatcher.KindOpLog, Err: err}}
		}
		ops := jj.ParseOpLog(out)
		events.Op.Loaded(len(ops))
		return snapshotMsg{dispatcher.Event{
			Kind: dispatcher.KindOpLog,
			Data: jj.OpLogSnapshot{Operations: ops},
		}}
	}
}

func (m *Model) loadBookmarksCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.BookmarkList()
		if err != nil {
			return snapshotMsg{dispatcher.Event{Kind: dispatcher.KindBookmarks, Err: err}}
		}
		bookmarks := jj.ParseBookmarkList(out)
		events.Bookmark.Loaded(len(bookmarks))
		return snapshotMsg{dispatcher.Event{
			Kind: dispatcher.KindBookmarks,
			Data: jj.BookmarkSnapshot{Bookmarks: bookmarks},
		}}
	}
}

func (m *Model) loadPreviewCmd(changeID string, format jj.DiffFormat) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.Show(changeID, format)
		if err != nil {
			return previewMsg{changeID: changeID, format: format, err: err}
		}
		var content jj.DiffContent
		switch format {
		case jj.DiffGit:
			content = jj.ParseDiffGit(out)
		case jj.DiffStat:
			content = jj.ParseDiffStat(out)
		default:
			content = jj.ParseDiffColorWords(out)
		}
		return previewMsg{changeID: changeID, format: format, content: content}
	}
}

func (m *Model) loadEvologCmd(changeID string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.Evolog(changeID)
		if err != nil {
			return specialPreviewMsg{err: err}
		}
		entries := jj.ParseEvolog(out)
		lines := make([]string, 0, len(entries))
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%s  %s  %s", e.CommitID, e.Time, e.Description))
		}
		return specialPreviewMsg{title: "evolog " + changeID, lines: lines}
	}
}

func (m *Model) loadConflictsCmd(changeID string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.ResolveList(changeID)
		if err != nil {
			return specialPreviewMsg{err: err}
		}
		files := jj.ParseResolveList(out)
		lines := make([]string, 0, len(files))
		for _, f := range files {
			lines = append(lines, fmt.Sprintf("%s  %s", f.Path, f.Description))
		}
		if len(lines) == 0 {
			lines = append(lines, "no unresolved conflicts")
		}
		return specialPreviewMsg{title: "conflicts " + changeID, lines: lines}
	}
}

func (m *Model) loadAnnotateCmd(path, changeID string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.Annotate(path, changeID)
		if err != nil {
			return specialPreviewMsg{err: err}
		}
		content := jj.ParseAnnotation(path, out)
		lines := make([]string, 0, len(content.Lines))
		for _, l := range content.Lines {
			lines = append(lines, fmt.Sprintf("%s %-20s %4d│ %s", l.ChangeID, l.Author, l.LineNum, l.Content))
		}
		return specialPreviewMsg{title: "annotate " + path, lines: lines}
	}
}

func (m *Model) pushDryRunCmd(names []string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		out, err := backend.PushDryRun(names)
		if err != nil {
			return pushPreviewMsg{names: names, err: err}
		}
		preview := jj.ParsePushDryRun(out)
		events.Bookmark.PushPreview(names, len(preview.Actions), preview.NothingChanged)
		return pushPreviewMsg{names: names, raw: out, preview: preview}
	}
}

func (m *Model) bulkPushCmd(names []string, allowNew bool) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		events.Bookmark.Push(names, allowNew)
		return bulkPushDoneMsg{
			names:    names,
			allowNew: allowNew,
			result:   backend.PushBookmarks(names, allowNew),
		}
	}
}

// runCmd wraps a plain feedback-returning mutation.
func runCmd(action Action, fn func() (string, error)) tea.Cmd {
	return func() tea.Msg {
		report, err := fn()
		return actionDoneMsg{action: action, report: report, err: err}
	}
}

// runOutcomeCmd wraps mutations that may fall back and annotate.
func runOutcomeCmd(action Action, fn func() (jj.Outcome, error)) tea.Cmd {
	return func() tea.Msg {
		outcome, err := fn()
		return actionDoneMsg{action: action, report: outcome.Output, note: outcome.FallbackNote, err: err}
	}
}

// execCmd hands the terminal to an interactive jj invocation. ExecProcess
// restores the TUI on every exit path, including a panicking child.
func (m *Model) execCmd(action Action, spec jj.ExecSpec) tea.Cmd {
	events.App.ExecHandoff(spec.Args)
	return tea.ExecProcess(spec.Command(m.backend.RepoPath()), func(err error) tea.Msg {
		return execDoneMsg{action: action, err: err}
	})
}
