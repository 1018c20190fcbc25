package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/logging/events"
)

type promptKind int

const (
	promptDescribe promptKind = iota
	promptCommit
	promptRebaseDest
	promptRebaseBranchDest
	promptBookmarkSet
	promptBookmarkCreate
	promptBookmarkRename
	promptRevset
)

// promptState is a one-line text entry layered over the active view.
// target carries the change id or bookmark name the submission applies to.
type promptState struct {
	kind       promptKind
	title      string
	target     string
	input      textinput.Model
	historyPos int
}

func (m *Model) openPrompt(kind promptKind, title, target, initial string) tea.Cmd {
	input := textinput.New()
	input.Prompt = "> "
	if styles.FilterPrompt != nil {
		input.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		input.TextStyle = *styles.Filter
	}
	input.SetValue(initial)
	input.CursorEnd()
	m.prompt = &promptState{
		kind:       kind,
		title:      title,
		target:     target,
		input:      input,
		historyPos: len(m.revsetHistory),
	}
	return input.Focus()
}

func (m *Model) handlePromptKey(key tea.KeyMsg) tea.Cmd {
	p := m.prompt
	switch key.String() {
	case "esc", "ctrl+c":
		m.prompt = nil
		return nil
	case "enter":
		value := strings.TrimSpace(p.input.Value())
		m.prompt = nil
		return m.submitPrompt(p, value)
	case "up":
		if p.kind == promptRevset && len(m.revsetHistory) > 0 && p.historyPos > 0 {
			p.historyPos--
			p.input.SetValue(m.revsetHistory[p.historyPos])
			p.input.CursorEnd()
			return nil
		}
	case "down":
		if p.kind == promptRevset && p.historyPos < len(m.revsetHistory) {
			p.historyPos++
			if p.historyPos == len(m.revsetHistory) {
				p.input.SetValue("")
			} else {
				p.input.SetValue(m.revsetHistory[p.historyPos])
				p.input.CursorEnd()
			}
			return nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(key)
	return cmd
}

func (m *Model) submitPrompt(p *promptState, value string) tea.Cmd {
	backend := m.backend
	switch p.kind {
	case promptDescribe:
		if value == "" {
			return nil
		}
		target := p.target
		events.Revision.Describe(target)
		return runCmd(ActionDescribePrompt, func() (string, error) {
			return backend.Describe(target, value)
		})
	case promptCommit:
		if value == "" {
			return nil
		}
		return runCmd(ActionCommitPrompt, func() (string, error) {
			return backend.CommitWorkingCopy(value)
		})
	case promptRebaseDest, promptRebaseBranchDest:
		if value == "" {
			return nil
		}
		source := p.target
		mode := jj.RebaseRevision
		action := ActionRebasePrompt
		if p.kind == promptRebaseBranchDest {
			mode = jj.RebaseBranch
			action = ActionRebaseBranchPrompt
		}
		events.Revision.Rebase(source, value, mode == jj.RebaseBranch)
		return runOutcomeCmd(action, func() (jj.Outcome, error) {
			return backend.Rebase(source, value, mode)
		})
	case promptBookmarkSet, promptBookmarkCreate:
		if value == "" {
			return nil
		}
		target := p.target
		action := ActionBookmarkSetPrompt
		if p.kind == promptBookmarkCreate {
			action = ActionBookmarkCreatePrompt
		}
		events.Bookmark.Create(value, target)
		return func() tea.Msg {
			report, err := backend.BookmarkCreate(value, target)
			return actionDoneMsg{action: action, report: report, subject: value, err: err}
		}
	case promptBookmarkRename:
		if value == "" || value == p.target {
			return nil
		}
		oldName := p.target
		events.Bookmark.Rename(oldName, value)
		return runCmd(ActionBookmarkRenamePrompt, func() (string, error) {
			return backend.BookmarkRename(oldName, value)
		})
	case promptRevset:
		m.pushRevsetHistory(value)
		m.revisions.SetRevset(value)
		m.loading = true
		return m.loadRevisionsCmd(value)
	default:
		return nil
	}
}

func (m *Model) pushRevsetHistory(revset string) {
	if revset == "" {
		return
	}
	for i, existing := range m.revsetHistory {
		if existing == revset {
			m.revsetHistory = append(m.revsetHistory[:i], m.revsetHistory[i+1:]...)
			break
		}
	}
	m.revsetHistory = append(m.revsetHistory, revset)
}
