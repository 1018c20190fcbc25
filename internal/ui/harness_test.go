package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
)

// stubBackend scripts repository responses so model behavior can be
// exercised without a jj binary.
type stubBackend struct {
	logOut      string
	statusOut   string
	opLogOut    string
	bookmarkOut string
	showOut     string
	resolveOut  string
	dryRunOut   string
	bulk        jj.BulkResult
	err         error

	lastRevset    string
	logCalls      int
	statusCalls   int
	opLogCalls    int
	bookmarkCalls int
	showCalls     int
	resolveCalls  int
	mutations     []string
}

func (s *stubBackend) Log(revset string, limit int) (string, error) {
	s.logCalls++
	s.lastRevset = revset
	return s.logOut, s.err
}

func (s *stubBackend) Status() (string, error) {
	s.statusCalls++
	return s.statusOut, s.err
}

func (s *stubBackend) Show(changeID string, format jj.DiffFormat) (string, error) {
	s.showCalls++
	return s.showOut, s.err
}

func (s *stubBackend) OpLog(limit int) (string, error) {
	s.opLogCalls++
	return s.opLogOut, s.err
}

func (s *stubBackend) BookmarkList() (string, error) {
	s.bookmarkCalls++
	return s.bookmarkOut, s.err
}

func (s *stubBackend) ResolveList(changeID string) (string, error) {
	s.resolveCalls++
	return s.resolveOut, s.err
}
func (s *stubBackend) Annotate(path, changeID string) (string, error) {
	return "", s.err
}
func (s *stubBackend) Evolog(changeID string) (string, error) { return "", s.err }
func (s *stubBackend) PushDryRun(bookmarks []string) (string, error) {
	return s.dryRunOut, s.err
}

func (s *stubBackend) mutate(name string) (string, error) {
	s.mutations = append(s.mutations, name)
	return name + " done", s.err
}

func (s *stubBackend) New(parents ...string) (string, error)      { return s.mutate("new") }
func (s *stubBackend) Edit(changeID string) (string, error)       { return s.mutate("edit") }
func (s *stubBackend) Abandon(changeID string) (string, error)    { return s.mutate("abandon") }
func (s *stubBackend) Describe(c, msg string) (string, error)     { return s.mutate("describe") }
func (s *stubBackend) CommitWorkingCopy(msg string) (string, error) {
	return s.mutate("commit")
}
func (s *stubBackend) Squash(from, into string) (string, error) { return s.mutate("squash") }
func (s *stubBackend) Absorb(changeID string) (string, error)   { return s.mutate("absorb") }
func (s *stubBackend) Undo() (string, error)                    { return s.mutate("undo") }
func (s *stubBackend) OpRestore(opID string) (string, error)    { return s.mutate("restore " + opID) }
func (s *stubBackend) Duplicate(changeID string) (string, error) {
	return s.mutate("duplicate")
}
func (s *stubBackend) GitFetch() (string, error) { return s.mutate("fetch") }
func (s *stubBackend) Rebase(source, destination string, mode jj.RebaseMode) (jj.Outcome, error) {
	out, err := s.mutate("rebase")
	return jj.Outcome{Output: out}, err
}
func (s *stubBackend) BookmarkCreate(name, changeID string) (string, error) {
	return s.mutate("bookmark create " + name)
}
func (s *stubBackend) BookmarkMove(name, changeID string) (string, error) {
	return s.mutate("bookmark move " + name)
}
func (s *stubBackend) BookmarkDelete(name string) (string, error) {
	return s.mutate("bookmark delete " + name)
}
func (s *stubBackend) BookmarkRename(oldName, newName string) (string, error) {
	return s.mutate("bookmark rename")
}
func (s *stubBackend) BookmarkTrack(ref string) (string, error)   { return s.mutate("track") }
func (s *stubBackend) BookmarkUntrack(ref string) (string, error) { return s.mutate("untrack") }
func (s *stubBackend) BookmarkForget(name string) (string, error) { return s.mutate("forget") }
func (s *stubBackend) PushChange(changeID string) (jj.Outcome, error) {
	out, err := s.mutate("push change")
	return jj.Outcome{Output: out}, err
}
func (s *stubBackend) PushBookmarks(names []string, allowNew bool) jj.BulkResult {
	s.mutations = append(s.mutations, "push bookmarks")
	return s.bulk
}
func (s *stubBackend) DescribeEditorSpec(changeID string) jj.ExecSpec {
	return jj.ExecSpec{Args: []string{"describe"}}
}
func (s *stubBackend) ResolveToolSpec(changeID, path string) jj.ExecSpec {
	return jj.ExecSpec{Args: []string{"resolve"}}
}
func (s *stubBackend) DiffEditSpec(changeID string) jj.ExecSpec {
	return jj.ExecSpec{Args: []string{"diffedit"}}
}
func (s *stubBackend) SquashInteractiveSpec(changeID string) jj.ExecSpec {
	return jj.ExecSpec{Args: []string{"squash"}}
}
func (s *stubBackend) RepoPath() string { return "" }

const stubLogOut = "@  aaaa\tc100\tdev@example.com\t2026-03-01 10:00:00\ttop change\ttrue\tfalse\n" +
	"○  bbbb\tc200\tdev@example.com\t2026-03-01 09:00:00\tsecond change\tfalse\tfalse\tmain\n"

func newTestModel(t *testing.T) (*Model, *stubBackend) {
	t.Helper()
	backend := &stubBackend{
		logOut:      stubLogOut,
		statusOut:   "M lib.go\nWorking copy : aaaa c100 top change\n",
		opLogOut:    "op1\tnew empty commit\t\t2026-03-01 10:00:00\n",
		bookmarkOut: "main\t.\ttracked\tbbbb\tc200\n",
	}
	m := NewModel(backend, "", 100, 30, true, true)
	drain(t, m, m.Init())
	return m, backend
}

// drain synchronously executes a command tree, feeding every produced
// message back into the model, skipping timers.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			drain(t, m, sub)
		}
		return
	}
	_, next := m.Update(msg)
	drain(t, m, next)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
