package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jjconsole/jjconsole/internal/jj"
)

// previewDebounce is how long a selection must rest before its diff is
// fetched. Debounce is by re-validation: the tick only fetches when the
// pending id still matches the selection, so rapid navigation schedules
// many ticks but at most the last one runs a subprocess.
const previewDebounce = 75 * time.Millisecond

type previewEntry struct {
	commitID  string
	content   jj.DiffContent
	bookmarks []string
	err       error
}

// previewState is the staleness-aware cache of show lookups plus the
// deferred-fetch slot. Owned exclusively by the Model.
type previewState struct {
	cache     map[string]previewEntry
	pendingID string
	currentID string
	format    jj.DiffFormat
	special   *specialPreviewMsg
	scroll    int
}

func (p *previewState) init() {
	p.cache = make(map[string]previewEntry)
}

// lookup returns the cached entry when its commit id still matches the
// freshly observed one. A mismatch means history was rewritten under the
// same change id; the entry is dropped so the caller re-fetches.
func (p *previewState) lookup(changeID, commitID string) (previewEntry, bool) {
	entry, ok := p.cache[changeID]
	if !ok {
		return previewEntry{}, false
	}
	if entry.commitID != commitID {
		delete(p.cache, changeID)
		return previewEntry{}, false
	}
	return entry, true
}

func (p *previewState) store(changeID string, entry previewEntry) {
	p.cache[changeID] = entry
}

func (p *previewState) invalidateAll() {
	p.cache = make(map[string]previewEntry)
	p.currentID = ""
	p.pendingID = ""
}

// previewTarget names the change the preview should show for the current
// selection, or "" when the active view has none.
func (m *Model) previewTarget() string {
	switch m.view {
	case ViewLog:
		if item, ok := m.activeList().Current(); ok {
			return item.ID
		}
	case ViewBookmarks:
		if item, ok := m.activeList().Current(); ok {
			for _, bm := range m.bookmarks.Entries() {
				if bookmarkItemID(bm) == item.ID {
					return bm.ChangeID
				}
			}
		}
	}
	return ""
}

// schedulePreview is called on every selection change. Cache hits switch
// the preview instantly; misses set the pending slot and arm the idle
// tick, never fetching synchronously.
func (m *Model) schedulePreview() tea.Cmd {
	m.preview.special = nil
	target := m.previewTarget()
	if target == "" {
		m.preview.currentID = ""
		m.preview.pendingID = ""
		return nil
	}
	change, known := m.revisions.Find(target)
	if known {
		// lookup drops the entry when the commit id moved under the same
		// change id, so a rewrite always falls through to a re-fetch.
		if _, hit := m.preview.lookup(target, change.CommitID); hit {
			if target != m.preview.currentID {
				m.preview.scroll = 0
			}
			m.preview.currentID = target
			m.preview.pendingID = ""
			return nil
		}
	} else if _, ok := m.preview.cache[target]; ok {
		// Bookmark targets outside the loaded revset carry no commit id to
		// validate against; the cached entry stands.
		if target != m.preview.currentID {
			m.preview.scroll = 0
		}
		m.preview.currentID = target
		m.preview.pendingID = ""
		return nil
	}
	m.preview.pendingID = target
	return tea.Tick(previewDebounce, func(time.Time) tea.Msg {
		return previewTickMsg{}
	})
}

func (m *Model) handlePreviewTickMsg(tea.Msg) tea.Cmd {
	pending := m.preview.pendingID
	if pending == "" || pending != m.previewTarget() {
		return nil
	}
	m.preview.pendingID = ""
	return m.loadPreviewCmd(pending, m.preview.format)
}

func (m *Model) handlePreviewMsg(msg tea.Msg) tea.Cmd {
	pm := msg.(previewMsg)
	if pm.format != m.preview.format {
		return nil
	}
	entry := previewEntry{
		commitID: pm.content.CommitID,
		content:  pm.content,
		err:      pm.err,
	}
	if change, ok := m.revisions.Find(pm.changeID); ok {
		entry.bookmarks = change.Bookmarks
		if entry.commitID == "" {
			entry.commitID = change.CommitID
		}
	}
	m.preview.store(pm.changeID, entry)
	if pm.changeID == m.previewTarget() {
		m.preview.currentID = pm.changeID
		m.preview.scroll = 0
	}
	return nil
}

func (m *Model) handleSpecialPreviewMsg(msg tea.Msg) tea.Cmd {
	sp := msg.(specialPreviewMsg)
	if sp.err != nil {
		m.setError(sp.err)
		return nil
	}
	m.preview.special = &sp
	m.preview.scroll = 0
	return nil
}

// cycleDiffFormat switches color-words, git, and stat layouts. Formats
// render differently, so the cache is cleared rather than mixed.
func (m *Model) cycleDiffFormat() tea.Cmd {
	switch m.preview.format {
	case jj.DiffColorWords:
		m.preview.format = jj.DiffGit
	case jj.DiffGit:
		m.preview.format = jj.DiffStat
	default:
		m.preview.format = jj.DiffColorWords
	}
	m.preview.invalidateAll()
	return m.schedulePreview()
}

// currentPreview returns the entry for the shown change, if any.
func (m *Model) currentPreview() (previewEntry, bool) {
	if m.preview.currentID == "" {
		return previewEntry{}, false
	}
	entry, ok := m.preview.cache[m.preview.currentID]
	return entry, ok
}
