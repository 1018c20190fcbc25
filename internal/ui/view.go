package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/jjconsole/jjconsole/internal/jj"
)

const (
	minPreviewWidth = 40
	headerRows      = 1
	footerRows      = 2
)

// View renders the whole frame: header, active list, preview pane, and
// the footer slots. Pure over the model; no Executor or Parser calls.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	height := m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	bodyHeight := height - headerRows - footerRows
	if m.filtering || m.prompt != nil {
		bodyHeight--
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n")

	if m.dlg != nil {
		b.WriteString(lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, m.dlg.View(0)))
	} else {
		b.WriteString(m.renderBody(width, bodyHeight))
	}
	b.WriteString("\n")

	if m.prompt != nil {
		b.WriteString(m.renderPrompt(width))
		b.WriteString("\n")
	} else if m.filtering {
		b.WriteString(m.renderFilter(width))
		b.WriteString("\n")
	}

	b.WriteString(m.renderMessages(width))
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter(width))
	}
	return b.String()
}

func (m *Model) renderHeader(width int) string {
	var parts []string
	for v := View(0); v < viewCount; v++ {
		label := fmt.Sprintf("%d:%s", int(v)+1, v.String())
		if v == m.view {
			parts = append(parts, styles.SelectedItem.Render(label))
		} else {
			parts = append(parts, styles.Header.Render(label))
		}
	}
	left := strings.Join(parts, "  ")
	right := ""
	if revset := m.revisions.Revset(); revset != "" {
		right = styles.Header.Render("revset: " + revset)
	}
	if m.loading {
		right = styles.Loading.Render("loading…") + " " + right
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate.String(left, uint(width))
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderBody(width, height int) string {
	listWidth := width
	previewWidth := 0
	if width >= minPreviewWidth*2 {
		previewWidth = width / 2
		listWidth = width - previewWidth - 1
	}
	left := m.renderList(listWidth, height)
	if previewWidth == 0 {
		return left
	}
	right := m.renderPreview(previewWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *Model) renderList(width, height int) string {
	l := m.activeList()
	l.EnsureVisible(height)
	visible := l.Visible(height)
	lines := make([]string, 0, height)
	for i, item := range visible {
		index := l.ViewportOffset + i
		lines = append(lines, m.renderRow(item.ID, item.Label, index == l.Cursor, width))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) renderRow(id, label string, selected bool, width int) string {
	text := truncate.StringWithTail(label, uint(width), "…")
	if selected {
		return styles.SelectedItem.Render(text)
	}
	if id == "" {
		return styles.GraphPrefix.Render(text)
	}
	if m.view == ViewLog {
		if change, ok := m.revisions.Find(id); ok {
			switch {
			case change.Conflict:
				return styles.Conflict.Render(text)
			case change.WorkingCopy:
				return styles.WorkingCopy.Render(text)
			case change.Empty:
				return styles.EmptyChange.Render(text)
			}
		}
	}
	return styles.Item.Render(text)
}

func (m *Model) renderPreview(width, height int) string {
	lines := m.previewLines(width)
	if len(lines) == 0 {
		return lipgloss.NewStyle().Width(width).Render("")
	}
	offset := m.preview.scroll
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + height
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[offset:end]
	padded := make([]string, 0, height)
	padded = append(padded, window...)
	for len(padded) < height {
		padded = append(padded, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(padded, "\n"))
}

// previewLines renders the preview content to styled lines: the special
// evolog/annotate overlay when set, otherwise the cached diff.
func (m *Model) previewLines(width int) []string {
	if sp := m.preview.special; sp != nil {
		lines := make([]string, 0, len(sp.lines)+1)
		lines = append(lines, styles.PreviewTitle.Render(truncate.String(sp.title, uint(width))))
		for _, line := range sp.lines {
			lines = append(lines, styles.PreviewBody.Render(truncate.String(line, uint(width))))
		}
		return lines
	}
	entry, ok := m.currentPreview()
	if !ok {
		return nil
	}
	if entry.err != nil {
		return []string{styles.PreviewError.Render(truncate.String(formatError(entry.err), uint(width)))}
	}
	content := entry.content
	lines := make([]string, 0, len(content.Lines)+3)
	title := content.CommitID
	if len(entry.bookmarks) > 0 {
		title += "  " + strings.Join(entry.bookmarks, " ")
	}
	lines = append(lines, styles.PreviewTitle.Render(truncate.String(title, uint(width))))
	if content.Description != "" {
		lines = append(lines, styles.PreviewBody.Render(truncate.String(content.Description, uint(width))))
	}
	lines = append(lines, "")
	for _, dl := range content.Lines {
		lines = append(lines, renderDiffLine(dl, width))
	}
	return lines
}

func renderDiffLine(dl jj.DiffLine, width int) string {
	var numbers string
	switch {
	case dl.OldLine > 0 && dl.NewLine > 0:
		numbers = fmt.Sprintf("%4d %4d ", dl.OldLine, dl.NewLine)
	case dl.OldLine > 0:
		numbers = fmt.Sprintf("%4d      ", dl.OldLine)
	case dl.NewLine > 0:
		numbers = fmt.Sprintf("     %4d ", dl.NewLine)
	}
	text := truncate.String(dl.Content, uint(max(width-len(numbers), 1)))
	switch dl.Kind {
	case jj.DiffFileHeader:
		return styles.DiffFileHeader.Render(truncate.String(dl.Content, uint(width)))
	case jj.DiffSeparator:
		return styles.GraphPrefix.Render(truncate.String(dl.Content, uint(width)))
	case jj.DiffAdded:
		return styles.DiffLineNumber.Render(numbers) + styles.DiffAdded.Render(text)
	case jj.DiffDeleted:
		return styles.DiffLineNumber.Render(numbers) + styles.DiffDeleted.Render(text)
	default:
		return styles.DiffLineNumber.Render(numbers) + styles.DiffContext.Render(text)
	}
}

func (m *Model) renderFilter(width int) string {
	l := m.activeList()
	line := styles.FilterPrompt.Render("/ ") + styles.Filter.Render(l.Filter)
	return truncate.String(line, uint(width))
}

func (m *Model) renderPrompt(width int) string {
	p := m.prompt
	line := styles.FilterPrompt.Render(p.title+": ") + p.input.View()
	return truncate.String(line, uint(width))
}

func (m *Model) renderMessages(width int) string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render(truncate.StringWithTail(m.errMsg, uint(width), "…"))
	case m.infoMsg != "":
		return styles.Info.Render(truncate.StringWithTail(m.infoMsg, uint(width), "…"))
	default:
		return ""
	}
}

func (m *Model) renderFooter(width int) string {
	hints := footerHints[m.view]
	return styles.Footer.Render(truncate.String(hints, uint(width)))
}

var footerHints = map[View]string{
	ViewLog:       "n:new e:edit a:abandon m:describe c:commit s:squash R:rebase p:push b:bookmark u:undo /:filter q:quit",
	ViewStatus:    "enter:annotate x:resolve u:undo /:filter q:quit",
	ViewOpLog:     "enter:restore u:undo U:redo q:quit",
	ViewBookmarks: "c:create x:delete n:rename t:track T:untrack p:push P:push-all q:quit",
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
