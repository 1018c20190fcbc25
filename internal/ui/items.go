package ui

import (
	"fmt"
	"strings"

	"github.com/jjconsole/jjconsole/internal/format/table"
	"github.com/jjconsole/jjconsole/internal/jj"
	"github.com/jjconsole/jjconsole/internal/ui/list"
)

// Item builders turn store snapshots into plain-text rows. Styling is
// applied at render time; these labels are what filtering matches.

func logItems(changes []jj.Change) []list.Item {
	items := make([]list.Item, 0, len(changes))
	for _, c := range changes {
		if c.GraphOnly {
			items = append(items, list.Item{Label: c.GraphPrefix})
			continue
		}
		var b strings.Builder
		b.WriteString(c.GraphPrefix)
		b.WriteString(c.ChangeID)
		b.WriteString(" ")
		b.WriteString(c.Author)
		b.WriteString(" ")
		b.WriteString(c.Timestamp)
		if len(c.Bookmarks) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(c.Bookmarks, " "))
		}
		if c.Conflict {
			b.WriteString(" conflict")
		}
		b.WriteString(" ")
		if c.Description == "" {
			b.WriteString("(no description set)")
		} else {
			b.WriteString(c.Description)
		}
		if c.Empty {
			b.WriteString(" (empty)")
		}
		items = append(items, list.Item{ID: c.ChangeID, Label: b.String()})
	}
	return items
}

func statusItems(files []jj.FileEntry) []list.Item {
	items := make([]list.Item, 0, len(files))
	for _, f := range files {
		label := fmt.Sprintf("%s %s", fileStateLetter(f.State), f.Path)
		if f.State == jj.FileRenamed && f.Origin != "" {
			label = fmt.Sprintf("%s %s ← %s", fileStateLetter(f.State), f.Path, f.Origin)
		}
		items = append(items, list.Item{ID: f.Path, Label: label})
	}
	return items
}

func fileStateLetter(state jj.FileState) string {
	switch state {
	case jj.FileAdded:
		return "A"
	case jj.FileModified:
		return "M"
	case jj.FileDeleted:
		return "D"
	case jj.FileRenamed:
		return "R"
	case jj.FileConflicted:
		return "C"
	default:
		return "?"
	}
}

func opLogItems(ops []jj.Operation) []list.Item {
	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		rows = append(rows, []string{op.ID, op.Time, op.Description})
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft})
	items := make([]list.Item, 0, len(ops))
	for i, op := range ops {
		items = append(items, list.Item{ID: op.ID, Label: labels[i]})
	}
	return items
}

func bookmarkItemID(bm jj.Bookmark) string {
	if bm.Remote == "" {
		return bm.Name
	}
	return bm.Name + "@" + bm.Remote
}

func bookmarkItems(bookmarks []jj.Bookmark) []list.Item {
	rows := make([][]string, 0, len(bookmarks))
	for _, bm := range bookmarks {
		tracked := ""
		if bm.Remote != "" {
			tracked = "untracked"
			if bm.Tracked {
				tracked = "tracked"
			}
		}
		rows = append(rows, []string{bookmarkItemID(bm), tracked, bm.ChangeID, bm.CommitID})
	}
	labels := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignLeft})
	items := make([]list.Item, 0, len(bookmarks))
	for i, bm := range bookmarks {
		items = append(items, list.Item{ID: bookmarkItemID(bm), Label: labels[i]})
	}
	return items
}
