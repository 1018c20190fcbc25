package jj

import "strings"

// ParseBookmarkList converts templated bookmark output into Bookmark
// records. The change id columns are empty for remote-only bookmarks
// whose target is absent or conflicted; that is legitimate, not an error.
// Short lines are skipped individually.
func ParseBookmarkList(output string) []Bookmark {
	var bookmarks []Bookmark
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		bm := Bookmark{
			Name:    fields[0],
			Tracked: fields[2] == "tracked",
		}
		if fields[1] != "." {
			bm.Remote = fields[1]
		}
		if len(fields) > 3 {
			bm.ChangeID = fields[3]
		}
		if len(fields) > 4 {
			bm.CommitID = fields[4]
		}
		bookmarks = append(bookmarks, bm)
	}
	return bookmarks
}

// LocalBookmarkNames filters the list down to local names, preserving
// order and dropping duplicates introduced by remote rows.
func LocalBookmarkNames(bookmarks []Bookmark) []string {
	seen := make(map[string]struct{}, len(bookmarks))
	var names []string
	for _, bm := range bookmarks {
		if bm.Remote != "" {
			continue
		}
		if _, ok := seen[bm.Name]; ok {
			continue
		}
		seen[bm.Name] = struct{}{}
		names = append(names, bm.Name)
	}
	return names
}
