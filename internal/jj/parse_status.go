package jj

import (
	"regexp"
	"strings"
)

// Rename syntax changed across jj versions; both matchers are tried in
// order on every R line.
var (
	renameBraceRe = regexp.MustCompile(`^R (.*)\{(.*) => (.*)\}(.*)$`)
	renamePlainRe = regexp.MustCompile(`^R (.+) => (.+)$`)
)

// ParseStatus converts `jj status` output into a Status record. Lines it
// does not recognize are skipped individually; the summary is best-effort
// by design.
func ParseStatus(output string) Status {
	var st Status
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "A "):
			st.Files = append(st.Files, FileEntry{Path: line[2:], State: FileAdded})
		case strings.HasPrefix(line, "M "):
			st.Files = append(st.Files, FileEntry{Path: line[2:], State: FileModified})
		case strings.HasPrefix(line, "D "):
			st.Files = append(st.Files, FileEntry{Path: line[2:], State: FileDeleted})
		case strings.HasPrefix(line, "C "):
			st.Files = append(st.Files, FileEntry{Path: line[2:], State: FileConflicted})
			st.HasConflicts = true
		case strings.HasPrefix(line, "R "):
			if entry, ok := parseRename(line); ok {
				st.Files = append(st.Files, entry)
			}
		case strings.HasPrefix(line, "Working copy"):
			st.WorkingCopyID = firstChangeID(line)
		case strings.HasPrefix(line, "Parent commit"):
			if st.ParentID == "" {
				st.ParentID = firstChangeID(line)
			}
		case strings.Contains(line, "unresolved conflict"):
			st.HasConflicts = true
		}
	}
	return st
}

func parseRename(line string) (FileEntry, bool) {
	if m := renameBraceRe.FindStringSubmatch(line); m != nil {
		origin := m[1] + strings.TrimSpace(m[2]) + m[4]
		path := m[1] + strings.TrimSpace(m[3]) + m[4]
		return FileEntry{Path: path, Origin: origin, State: FileRenamed}, true
	}
	if m := renamePlainRe.FindStringSubmatch(line); m != nil {
		return FileEntry{
			Path:   strings.TrimSpace(m[2]),
			Origin: strings.TrimSpace(m[1]),
			State:  FileRenamed,
		}, true
	}
	return FileEntry{}, false
}

// firstChangeID pulls the first lowercase-run token after the colon of a
// "Working copy : zxqlmnop 4ce0287b ..." line. Both the spaced and
// unspaced colon spellings occur in the wild.
func firstChangeID(line string) string {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return ""
	}
	for _, token := range strings.Fields(line[idx+1:]) {
		if isLowercaseRun(token) {
			return token
		}
	}
	return ""
}
