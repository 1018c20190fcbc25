package jj

import (
	"fmt"
	"strings"
)

// ParseError is a structured failure from any of the parsers.
type ParseError struct {
	What string
	Line string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("parse %s: malformed output", e.What)
	}
	return fmt.Sprintf("parse %s: malformed line %q", e.What, e.Line)
}

// Log lines after templating look like
//
//	<graph-glyphs><change-id>\t<commit-id>\t<author>\t<timestamp>\t<desc>\t<wc>\t<empty>[\t<bookmarks>[\t<conflict>]]
//
// where the change id is the maximal run of lowercase ASCII letters ending
// exactly at the first tab. Lines with no tab are graph connector lines
// and are kept so DAG rendering stays aligned with real entries.
const minLogFields = 6

// ParseLog converts templated log output into Change records. Unlike the
// lenient per-line parsers, a single short change record fails the whole
// call: change data is not safe to partially trust.
func ParseLog(output string) ([]Change, error) {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	changes := make([]Change, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			changes = append(changes, Change{GraphPrefix: line, GraphOnly: true})
			continue
		}
		prefix, changeID, ok := splitGraphPrefix(line[:tab])
		if !ok {
			return nil, &ParseError{What: "log", Line: line}
		}
		fields := strings.Split(line[tab+1:], "\t")
		if len(fields) < minLogFields {
			return nil, &ParseError{What: "log", Line: line}
		}
		change := Change{
			ChangeID:    changeID,
			CommitID:    fields[0],
			Author:      fields[1],
			Timestamp:   fields[2],
			Description: fields[3],
			WorkingCopy: fields[4] == "true",
			Empty:       fields[5] == "true",
			GraphPrefix: prefix,
		}
		if len(fields) > 6 {
			change.Bookmarks = splitBookmarks(fields[6])
		}
		if len(fields) > 7 {
			change.Conflict = fields[7] == "true"
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// splitGraphPrefix scans backward from the end of head, collecting the
// trailing run of lowercase ASCII letters; the run is the change id and
// whatever precedes it is the graph prefix. A missing run means the line
// carries no change id at all.
func splitGraphPrefix(head string) (prefix, changeID string, ok bool) {
	end := len(head)
	start := end
	for start > 0 {
		c := head[start-1]
		if c < 'a' || c > 'z' {
			break
		}
		start--
	}
	if start == end {
		return "", "", false
	}
	return head[:start], head[start:end], true
}

func splitBookmarks(field string) []string {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return nil
	}
	return strings.Fields(trimmed)
}

// ParseDuplicate extracts the new change id from a duplicate report such
// as "Duplicated abc1234567890 as xyzwqrst def5678901 test description".
func ParseDuplicate(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Duplicated ") {
			continue
		}
		marker := " as "
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		rest := strings.Fields(line[idx+len(marker):])
		if len(rest) == 0 {
			continue
		}
		if !isLowercaseRun(rest[0]) {
			continue
		}
		return rest[0], true
	}
	return "", false
}

func isLowercaseRun(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
