package jj

import (
	"regexp"
	"strconv"
	"strings"
)

// The three diff layouts share the header-extraction step; each body gets
// its own line classifier.

// ParseDiffColorWords parses the default line-numbered layout.
func ParseDiffColorWords(output string) DiffContent {
	content, body := parseShowHeader(output)
	op := DiffOpNone
	for _, line := range body {
		if header, headerOp, ok := matchFileHeader(line); ok {
			op = headerOp
			content.Lines = append(content.Lines, DiffLine{Kind: DiffFileHeader, Content: header})
			continue
		}
		if strings.TrimSpace(line) == "" {
			content.Lines = append(content.Lines, DiffLine{Kind: DiffSeparator})
			continue
		}
		content.Lines = append(content.Lines, classifyColorWordsLine(line, op))
	}
	return content
}

// fileHeaderOps is the fixed table of phrases announcing a per-file
// section in color-words output.
var fileHeaderOps = []struct {
	prefix string
	op     DiffOp
}{
	{"Added regular file ", DiffOpAdded},
	{"Added executable file ", DiffOpAdded},
	{"Added symlink ", DiffOpAdded},
	{"Copied regular file ", DiffOpAdded},
	{"Modified regular file ", DiffOpModified},
	{"Modified executable file ", DiffOpModified},
	{"Renamed regular file ", DiffOpModified},
	{"Created conflict in ", DiffOpModified},
	{"Resolved conflict in ", DiffOpModified},
	{"Deleted regular file ", DiffOpDeleted},
	{"Deleted executable file ", DiffOpDeleted},
	{"Deleted symlink ", DiffOpDeleted},
}

func matchFileHeader(line string) (string, DiffOp, bool) {
	for _, entry := range fileHeaderOps {
		if strings.HasPrefix(line, entry.prefix) {
			return line, entry.op, true
		}
	}
	return "", DiffOpNone, false
}

// classifyColorWordsLine splits a content line at the first colon into a
// line-number field and the content. The number field holds zero, one, or
// two integers; when only one is present its padding side says which
// column it belongs to (right-aligned at the colon means new, trailing
// padding means old). An explicit "+ "/"- " content prefix wins; otherwise
// the kind follows from which numbers exist, with the current file
// operation as the fallback for unnumbered lines.
func classifyColorWordsLine(line string, op DiffOp) DiffLine {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return DiffLine{Kind: fallbackKind(op), Content: line}
	}
	numField := line[:colon]
	text := line[colon+1:]
	text = strings.TrimPrefix(text, " ")

	var oldLine, newLine int
	nums := strings.Fields(numField)
	switch len(nums) {
	case 2:
		oldLine = atoiSafe(nums[0])
		newLine = atoiSafe(nums[1])
	case 1:
		n := atoiSafe(nums[0])
		if strings.TrimRight(numField, " ") == numField {
			newLine = n
		} else {
			oldLine = n
		}
	case 0:
		// fall through with no numbers
	default:
		return DiffLine{Kind: fallbackKind(op), Content: line}
	}

	dl := DiffLine{OldLine: oldLine, NewLine: newLine}
	switch {
	case strings.HasPrefix(text, "+ "):
		dl.Kind = DiffAdded
		dl.Content = text[2:]
	case strings.HasPrefix(text, "- "):
		dl.Kind = DiffDeleted
		dl.Content = text[2:]
	case oldLine > 0 && newLine > 0:
		dl.Kind = DiffContext
		dl.Content = text
	case newLine > 0:
		dl.Kind = DiffAdded
		dl.Content = text
	case oldLine > 0:
		dl.Kind = DiffDeleted
		dl.Content = text
	default:
		dl.Kind = fallbackKind(op)
		dl.Content = text
	}
	return dl
}

func fallbackKind(op DiffOp) DiffLineKind {
	switch op {
	case DiffOpAdded:
		return DiffAdded
	case DiffOpDeleted:
		return DiffDeleted
	default:
		return DiffContext
	}
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// gitMetaPrefixes are the non-content lines of git-unified output.
var gitMetaPrefixes = []string{
	"diff --git ",
	"index ",
	"--- ",
	"+++ ",
	"new file mode",
	"deleted file mode",
	"old mode",
	"new mode",
	"rename from",
	"rename to",
	"copy from",
	"copy to",
	"similarity index",
	"Binary files",
}

// ParseDiffGit parses the git-unified layout, tracking hunk counters so
// every content line carries its old/new line numbers.
func ParseDiffGit(output string) DiffContent {
	content, body := parseShowHeader(output)
	oldNext, newNext := 0, 0
	for _, line := range body {
		if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
			oldNext = atoiSafe(m[1])
			newNext = atoiSafe(m[2])
			content.Lines = append(content.Lines, DiffLine{Kind: DiffSeparator, Content: line})
			continue
		}
		if isGitMetaLine(line) {
			content.Lines = append(content.Lines, DiffLine{Kind: DiffFileHeader, Content: line})
			continue
		}
		switch {
		case strings.HasPrefix(line, "+"):
			content.Lines = append(content.Lines, DiffLine{Kind: DiffAdded, Content: line[1:], NewLine: newNext})
			newNext++
		case strings.HasPrefix(line, "-"):
			content.Lines = append(content.Lines, DiffLine{Kind: DiffDeleted, Content: line[1:], OldLine: oldNext})
			oldNext++
		default:
			text := strings.TrimPrefix(line, " ")
			content.Lines = append(content.Lines, DiffLine{Kind: DiffContext, Content: text, OldLine: oldNext, NewLine: newNext})
			oldNext++
			newNext++
		}
	}
	return content
}

func isGitMetaLine(line string) bool {
	for _, prefix := range gitMetaPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// ReconstructGitDiff renders a parsed git-unified body back to text.
// Re-parsing the result classifies every line the same way, which the
// tests rely on.
func ReconstructGitDiff(content DiffContent) string {
	var b strings.Builder
	for _, line := range content.Lines {
		switch line.Kind {
		case DiffFileHeader, DiffSeparator:
			b.WriteString(line.Content)
		case DiffAdded:
			b.WriteString("+" + line.Content)
		case DiffDeleted:
			b.WriteString("-" + line.Content)
		default:
			b.WriteString(" " + line.Content)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseDiffStat parses the stat-summary layout: per-file bar lines plus a
// trailing totals line.
func ParseDiffStat(output string) DiffContent {
	content, body := parseShowHeader(output)
	for _, line := range body {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			content.Lines = append(content.Lines, DiffLine{Kind: DiffSeparator})
		case strings.Contains(line, " | "):
			content.Lines = append(content.Lines, DiffLine{Kind: DiffContext, Content: line})
		case strings.Contains(trimmed, "file changed") || strings.Contains(trimmed, "files changed"):
			content.Lines = append(content.Lines, DiffLine{Kind: DiffFileHeader, Content: trimmed})
		default:
			content.Lines = append(content.Lines, DiffLine{Kind: DiffContext, Content: line})
		}
	}
	return content
}

// parseShowHeader extracts the metadata block shared by all three layouts:
// commit id, author (with the parenthesized timestamp), and the indented
// description lines. The block ends at the first non-indented, non-empty
// line that is not a recognized field, which starts the body.
func parseShowHeader(output string) (DiffContent, []string) {
	var content DiffContent
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	var desc []string
	i := 0
loop:
	for ; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "Commit ID:"):
			content.CommitID = strings.TrimSpace(line[len("Commit ID:"):])
		case strings.HasPrefix(line, "Change ID:"):
			// shown but not needed; the caller already knows it
		case strings.HasPrefix(line, "Author"):
			author, ts := splitAuthorTimestamp(line)
			content.Author = author
			content.Timestamp = ts
		case strings.HasPrefix(line, "Committer"):
			// committer repeats the author fields
		case strings.HasPrefix(line, "    "):
			desc = append(desc, strings.TrimSpace(line))
		case strings.TrimSpace(line) == "":
			// blank lines separate header, description, and body
		default:
			break loop
		}
	}
	content.Description = strings.Join(desc, "\n")
	if i >= len(lines) {
		return content, nil
	}
	return content, lines[i:]
}

func splitAuthorTimestamp(line string) (string, string) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", ""
	}
	rest := strings.TrimSpace(line[idx+1:])
	open := strings.LastIndexByte(rest, '(')
	if open < 0 || !strings.HasSuffix(rest, ")") {
		return rest, ""
	}
	return strings.TrimSpace(rest[:open]), rest[open+1 : len(rest)-1]
}

// FormatName names a diff layout for display.
func (f DiffFormat) String() string {
	switch f {
	case DiffGit:
		return "git"
	case DiffStat:
		return "stat"
	default:
		return "color-words"
	}
}
