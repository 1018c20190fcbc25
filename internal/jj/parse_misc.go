package jj

import (
	"regexp"
	"strings"
)

// Resolve listings come tab-delimited from newer jj versions and
// space-delimited from older ones; the tab form is tried first.
var resolveSpacedRe = regexp.MustCompile(`^(\S+)\s+(\d+-sided conflict.*)$`)

// ParseResolveList converts a conflict listing into ConflictFile records.
// Unrecognized lines are skipped individually.
func ParseResolveList(output string) []ConflictFile {
	var files []ConflictFile
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			files = append(files, ConflictFile{
				Path:        line[:tab],
				Description: strings.TrimSpace(line[tab+1:]),
			})
			continue
		}
		if m := resolveSpacedRe.FindStringSubmatch(line); m != nil {
			files = append(files, ConflictFile{Path: m[1], Description: m[2]})
		}
	}
	return files
}

// ParseAnnotation converts templated annotate output into an
// AnnotationContent. Each line carries a change id, author, and line
// number prefix produced by our template, followed by jj's own
// "<num>: content" tail. Malformed lines are skipped individually.
func ParseAnnotation(path, output string) AnnotationContent {
	content := AnnotationContent{Path: path}
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) < 4 {
			continue
		}
		entry := AnnotationLine{
			ChangeID: fields[0],
			Author:   fields[1],
			LineNum:  atoiSafe(strings.TrimSpace(fields[2])),
			Content:  strings.TrimSuffix(fields[3], "\r"),
		}
		content.Lines = append(content.Lines, entry)
	}
	return content
}

// ParseEvolog converts templated evolog output into EvologEntry records.
// Graph glyphs may precede the change id; the id is again the trailing
// lowercase run before the first tab. Short lines are skipped.
func ParseEvolog(output string) []EvologEntry {
	var entries []EvologEntry
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		_, changeID, ok := splitGraphPrefix(line[:tab])
		if !ok {
			continue
		}
		fields := strings.Split(line[tab+1:], "\t")
		if len(fields) < 3 {
			continue
		}
		entries = append(entries, EvologEntry{
			ChangeID:    changeID,
			CommitID:    fields[0],
			Description: fields[1],
			Time:        fields[2],
		})
	}
	return entries
}
