package jj

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogRoundTripsFieldOrder(t *testing.T) {
	line := "@  xrslwzvq\t4ce0287b\tdev@example.com\t2026-03-01 10:15:00\tadd parser\ttrue\tfalse\tmain feature\tfalse"
	changes, err := ParseLog(line + "\n")
	require.NoError(t, err)
	require.Len(t, changes, 1)

	c := changes[0]
	assert.Equal(t, "xrslwzvq", c.ChangeID)
	assert.Equal(t, "4ce0287b", c.CommitID)
	assert.Equal(t, "dev@example.com", c.Author)
	assert.Equal(t, "2026-03-01 10:15:00", c.Timestamp)
	assert.Equal(t, "add parser", c.Description)
	assert.True(t, c.WorkingCopy)
	assert.False(t, c.Empty)
	assert.Equal(t, []string{"main", "feature"}, c.Bookmarks)
	assert.Equal(t, "@  ", c.GraphPrefix)
	assert.False(t, c.Conflict)
}

func TestParseLogGraphPrefixSplitting(t *testing.T) {
	changes, err := ParseLog("○ │ │  abqxyz\tc1\ta\tt\td\tfalse\ttrue\n")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "abqxyz", changes[0].ChangeID)
	assert.Equal(t, "○ │ │  ", changes[0].GraphPrefix)
}

func TestParseLogKeepsConnectorLines(t *testing.T) {
	output := strings.Join([]string{
		"@  aaaa\tc1\ta\tt\tone\ttrue\tfalse",
		"│ ╮",
		"○  bbbb\tc2\ta\tt\ttwo\tfalse\tfalse",
	}, "\n")
	changes, err := ParseLog(output)
	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.False(t, changes[0].GraphOnly)
	assert.True(t, changes[1].GraphOnly)
	assert.Equal(t, "│ ╮", changes[1].GraphPrefix)
	assert.False(t, changes[2].GraphOnly)
}

func TestParseLogNoLowercaseRunBeforeTabFails(t *testing.T) {
	_, err := ParseLog("○ 1234\tc1\ta\tt\td\tfalse\tfalse\n")
	assert.Error(t, err)
}

func TestParseLogShortRecordFailsWholeParse(t *testing.T) {
	output := "@  aaaa\tc1\ta\tt\tone\ttrue\tfalse\n" +
		"○  bbbb\tc2\ta\n"
	_, err := ParseLog(output)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	output := strings.Join([]string{
		"Working copy changes:",
		"A new.go",
		"M internal/jj/runner.go",
		"D old.go",
		"R pkg/{before.go => after.go}",
		"C conflicted.go",
		"Working copy : xrslwzvq 4ce0287b add parser",
		"Parent commit: pqownmvk 77ab12cd base",
	}, "\n")
	st := ParseStatus(output)
	require.Len(t, st.Files, 5)
	assert.Equal(t, FileAdded, st.Files[0].State)
	assert.Equal(t, FileModified, st.Files[1].State)
	assert.Equal(t, FileDeleted, st.Files[2].State)
	assert.Equal(t, FileRenamed, st.Files[3].State)
	assert.Equal(t, "pkg/after.go", st.Files[3].Path)
	assert.Equal(t, "pkg/before.go", st.Files[3].Origin)
	assert.Equal(t, FileConflicted, st.Files[4].State)
	assert.True(t, st.HasConflicts)
	assert.Equal(t, "xrslwzvq", st.WorkingCopyID)
	assert.Equal(t, "pqownmvk", st.ParentID)
}

func TestParseStatusPlainRename(t *testing.T) {
	st := ParseStatus("R before.go => after.go\n")
	require.Len(t, st.Files, 1)
	assert.Equal(t, "after.go", st.Files[0].Path)
	assert.Equal(t, "before.go", st.Files[0].Origin)
}

func TestParseDiffColorWords(t *testing.T) {
	output := strings.Join([]string{
		"Commit ID: 4ce0287b9a1c",
		"Change ID: xrslwzvqtpnm",
		"Author   : Dev One <dev@example.com> (2026-03-01 10:15:00)",
		"",
		"    add parser",
		"",
		"Modified regular file lib.go:",
		"   1    1: package lib",
		"   2     : - old()",
		"        2: + new()",
		"",
		"Added regular file fresh.go:",
		"        1: package fresh",
	}, "\n")
	content := ParseDiffColorWords(output)
	assert.Equal(t, "4ce0287b9a1c", content.CommitID)
	assert.Equal(t, "Dev One <dev@example.com>", content.Author)
	assert.Equal(t, "2026-03-01 10:15:00", content.Timestamp)
	assert.Equal(t, "add parser", content.Description)

	kinds := make([]DiffLineKind, 0, len(content.Lines))
	for _, l := range content.Lines {
		kinds = append(kinds, l.Kind)
	}
	assert.Equal(t, []DiffLineKind{
		DiffFileHeader,
		DiffContext, DiffDeleted, DiffAdded,
		DiffSeparator,
		DiffFileHeader,
		DiffAdded,
	}, kinds)

	ctx := content.Lines[1]
	assert.Equal(t, 1, ctx.OldLine)
	assert.Equal(t, 1, ctx.NewLine)
	del := content.Lines[2]
	assert.Equal(t, 2, del.OldLine)
	assert.Zero(t, del.NewLine)
	add := content.Lines[3]
	assert.Zero(t, add.OldLine)
	assert.Equal(t, 2, add.NewLine)
	assert.Equal(t, DiffAdded, content.Lines[6].Kind)
	assert.Equal(t, "package fresh", content.Lines[6].Content)
}

func TestParseDiffGitIdempotent(t *testing.T) {
	output := strings.Join([]string{
		"diff --git a/lib.go b/lib.go",
		"index 12345..67890 100644",
		"--- a/lib.go",
		"+++ b/lib.go",
		"@@ -1,3 +1,3 @@",
		" package lib",
		"-func old() {}",
		"+func new() {}",
	}, "\n")
	first := ParseDiffGit(output)
	second := ParseDiffGit(ReconstructGitDiff(first))
	require.Equal(t, len(first.Lines), len(second.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].Kind, second.Lines[i].Kind, "line %d", i)
	}
}

func TestParseDiffGitHunkLineNumbers(t *testing.T) {
	output := strings.Join([]string{
		"@@ -10,2 +20,2 @@",
		" ctx",
		"-gone",
		"+here",
	}, "\n")
	content := ParseDiffGit(output)
	require.Len(t, content.Lines, 4)
	assert.Equal(t, 10, content.Lines[1].OldLine)
	assert.Equal(t, 20, content.Lines[1].NewLine)
	assert.Equal(t, 11, content.Lines[2].OldLine)
	assert.Equal(t, 21, content.Lines[3].NewLine)
}

func TestParseDiffStat(t *testing.T) {
	output := strings.Join([]string{
		"lib.go   | 4 ++--",
		"fresh.go | 3 +++",
		"2 files changed, 5 insertions(+), 2 deletions(-)",
	}, "\n")
	content := ParseDiffStat(output)
	require.Len(t, content.Lines, 3)
	assert.Equal(t, DiffContext, content.Lines[0].Kind)
	assert.Equal(t, DiffContext, content.Lines[1].Kind)
	assert.Equal(t, DiffFileHeader, content.Lines[2].Kind)
}

func TestParsePushDryRun(t *testing.T) {
	output := strings.Join([]string{
		"Changes to push to origin:",
		"  Move forward bookmark main from 77ab12cd to 4ce0287b",
		"  Add bookmark feature to 4ce0287b",
		"  Delete bookmark stale from 11223344",
		"Dry-run requested, not pushing.",
	}, "\n")
	preview := ParsePushDryRun(output)
	assert.False(t, preview.NothingChanged)
	assert.False(t, preview.Unrecognized)
	require.Len(t, preview.Actions, 3)
	assert.Equal(t, PushMoveForward, preview.Actions[0].Kind)
	assert.Equal(t, "main", preview.Actions[0].Bookmark)
	assert.Equal(t, "77ab12cd", preview.Actions[0].From)
	assert.Equal(t, "4ce0287b", preview.Actions[0].To)
	assert.Equal(t, PushAdd, preview.Actions[1].Kind)
	assert.Equal(t, "4ce0287b", preview.Actions[1].To)
	assert.Equal(t, PushDelete, preview.Actions[2].Kind)
	assert.Equal(t, "11223344", preview.Actions[2].From)
}

func TestParsePushDryRunNothingChangedShortCircuits(t *testing.T) {
	preview := ParsePushDryRun("Move forward bookmark main from a to b\nNothing changed.\n")
	assert.True(t, preview.NothingChanged)
	assert.Empty(t, preview.Actions)
	assert.False(t, preview.Unrecognized)
}

func TestParsePushDryRunUnrecognizedIsNotNoOp(t *testing.T) {
	preview := ParsePushDryRun("Something entirely novel happened\n")
	assert.True(t, preview.Unrecognized)
	assert.False(t, preview.NothingChanged)
	assert.Empty(t, preview.Actions)
}

func TestParseOpLog(t *testing.T) {
	output := "abc123def456\tundo operation 9f8e7d6c5b4a\t\t2026-03-01 10:20:00\n" +
		"9f8e7d6c5b4a\tnew empty commit\t\t2026-03-01 10:10:00\n" +
		"short\tline\n"
	ops := ParseOpLog(output)
	require.Len(t, ops, 2)
	assert.Equal(t, "abc123def456", ops[0].ID)
	assert.Equal(t, "undo operation 9f8e7d6c5b4a", ops[0].Description)

	target, ok := RedoTarget(ops)
	assert.True(t, ok)
	assert.Equal(t, "9f8e7d6c5b4a", target)

	_, ok = RedoTarget(ops[1:])
	assert.False(t, ok)
}

func TestParseBookmarkList(t *testing.T) {
	output := strings.Join([]string{
		"main\t.\ttracked\txrslwzvq\t4ce0287b",
		"main\torigin\ttracked\txrslwzvq\t4ce0287b",
		"remote-only\torigin\tuntracked\t\t",
	}, "\n")
	bookmarks := ParseBookmarkList(output)
	require.Len(t, bookmarks, 3)
	assert.Equal(t, "", bookmarks[0].Remote)
	assert.Equal(t, "origin", bookmarks[1].Remote)
	assert.True(t, bookmarks[1].Tracked)
	assert.False(t, bookmarks[2].Tracked)
	assert.Empty(t, bookmarks[2].ChangeID)
	assert.Equal(t, []string{"main"}, LocalBookmarkNames(bookmarks))
}

func TestParseResolveListBothLayouts(t *testing.T) {
	files := ParseResolveList("lib.go\t2-sided conflict\nother.go 3-sided conflict including 1 deletion\n")
	require.Len(t, files, 2)
	assert.Equal(t, "lib.go", files[0].Path)
	assert.Equal(t, "2-sided conflict", files[0].Description)
	assert.Equal(t, "other.go", files[1].Path)
}

func TestParseAnnotation(t *testing.T) {
	output := "xrslwzvq\tdev@example.com\t1\tpackage lib\n" +
		"pqownmvk\tother@example.com\t2\tfunc new() {}\n"
	content := ParseAnnotation("lib.go", output)
	require.Len(t, content.Lines, 2)
	assert.Equal(t, "xrslwzvq", content.Lines[0].ChangeID)
	assert.Equal(t, 1, content.Lines[0].LineNum)
	assert.Equal(t, "func new() {}", content.Lines[1].Content)
}

func TestParseEvolog(t *testing.T) {
	output := "@  xrslwzvq\t4ce0287b\tadd parser\t2026-03-01 10:15:00\n" +
		"○  xrslwzvq\t11aa22bb\t(no description set)\t2026-03-01 09:00:00\n"
	entries := ParseEvolog(output)
	require.Len(t, entries, 2)
	assert.Equal(t, "4ce0287b", entries[0].CommitID)
	assert.Equal(t, "11aa22bb", entries[1].CommitID)
}

func TestParseDuplicate(t *testing.T) {
	id, ok := ParseDuplicate("Duplicated abc1234567890 as xyzwqrst def5678901 test description\n")
	assert.True(t, ok)
	assert.Equal(t, "xyzwqrst", id)

	_, ok = ParseDuplicate("Nothing changed.\n")
	assert.False(t, ok)
}
