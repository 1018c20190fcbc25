package jj

// Every data-extraction call pins a versioned template so field positions
// survive cosmetic changes in jj's default output. Fields are tab-separated;
// ParseLog and friends rely on the order below.

const logTemplate = `separate("\t",
change_id.shortest(8),
commit_id.shortest(8),
author.email(),
committer.timestamp().format("%Y-%m-%d %H:%M:%S"),
description.first_line(),
current_working_copy,
empty,
bookmarks.join(" "),
conflict
) ++ "\n"`

const opLogTemplate = `separate("\t",
id.short(12),
description.first_line(),
tags,
time.end().format("%Y-%m-%d %H:%M:%S")
) ++ "\n"`

const bookmarkTemplate = `separate("\t",
name,
if(remote, remote, "."),
if(tracked, "tracked", "untracked"),
if(normal_target, normal_target.change_id().shortest(8), ""),
if(normal_target, normal_target.commit_id().shortest(8), "")
) ++ "\n"`

const evologTemplate = `separate("\t",
change_id.shortest(8),
commit_id.shortest(8),
description.first_line(),
committer.timestamp().format("%Y-%m-%d %H:%M:%S")
) ++ "\n"`

const annotateTemplate = `separate("\t",
commit.change_id().shortest(8),
commit.author().email(),
line_number
) ++ "\t"`

// baseArgs yields the global flags prepended to every invocation. Color is
// disabled because every parser expects plain text, and the pager would
// block a non-interactive run.
func baseArgs(repoPath string) []string {
	args := []string{"--color", "never", "--no-pager"}
	if repoPath != "" {
		args = append(args, "--repository", repoPath)
	}
	return args
}
