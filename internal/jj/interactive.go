package jj

import "os/exec"

// ExecSpec describes an interactive jj invocation that needs the real
// terminal: editors and merge tools. The caller hands the command to the
// event loop, which suspends the TUI, runs it with inherited standard
// streams, and restores the terminal on every exit path.
type ExecSpec struct {
	Args []string
}

// Command materializes the spec. Color stays enabled here: the child owns
// the terminal and no parser ever sees its output.
func (s ExecSpec) Command(repoPath string) *exec.Cmd {
	args := make([]string, 0, len(s.Args)+2)
	if repoPath != "" {
		args = append(args, "--repository", repoPath)
	}
	args = append(args, s.Args...)
	return exec.Command("jj", args...)
}

// DescribeEditorSpec opens the configured editor on a change description.
func (r *Runner) DescribeEditorSpec(changeID string) ExecSpec {
	return ExecSpec{Args: []string{"describe", "--revision", changeID}}
}

// ResolveToolSpec opens the configured merge tool on a conflicted file.
func (r *Runner) ResolveToolSpec(changeID, path string) ExecSpec {
	args := []string{"resolve", "--revision", changeID}
	if path != "" {
		args = append(args, path)
	}
	return ExecSpec{Args: args}
}

// DiffEditSpec opens the diff editor on a change's content.
func (r *Runner) DiffEditSpec(changeID string) ExecSpec {
	return ExecSpec{Args: []string{"diffedit", "--revision", changeID}}
}

// SquashInteractiveSpec opens the diff editor to pick hunks to squash.
func (r *Runner) SquashInteractiveSpec(changeID string) ExecSpec {
	return ExecSpec{Args: []string{"squash", "--revision", changeID, "--interactive"}}
}

// RepoPath exposes the repository override for spec materialization.
func (r *Runner) RepoPath() string {
	return r.repoPath
}
