package state

import "github.com/jjconsole/jjconsole/internal/jj"

type StatusStore interface {
	Current() jj.Status
	Set(jj.Status)
	Files() []jj.FileEntry
	HasConflicts() bool
}

type statusStore struct {
	status jj.Status
}

func NewStatusStore() StatusStore {
	return &statusStore{}
}

func (s *statusStore) Current() jj.Status {
	st := s.status
	st.Files = cloneFileEntries(s.status.Files)
	return st
}

func (s *statusStore) Set(status jj.Status) {
	status.Files = cloneFileEntries(status.Files)
	s.status = status
}

func (s *statusStore) Files() []jj.FileEntry {
	return cloneFileEntries(s.status.Files)
}

func (s *statusStore) HasConflicts() bool {
	return s.status.HasConflicts
}

func cloneFileEntries(entries []jj.FileEntry) []jj.FileEntry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]jj.FileEntry, len(entries))
	copy(dup, entries)
	return dup
}
