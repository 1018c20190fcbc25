package state

import "github.com/jjconsole/jjconsole/internal/jj"

type RevisionStore interface {
	Entries() []jj.Change
	SetEntries([]jj.Change)
	WorkingCopy() string
	Revset() string
	SetRevset(string)
	Find(changeID string) (jj.Change, bool)
}

type revisionStore struct {
	entries     []jj.Change
	workingCopy string
	revset      string
}

func NewRevisionStore() RevisionStore {
	return &revisionStore{}
}

func (s *revisionStore) Entries() []jj.Change {
	return cloneChanges(s.entries)
}

func (s *revisionStore) SetEntries(entries []jj.Change) {
	s.entries = cloneChanges(entries)
	s.workingCopy = ""
	for _, c := range entries {
		if c.WorkingCopy {
			s.workingCopy = c.ChangeID
			break
		}
	}
}

func (s *revisionStore) WorkingCopy() string {
	return s.workingCopy
}

func (s *revisionStore) Revset() string {
	return s.revset
}

func (s *revisionStore) SetRevset(revset string) {
	s.revset = revset
}

func (s *revisionStore) Find(changeID string) (jj.Change, bool) {
	for _, c := range s.entries {
		if c.ChangeID == changeID {
			return c, true
		}
	}
	return jj.Change{}, false
}

func cloneChanges(entries []jj.Change) []jj.Change {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]jj.Change, len(entries))
	copy(dup, entries)
	return dup
}
