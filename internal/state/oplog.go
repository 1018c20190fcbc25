package state

import "github.com/jjconsole/jjconsole/internal/jj"

type OpLogStore interface {
	Entries() []jj.Operation
	SetEntries([]jj.Operation)
	RedoTarget() (string, bool)
}

type opLogStore struct {
	entries []jj.Operation
}

func NewOpLogStore() OpLogStore {
	return &opLogStore{}
}

func (s *opLogStore) Entries() []jj.Operation {
	return cloneOperations(s.entries)
}

func (s *opLogStore) SetEntries(entries []jj.Operation) {
	s.entries = cloneOperations(entries)
}

func (s *opLogStore) RedoTarget() (string, bool) {
	return jj.RedoTarget(s.entries)
}

func cloneOperations(entries []jj.Operation) []jj.Operation {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]jj.Operation, len(entries))
	copy(dup, entries)
	return dup
}
