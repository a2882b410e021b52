package memory

import (
	"scrolls/pkg/domain"
)

var _ domain.LogStore = (*LogStore)(nil)

// LogStore keeps logs in an id-indexed map plus an insertion-order index.
// The displayed list is narrowed by an optional predicate and an optional
// participant id.
type LogStore struct {
	byID   map[int]Log
	order  []int
	nextID int

	filter   domain.LogPredicate
	personID *int

	journal *[]Change
}

func newLogStore() LogStore {
	return LogStore{byID: make(map[int]Log), nextID: 1}
}

func (s *LogStore) clone() LogStore {
	cp := LogStore{
		byID:   make(map[int]Log, len(s.byID)),
		order:  append([]int(nil), s.order...),
		nextID: s.nextID,
		filter: s.filter,
	}
	if s.personID != nil {
		id := *s.personID
		cp.personID = &id
	}
	for id, l := range s.byID {
		cp.byID[id] = l
	}
	return cp
}

func (s *LogStore) record(action domain.Action, before, after any) {
	if s.journal == nil {
		return
	}
	*s.journal = append(*s.journal, Change{Entity: domain.EntityLog, Action: action, Before: before, After: after})
}

// LogList returns every log in insertion order.
func (s *LogStore) LogList() []Log {
	out := make([]Log, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// FilteredLogList returns the displayed logs.
func (s *LogStore) FilteredLogList() []Log {
	out := make([]Log, 0, len(s.order))
	for _, id := range s.order {
		l := s.byID[id]
		if s.personID != nil && !l.Involves(*s.personID) {
			continue
		}
		if s.filter != nil && !s.filter(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// LogByID performs an exact lookup.
func (s *LogStore) LogByID(id int) (Log, error) {
	l, ok := s.byID[id]
	if !ok {
		return Log{}, domain.ErrNotFound{Entity: domain.EntityLog, ID: id}
	}
	return l, nil
}

// LogsOf returns every log involving personID in insertion order.
func (s *LogStore) LogsOf(personID int) []Log {
	var out []Log
	for _, id := range s.order {
		if l := s.byID[id]; l.Involves(personID) {
			out = append(out, l)
		}
	}
	return out
}

// FilterPersonID reports the participant the displayed list is scoped to.
func (s *LogStore) FilterPersonID() (int, bool) {
	if s.personID == nil {
		return 0, false
	}
	return *s.personID, true
}

// AddLog stores l under the next free id and returns the stored record.
func (s *LogStore) AddLog(l Log) Log {
	l.ID = s.nextID
	s.nextID++
	s.byID[l.ID] = l
	s.order = append(s.order, l.ID)
	s.record(domain.ActionCreate, nil, l)
	return l
}

// RemoveLog deletes the log. Person aggregates are left to the caller.
func (s *LogStore) RemoveLog(id int) error {
	current, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound{Entity: domain.EntityLog, ID: id}
	}
	delete(s.byID, id)
	s.order = removeID(s.order, id)
	s.record(domain.ActionDelete, current, nil)
	return nil
}

// UpdateFilteredLogList replaces the predicate filter. nil shows everything.
func (s *LogStore) UpdateFilteredLogList(predicate domain.LogPredicate) {
	s.filter = predicate
}

// UpdateFilteredLogListByPersonID scopes the list to one participant; nil clears it.
func (s *LogStore) UpdateFilteredLogListByPersonID(id *int) {
	if id == nil {
		s.personID = nil
		return
	}
	v := *id
	s.personID = &v
}
