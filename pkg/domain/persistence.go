package domain

import "context"

// ReadOnlyPersonStore exposes person views without mutation.
type ReadOnlyPersonStore interface {
	PersonList() []Person
	FilteredPersonList() []Person
	FilteredVolunteerList() []Person
	FilteredBefriendeeList() []Person
	PersonByID(id int) (Person, error)
	HasPerson(p Person) bool
}

// PersonStore owns the person collection. It is a storage manager only:
// pairing policy is enforced by callers.
type PersonStore interface {
	ReadOnlyPersonStore
	AddPerson(p Person) Person
	SetPerson(target, edited Person) error
	DeletePerson(p Person) error
	UpdateFilteredPersonList(predicate PersonPredicate)
	UpdateFilteredVolunteerList(predicate PersonPredicate)
	UpdateFilteredBefriendeeList(predicate PersonPredicate)
}

// ReadOnlyLogStore exposes log views without mutation.
type ReadOnlyLogStore interface {
	LogList() []Log
	FilteredLogList() []Log
	LogByID(id int) (Log, error)
	LogsOf(personID int) []Log
	FilterPersonID() (int, bool)
}

// LogStore owns the log collection. Removing a log never touches person aggregates.
type LogStore interface {
	ReadOnlyLogStore
	AddLog(l Log) Log
	RemoveLog(id int) error
	UpdateFilteredLogList(predicate LogPredicate)
	UpdateFilteredLogListByPersonID(id *int)
}

// ReadOnlyDatastore groups the read-only store handles.
type ReadOnlyDatastore interface {
	PersonStore() ReadOnlyPersonStore
	LogStore() ReadOnlyLogStore
}

// Datastore groups the mutable store handles handed to commands.
type Datastore interface {
	ReadOnlyDatastore
	MutablePersonStore() PersonStore
	MutableLogStore() LogStore
}

// Snapshot is the persisted form of a datastore. View filters are not part of it.
type Snapshot struct {
	Persons      []Person `json:"persons"`
	Logs         []Log    `json:"logs"`
	NextPersonID int      `json:"next_person_id"`
	NextLogID    int      `json:"next_log_id"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	cp := Snapshot{NextPersonID: s.NextPersonID, NextLogID: s.NextLogID}
	if s.Persons != nil {
		cp.Persons = make([]Person, len(s.Persons))
		for i, p := range s.Persons {
			cp.Persons[i] = p.Clone()
		}
	}
	if s.Logs != nil {
		cp.Logs = append([]Log(nil), s.Logs...)
	}
	return cp
}

// PersistentStore is a minimal abstraction over durable backends. Every
// backend keeps the working state in memory and differs only in where the
// snapshot goes after a successful transaction.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Datastore) error) (Result, error)
	Datastore() Datastore
	ExportState() Snapshot
	Restore(ctx context.Context, snapshot Snapshot) error
	Verify(ctx context.Context) (Result, error)
	Close() error
}
