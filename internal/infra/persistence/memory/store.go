// Package memory provides the in-memory implementation of the person and log
// stores plus the transactional wrapper every persistent backend builds on.
package memory

import (
	"context"
	"sync"

	"scrolls/pkg/domain"
)

// Compile-time contract assertions ensuring memory types adhere to the domain interfaces.
var (
	_ domain.PersistentStore = (*Store)(nil)
	_ domain.Datastore       = (*Datastore)(nil)
	_ domain.RuleView        = (*Datastore)(nil)
)

type (
	// Person aliases domain.Person for in-memory persistence operations.
	Person = domain.Person
	// Log aliases domain.Log.
	Log = domain.Log
	// Change aliases domain.Change captured in transactions.
	Change = domain.Change
	// Result aliases domain.Result summarizing rule evaluation.
	Result = domain.Result
	// RulesEngine aliases domain.RulesEngine used to evaluate rules.
	RulesEngine = domain.RulesEngine
	// Snapshot aliases domain.Snapshot.
	Snapshot = domain.Snapshot
)

// Datastore holds one PersonStore and one LogStore. The stores are held by
// value so that handles returned to callers stay valid across transaction swaps.
type Datastore struct {
	persons PersonStore
	logs    LogStore
}

// NewDatastore returns an empty datastore.
func NewDatastore() *Datastore {
	return &Datastore{
		persons: newPersonStore(),
		logs:    newLogStore(),
	}
}

// PersonStore implements domain.ReadOnlyDatastore.
func (d *Datastore) PersonStore() domain.ReadOnlyPersonStore { return &d.persons }

// LogStore implements domain.ReadOnlyDatastore.
func (d *Datastore) LogStore() domain.ReadOnlyLogStore { return &d.logs }

// MutablePersonStore implements domain.Datastore.
func (d *Datastore) MutablePersonStore() domain.PersonStore { return &d.persons }

// MutableLogStore implements domain.Datastore.
func (d *Datastore) MutableLogStore() domain.LogStore { return &d.logs }

// ListPersons returns every person in insertion order.
func (d *Datastore) ListPersons() []Person { return d.persons.PersonList() }

// ListLogs returns every log in insertion order.
func (d *Datastore) ListLogs() []Log { return d.logs.LogList() }

// FindPerson retrieves a person by ID.
func (d *Datastore) FindPerson(id int) (Person, bool) {
	p, ok := d.persons.byID[id]
	if !ok {
		return Person{}, false
	}
	return p.Clone(), true
}

// FindLog retrieves a log by ID.
func (d *Datastore) FindLog(id int) (Log, bool) {
	l, ok := d.logs.byID[id]
	return l, ok
}

func (d *Datastore) clone() *Datastore {
	return &Datastore{
		persons: d.persons.clone(),
		logs:    d.logs.clone(),
	}
}

func (d *Datastore) setJournal(journal *[]Change) {
	d.persons.journal = journal
	d.logs.journal = journal
}

// ExportState clones the datastore contents for external persistence.
func (d *Datastore) ExportState() Snapshot {
	s := Snapshot{
		Persons:      d.persons.PersonList(),
		Logs:         d.logs.LogList(),
		NextPersonID: d.persons.nextID,
		NextLogID:    d.logs.nextID,
	}
	return s
}

func datastoreFromSnapshot(s Snapshot) *Datastore {
	d := NewDatastore()
	for _, p := range s.Persons {
		d.persons.byID[p.ID] = p.Clone()
		d.persons.order = append(d.persons.order, p.ID)
	}
	for _, l := range s.Logs {
		d.logs.byID[l.ID] = l
		d.logs.order = append(d.logs.order, l.ID)
	}
	d.persons.nextID = s.NextPersonID
	d.logs.nextID = s.NextLogID
	return d
}

// migrateSnapshot repairs snapshots written by older builds or edited by hand:
// dangling references are dropped and the derived aggregates are recomputed.
func migrateSnapshot(snapshot Snapshot) Snapshot {
	snapshot = snapshot.Clone()

	persons := make(map[int]Person, len(snapshot.Persons))
	keptPersons := make([]Person, 0, len(snapshot.Persons))
	maxPersonID := 0
	for _, p := range snapshot.Persons {
		if _, dup := persons[p.ID]; dup || p.ID <= 0 {
			continue
		}
		p.Tags = domain.NormalizeTags(p.Tags)
		persons[p.ID] = p
		keptPersons = append(keptPersons, p)
		if p.ID > maxPersonID {
			maxPersonID = p.ID
		}
	}

	logsByPerson := make(map[int][]Log)
	keptLogs := make([]Log, 0, len(snapshot.Logs))
	seenLogs := make(map[int]struct{}, len(snapshot.Logs))
	maxLogID := 0
	for _, l := range snapshot.Logs {
		if _, dup := seenLogs[l.ID]; dup || l.ID <= 0 {
			continue
		}
		vol, okV := persons[l.VolunteerID]
		bef, okB := persons[l.BefriendeeID]
		if !okV || !okB || vol.Role != domain.RoleVolunteer || bef.Role != domain.RoleBefriendee {
			continue
		}
		seenLogs[l.ID] = struct{}{}
		keptLogs = append(keptLogs, l)
		logsByPerson[l.VolunteerID] = append(logsByPerson[l.VolunteerID], l)
		logsByPerson[l.BefriendeeID] = append(logsByPerson[l.BefriendeeID], l)
		if l.ID > maxLogID {
			maxLogID = l.ID
		}
	}

	for i, p := range keptPersons {
		if p.PairedWithID != nil {
			partner, ok := persons[*p.PairedWithID]
			if !ok || partner.Role == p.Role || partner.PairedWithID == nil || *partner.PairedWithID != p.ID {
				p = p.Unpaired()
			} else {
				p = p.PairedWith(partner)
			}
		}
		total := 0
		for _, l := range logsByPerson[p.ID] {
			total += l.Duration
		}
		var latestID *int
		if latest, ok := domain.LatestLog(logsByPerson[p.ID]); ok {
			id := latest.ID
			latestID = &id
		}
		keptPersons[i] = p.WithAggregates(total, latestID)
	}

	snapshot.Persons = keptPersons
	snapshot.Logs = keptLogs
	if snapshot.NextPersonID <= maxPersonID {
		snapshot.NextPersonID = maxPersonID + 1
	}
	if snapshot.NextLogID <= maxLogID {
		snapshot.NextLogID = maxLogID + 1
	}
	return snapshot
}

// Store provides an in-memory transactional store for the core domain.
type Store struct {
	mu     sync.Mutex
	data   *Datastore
	engine *RulesEngine
}

// NewStore constructs an in-memory store backed by the provided rules engine.
func NewStore(engine *RulesEngine) *Store {
	if engine == nil {
		engine = domain.NewRulesEngine()
	}
	return &Store{
		data:   NewDatastore(),
		engine: engine,
	}
}

// Datastore returns the live datastore. Handles obtained from it remain valid
// after transactions commit.
func (s *Store) Datastore() domain.Datastore { return s.data }

// RulesEngine exposes the currently configured engine.
func (s *Store) RulesEngine() *RulesEngine { return s.engine }

// ExportState clones the current store state for external persistence.
func (s *Store) ExportState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ExportState()
}

// ImportState replaces the store state with the provided snapshot. View
// filters are reset to show everything.
func (s *Store) ImportState(snapshot Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.data = *datastoreFromSnapshot(migrateSnapshot(snapshot))
}

// CommitFunc receives the state a transaction or restore is about to publish.
// An error aborts the swap and the live state stays as it was.
type CommitFunc func(ctx context.Context, snapshot Snapshot) error

// Restore implements domain.PersistentStore.
func (s *Store) Restore(ctx context.Context, snapshot Snapshot) error {
	return s.RestoreWithCommit(ctx, snapshot, nil)
}

// RestoreWithCommit migrates snapshot, hands it to commit and only then makes it live.
func (s *Store) RestoreWithCommit(ctx context.Context, snapshot Snapshot, commit CommitFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := datastoreFromSnapshot(migrateSnapshot(snapshot))
	if commit != nil {
		if err := commit(ctx, next.ExportState()); err != nil {
			return err
		}
	}
	*s.data = *next
	return nil
}

// Verify evaluates the rules engine against the committed state without mutating it.
func (s *Store) Verify(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return Result{}, nil
	}
	return s.engine.Evaluate(ctx, s.data, nil)
}

// Close implements domain.PersistentStore.
func (s *Store) Close() error { return nil }

// RunInTransaction runs fn against a private copy of the datastore. The copy
// replaces the live state only when fn succeeds and no blocking rule fires.
func (s *Store) RunInTransaction(ctx context.Context, fn func(domain.Datastore) error) (Result, error) {
	return s.RunInTransactionWithCommit(ctx, fn, nil)
}

// RunInTransactionWithCommit is RunInTransaction with commit called on the
// pending state before the swap. A commit error discards the transaction.
func (s *Store) RunInTransactionWithCommit(ctx context.Context, fn func(domain.Datastore) error, commit CommitFunc) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changes []Change
	tx := s.data.clone()
	tx.setJournal(&changes)

	if err := fn(tx); err != nil {
		return Result{}, err
	}

	var result Result
	if s.engine != nil {
		res, err := s.engine.Evaluate(ctx, tx, changes)
		if err != nil {
			return Result{}, err
		}
		result = res
		if res.HasBlocking() {
			return res, domain.RuleViolationError{Result: res}
		}
	}

	tx.setJournal(nil)
	if commit != nil {
		if err := commit(ctx, tx.ExportState()); err != nil {
			return result, err
		}
	}
	*s.data = *tx
	return result, nil
}
