package core

import (
	"context"

	"scrolls/internal/infra/persistence/memory"
	"scrolls/pkg/domain"
)

// ModelManager is the session model handed to commands. It owns the
// persistent store, forwards committed state to listeners and drives undo/redo.
type ModelManager struct {
	store     domain.PersistentStore
	history   *History
	listeners []CommitListener
	logger    Logger
}

// ModelOption configures a ModelManager.
type ModelOption func(*ModelManager)

// WithLogger sets the logger used for rule warnings and history moves.
func WithLogger(logger Logger) ModelOption {
	return func(m *ModelManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHistoryLimit bounds the undo history. Zero keeps every state.
func WithHistoryLimit(limit int) ModelOption {
	return func(m *ModelManager) {
		m.history = NewHistory(m.store.ExportState(), limit)
	}
}

// WithCommitListener registers an additional listener notified on every commit.
func WithCommitListener(listener CommitListener) ModelOption {
	return func(m *ModelManager) {
		m.listeners = append(m.listeners, listener)
	}
}

// NewModelManager wraps store. The current store state becomes the oldest undo point.
func NewModelManager(store domain.PersistentStore, opts ...ModelOption) *ModelManager {
	m := &ModelManager{store: store, logger: NoopLogger{}}
	for _, opt := range opts {
		opt(m)
	}
	if m.history == nil {
		m.history = NewHistory(store.ExportState(), 0)
	}
	return m
}

// Store returns the underlying persistent store.
func (m *ModelManager) Store() domain.PersistentStore { return m.store }

// History returns the undo/redo history.
func (m *ModelManager) History() *History { return m.history }

// Datastore returns a read-only view of the live state.
func (m *ModelManager) Datastore() domain.ReadOnlyDatastore { return m.store.Datastore() }

// MutableDatastore returns the live datastore. Changes made through it bypass
// rule evaluation and are meant for view state such as filters.
func (m *ModelManager) MutableDatastore() domain.Datastore { return m.store.Datastore() }

// UpdateFilteredPersonList replaces the combined person view filter.
func (m *ModelManager) UpdateFilteredPersonList(predicate domain.PersonPredicate) {
	m.store.Datastore().MutablePersonStore().UpdateFilteredPersonList(predicate)
}

// RunInTransaction applies fn atomically. Non-blocking violations are logged.
func (m *ModelManager) RunInTransaction(ctx context.Context, fn func(domain.Datastore) error) (domain.Result, error) {
	res, err := m.store.RunInTransaction(ctx, fn)
	for _, v := range res.Violations {
		switch v.Severity {
		case domain.SeverityBlock:
			m.logger.Error("rule violation", "rule", v.Rule, "entity", v.Entity, "id", v.EntityID, "message", v.Message)
		case domain.SeverityWarn:
			m.logger.Warn("rule warning", "rule", v.Rule, "entity", v.Entity, "id", v.EntityID, "message", v.Message)
		default:
			m.logger.Debug("rule note", "rule", v.Rule, "message", v.Message)
		}
	}
	return res, err
}

// CommitDatastore snapshots the committed state and notifies every listener.
func (m *ModelManager) CommitDatastore() {
	snapshot := m.store.ExportState()
	m.history.Committed(snapshot)
	for _, l := range m.listeners {
		l.Committed(snapshot)
	}
}

// ExportState returns a copy of the committed state.
func (m *ModelManager) ExportState() domain.Snapshot { return m.store.ExportState() }

// Restore replaces the live state with snapshot after checking it against the
// default rules on a staging copy. A snapshot breaking a blocking rule is
// refused with a domain.RuleViolationError and the live state is untouched.
// The caller commits a successful restore.
func (m *ModelManager) Restore(ctx context.Context, snapshot domain.Snapshot) error {
	staging := memory.NewStore(NewDefaultRulesEngine())
	staging.ImportState(snapshot)
	res, err := staging.Verify(ctx)
	if err != nil {
		return err
	}
	if res.HasBlocking() {
		return domain.RuleViolationError{Result: res}
	}
	next := staging.ExportState()
	if err := m.store.Restore(ctx, next); err != nil {
		return err
	}
	m.logger.Info("state restored", "persons", len(next.Persons), "logs", len(next.Logs))
	return nil
}

// CanUndo reports whether Undo would succeed.
func (m *ModelManager) CanUndo() bool { return m.history.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (m *ModelManager) CanRedo() bool { return m.history.CanRedo() }

// Undo restores the previous committed state.
func (m *ModelManager) Undo(ctx context.Context) error {
	snapshot, err := m.history.Undo()
	if err != nil {
		return err
	}
	if err := m.store.Restore(ctx, snapshot); err != nil {
		_, _ = m.history.Redo()
		return err
	}
	m.logger.Debug("undo", "persons", len(snapshot.Persons), "logs", len(snapshot.Logs))
	return nil
}

// Redo re-applies the most recently undone state.
func (m *ModelManager) Redo(ctx context.Context) error {
	snapshot, err := m.history.Redo()
	if err != nil {
		return err
	}
	if err := m.store.Restore(ctx, snapshot); err != nil {
		_, _ = m.history.Undo()
		return err
	}
	m.logger.Debug("redo", "persons", len(snapshot.Persons), "logs", len(snapshot.Logs))
	return nil
}
