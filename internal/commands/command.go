// Package commands implements the user-level operations run against the
// session model: person and log maintenance, views, history and export.
package commands

import (
	"context"

	"scrolls/pkg/domain"
)

// Model is the session state commands operate on. core.ModelManager implements it.
type Model interface {
	Datastore() domain.ReadOnlyDatastore
	// MutableDatastore is the live handle. Writes through it skip rule
	// evaluation and are meant for view filters.
	MutableDatastore() domain.Datastore
	RunInTransaction(ctx context.Context, fn func(domain.Datastore) error) (domain.Result, error)
	// CommitDatastore snapshots the committed state for undo/redo.
	CommitDatastore()
	UpdateFilteredPersonList(predicate domain.PersonPredicate)
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	ExportState() domain.Snapshot
	// Restore replaces the live state wholesale. It does not commit.
	Restore(ctx context.Context, snapshot domain.Snapshot) error
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	// ShowLists asks the caller to render the filtered person and log views.
	ShowLists bool
}

// Command is one parsed user instruction.
type Command interface {
	// Word is the canonical command word, used for logging and metrics.
	Word() string
	Execute(ctx context.Context, model Model) (Result, error)
}
