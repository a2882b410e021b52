package core

import (
	"errors"
	"sync"

	"scrolls/pkg/domain"
)

// ErrNothingToUndo is returned by History.Undo at the oldest recorded state.
var ErrNothingToUndo = errors.New("no more commands to undo")

// ErrNothingToRedo is returned by History.Redo at the newest recorded state.
var ErrNothingToRedo = errors.New("no more commands to redo")

// CommitListener is notified with the committed state after every successful mutating command.
type CommitListener interface {
	Committed(snapshot domain.Snapshot)
}

// History is a linear stack of committed snapshots with a cursor. Committing
// after an undo discards the redo branch. A positive limit bounds how many
// undo steps are retained.
type History struct {
	mu     sync.Mutex
	states []domain.Snapshot
	cursor int
	limit  int
}

// NewHistory starts a history at initial.
func NewHistory(initial domain.Snapshot, limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{states: []domain.Snapshot{initial.Clone()}, limit: limit}
}

// Committed implements CommitListener.
func (h *History) Committed(snapshot domain.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states = append(h.states[:h.cursor+1], snapshot.Clone())
	h.cursor++
	if h.limit > 0 && len(h.states) > h.limit+1 {
		drop := len(h.states) - (h.limit + 1)
		h.states = append([]domain.Snapshot(nil), h.states[drop:]...)
		h.cursor -= drop
	}
}

// CanUndo reports whether an earlier state exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor > 0
}

// CanRedo reports whether an undone state exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor < len(h.states)-1
}

// Undo moves the cursor back and returns the state to restore.
func (h *History) Undo() (domain.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor == 0 {
		return domain.Snapshot{}, ErrNothingToUndo
	}
	h.cursor--
	return h.states[h.cursor].Clone(), nil
}

// Redo moves the cursor forward and returns the state to restore.
func (h *History) Redo() (domain.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor >= len(h.states)-1 {
		return domain.Snapshot{}, ErrNothingToRedo
	}
	h.cursor++
	return h.states[h.cursor].Clone(), nil
}

// Len returns the number of retained states including the current one.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.states)
}
