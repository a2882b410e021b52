package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"scrolls/internal/blob"
	"scrolls/pkg/domain"
)

const (
	ExportsCommandWord      = "exports"
	ImportCommandWord       = "import"
	ExportDeleteCommandWord = "exportdel"
)

const (
	MessageExportsListed     = "%d exports listed!"
	MessageExportsError      = "Unable to list exports: "
	MessageImportSuccess     = "Imported %d persons and %d logs from %s"
	MessageImportError       = "Unable to import: "
	MessageExportDeleted     = "Deleted export: %s"
	MessageExportDeleteError = "Unable to delete export: "
)

var errNoExportStore = errors.New("no export store configured")

// Exports lists the exported snapshots, oldest first.
type Exports struct {
	Store blob.Store
}

func (Exports) Word() string { return ExportsCommandWord }

func (c Exports) Execute(ctx context.Context, _ Model) (Result, error) {
	if c.Store == nil {
		return Result{}, fail(MessageExportsError, errNoExportStore)
	}
	infos, err := c.Store.List(ctx, exportPrefix)
	if err != nil {
		return Result{}, fail(MessageExportsError, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, MessageExportsListed, len(infos))
	for i, info := range infos {
		fmt.Fprintf(&b, "\n  %d. %s", Index(i).OneBased(), info.Key)
		if persons, ok := info.Metadata["persons"]; ok {
			fmt.Fprintf(&b, " (%s persons, %s logs)", persons, info.Metadata["logs"])
		}
	}
	return Result{Feedback: b.String()}, nil
}

// Import replaces the records with the snapshot exported under Key. The
// import is one undoable change.
type Import struct {
	Store blob.Store
	Key   string
}

func (Import) Word() string { return ImportCommandWord }

func (c Import) Execute(ctx context.Context, model Model) (Result, error) {
	if c.Store == nil {
		return Result{}, fail(MessageImportError, errNoExportStore)
	}
	info, err := c.Store.Head(ctx, c.Key)
	if err != nil {
		return Result{}, fail(MessageImportError, err)
	}
	if info.ContentType != "" && info.ContentType != exportContentType {
		return Result{}, fail(MessageImportError, fmt.Errorf("%s is %s, not %s", c.Key, info.ContentType, exportContentType))
	}
	_, rc, err := c.Store.Get(ctx, c.Key)
	if err != nil {
		return Result{}, fail(MessageImportError, err)
	}
	defer func() { _ = rc.Close() }()

	var snapshot domain.Snapshot
	dec := json.NewDecoder(rc)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snapshot); err != nil {
		return Result{}, fail(MessageImportError, fmt.Errorf("decode %s: %w", c.Key, err))
	}
	if err := model.Restore(ctx, snapshot); err != nil {
		return Result{}, fail(MessageImportError, err)
	}
	model.CommitDatastore()
	state := model.ExportState()
	return Result{
		Feedback:  fmt.Sprintf(MessageImportSuccess, len(state.Persons), len(state.Logs), c.Key),
		ShowLists: true,
	}, nil
}

// ExportDelete removes the export stored under Key.
type ExportDelete struct {
	Store blob.Store
	Key   string
}

func (ExportDelete) Word() string { return ExportDeleteCommandWord }

func (c ExportDelete) Execute(ctx context.Context, _ Model) (Result, error) {
	if c.Store == nil {
		return Result{}, fail(MessageExportDeleteError, errNoExportStore)
	}
	ok, err := c.Store.Delete(ctx, c.Key)
	if err != nil {
		return Result{}, fail(MessageExportDeleteError, err)
	}
	if !ok {
		return Result{}, fail(MessageExportDeleteError, fmt.Errorf("no export named %s", c.Key))
	}
	return Result{Feedback: fmt.Sprintf(MessageExportDeleted, c.Key)}, nil
}
