package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"scrolls/internal/blob"
)

const ExportCommandWord = "export"

const (
	MessageExportSuccess = "Exported %d persons and %d logs to %s"
	MessageExportError   = "Unable to export: "
	exportPrefix         = "exports/"
	exportTimeLayout     = "20060102T150405Z"
	exportContentType    = "application/json"
)

// Export writes the committed state as JSON to Store under a fresh key.
type Export struct {
	Store blob.Store
	// Now and NewID default to time.Now and uuid.New.
	Now   func() time.Time
	NewID func() uuid.UUID
}

func (c Export) Word() string { return ExportCommandWord }

func (c Export) Execute(ctx context.Context, model Model) (Result, error) {
	if c.Store == nil {
		return Result{}, fail(MessageExportError, errNoExportStore)
	}
	snapshot := model.ExportState()
	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return Result{}, fail(MessageExportError, err)
	}
	key := c.key()
	info, err := c.Store.Put(ctx, key, bytes.NewReader(payload), blob.PutOptions{
		ContentType: exportContentType,
		Metadata: map[string]string{
			"persons": strconv.Itoa(len(snapshot.Persons)),
			"logs":    strconv.Itoa(len(snapshot.Logs)),
		},
	})
	if err != nil {
		return Result{}, fail(MessageExportError, err)
	}
	return Result{Feedback: fmt.Sprintf(MessageExportSuccess, len(snapshot.Persons), len(snapshot.Logs), info.Key)}, nil
}

func (c Export) key() string {
	now, newID := time.Now, uuid.New
	if c.Now != nil {
		now = c.Now
	}
	if c.NewID != nil {
		newID = c.NewID
	}
	return fmt.Sprintf("%s%s-%s.json", exportPrefix, now().UTC().Format(exportTimeLayout), newID())
}
