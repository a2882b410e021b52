package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrolls/pkg/config"
	"scrolls/pkg/logging"
)

func memoryConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Driver = "memory"
	cfg.Blob.Driver = "memory"
	return cfg
}

func TestRunSession(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"add r/volunteer n/Amy Lee p/91234567 e/amy@example.com a/Blk 30",
		"add r/befriendee n/Ben Ong p/91234568 e/ben@example.com a/Blk 31",
		"pair 1 1",
		"logadd 1 1 t/Lunch s/2024-03-02 d/2",
		"find amy",
		"export",
		"logdel 1",
		"nonsense",
		"exit",
		"list",
	}, "\n"))
	var out bytes.Buffer

	err := run(context.Background(), memoryConfig(), logging.New(io.Discard, slog.LevelError), in, &out)
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "New person added: Amy Lee")
	assert.Contains(t, got, "Paired: Amy Lee and Ben Ong")
	assert.Contains(t, got, "1 persons listed!")
	assert.Contains(t, got, "Volunteers:\n  1. Amy Lee; Phone: 91234567; Email: amy@example.com; Address: Blk 30; Role: volunteer")
	assert.Contains(t, got, "Befriendees:\n  1. Ben Ong; Phone: 91234568")
	assert.Contains(t, got, "Logs:\n  1. Lunch; Start date: 2024-03-02; Duration: 2")
	assert.Contains(t, got, "Exported 2 persons and 1 logs to exports/")
	assert.Contains(t, got, "Deleted Log: Lunch")
	assert.Contains(t, got, "Unknown command")
	assert.Contains(t, got, "Exiting Scrolls as requested ...")
	assert.NotContains(t, got, "Listed all persons", "input after exit is not read")
}

func TestRunEndsAtEOF(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), memoryConfig(), logging.New(io.Discard, slog.LevelError), strings.NewReader("list"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Listed all persons")
	assert.Contains(t, out.String(), "Volunteers:\n  (none)\nBefriendees:\n  (none)\nLogs:\n  (none)")
}

func TestRunRejectsUnknownDrivers(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "tape"
	err := run(context.Background(), cfg, logging.New(io.Discard, slog.LevelError), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open storage")

	cfg = memoryConfig()
	cfg.Blob.Driver = "tape"
	err = run(context.Background(), cfg, logging.New(io.Discard, slog.LevelError), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open export store")
}

func TestRunImportsAnEarlierExport(t *testing.T) {
	root := t.TempDir()
	cfg := memoryConfig()
	cfg.Blob.Driver = "fs"
	cfg.Blob.FSRoot = root
	logger := logging.New(io.Discard, slog.LevelError)

	first := strings.NewReader(strings.Join([]string{
		"add r/volunteer n/Amy Lee p/91234567 e/amy@example.com a/Blk 30",
		"add r/befriendee n/Ben Ong p/91234568 e/ben@example.com a/Blk 31",
		"pair 1 1",
		"logadd 1 1 t/Lunch s/2024-03-02 d/2",
		"export",
	}, "\n"))
	require.NoError(t, run(context.Background(), cfg, logger, first, io.Discard))

	matches, err := filepath.Glob(filepath.Join(root, "exports", "*.json"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	key := "exports/" + filepath.Base(matches[0])

	second := strings.NewReader(strings.Join([]string{
		"exports",
		"import " + key,
		"undo",
		"list",
	}, "\n"))
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, logger, second, &out))

	got := out.String()
	assert.Contains(t, got, "1 exports listed!\n  1. "+key+" (2 persons, 1 logs)")
	assert.Contains(t, got, "Imported 2 persons and 1 logs from "+key)
	assert.Contains(t, got, "Volunteers:\n  1. Amy Lee; Phone: 91234567")
	assert.Contains(t, got, "Logs:\n  1. Lunch; Start date: 2024-03-02; Duration: 2")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(got), "Volunteers:\n  (none)\nBefriendees:\n  (none)\nLogs:\n  (none)\n>"),
		"undo reverts the import: %s", got)
}
