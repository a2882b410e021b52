// Package blob is the only entry point to the export blob backends.
package blob

import (
	"context"
	"fmt"

	"scrolls/internal/blob/core"
	"scrolls/internal/infra/blob/fs"
	"scrolls/internal/infra/blob/memory"
	"scrolls/internal/infra/blob/s3"
)

type (
	Store      = core.Store
	Driver     = core.Driver
	Info       = core.Info
	PutOptions = core.PutOptions
	S3Config   = s3.Config
)

const (
	DriverFilesystem = core.DriverFilesystem
	DriverS3         = core.DriverS3
	DriverMemory     = core.DriverMemory
)

// ErrExists is returned by Put when the key is already taken.
var ErrExists = core.ErrExists

// Options selects and configures a blob backend.
type Options struct {
	Driver Driver
	FSRoot string
	S3     S3Config
}

// Open returns the backend named by opts.Driver; an empty driver means fs.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", DriverFilesystem:
		st, err := fs.New(opts.FSRoot)
		if err != nil {
			return nil, fmt.Errorf("open fs blob store: %w", err)
		}
		return st, nil
	case DriverS3:
		st, err := s3.New(ctx, opts.S3)
		if err != nil {
			return nil, fmt.Errorf("open s3 blob store: %w", err)
		}
		return st, nil
	case DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", opts.Driver)
	}
}

// NewMemory returns an empty in-memory store.
func NewMemory() Store { return memory.New() }
