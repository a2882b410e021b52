package blob

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"scrolls/internal/infra/blob/s3"
)

func TestOpenDrivers(t *testing.T) {
	ctx := context.Background()
	root := filepath.Join(t.TempDir(), "exports")
	cases := []struct {
		name string
		opts Options
		want Driver
	}{
		{"default is fs", Options{FSRoot: root}, DriverFilesystem},
		{"fs", Options{Driver: DriverFilesystem, FSRoot: root}, DriverFilesystem},
		{"memory", Options{Driver: DriverMemory}, DriverMemory},
		{"s3", Options{Driver: DriverS3, S3: S3Config{Bucket: "exports", Region: "eu-west-1"}}, DriverS3},
	}
	for _, tc := range cases {
		st, err := Open(ctx, tc.opts)
		if err != nil {
			t.Fatalf("%s: open: %v", tc.name, err)
		}
		if st.Driver() != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, st.Driver())
		}
	}
}

func TestOpenErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Open(ctx, Options{Driver: "tape"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
	if _, err := Open(ctx, Options{Driver: DriverS3}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestStoresShareCreateOnlySemantics(t *testing.T) {
	ctx := context.Background()
	fsStore, err := Open(ctx, Options{FSRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("open fs: %v", err)
	}
	for _, st := range []Store{NewMemory(), s3.NewMockForTests(), fsStore} {
		if _, err := st.Put(ctx, "exports/x.json", bytes.NewReader([]byte("{}")), PutOptions{}); err != nil {
			t.Fatalf("%s put: %v", st.Driver(), err)
		}
		if _, err := st.Put(ctx, "exports/x.json", bytes.NewReader([]byte("{}")), PutOptions{}); !errors.Is(err, ErrExists) {
			t.Fatalf("%s: expected ErrExists, got %v", st.Driver(), err)
		}
	}
}
