package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"scrolls/internal/blob/core"
)

func TestMockStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMockForTests()
	if store.Driver() != core.DriverS3 || store.Bucket() != "mock-bucket" {
		t.Fatalf("unexpected store identity %s %s", store.Driver(), store.Bucket())
	}
	info, err := store.Put(ctx, "exports/a.json", bytes.NewReader([]byte(`{"persons":[]}`)), core.PutOptions{ContentType: "application/json"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Key != "exports/a.json" || info.Size != 14 || info.ETag != "etag123" {
		t.Fatalf("unexpected info %+v", info)
	}
	if _, err := store.Put(ctx, "exports/a.json", bytes.NewReader([]byte("x")), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	got, rc, err := store.Get(ctx, "exports/a.json")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != `{"persons":[]}` || got.ContentType != "application/json" {
		t.Fatalf("unexpected get %+v %q", got, body)
	}
	if _, err := store.Put(ctx, "other/b.json", bytes.NewReader([]byte("b")), core.PutOptions{}); err != nil {
		t.Fatalf("put other: %v", err)
	}
	list, err := store.List(ctx, "exports/")
	if err != nil || len(list) != 1 || list[0].Key != "exports/a.json" {
		t.Fatalf("list: %v %+v", err, list)
	}
	if ok, err := store.Delete(ctx, "exports/a.json"); err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	if ok, err := store.Delete(ctx, "exports/a.json"); err != nil || ok {
		t.Fatalf("second delete should report missing: %v %v", ok, err)
	}
	if _, err := store.Head(ctx, "exports/a.json"); err == nil {
		t.Fatalf("expected head error after delete")
	}
}

func TestMockStoreMissingKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMockForTests()
	if _, _, err := store.Get(ctx, "missing"); err == nil {
		t.Fatalf("expected get error")
	}
	if _, err := store.Put(ctx, "", bytes.NewReader(nil), core.PutOptions{}); err == nil {
		t.Fatalf("expected empty key error")
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected bucket required error")
	}
}

func TestNewWithStaticCredentials(t *testing.T) {
	store, err := New(context.Background(), Config{
		Bucket:          "exports",
		Endpoint:        "http://localhost:9000",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		PathStyle:       true,
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if store.Bucket() != "exports" {
		t.Fatalf("unexpected bucket %s", store.Bucket())
	}
}

func TestDecodeChunked(t *testing.T) {
	dec, ok := decodeChunked([]byte("5\r\nhello\r\n0\r\nx-amz-checksum-crc32:abc\r\n\r\n"))
	if !ok || string(dec) != "hello" {
		t.Fatalf("unexpected decode %q %v", dec, ok)
	}
	if _, ok := decodeChunked([]byte(`{"raw":true}`)); ok {
		t.Fatalf("plain body should not decode")
	}
}
