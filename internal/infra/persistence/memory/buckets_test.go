package memory

import (
	"testing"

	"scrolls/pkg/domain"
)

func TestBucketsCarrySnapshot(t *testing.T) {
	latest := 3
	snap := Snapshot{
		Persons:      []domain.Person{{ID: 1, Name: "Alice", Role: domain.RoleVolunteer, TimeServed: 4, LatestLogID: &latest}},
		Logs:         []domain.Log{{ID: 3, VolunteerID: 1, BefriendeeID: 2, Title: "Tea", StartDate: day(2), Duration: 4}},
		NextPersonID: 5,
		NextLogID:    4,
	}
	payloads, err := EncodeBuckets(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(payloads) != len(Buckets) {
		t.Fatalf("expected %d buckets, got %d", len(Buckets), len(payloads))
	}
	var got Snapshot
	for bucket, payload := range payloads {
		if err := DecodeBucket(&got, bucket, payload); err != nil {
			t.Fatalf("decode %s: %v", bucket, err)
		}
	}
	if len(got.Persons) != 1 || got.Persons[0].LatestLogID == nil || *got.Persons[0].LatestLogID != 3 {
		t.Fatalf("persons not carried: %+v", got.Persons)
	}
	if len(got.Logs) != 1 || !got.Logs[0].StartDate.Equal(day(2)) {
		t.Fatalf("logs not carried: %+v", got.Logs)
	}
	if got.NextPersonID != 5 || got.NextLogID != 4 {
		t.Fatalf("meta not carried: %+v", got)
	}
}

func TestDecodeBucketErrors(t *testing.T) {
	var snap Snapshot
	for _, bucket := range Buckets {
		if err := DecodeBucket(&snap, bucket, []byte("{not json")); err == nil {
			t.Fatalf("expected decode error for %s", bucket)
		}
	}
	if err := DecodeBucket(&snap, "unknown", []byte("{not json")); err != nil {
		t.Fatalf("unknown bucket must be ignored: %v", err)
	}
	if err := DecodeBucket(&snap, BucketPersons, nil); err != nil {
		t.Fatalf("empty payload must be ignored: %v", err)
	}
}
