package memory

import (
	"encoding/json"
	"fmt"
)

// Bucket names used by the durable backends' state(bucket, payload) table.
const (
	BucketPersons = "persons"
	BucketLogs    = "logs"
	BucketMeta    = "meta"
)

// Buckets lists every bucket in persistence order.
var Buckets = []string{BucketPersons, BucketLogs, BucketMeta}

type snapshotMeta struct {
	NextPersonID int `json:"next_person_id"`
	NextLogID    int `json:"next_log_id"`
}

// EncodeBuckets splits a snapshot into JSON payloads keyed by bucket name.
func EncodeBuckets(snapshot Snapshot) (map[string][]byte, error) {
	out := make(map[string][]byte, len(Buckets))
	var err error
	for _, bucket := range Buckets {
		var data []byte
		switch bucket {
		case BucketPersons:
			persons := snapshot.Persons
			if persons == nil {
				persons = []Person{}
			}
			data, err = json.Marshal(persons)
		case BucketLogs:
			logs := snapshot.Logs
			if logs == nil {
				logs = []Log{}
			}
			data, err = json.Marshal(logs)
		case BucketMeta:
			data, err = json.Marshal(snapshotMeta{NextPersonID: snapshot.NextPersonID, NextLogID: snapshot.NextLogID})
		}
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", bucket, err)
		}
		out[bucket] = data
	}
	return out, nil
}

// DecodeBucket merges one bucket payload into snapshot. Unknown buckets and
// empty payloads are ignored.
func DecodeBucket(snapshot *Snapshot, bucket string, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	switch bucket {
	case BucketPersons:
		if err := json.Unmarshal(payload, &snapshot.Persons); err != nil {
			return fmt.Errorf("decode persons: %w", err)
		}
	case BucketLogs:
		if err := json.Unmarshal(payload, &snapshot.Logs); err != nil {
			return fmt.Errorf("decode logs: %w", err)
		}
	case BucketMeta:
		var meta snapshotMeta
		if err := json.Unmarshal(payload, &meta); err != nil {
			return fmt.Errorf("decode meta: %w", err)
		}
		snapshot.NextPersonID = meta.NextPersonID
		snapshot.NextLogID = meta.NextLogID
	}
	return nil
}
