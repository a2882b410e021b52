package commands

import (
	"scrolls/pkg/domain"
)

// withoutLogs returns p as it must look once removed are deleted: their
// durations subtracted and, when the current latest log is among them, the
// latest log recomputed over what remains.
func withoutLogs(p domain.Person, logs domain.ReadOnlyLogStore, removed map[int]domain.Log) (domain.Person, error) {
	served := p.TimeServed
	for _, l := range removed {
		if l.Involves(p.ID) {
			served -= l.Duration
		}
	}
	latest, err := latestAfterRemoval(p, logs, removed)
	if err != nil {
		return domain.Person{}, err
	}
	return p.WithAggregates(served, latest), nil
}

func latestAfterRemoval(p domain.Person, logs domain.ReadOnlyLogStore, removed map[int]domain.Log) (*int, error) {
	if !p.HasLatestLog() {
		return nil, nil
	}
	current, err := logs.LogByID(*p.LatestLogID)
	if err != nil {
		return nil, err
	}
	if _, gone := removed[current.ID]; !gone {
		id := current.ID
		return &id, nil
	}
	var remaining []domain.Log
	for _, l := range logs.LogsOf(p.ID) {
		if _, gone := removed[l.ID]; !gone {
			remaining = append(remaining, l)
		}
	}
	next, ok := domain.LatestLog(remaining)
	if !ok {
		return nil, nil
	}
	id := next.ID
	return &id, nil
}

// withLog returns p after added is recorded: duration added and latest log
// moved when added is later than the current one.
func withLog(p domain.Person, logs domain.ReadOnlyLogStore, added domain.Log) (domain.Person, error) {
	latest := added.ID
	if p.HasLatestLog() {
		current, err := logs.LogByID(*p.LatestLogID)
		if err != nil {
			return domain.Person{}, err
		}
		if !added.After(current) {
			latest = current.ID
		}
	}
	return p.WithAggregates(p.TimeServed+added.Duration, &latest), nil
}
