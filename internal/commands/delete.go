package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

const DeleteCommandWord = "delete"

const (
	MessageDeletePersonSuccess = "Deleted Person: %s"
	MessageDeletePersonError   = "Unable to delete person: "
)

// Delete removes the person at Target in the displayed list of Role together
// with every log they took part in.
type Delete struct {
	Target Index
	Role   domain.Role
}

func (c Delete) Word() string { return DeleteCommandWord }

func (c Delete) Execute(ctx context.Context, model Model) (Result, error) {
	victim, err := personAt(roleList(model.Datastore().PersonStore(), c.Role), c.Target)
	if err != nil {
		return Result{}, fail(MessageDeletePersonError, err)
	}
	if victim.IsPaired() {
		return Result{}, fail(MessageDeletePersonError, PairedPersonDeletionError{Name: victim.Name})
	}

	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		logs := ds.MutableLogStore()

		removed := make(map[int]domain.Log)
		var counterparts []int
		for _, l := range logs.LogsOf(victim.ID) {
			removed[l.ID] = l
			other := l.VolunteerID
			if other == victim.ID {
				other = l.BefriendeeID
			}
			if !containsID(counterparts, other) {
				counterparts = append(counterparts, other)
			}
		}
		for _, id := range counterparts {
			p, err := persons.PersonByID(id)
			if err != nil {
				return err
			}
			updated, err := withoutLogs(p, logs, removed)
			if err != nil {
				return err
			}
			if err := persons.SetPerson(p, updated); err != nil {
				return err
			}
		}
		for id := range removed {
			if err := logs.RemoveLog(id); err != nil {
				return err
			}
		}
		if scoped, ok := logs.FilterPersonID(); ok && scoped == victim.ID {
			logs.UpdateFilteredLogListByPersonID(nil)
		}
		return persons.DeletePerson(victim)
	})
	if err != nil {
		return Result{}, fail(MessageDeletePersonError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageDeletePersonSuccess, FormatPerson(victim))}, nil
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
