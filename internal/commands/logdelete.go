package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// Command words accepted for LogDelete.
const (
	LogDeleteCommandWord = "logdelete"
	LogDelCommandWord    = "logdel"
	LogRmCommandWord     = "logrm"
	LogRemoveCommandWord = "logremove"
)

const (
	MessageDeleteLogSuccess = "Deleted Log: %s"
	MessageDeleteLogError   = "Unable to delete log: "
)

// LogDelete removes the log at Target in the displayed log list and rolls its
// duration and latest-log pointer back out of both participants.
type LogDelete struct {
	Target Index
}

func (c LogDelete) Word() string { return LogDeleteCommandWord }

func (c LogDelete) Execute(ctx context.Context, model Model) (Result, error) {
	target, err := logAt(model.Datastore().LogStore().FilteredLogList(), c.Target)
	if err != nil {
		return Result{}, fail(MessageDeleteLogError, err)
	}

	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		logs := ds.MutableLogStore()

		removed := map[int]domain.Log{target.ID: target}
		for _, id := range []int{target.VolunteerID, target.BefriendeeID} {
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
		persons.UpdateFilteredPersonList(nil)
		logs.UpdateFilteredLogList(nil)
		logs.UpdateFilteredLogListByPersonID(nil)
		return logs.RemoveLog(target.ID)
	})
	if err != nil {
		return Result{}, fail(MessageDeleteLogError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageDeleteLogSuccess, FormatLog(target))}, nil
}
