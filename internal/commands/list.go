package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

const (
	ListCommandWord  = "list"
	ClearCommandWord = "clear"
)

const (
	MessageListSuccess  = "Listed all persons"
	MessageClearSuccess = "Address book has been cleared!"
	MessageClearError   = "Unable to clear: "
)

// List resets every person and log view filter.
type List struct{}

func (List) Word() string { return ListCommandWord }

func (List) Execute(_ context.Context, model Model) (Result, error) {
	ds := model.MutableDatastore()
	persons := ds.MutablePersonStore()
	model.UpdateFilteredPersonList(nil)
	persons.UpdateFilteredVolunteerList(nil)
	persons.UpdateFilteredBefriendeeList(nil)
	logs := ds.MutableLogStore()
	logs.UpdateFilteredLogList(nil)
	logs.UpdateFilteredLogListByPersonID(nil)
	return Result{Feedback: MessageListSuccess, ShowLists: true}, nil
}

// Clear removes every log and person.
type Clear struct{}

func (Clear) Word() string { return ClearCommandWord }

func (Clear) Execute(ctx context.Context, model Model) (Result, error) {
	_, err := model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		logs := ds.MutableLogStore()
		for _, l := range logs.LogList() {
			if err := logs.RemoveLog(l.ID); err != nil {
				return err
			}
		}
		logs.UpdateFilteredLogList(nil)
		logs.UpdateFilteredLogListByPersonID(nil)
		persons := ds.MutablePersonStore()
		for _, p := range persons.PersonList() {
			if err := persons.DeletePerson(p); err != nil {
				return fmt.Errorf("delete %s: %w", p.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fail(MessageClearError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: MessageClearSuccess}, nil
}
