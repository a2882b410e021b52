package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

const AddCommandWord = "add"

const (
	MessageAddSuccess = "New person added: %s"
	MessageAddError   = "Unable to add person: "
)

// Add stores a new unpaired person with no logs.
type Add struct {
	Person domain.Person
}

func (c Add) Word() string { return AddCommandWord }

func (c Add) Execute(ctx context.Context, model Model) (Result, error) {
	toAdd := c.Person.Clone()
	toAdd.PairedWithID, toAdd.PairedWithName = nil, nil
	toAdd.TimeServed, toAdd.LatestLogID = 0, nil
	if err := toAdd.Validate(); err != nil {
		return Result{}, fail(MessageAddError, err)
	}

	var added domain.Person
	_, err := model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		if persons.HasPerson(toAdd) {
			return DuplicatePersonError{Name: toAdd.Name}
		}
		added = persons.AddPerson(toAdd)
		return nil
	})
	if err != nil {
		return Result{}, fail(MessageAddError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, FormatPerson(added))}, nil
}
