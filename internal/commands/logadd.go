package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrolls/pkg/domain"
)

const LogAddCommandWord = "logadd"

const (
	MessageLogAddSuccess = "New log added: %s"
	MessageLogAddError   = "Unable to add log: "
)

// LogAdd records an interaction between a paired volunteer and befriendee.
type LogAdd struct {
	VolunteerIndex  Index
	BefriendeeIndex Index
	Title           string
	StartDate       time.Time
	Duration        int
	Remarks         string
}

func (c LogAdd) Word() string { return LogAddCommandWord }

func (c LogAdd) Execute(ctx context.Context, model Model) (Result, error) {
	volunteer, befriendee, err := resolvePair(model, c.VolunteerIndex, c.BefriendeeIndex)
	if err != nil {
		return Result{}, fail(MessageLogAddError, err)
	}
	if !pairedTogether(volunteer, befriendee) {
		return Result{}, fail(MessageLogAddError, errors.New(MessageNotPairedForLog))
	}
	draft := domain.Log{
		VolunteerID:  volunteer.ID,
		BefriendeeID: befriendee.ID,
		Title:        c.Title,
		StartDate:    c.StartDate,
		Duration:     c.Duration,
		Remarks:      c.Remarks,
	}
	if err := draft.Validate(); err != nil {
		return Result{}, fail(MessageLogAddError, err)
	}

	var added domain.Log
	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		logs := ds.MutableLogStore()
		added = logs.AddLog(draft)
		for _, p := range []domain.Person{volunteer, befriendee} {
			updated, err := withLog(p, logs, added)
			if err != nil {
				return err
			}
			if err := persons.SetPerson(p, updated); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, fail(MessageLogAddError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageLogAddSuccess, FormatLog(added))}, nil
}
