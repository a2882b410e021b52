package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

const (
	PairCommandWord   = "pair"
	UnpairCommandWord = "unpair"
)

const (
	MessagePairSuccess   = "Paired: %s and %s"
	MessagePairError     = "Unable to pair: "
	MessageUnpairSuccess = "Unpaired: %s and %s"
	MessageUnpairError   = "Unable to unpair: "
)

// Pair pairs the volunteer and befriendee at the given displayed indices.
type Pair struct {
	VolunteerIndex  Index
	BefriendeeIndex Index
}

func (c Pair) Word() string { return PairCommandWord }

func (c Pair) Execute(ctx context.Context, model Model) (Result, error) {
	volunteer, befriendee, err := resolvePair(model, c.VolunteerIndex, c.BefriendeeIndex)
	if err != nil {
		return Result{}, fail(MessagePairError, err)
	}
	for _, p := range []domain.Person{volunteer, befriendee} {
		if p.IsPaired() {
			return Result{}, fail(MessagePairError, alreadyPaired(p))
		}
	}
	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		if err := persons.SetPerson(volunteer, volunteer.PairedWith(befriendee)); err != nil {
			return err
		}
		return persons.SetPerson(befriendee, befriendee.PairedWith(volunteer))
	})
	if err != nil {
		return Result{}, fail(MessagePairError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessagePairSuccess, volunteer.Name, befriendee.Name)}, nil
}

// Unpair separates a volunteer and befriendee paired with each other. Their logs are kept.
type Unpair struct {
	VolunteerIndex  Index
	BefriendeeIndex Index
}

func (c Unpair) Word() string { return UnpairCommandWord }

func (c Unpair) Execute(ctx context.Context, model Model) (Result, error) {
	volunteer, befriendee, err := resolvePair(model, c.VolunteerIndex, c.BefriendeeIndex)
	if err != nil {
		return Result{}, fail(MessageUnpairError, err)
	}
	if !pairedTogether(volunteer, befriendee) {
		return Result{}, fail(MessageUnpairError, PairingError{
			Reason: fmt.Sprintf("%s and %s are not paired with each other", volunteer.Name, befriendee.Name),
		})
	}
	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		if err := persons.SetPerson(volunteer, volunteer.Unpaired()); err != nil {
			return err
		}
		return persons.SetPerson(befriendee, befriendee.Unpaired())
	})
	if err != nil {
		return Result{}, fail(MessageUnpairError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageUnpairSuccess, volunteer.Name, befriendee.Name)}, nil
}

func resolvePair(model Model, vi, bi Index) (domain.Person, domain.Person, error) {
	store := model.Datastore().PersonStore()
	volunteer, err := personAt(store.FilteredVolunteerList(), vi)
	if err != nil {
		return domain.Person{}, domain.Person{}, err
	}
	befriendee, err := personAt(store.FilteredBefriendeeList(), bi)
	if err != nil {
		return domain.Person{}, domain.Person{}, err
	}
	return volunteer, befriendee, nil
}

func pairedTogether(a, b domain.Person) bool {
	return a.PairedWithID != nil && *a.PairedWithID == b.ID &&
		b.PairedWithID != nil && *b.PairedWithID == a.ID
}
