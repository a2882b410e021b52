package commands

import (
	"context"
	"errors"
	"fmt"

	"scrolls/pkg/domain"
)

const EditCommandWord = "edit"

const (
	MessageEditPersonSuccess = "Edited Person: %s"
	MessageEditPersonError   = "Unable to edit person: "
	MessageNotEdited         = "At least one field to edit must be provided."
)

// EditDescriptor holds the fields to change. A nil field is left untouched.
type EditDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	Role    *domain.Role
	Tags    *[]domain.Tag
}

// IsAnyFieldEdited reports whether the descriptor changes anything.
func (d EditDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Role != nil || d.Tags != nil
}

func (d EditDescriptor) apply(p domain.Person) domain.Person {
	out := p.Clone()
	if d.Name != nil {
		out.Name = *d.Name
	}
	if d.Phone != nil {
		out.Phone = *d.Phone
	}
	if d.Email != nil {
		out.Email = *d.Email
	}
	if d.Address != nil {
		out.Address = *d.Address
	}
	if d.Role != nil {
		out.Role = *d.Role
	}
	if d.Tags != nil {
		out.Tags = append([]domain.Tag(nil), (*d.Tags)...)
	}
	return out
}

// Edit changes the contact details of the person at Target in the displayed
// list of Role. Id, pairing and aggregates are kept.
type Edit struct {
	Target     Index
	Role       domain.Role
	Descriptor EditDescriptor
}

func (c Edit) Word() string { return EditCommandWord }

func (c Edit) Execute(ctx context.Context, model Model) (Result, error) {
	if !c.Descriptor.IsAnyFieldEdited() {
		return Result{}, fail(MessageEditPersonError, errors.New(MessageNotEdited))
	}
	target, err := personAt(roleList(model.Datastore().PersonStore(), c.Role), c.Target)
	if err != nil {
		return Result{}, fail(MessageEditPersonError, err)
	}
	edited := c.Descriptor.apply(target)
	if err := edited.Validate(); err != nil {
		return Result{}, fail(MessageEditPersonError, err)
	}

	_, err = model.RunInTransaction(ctx, func(ds domain.Datastore) error {
		persons := ds.MutablePersonStore()
		logs := ds.MutableLogStore()

		if edited.Role != target.Role && (target.IsPaired() || len(logs.LogsOf(target.ID)) > 0) {
			return errors.New(MessageRoleChangeRefused)
		}
		for _, other := range persons.PersonList() {
			if other.ID != target.ID && other.IsSamePerson(edited) {
				return DuplicatePersonError{Name: edited.Name}
			}
		}
		if err := persons.SetPerson(target, edited); err != nil {
			return err
		}
		if target.IsPaired() && edited.Name != target.Name {
			partner, err := persons.PersonByID(*target.PairedWithID)
			if err != nil {
				return err
			}
			return persons.SetPerson(partner, partner.PairedWith(edited))
		}
		return nil
	})
	if err != nil {
		return Result{}, fail(MessageEditPersonError, err)
	}
	model.CommitDatastore()
	return Result{Feedback: fmt.Sprintf(MessageEditPersonSuccess, FormatPerson(edited))}, nil
}
