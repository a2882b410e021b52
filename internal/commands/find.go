package commands

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// FindCommandWord finds persons by name keywords and tags.
const FindCommandWord = "find"

// Find narrows the person view(s) by name keywords AND tags. At least one of
// SearchVolunteer and SearchBefriendee must be set.
type Find struct {
	Name             domain.NameContainsKeywordsPredicate
	Tags             domain.TagListContainsTagsPredicate
	SearchVolunteer  bool
	SearchBefriendee bool
}

func (c Find) Word() string { return FindCommandWord }

func (c Find) Execute(_ context.Context, model Model) (Result, error) {
	if !c.SearchVolunteer && !c.SearchBefriendee {
		panic("find: at least one of volunteer or befriendee must be searched")
	}
	store := model.MutableDatastore().MutablePersonStore()
	predicate := c.predicate()

	switch {
	case c.SearchVolunteer && c.SearchBefriendee:
		store.UpdateFilteredPersonList(predicate)
		return Result{Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(store.FilteredPersonList())), ShowLists: true}, nil
	case c.SearchVolunteer:
		store.UpdateFilteredVolunteerList(predicate)
		return Result{Feedback: fmt.Sprintf(MessagePersonsListedOverviewWithRole, len(store.FilteredVolunteerList()), domain.RoleVolunteer), ShowLists: true}, nil
	default:
		store.UpdateFilteredBefriendeeList(predicate)
		return Result{Feedback: fmt.Sprintf(MessagePersonsListedOverviewWithRole, len(store.FilteredBefriendeeList()), domain.RoleBefriendee), ShowLists: true}, nil
	}
}

// predicate composes the non-empty parts. With both parts empty it matches everyone.
func (c Find) predicate() domain.PersonPredicate {
	var parts domain.AndPredicate
	if !c.Name.IsEmpty() {
		parts = append(parts, c.Name)
	}
	if !c.Tags.IsEmpty() {
		parts = append(parts, c.Tags)
	}
	if len(parts) == 0 {
		return nil
	}
	return parts
}

// Equal reports whether two finds search the same thing.
func (c Find) Equal(other Find) bool {
	return c.Name.Equal(other.Name) && c.Tags.Equal(other.Tags) &&
		c.SearchVolunteer == other.SearchVolunteer && c.SearchBefriendee == other.SearchBefriendee
}
