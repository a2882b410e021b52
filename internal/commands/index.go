package commands

import (
	"fmt"

	"scrolls/pkg/domain"
)

// Index is a zero-based position in a displayed list.
type Index int

// IndexFromOneBased converts a user-typed position.
func IndexFromOneBased(n int) (Index, error) {
	if n < 1 {
		return 0, fmt.Errorf("index must be a positive integer, got %d", n)
	}
	return Index(n - 1), nil
}

// OneBased returns the user-facing position.
func (i Index) OneBased() int { return int(i) + 1 }

func (i Index) String() string { return fmt.Sprint(i.OneBased()) }

func personAt(list []domain.Person, i Index) (domain.Person, error) {
	if int(i) < 0 || int(i) >= len(list) {
		return domain.Person{}, InvalidIndexError{Entity: domain.EntityPerson, Index: i.OneBased(), Size: len(list)}
	}
	return list[i], nil
}

func logAt(list []domain.Log, i Index) (domain.Log, error) {
	if int(i) < 0 || int(i) >= len(list) {
		return domain.Log{}, InvalidIndexError{Entity: domain.EntityLog, Index: i.OneBased(), Size: len(list)}
	}
	return list[i], nil
}

// roleList returns the displayed list a role-scoped index refers to.
func roleList(store domain.ReadOnlyPersonStore, role domain.Role) []domain.Person {
	if role.IsVolunteer() {
		return store.FilteredVolunteerList()
	}
	return store.FilteredBefriendeeList()
}
