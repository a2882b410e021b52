package memory

import (
	"scrolls/pkg/domain"
)

var _ domain.PersonStore = (*PersonStore)(nil)

// PersonStore keeps persons in an id-indexed map plus an insertion-order index.
// Each of the three views carries its own filter.
type PersonStore struct {
	byID   map[int]Person
	order  []int
	nextID int

	personFilter     domain.PersonPredicate
	volunteerFilter  domain.PersonPredicate
	befriendeeFilter domain.PersonPredicate

	journal *[]Change
}

func newPersonStore() PersonStore {
	return PersonStore{byID: make(map[int]Person), nextID: 1}
}

func (s *PersonStore) clone() PersonStore {
	cp := PersonStore{
		byID:             make(map[int]Person, len(s.byID)),
		order:            append([]int(nil), s.order...),
		nextID:           s.nextID,
		personFilter:     s.personFilter,
		volunteerFilter:  s.volunteerFilter,
		befriendeeFilter: s.befriendeeFilter,
	}
	for id, p := range s.byID {
		cp.byID[id] = p.Clone()
	}
	return cp
}

func (s *PersonStore) record(action domain.Action, before, after any) {
	if s.journal == nil {
		return
	}
	*s.journal = append(*s.journal, Change{Entity: domain.EntityPerson, Action: action, Before: before, After: after})
}

// PersonList returns every person in insertion order.
func (s *PersonStore) PersonList() []Person {
	out := make([]Person, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out
}

// FilteredPersonList returns the combined view narrowed by its active filter.
func (s *PersonStore) FilteredPersonList() []Person {
	return domain.MatchPersons(s.PersonList(), s.personFilter)
}

// FilteredVolunteerList returns volunteers narrowed by the volunteer filter.
func (s *PersonStore) FilteredVolunteerList() []Person {
	return domain.MatchPersons(s.withRole(domain.RoleVolunteer), s.volunteerFilter)
}

// FilteredBefriendeeList returns befriendees narrowed by the befriendee filter.
func (s *PersonStore) FilteredBefriendeeList() []Person {
	return domain.MatchPersons(s.withRole(domain.RoleBefriendee), s.befriendeeFilter)
}

func (s *PersonStore) withRole(role domain.Role) []Person {
	out := make([]Person, 0, len(s.order))
	for _, id := range s.order {
		if p := s.byID[id]; p.Role == role {
			out = append(out, p.Clone())
		}
	}
	return out
}

// PersonByID performs an exact lookup.
func (s *PersonStore) PersonByID(id int) (Person, error) {
	p, ok := s.byID[id]
	if !ok {
		return Person{}, domain.ErrNotFound{Entity: domain.EntityPerson, ID: id}
	}
	return p.Clone(), nil
}

// HasPerson reports whether a person with the same identity (name) is stored.
func (s *PersonStore) HasPerson(p Person) bool {
	for _, existing := range s.byID {
		if existing.IsSamePerson(p) {
			return true
		}
	}
	return false
}

// AddPerson stores p under the next free id and returns the stored record.
func (s *PersonStore) AddPerson(p Person) Person {
	stored := p.Clone()
	stored.ID = s.nextID
	stored.Tags = domain.NormalizeTags(stored.Tags)
	s.nextID++
	s.byID[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	s.record(domain.ActionCreate, nil, stored.Clone())
	return stored.Clone()
}

// SetPerson replaces target with edited. The stored record keeps target's id
// and position in the list.
func (s *PersonStore) SetPerson(target, edited Person) error {
	current, ok := s.byID[target.ID]
	if !ok {
		return domain.ErrNotFound{Entity: domain.EntityPerson, ID: target.ID}
	}
	replacement := edited.Clone()
	replacement.ID = target.ID
	replacement.Tags = domain.NormalizeTags(replacement.Tags)
	s.byID[target.ID] = replacement
	s.record(domain.ActionUpdate, current, replacement.Clone())
	return nil
}

// DeletePerson removes p. Pairing is not checked here.
func (s *PersonStore) DeletePerson(p Person) error {
	current, ok := s.byID[p.ID]
	if !ok {
		return domain.ErrNotFound{Entity: domain.EntityPerson, ID: p.ID}
	}
	delete(s.byID, p.ID)
	s.order = removeID(s.order, p.ID)
	s.record(domain.ActionDelete, current, nil)
	return nil
}

// UpdateFilteredPersonList replaces the combined view filter. nil shows everything.
func (s *PersonStore) UpdateFilteredPersonList(predicate domain.PersonPredicate) {
	s.personFilter = predicate
}

// UpdateFilteredVolunteerList replaces the volunteer view filter.
func (s *PersonStore) UpdateFilteredVolunteerList(predicate domain.PersonPredicate) {
	s.volunteerFilter = predicate
}

// UpdateFilteredBefriendeeList replaces the befriendee view filter.
func (s *PersonStore) UpdateFilteredBefriendeeList(predicate domain.PersonPredicate) {
	s.befriendeeFilter = predicate
}

func removeID(ids []int, id int) []int {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
