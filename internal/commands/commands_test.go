package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"scrolls/internal/core"
	"scrolls/internal/infra/persistence/memory"
	"scrolls/pkg/domain"
)

// Typical persons, in insertion order.
// Volunteers: Alice (1), Benson (2), Carl (3). Befriendees: Daniel (4), Elle (5), George (6).
// Alice and Daniel are paired and share logs 1-3; Benson and Elle were paired once and share log 4.
const (
	aliceID = iota + 1
	bensonID
	carlID
	danielID
	elleID
	georgeID
)

func day(month, d int) time.Time { return time.Date(2024, time.Month(month), d, 0, 0, 0, 0, time.UTC) }

func intPtr(v int) *int { return &v }

func person(id int, name string, role domain.Role, tags ...domain.Tag) domain.Person {
	return domain.Person{
		ID:      id,
		Name:    domain.Name(name),
		Phone:   "94351253",
		Email:   domain.Email("person" + string(rune('0'+id)) + "@example.com"),
		Address: "123, Jurong West Ave 6, #08-111",
		Role:    role,
		Tags:    tags,
	}
}

func typicalSnapshot() domain.Snapshot {
	alice := person(aliceID, "Alice Pauline", domain.RoleVolunteer, "friends")
	alice.PairedWithID = intPtr(danielID)
	daniel := person(danielID, "Daniel Meier", domain.RoleBefriendee, "friends")
	daniel.PairedWithID = intPtr(aliceID)
	return domain.Snapshot{
		Persons: []domain.Person{
			alice,
			person(bensonID, "Benson Meier", domain.RoleVolunteer, "owesMoney", "friends"),
			person(carlID, "Carl Kurz", domain.RoleVolunteer),
			daniel,
			person(elleID, "Elle Meyer", domain.RoleBefriendee),
			person(georgeID, "George Best", domain.RoleBefriendee, "exConvict"),
		},
		Logs: []domain.Log{
			{ID: 1, VolunteerID: aliceID, BefriendeeID: danielID, Title: "Walk", StartDate: day(1, 1), Duration: 2},
			{ID: 2, VolunteerID: aliceID, BefriendeeID: danielID, Title: "Lunch", StartDate: day(2, 1), Duration: 3},
			{ID: 3, VolunteerID: aliceID, BefriendeeID: danielID, Title: "Movie", StartDate: day(3, 1), Duration: 4},
			{ID: 4, VolunteerID: bensonID, BefriendeeID: elleID, Title: "Chat", StartDate: day(1, 15), Duration: 1},
		},
	}
}

func newTypicalModel(t *testing.T) *core.ModelManager {
	t.Helper()
	store := memory.NewStore(core.NewDefaultRulesEngine())
	store.ImportState(typicalSnapshot())
	res, err := store.Verify(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Violations)
	return core.NewModelManager(store)
}

func mustPerson(t *testing.T, m Model, id int) domain.Person {
	t.Helper()
	p, err := m.Datastore().PersonStore().PersonByID(id)
	require.NoError(t, err)
	return p
}

func names(persons []domain.Person) []string {
	out := make([]string, 0, len(persons))
	for _, p := range persons {
		out = append(out, string(p.Name))
	}
	return out
}

// requireConsistent checks the stored aggregates against the logs.
func requireConsistent(t *testing.T, m *core.ModelManager) {
	t.Helper()
	res, err := m.Store().Verify(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Violations)
}

func TestIndexFromOneBased(t *testing.T) {
	i, err := IndexFromOneBased(3)
	require.NoError(t, err)
	require.Equal(t, Index(2), i)
	require.Equal(t, 3, i.OneBased())
	require.Equal(t, "3", i.String())

	_, err = IndexFromOneBased(0)
	require.Error(t, err)
}
