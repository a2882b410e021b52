package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrolls/pkg/domain"
)

func TestPairLinksBothSides(t *testing.T) {
	m := newTypicalModel(t)
	res, err := Pair{VolunteerIndex: 2, BefriendeeIndex: 2}.Execute(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "Paired: Carl Kurz and George Best", res.Feedback)

	carl, george := mustPerson(t, m, carlID), mustPerson(t, m, georgeID)
	require.True(t, carl.IsPaired())
	require.True(t, george.IsPaired())
	assert.Equal(t, georgeID, *carl.PairedWithID)
	assert.Equal(t, domain.Name("Carl Kurz"), *george.PairedWithName)
	requireConsistent(t, m)
}

func TestPairRejectsAlreadyPaired(t *testing.T) {
	m := newTypicalModel(t)
	before := m.ExportState()
	_, err := Pair{VolunteerIndex: 0, BefriendeeIndex: 1}.Execute(context.Background(), m)
	require.Error(t, err)
	assert.Equal(t, MessagePairError+"Alice Pauline is already paired", err.Error())
	assert.ErrorAs(t, err, new(PairingError))
	assert.Equal(t, before, m.ExportState())

	_, err = Pair{VolunteerIndex: 5, BefriendeeIndex: 1}.Execute(context.Background(), m)
	assert.ErrorAs(t, err, new(InvalidIndexError))
}

func TestUnpairKeepsLogs(t *testing.T) {
	m := newTypicalModel(t)
	res, err := Unpair{VolunteerIndex: 0, BefriendeeIndex: 0}.Execute(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "Unpaired: Alice Pauline and Daniel Meier", res.Feedback)

	assert.False(t, mustPerson(t, m, aliceID).IsPaired())
	assert.False(t, mustPerson(t, m, danielID).IsPaired())
	assert.Len(t, m.Datastore().LogStore().LogList(), 4)
	assert.Equal(t, 9, mustPerson(t, m, danielID).TimeServed)
	requireConsistent(t, m)
}

func TestUnpairRequiresMutualPairing(t *testing.T) {
	m := newTypicalModel(t)
	_, err := Unpair{VolunteerIndex: 1, BefriendeeIndex: 1}.Execute(context.Background(), m)
	require.Error(t, err)
	assert.Equal(t, MessageUnpairError+"Benson Meier and Elle Meyer are not paired with each other", err.Error())

	_, err = Unpair{VolunteerIndex: 0, BefriendeeIndex: 1}.Execute(context.Background(), m)
	assert.ErrorAs(t, err, new(PairingError))
}

func TestLogAddUpdatesAggregates(t *testing.T) {
	ctx := context.Background()
	m := newTypicalModel(t)

	res, err := LogAdd{VolunteerIndex: 0, BefriendeeIndex: 0, Title: "Museum", StartDate: day(4, 2), Duration: 3, Remarks: "rainy"}.Execute(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "New log added: Museum; Start date: 2024-04-02; Duration: 3; Remarks: rainy", res.Feedback)
	for _, id := range []int{aliceID, danielID} {
		p := mustPerson(t, m, id)
		assert.Equal(t, 12, p.TimeServed)
		require.NotNil(t, p.LatestLogID)
		assert.Equal(t, 5, *p.LatestLogID)
	}

	_, err = LogAdd{VolunteerIndex: 0, BefriendeeIndex: 0, Title: "Tea", StartDate: day(1, 3), Duration: 1}.Execute(ctx, m)
	require.NoError(t, err)
	alice := mustPerson(t, m, aliceID)
	assert.Equal(t, 13, alice.TimeServed)
	assert.Equal(t, 5, *alice.LatestLogID, "an earlier log does not move the pointer")
	requireConsistent(t, m)
}

func TestLogAddRejections(t *testing.T) {
	ctx := context.Background()
	m := newTypicalModel(t)
	before := m.ExportState()

	_, err := LogAdd{VolunteerIndex: 1, BefriendeeIndex: 1, Title: "Chat", StartDate: day(5, 1), Duration: 1}.Execute(ctx, m)
	require.Error(t, err)
	assert.Equal(t, MessageLogAddError+MessageNotPairedForLog, err.Error())

	_, err = LogAdd{VolunteerIndex: 0, BefriendeeIndex: 0, Title: " ", StartDate: day(5, 1), Duration: 1}.Execute(ctx, m)
	assert.ErrorAs(t, err, new(domain.ValidationError))

	_, err = LogAdd{VolunteerIndex: 0, BefriendeeIndex: 0, Title: "Chat", StartDate: day(5, 1), Duration: -2}.Execute(ctx, m)
	assert.ErrorAs(t, err, new(domain.ValidationError))

	assert.Equal(t, before, m.ExportState())
}

func TestLogFindScopesAndResets(t *testing.T) {
	ctx := context.Background()
	m := newTypicalModel(t)
	daniel := Index(0)

	res, err := LogFind{Target: &daniel, Role: domain.RoleBefriendee}.Execute(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "3 logs listed!", res.Feedback)
	id, ok := m.Datastore().LogStore().FilterPersonID()
	require.True(t, ok)
	assert.Equal(t, danielID, id)

	res, err = LogFind{}.Execute(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, "4 logs listed!", res.Feedback)

	missing := Index(7)
	_, err = LogFind{Target: &missing, Role: domain.RoleBefriendee}.Execute(ctx, m)
	assert.ErrorAs(t, err, new(InvalidIndexError))
}
