package domain

import "testing"

func TestNameContainsKeywordsPredicate(t *testing.T) {
	amy := validPerson()
	cases := []struct {
		keywords []string
		want     bool
	}{
		{[]string{"amy"}, true},
		{[]string{"LEE", "nobody"}, true},
		{[]string{"Am"}, false},
		{[]string{"Amy Lee"}, false},
	}
	for _, c := range cases {
		if got := NewNameContainsKeywordsPredicate(c.keywords).Test(amy); got != c.want {
			t.Fatalf("keywords %v: got %v want %v", c.keywords, got, c.want)
		}
	}
	if !NewNameContainsKeywordsPredicate([]string{" ", ""}).IsEmpty() {
		t.Fatalf("blank keywords are dropped")
	}
}

func TestTagListContainsTagsPredicate(t *testing.T) {
	amy := validPerson()
	if !NewTagListContainsTagsPredicate([]Tag{"colleagues", "friends"}).Test(amy) {
		t.Fatalf("any listed tag matches")
	}
	if NewTagListContainsTagsPredicate([]Tag{"Friends"}).Test(amy) {
		t.Fatalf("tags compare case-sensitively")
	}
	a := NewTagListContainsTagsPredicate([]Tag{"b", "a", "a"})
	if !a.Equal(NewTagListContainsTagsPredicate([]Tag{"a", "b"})) {
		t.Fatalf("tag predicates compare as sets")
	}
}

func TestAndPredicateAndMatchPersons(t *testing.T) {
	amy := validPerson()
	ben := Person{ID: 2, Name: "Ben Lee", Tags: []Tag{"colleagues"}}
	persons := []Person{amy, ben}

	if got := MatchPersons(persons, nil); len(got) != 2 {
		t.Fatalf("nil predicate matches all, got %d", len(got))
	}
	lee := NewNameContainsKeywordsPredicate([]string{"lee"})
	friends := NewTagListContainsTagsPredicate([]Tag{"friends"})
	got := MatchPersons(persons, AndPredicate{lee, friends})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("AND narrows to amy, got %+v", got)
	}
	empty := AndPredicate{NewNameContainsKeywordsPredicate(nil), nil}
	if !empty.IsEmpty() || !empty.Test(ben) {
		t.Fatalf("empty parts impose no constraint")
	}
	if got := TagNames([]Tag{"b", "a"}); got[0] != "a" || got[1] != "b" {
		t.Fatalf("TagNames = %v", got)
	}
}
