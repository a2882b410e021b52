package domain

import (
	"sort"
	"strings"
)

// PersonPredicate filters persons for a view. IsEmpty reports whether the
// predicate imposes no constraint, which lets callers tell "no filter given"
// apart from "a filter that matches nothing".
type PersonPredicate interface {
	Test(Person) bool
	IsEmpty() bool
}

// LogPredicate filters logs for a view. A nil LogPredicate matches every log.
type LogPredicate func(Log) bool

// PersonPredicateFunc adapts a plain function into a non-empty PersonPredicate.
type PersonPredicateFunc func(Person) bool

// Test implements PersonPredicate.
func (f PersonPredicateFunc) Test(p Person) bool { return f(p) }

// IsEmpty implements PersonPredicate.
func (f PersonPredicateFunc) IsEmpty() bool { return f == nil }

// NameContainsKeywordsPredicate matches persons whose name contains any of the
// keywords as a whole word, ignoring case.
type NameContainsKeywordsPredicate struct {
	Keywords []string
}

// NewNameContainsKeywordsPredicate builds the predicate, dropping blank keywords.
func NewNameContainsKeywordsPredicate(keywords []string) NameContainsKeywordsPredicate {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return NameContainsKeywordsPredicate{Keywords: out}
}

// Test implements PersonPredicate.
func (p NameContainsKeywordsPredicate) Test(person Person) bool {
	words := strings.Fields(string(person.Name))
	for _, keyword := range p.Keywords {
		for _, w := range words {
			if strings.EqualFold(w, keyword) {
				return true
			}
		}
	}
	return false
}

// IsEmpty implements PersonPredicate.
func (p NameContainsKeywordsPredicate) IsEmpty() bool { return len(p.Keywords) == 0 }

// Equal compares keyword lists in order.
func (p NameContainsKeywordsPredicate) Equal(other NameContainsKeywordsPredicate) bool {
	if len(p.Keywords) != len(other.Keywords) {
		return false
	}
	for i := range p.Keywords {
		if p.Keywords[i] != other.Keywords[i] {
			return false
		}
	}
	return true
}

// TagListContainsTagsPredicate matches persons carrying at least one of Tags.
type TagListContainsTagsPredicate struct {
	Tags []Tag
}

// NewTagListContainsTagsPredicate builds the predicate over a normalized tag set.
func NewTagListContainsTagsPredicate(tags []Tag) TagListContainsTagsPredicate {
	return TagListContainsTagsPredicate{Tags: NormalizeTags(tags)}
}

// Test implements PersonPredicate.
func (p TagListContainsTagsPredicate) Test(person Person) bool {
	for _, t := range p.Tags {
		if person.HasTag(t) {
			return true
		}
	}
	return false
}

// IsEmpty implements PersonPredicate.
func (p TagListContainsTagsPredicate) IsEmpty() bool { return len(p.Tags) == 0 }

// Equal compares the two tag sets.
func (p TagListContainsTagsPredicate) Equal(other TagListContainsTagsPredicate) bool {
	a, b := NormalizeTags(p.Tags), NormalizeTags(other.Tags)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AndPredicate narrows sequentially: a person must satisfy every non-empty part.
type AndPredicate []PersonPredicate

// Test implements PersonPredicate.
func (a AndPredicate) Test(person Person) bool {
	for _, p := range a {
		if p == nil || p.IsEmpty() {
			continue
		}
		if !p.Test(person) {
			return false
		}
	}
	return true
}

// IsEmpty implements PersonPredicate.
func (a AndPredicate) IsEmpty() bool {
	for _, p := range a {
		if p != nil && !p.IsEmpty() {
			return false
		}
	}
	return true
}

// MatchPersons applies predicate to persons preserving order. A nil predicate matches everything.
func MatchPersons(persons []Person, predicate PersonPredicate) []Person {
	out := make([]Person, 0, len(persons))
	for _, p := range persons {
		if predicate == nil || predicate.Test(p) {
			out = append(out, p)
		}
	}
	return out
}

// TagNames renders tags as sorted strings, mostly for messages.
func TagNames(tags []Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, string(t))
	}
	sort.Strings(out)
	return out
}
