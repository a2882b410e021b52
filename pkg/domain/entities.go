// Package domain defines the core persistent entities, value types, and
// rule evaluation primitives used by scrolls.
package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// EntityType identifies the type of record stored in the core domain.
type EntityType string

// Supported entity type identifiers used in Change records and persistence buckets.
const (
	// EntityPerson identifies a volunteer or befriendee record.
	EntityPerson EntityType = "person"
	// EntityLog identifies an interaction log between a paired volunteer and befriendee.
	EntityLog EntityType = "log"
)

// Role partitions persons into the two sides of a pairing.
type Role string

// Canonical roles.
const (
	RoleVolunteer  Role = "volunteer"
	RoleBefriendee Role = "befriendee"
)

// ParseRole converts user input into a Role, ignoring case and surrounding space.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleVolunteer:
		return RoleVolunteer, nil
	case RoleBefriendee:
		return RoleBefriendee, nil
	default:
		return "", fmt.Errorf("role must be %q or %q, got %q", RoleVolunteer, RoleBefriendee, raw)
	}
}

// IsVolunteer reports whether r is the volunteer role.
func (r Role) IsVolunteer() bool { return r == RoleVolunteer }

// Opposite returns the role a person of role r may be paired with.
func (r Role) Opposite() Role {
	if r == RoleVolunteer {
		return RoleBefriendee
	}
	return RoleVolunteer
}

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Person is a volunteer or befriendee. Persons are immutable values: every
// change produces a new record that replaces the old one by ID.
type Person struct {
	ID             int     `json:"id"`
	Name           Name    `json:"name"`
	Phone          Phone   `json:"phone"`
	Email          Email   `json:"email"`
	Address        Address `json:"address"`
	Role           Role    `json:"role"`
	Tags           []Tag   `json:"tags"`
	PairedWithName *Name   `json:"paired_with_name,omitempty"`
	PairedWithID   *int    `json:"paired_with_id,omitempty"`
	TimeServed     int     `json:"time_served"`
	LatestLogID    *int    `json:"latest_log_id,omitempty"`
}

// IsPaired reports whether the person currently has a partner.
func (p Person) IsPaired() bool { return p.PairedWithID != nil }

// HasLatestLog reports whether the person references a latest log.
func (p Person) HasLatestLog() bool { return p.LatestLogID != nil }

// HasTag reports whether the person carries tag t. Tags compare case-sensitively.
func (p Person) HasTag(t Tag) bool {
	for _, tag := range p.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// IsSamePerson reports whether other describes the same individual. Two
// records with equal names are considered duplicates regardless of the other fields.
func (p Person) IsSamePerson(other Person) bool {
	return strings.EqualFold(string(p.Name), string(other.Name))
}

// Clone returns a deep copy so callers can never alias slices or pointers held by a store.
func (p Person) Clone() Person {
	cp := p
	cp.Tags = append([]Tag(nil), p.Tags...)
	if p.PairedWithName != nil {
		name := *p.PairedWithName
		cp.PairedWithName = &name
	}
	cp.PairedWithID = cloneIntPtr(p.PairedWithID)
	cp.LatestLogID = cloneIntPtr(p.LatestLogID)
	return cp
}

// WithAggregates returns a copy of p carrying the supplied time served and latest log reference.
func (p Person) WithAggregates(timeServed int, latestLogID *int) Person {
	cp := p.Clone()
	cp.TimeServed = timeServed
	cp.LatestLogID = cloneIntPtr(latestLogID)
	return cp
}

// PairedWith returns a copy of p paired with partner.
func (p Person) PairedWith(partner Person) Person {
	cp := p.Clone()
	id := partner.ID
	name := partner.Name
	cp.PairedWithID = &id
	cp.PairedWithName = &name
	return cp
}

// Unpaired returns a copy of p with the pairing cleared.
func (p Person) Unpaired() Person {
	cp := p.Clone()
	cp.PairedWithID = nil
	cp.PairedWithName = nil
	return cp
}

// NormalizeTags deduplicates and sorts tags so that set semantics survive
// round trips through slices and JSON.
func NormalizeTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[Tag]struct{}, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Log is one timed interaction between a volunteer and a befriendee.
type Log struct {
	ID           int       `json:"id"`
	VolunteerID  int       `json:"volunteer_id"`
	BefriendeeID int       `json:"befriendee_id"`
	Title        string    `json:"title"`
	StartDate    time.Time `json:"start_date"`
	Duration     int       `json:"duration"`
	Remarks      string    `json:"remarks"`
}

// Involves reports whether personID is either participant of the log.
func (l Log) Involves(personID int) bool {
	return l.VolunteerID == personID || l.BefriendeeID == personID
}

// After reports whether l is later than other for latest-log selection.
// Equal start dates are broken by the higher log ID.
func (l Log) After(other Log) bool {
	if !l.StartDate.Equal(other.StartDate) {
		return l.StartDate.After(other.StartDate)
	}
	return l.ID > other.ID
}

// LatestLog returns the latest of logs according to Log.After.
func LatestLog(logs []Log) (Log, bool) {
	if len(logs) == 0 {
		return Log{}, false
	}
	latest := logs[0]
	for _, l := range logs[1:] {
		if l.After(latest) {
			latest = l
		}
	}
	return latest, true
}

// Change describes a mutation applied to an entity during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate supported CRUD operations captured in audit trail.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID int
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	for _, v := range e.Result.Violations {
		if v.Severity == SeverityBlock {
			return "transaction blocked by rules: " + v.Message
		}
	}
	return "transaction blocked by rules"
}

// ErrNotFound is returned when an ID lookup misses.
type ErrNotFound struct {
	Entity EntityType
	ID     int
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
