package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Name is a person's display name.
type Name string

// Phone is a person's phone number.
type Phone string

// Email is a person's email address.
type Email string

// Address is a person's postal address.
type Address string

// Tag is a single alphanumeric label attached to a person.
type Tag string

var (
	nameRe  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phoneRe = regexp.MustCompile(`^\d{3,}$`)
	emailRe = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9+_.-]*[A-Za-z0-9])?@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9]){1,}$`)
	tagRe   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
)

// ValidationError reports a field that failed its format constraint.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// NewName validates raw as a name.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if !nameRe.MatchString(v) {
		return "", ValidationError{Field: "name", Value: raw, Message: "names should only contain alphanumeric characters and spaces, and it should not be blank"}
	}
	return Name(v), nil
}

// NewPhone validates raw as a phone number.
func NewPhone(raw string) (Phone, error) {
	v := strings.TrimSpace(raw)
	if !phoneRe.MatchString(v) {
		return "", ValidationError{Field: "phone", Value: raw, Message: "phone numbers should only contain numbers, and it should be at least 3 digits long"}
	}
	return Phone(v), nil
}

// NewEmail validates raw as an email address of the form local-part@domain.
func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if !emailRe.MatchString(v) {
		return "", ValidationError{Field: "email", Value: raw, Message: "emails should be of the format local-part@domain"}
	}
	return Email(v), nil
}

// NewAddress validates raw as a non-blank address.
func NewAddress(raw string) (Address, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", ValidationError{Field: "address", Value: raw, Message: "addresses can take any values, and it should not be blank"}
	}
	return Address(v), nil
}

// NewTag validates raw as a tag name.
func NewTag(raw string) (Tag, error) {
	v := strings.TrimSpace(raw)
	if !tagRe.MatchString(v) {
		return "", ValidationError{Field: "tag", Value: raw, Message: "tag names should be alphanumeric"}
	}
	return Tag(v), nil
}

// Validate checks every format-constrained field of the person.
func (p Person) Validate() error {
	if _, err := NewName(string(p.Name)); err != nil {
		return err
	}
	if _, err := NewPhone(string(p.Phone)); err != nil {
		return err
	}
	if _, err := NewEmail(string(p.Email)); err != nil {
		return err
	}
	if _, err := NewAddress(string(p.Address)); err != nil {
		return err
	}
	if _, err := ParseRole(string(p.Role)); err != nil {
		return ValidationError{Field: "role", Value: string(p.Role), Message: err.Error()}
	}
	for _, t := range p.Tags {
		if _, err := NewTag(string(t)); err != nil {
			return err
		}
	}
	if p.TimeServed < 0 {
		return ValidationError{Field: "time served", Value: fmt.Sprint(p.TimeServed), Message: "must not be negative"}
	}
	return nil
}

// Validate checks the log's own fields. Participant references are checked by the rules engine.
func (l Log) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return ValidationError{Field: "title", Value: l.Title, Message: "title should not be blank"}
	}
	if l.Duration < 0 {
		return ValidationError{Field: "duration", Value: fmt.Sprint(l.Duration), Message: "duration must be a non-negative number of hours"}
	}
	if l.StartDate.IsZero() {
		return ValidationError{Field: "start date", Value: "", Message: "start date is required"}
	}
	return nil
}
