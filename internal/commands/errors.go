package commands

import (
	"fmt"

	"scrolls/pkg/domain"
)

// Error is a failed command. Message is the user-facing prefix; Err carries
// the cause and stays reachable through errors.As / errors.Is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func fail(message string, err error) *Error { return &Error{Message: message, Err: err} }

// InvalidIndexError reports a displayed index outside the shown list.
type InvalidIndexError struct {
	Entity domain.EntityType
	Index  int // one-based, as typed by the user
	Size   int
}

func (e InvalidIndexError) Error() string {
	if e.Entity == domain.EntityLog {
		return MessageInvalidLogDisplayedIndex
	}
	return MessageInvalidPersonDisplayedIndex
}

// PairedPersonDeletionError rejects deleting a person who still has a partner.
type PairedPersonDeletionError struct {
	Name domain.Name
}

func (e PairedPersonDeletionError) Error() string { return MessageContactPairedBeforeDelete }

// DuplicatePersonError rejects a second person with the same name.
type DuplicatePersonError struct {
	Name domain.Name
}

func (e DuplicatePersonError) Error() string { return MessageDuplicatePerson }

// PairingError rejects a pair or unpair whose participants are in the wrong state.
type PairingError struct {
	Reason string
}

func (e PairingError) Error() string { return e.Reason }

func alreadyPaired(p domain.Person) PairingError {
	return PairingError{Reason: fmt.Sprintf("%s is already paired", p.Name)}
}
