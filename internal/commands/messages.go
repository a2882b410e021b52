package commands

import (
	"fmt"
	"strings"

	"scrolls/pkg/domain"
)

// Shared user-facing messages.
const (
	MessagePersonsListedOverview         = "%d persons listed!"
	MessagePersonsListedOverviewWithRole = "%d %ss listed!"
	MessageLogsListedOverview            = "%d logs listed!"
	MessageInvalidPersonDisplayedIndex   = "The person index provided is invalid"
	MessageInvalidLogDisplayedIndex      = "The log index provided is invalid"
	MessageContactPairedBeforeDelete     = "Please unpair the contact before deleting."
	MessageDuplicatePerson               = "This person already exists in the address book"
	MessageNotPairedForLog               = "The volunteer and befriendee must be paired with each other to log an interaction."
	MessageRoleChangeRefused             = "The role of a person who is paired or has logs cannot be changed."
)

// DateLayout is the accepted and displayed start date format.
const DateLayout = "2006-01-02"

// FormatPerson renders a person for feedback messages.
func FormatPerson(p domain.Person) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s; Role: %s; Tags: ", p.Name, p.Phone, p.Email, p.Address, p.Role)
	for _, t := range domain.TagNames(p.Tags) {
		fmt.Fprintf(&b, "[%s]", t)
	}
	if p.PairedWithName != nil {
		fmt.Fprintf(&b, "; Paired with: %s", *p.PairedWithName)
	}
	fmt.Fprintf(&b, "; Time served: %d", p.TimeServed)
	return b.String()
}

// FormatLog renders a log for feedback messages.
func FormatLog(l domain.Log) string {
	return fmt.Sprintf("%s; Start date: %s; Duration: %d; Remarks: %s",
		l.Title, l.StartDate.Format(DateLayout), l.Duration, l.Remarks)
}

// RenderLists renders the filtered volunteer, befriendee and log views with the
// one-based indices commands accept.
func RenderLists(ds domain.ReadOnlyDatastore) string {
	var b strings.Builder
	persons := ds.PersonStore()
	renderSection(&b, "Volunteers", formatPersons(persons.FilteredVolunteerList()))
	renderSection(&b, "Befriendees", formatPersons(persons.FilteredBefriendeeList()))
	logs := ds.LogStore().FilteredLogList()
	lines := make([]string, len(logs))
	for i, l := range logs {
		lines[i] = FormatLog(l)
	}
	renderSection(&b, "Logs", lines)
	return strings.TrimSuffix(b.String(), "\n")
}

func formatPersons(list []domain.Person) []string {
	lines := make([]string, len(list))
	for i, p := range list {
		lines[i] = FormatPerson(p)
	}
	return lines
}

func renderSection(b *strings.Builder, title string, lines []string) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(lines) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, line := range lines {
		fmt.Fprintf(b, "  %d. %s\n", Index(i).OneBased(), line)
	}
}
