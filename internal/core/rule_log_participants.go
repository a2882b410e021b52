package core

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// NewLogParticipantsRule returns the rule requiring each log to reference an
// existing volunteer and an existing befriendee.
func NewLogParticipantsRule() domain.Rule {
	return logParticipantsRule{}
}

type logParticipantsRule struct{}

func (logParticipantsRule) Name() string { return RuleLogParticipants }

func (logParticipantsRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, l := range view.ListLogs() {
		if msg := checkParticipant(view, l.VolunteerID, domain.RoleVolunteer); msg != "" {
			res.Violations = append(res.Violations, participantViolation(l, msg))
		}
		if msg := checkParticipant(view, l.BefriendeeID, domain.RoleBefriendee); msg != "" {
			res.Violations = append(res.Violations, participantViolation(l, msg))
		}
		if l.Duration < 0 {
			res.Violations = append(res.Violations, participantViolation(l, fmt.Sprintf("negative duration %d", l.Duration)))
		}
	}
	return res, nil
}

func checkParticipant(view domain.RuleView, id int, role domain.Role) string {
	p, ok := view.FindPerson(id)
	if !ok {
		return fmt.Sprintf("%s %d does not exist", role, id)
	}
	if p.Role != role {
		return fmt.Sprintf("%s is not a %s", p.Name, role)
	}
	return ""
}

func participantViolation(l domain.Log, msg string) domain.Violation {
	return domain.Violation{
		Rule:     RuleLogParticipants,
		Severity: domain.SeverityBlock,
		Message:  fmt.Sprintf("log %d: %s", l.ID, msg),
		Entity:   domain.EntityLog,
		EntityID: l.ID,
	}
}
