package core

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// NewLatestLogRule returns the rule requiring each person's latest log
// reference to point at the latest log involving them, or at nothing when
// they have no logs.
func NewLatestLogRule() domain.Rule {
	return latestLogRule{}
}

type latestLogRule struct{}

func (latestLogRule) Name() string { return RuleLatestLog }

func (latestLogRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	byPerson := logsByPerson(view)
	res := domain.Result{}
	for _, p := range view.ListPersons() {
		latest, ok := domain.LatestLog(byPerson[p.ID])
		var msg string
		switch {
		case !ok && p.LatestLogID != nil:
			msg = fmt.Sprintf("%s references latest log %d but has no logs", p.Name, *p.LatestLogID)
		case ok && p.LatestLogID == nil:
			msg = fmt.Sprintf("%s has logs but no latest log, expected %d", p.Name, latest.ID)
		case ok && *p.LatestLogID != latest.ID:
			msg = fmt.Sprintf("%s references latest log %d, expected %d", p.Name, *p.LatestLogID, latest.ID)
		default:
			continue
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     RuleLatestLog,
			Severity: domain.SeverityBlock,
			Message:  msg,
			Entity:   domain.EntityPerson,
			EntityID: p.ID,
		})
	}
	return res, nil
}
