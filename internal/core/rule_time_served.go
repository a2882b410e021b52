package core

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// NewTimeServedRule returns the rule requiring every person's time served to
// equal the total duration of the logs involving them.
func NewTimeServedRule() domain.Rule {
	return timeServedRule{}
}

type timeServedRule struct{}

func (timeServedRule) Name() string { return RuleTimeServed }

func (timeServedRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	byPerson := logsByPerson(view)
	res := domain.Result{}
	for _, p := range view.ListPersons() {
		total := 0
		for _, l := range byPerson[p.ID] {
			total += l.Duration
		}
		if p.TimeServed != total {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     RuleTimeServed,
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("%s has %d hours served but logs total %d", p.Name, p.TimeServed, total),
				Entity:   domain.EntityPerson,
				EntityID: p.ID,
			})
		}
	}
	return res, nil
}
