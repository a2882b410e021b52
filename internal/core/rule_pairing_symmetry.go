package core

import (
	"context"
	"fmt"

	"scrolls/pkg/domain"
)

// NewPairingSymmetryRule returns the rule requiring pairings to be mutual,
// across roles, and to carry the partner's current name.
func NewPairingSymmetryRule() domain.Rule {
	return pairingSymmetryRule{}
}

type pairingSymmetryRule struct{}

func (pairingSymmetryRule) Name() string { return RulePairingSymmetry }

func (pairingSymmetryRule) Evaluate(_ context.Context, view domain.RuleView, _ []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, p := range view.ListPersons() {
		if p.PairedWithID == nil {
			if p.PairedWithName != nil {
				res.Violations = append(res.Violations, pairingViolation(p, fmt.Sprintf("%s carries a partner name without a partner", p.Name)))
			}
			continue
		}
		partner, ok := view.FindPerson(*p.PairedWithID)
		var msg string
		switch {
		case !ok:
			msg = fmt.Sprintf("%s is paired with missing person %d", p.Name, *p.PairedWithID)
		case partner.Role == p.Role:
			msg = fmt.Sprintf("%s and %s are both %ss", p.Name, partner.Name, p.Role)
		case partner.PairedWithID == nil || *partner.PairedWithID != p.ID:
			msg = fmt.Sprintf("%s is paired with %s but not the other way round", p.Name, partner.Name)
		case p.PairedWithName == nil || *p.PairedWithName != partner.Name:
			msg = fmt.Sprintf("%s carries a stale partner name for %s", p.Name, partner.Name)
		default:
			continue
		}
		res.Violations = append(res.Violations, pairingViolation(p, msg))
	}
	return res, nil
}

func pairingViolation(p domain.Person, msg string) domain.Violation {
	return domain.Violation{
		Rule:     RulePairingSymmetry,
		Severity: domain.SeverityBlock,
		Message:  msg,
		Entity:   domain.EntityPerson,
		EntityID: p.ID,
	}
}
