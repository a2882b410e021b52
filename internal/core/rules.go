package core

import "scrolls/pkg/domain"

// Rule names reported in violations.
const (
	RuleTimeServed      = "time_served_consistency"
	RuleLatestLog       = "latest_log_consistency"
	RulePairingSymmetry = "pairing_symmetry"
	RuleLogParticipants = "log_participants"
)

// NewDefaultRulesEngine builds a rules engine with the built-in invariant set.
func NewDefaultRulesEngine() *domain.RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(NewLogParticipantsRule())
	engine.Register(NewPairingSymmetryRule())
	engine.Register(NewTimeServedRule())
	engine.Register(NewLatestLogRule())
	return engine
}

func logsByPerson(view domain.RuleView) map[int][]domain.Log {
	out := make(map[int][]domain.Log)
	for _, l := range view.ListLogs() {
		out[l.VolunteerID] = append(out[l.VolunteerID], l)
		out[l.BefriendeeID] = append(out[l.BefriendeeID], l)
	}
	return out
}
