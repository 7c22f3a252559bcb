package app

import (
	"slices"

	"github.com/dkeye/Intercom/internal/domain"
)

// Assignment tells Initiator to send an offer to Target.
type Assignment struct {
	Initiator domain.ConnID
	Target    domain.ConnID
}

// PlanNegotiations returns one assignment per unordered pair of participants.
// The larger id always initiates toward the smaller one, so re-planning after
// a membership change never yields two initiators for the same pair.
// Duplicate ids are ignored.
func PlanNegotiations(participants []domain.ConnID) []Assignment {
	ids := slices.Clone(participants)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	out := make([]Assignment, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			out = append(out, Assignment{Initiator: ids[j], Target: ids[i]})
		}
	}
	return out
}
