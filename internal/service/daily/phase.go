package daily

import (
	"context"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// PhaseView is the phase snapshot served to clients.
type PhaseView struct {
	cycle.CyclePhaseInfo
	CycleDate cycle.Date
}

// GetPhase reports the phase at the current instant.
func (s *Service) GetPhase(_ context.Context) PhaseView {
	now := s.now()
	return PhaseView{
		CyclePhaseInfo: s.schedule.PhaseInfo(now, cycle.WithPhaseOverride(s.override)),
		CycleDate:      s.schedule.CycleDate(now),
	}
}
