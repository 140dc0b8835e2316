package usecase

import (
	"context"

	"schedule-interpreter/internal/interpreter"
)

// Stats counts cached sessions.
func (uc *implUseCase) Stats(ctx context.Context) interpreter.StatsOutput {
	uc.mu.Lock()
	n := uc.sessions.Len()
	uc.mu.Unlock()

	return interpreter.StatsOutput{
		Sessions:        n,
		SessionCapacity: uc.cfg.SessionCacheSize,
		SessionTTL:      uc.cfg.SessionTTL,
		Seeded:          uc.cfg.Seed != nil,
		SinkConfigured:  uc.sink != nil,
	}
}
