package usecase

import (
	"fmt"
	"sync"

	"schedule-interpreter/internal/alias"
	"schedule-interpreter/internal/interpreter"
	"schedule-interpreter/internal/model"
	"schedule-interpreter/internal/pending"
	"schedule-interpreter/internal/schedule"
)

// session is the interpreter state of one scope. Every access holds mu, so
// calls for the same session are applied strictly one after another.
type session struct {
	mu       sync.Mutex
	registry *alias.Registry
	queue    *pending.Queue
	history  *schedule.History
}

func (uc *implUseCase) newSession() *session {
	s := &session{
		registry: alias.New(uc.cfg.AliasPrefix),
		queue:    pending.New(uc.cfg.QueueCapacity, pending.WithClock(uc.cfg.Clock)),
		history:  schedule.NewHistory(model.Document{}),
	}
	doc := model.Document{}
	if uc.cfg.Seed != nil {
		doc = uc.cfg.Seed.Clone()
	}
	s.reset(doc)
	return s
}

// reset loads doc as version one of a fresh history. The registry outlives
// resets so an alias is never handed to a different item in the same session.
func (s *session) reset(doc model.Document) {
	s.registry.AssignAll(doc.Items)
	s.queue.Clear()
	s.history.Reset(doc)
}

func (s *session) aliases() map[string]string {
	out := make(map[string]string, s.registry.Len())
	for _, it := range s.history.Current().Items {
		if a, ok := s.registry.AliasOf(it.ID); ok {
			out[it.ID] = a
		}
	}
	return out
}

func (s *session) documentOutput() interpreter.DocumentOutput {
	return interpreter.DocumentOutput{
		Document: s.history.Current(),
		Aliases:  s.aliases(),
		CanUndo:  s.history.CanUndo(),
		CanRedo:  s.history.CanRedo(),
	}
}

// getOrCreate returns the session for id, creating it on first use.
func (uc *implUseCase) getOrCreate(id string) *session {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.sessions.Get(id); ok {
		return s
	}
	s := uc.newSession()
	uc.sessions.Add(id, s)
	return s
}

func (uc *implUseCase) lookup(id string) (*session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", interpreter.ErrSessionNotFound, id)
	}
	return s, nil
}
