package usecase

import (
	"context"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/conversation"
	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

// Pipeline runs one conversation turn. *orchestrator.Orchestrator
// satisfies it.
type Pipeline interface {
	NewState(input string, prior []model.Message, opts ...agent.StateOption) *agent.State
	Run(ctx context.Context, st *agent.State) *agent.State
}

type implUseCase struct {
	pipeline Pipeline
	repo     repository.Repository
	l        log.Logger
	now      func() time.Time
	newID    func() string
}

var _ conversation.UseCase = (*implUseCase)(nil)

type Option func(*implUseCase)

func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// WithIDGenerator replaces the session id source.
func WithIDGenerator(gen func() string) Option {
	return func(uc *implUseCase) {
		uc.newID = gen
	}
}

// New creates a conversation UseCase over pipeline and repo.
func New(pipeline Pipeline, repo repository.Repository, l log.Logger, opts ...Option) conversation.UseCase {
	uc := &implUseCase{
		pipeline: pipeline,
		repo:     repo,
		l:        l,
		now:      time.Now,
		newID:    newSessionID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
