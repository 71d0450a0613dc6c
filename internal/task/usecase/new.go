package usecase

import (
	"sync"
	"time"

	"eisenhower-task-management/internal/classifier"
	"eisenhower-task-management/internal/event"
	"eisenhower-task-management/internal/session"
	"eisenhower-task-management/internal/task"
	"eisenhower-task-management/pkg/log"
)

// classifyTimeout bounds one background classification call, independent of
// the HTTP request that scheduled it.
const classifyTimeout = 30 * time.Second

type implUseCase struct {
	l          log.Logger
	sessions   *session.Manager
	classifier classifier.Classifier
	bus        *event.Bus

	// pending tracks in-flight classification continuations so shutdown and
	// tests can wait for them.
	pending sync.WaitGroup
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase.
func New(l log.Logger, sessions *session.Manager, c classifier.Classifier, bus *event.Bus) *implUseCase {
	return &implUseCase{
		l:          l,
		sessions:   sessions,
		classifier: c,
		bus:        bus,
	}
}

// Wait blocks until all scheduled classification continuations finish.
func (uc *implUseCase) Wait() {
	uc.pending.Wait()
}
