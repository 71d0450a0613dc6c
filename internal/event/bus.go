// Package event carries fire-and-forget notifications from the stores and
// the creation workflow to interested consumers. Delivery is at-most-once
// per occurrence with no queueing or replay.
package event

import "sync"

// Type names a notification.
type Type string

const (
	TypeTaskCreated         Type = "task_created"
	TypeTaskUpdated         Type = "task_updated"
	TypeTaskDeleted         Type = "task_deleted"
	TypeMovedToIdeas        Type = "moved_to_ideas"
	TypeQ1TaskCompleted     Type = "q1_task_completed"
	TypePersistenceDegraded Type = "persistence_degraded"
)

// Event is a single broadcast occurrence. Fields lists the changed field
// names for TypeTaskUpdated so independent UI surfaces can stay in sync
// without shared references.
type Event struct {
	Type   Type
	UserID string
	TaskID string
	Fields []string
}

// Handler receives published events. Handlers run synchronously on the
// publisher's goroutine and must not block.
type Handler func(Event)

// Bus is a minimal typed observer list.
type Bus struct {
	mu   sync.RWMutex
	next int
	subs map[int]Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers h and returns a function that removes it again.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers e to every current subscriber.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
