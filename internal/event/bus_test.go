package event

import "testing"

func TestBus(t *testing.T) {
	t.Run("publish reaches all subscribers once", func(t *testing.T) {
		b := NewBus()
		var got1, got2 int
		b.Subscribe(func(e Event) { got1++ })
		b.Subscribe(func(e Event) { got2++ })

		b.Publish(Event{Type: TypeTaskCreated, TaskID: "t1"})

		if got1 != 1 || got2 != 1 {
			t.Errorf("expected one delivery each, got %d and %d", got1, got2)
		}
	})

	t.Run("unsubscribe stops delivery", func(t *testing.T) {
		b := NewBus()
		var got int
		unsub := b.Subscribe(func(e Event) { got++ })

		b.Publish(Event{Type: TypeTaskUpdated})
		unsub()
		b.Publish(Event{Type: TypeTaskUpdated})

		if got != 1 {
			t.Errorf("expected 1 delivery, got %d", got)
		}
	})

	t.Run("publish with no subscribers is a no-op", func(t *testing.T) {
		b := NewBus()
		b.Publish(Event{Type: TypeQ1TaskCompleted})
	})
}
