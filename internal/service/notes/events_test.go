package notes

import (
	"testing"

	"github.com/jaqueline-monteiro/goldencity-memo-api/internal/model"
)

func TestEventService_SubscribePublish(t *testing.T) {
	events := NewEventService()

	ch1 := events.Subscribe()
	ch2 := events.Subscribe()
	defer events.Unsubscribe(ch1)
	defer events.Unsubscribe(ch2)

	events.Publish(NoteEvent{Type: EventCreated, Note: model.Note{ID: "id-1"}})

	for i, ch := range []chan NoteEvent{ch1, ch2} {
		select {
		case event := <-ch:
			if event.Note.ID != "id-1" {
				t.Errorf("subscriber %d: expected note ID %q, got %q", i, "id-1", event.Note.ID)
			}
		default:
			t.Errorf("subscriber %d: expected event", i)
		}
	}
}

func TestEventService_Unsubscribe(t *testing.T) {
	events := NewEventService()

	ch := events.Subscribe()
	events.Unsubscribe(ch)

	// Канал закрыт после отписки
	if _, ok := <-ch; ok {
		t.Error("Expected channel to be closed after unsubscribe")
	}

	// Публикация после отписки не должна паниковать
	events.Publish(NoteEvent{Type: EventDeleted, Note: model.Note{ID: "id-2"}})
}

func TestEventService_BackpressureDrop(t *testing.T) {
	events := NewEventService()

	ch := events.Subscribe()
	defer events.Unsubscribe(ch)

	// Переполняем буфер: лишние события пропускаются, Publish не блокируется
	for i := 0; i < 25; i++ {
		events.Publish(NoteEvent{Type: EventCreated, Note: model.Note{ID: "id"}})
	}

	if got := len(ch); got != cap(ch) {
		t.Errorf("Expected channel to hold exactly %d buffered events, got %d", cap(ch), got)
	}
}
