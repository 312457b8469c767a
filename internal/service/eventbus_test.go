package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/mediahub/internal/domain"
)

func TestEventBus_PublishReachesOnlyThatMedia(t *testing.T) {
	bus := NewEventBus()
	a := bus.Subscribe("a")
	b := bus.Subscribe("b")
	defer bus.Unsubscribe("a", a)
	defer bus.Unsubscribe("b", b)

	bus.Publish("a", Event{Type: EventTypeStatus, Status: domain.IngestStatusProcessing})

	select {
	case ev := <-a:
		assert.Equal(t, domain.IngestStatusProcessing, ev.Status)
	default:
		t.Fatal("expected event for subscriber a")
	}
	assert.Empty(t, b)
}

func TestEventBus_SlowSubscriberDoesNotBlock(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Subscribe("a")

	for range 32 {
		bus.Publish("a", Event{Type: EventTypeStatus})
	}

	assert.Len(t, ch, cap(ch))
	bus.Unsubscribe("a", ch)
	assert.Zero(t, bus.SubscriberCount("a"))

	_, open := <-ch
	for open {
		_, open = <-ch
	}
}
