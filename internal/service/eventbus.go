package service

import (
	"sync"

	"github.com/bnema/mediahub/internal/domain"
)

// EventPublisher receives ingest progress for one media record.
type EventPublisher interface {
	Publish(mediaID string, event Event)
}

// Event is one ingest progress notification, streamed to SSE clients as JSON.
type Event struct {
	Type     string                  `json:"type"`
	Status   domain.IngestStatus     `json:"status"`
	Message  string                  `json:"message,omitempty"`
	JobID    int64                   `json:"jobId,omitempty"`
	Playback *domain.TranscodeResult `json:"videoUrl,omitempty"`
}

const EventTypeStatus = "status"

type EventBus struct {
	subscribers map[string][]chan Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

func (eb *EventBus) Subscribe(mediaID string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 16)
	eb.subscribers[mediaID] = append(eb.subscribers[mediaID], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(mediaID string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[mediaID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[mediaID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[mediaID]) == 0 {
		delete(eb.subscribers, mediaID)
	}
}

// Publish never blocks; a subscriber with a full buffer misses the event.
func (eb *EventBus) Publish(mediaID string, event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[mediaID] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (eb *EventBus) SubscriberCount(mediaID string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[mediaID])
}
