package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/service"
)

const keepAliveInterval = 15 * time.Second

type mediaGetter interface {
	Get(ctx context.Context, id string) (*domain.Media, error)
}

// SSEHandler streams ingest progress of one media record as JSON events.
type SSEHandler struct {
	events    *service.EventBus
	media     mediaGetter
	keepAlive time.Duration
}

func NewSSEHandler(events *service.EventBus, media mediaGetter) *SSEHandler {
	return &SSEHandler{
		events:    events,
		media:     media,
		keepAlive: keepAliveInterval,
	}
}

func snapshotEvent(m *domain.Media) service.Event {
	return service.Event{
		Type:     service.EventTypeStatus,
		Status:   m.IngestStatus,
		Message:  m.IngestError,
		Playback: m.Playback,
	}
}

// settled reports whether no further progress is expected for the status.
func settled(status domain.IngestStatus) bool {
	return status == domain.IngestStatusNone ||
		status == domain.IngestStatusReady ||
		status == domain.IngestStatusFailed
}

// sseWrite writes one event with a single-line JSON payload.
func sseWrite(w http.ResponseWriter, event service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		// Subscribe before reading the record so no transition is missed in between.
		ch := h.events.Subscribe(id)
		defer h.events.Unsubscribe(id, ch)

		media, err := h.media.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ctx := r.Context()
		current := snapshotEvent(media)
		if err := sseWrite(w, current); err != nil {
			return
		}
		// Once settled, leave it to the client to close the stream.
		if settled(current.Status) {
			<-ctx.Done()
			return
		}

		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				if err := sseWrite(w, event); err != nil {
					logger.Debug.Printf("sse client for %s gone: %v", logger.SanitizeForLog(id), err)
					return
				}
				if settled(event.Status) {
					<-ctx.Done()
					return
				}
			}
		}
	}
}
