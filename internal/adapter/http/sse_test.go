package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/service"
)

type stubMedia map[string]*domain.Media

func (s stubMedia) Get(_ context.Context, id string) (*domain.Media, error) {
	m, ok := s[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func newSSEServer(t *testing.T, bus *service.EventBus, media stubMedia) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /media/{id}/events", NewSSEHandler(bus, media).Events())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func openStream(t *testing.T, srv *httptest.Server, id string) (*bufio.Reader, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/media/"+id+"/events", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))
	return bufio.NewReader(res.Body), cancel
}

// readEvent returns the next event, skipping keep-alive comments.
func readEvent(t *testing.T, r *bufio.Reader) (string, service.Event) {
	t.Helper()
	var name string
	var event service.Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event))
		case line == "" && name != "":
			return name, event
		}
	}
}

func TestSSE_StreamsUntilSettled(t *testing.T) {
	bus := service.NewEventBus()
	media := stubMedia{"m1": {ID: "m1", IngestStatus: domain.IngestStatusProcessing}}
	srv := newSSEServer(t, bus, media)

	stream, cancel := openStream(t, srv, "m1")
	defer cancel()

	name, first := readEvent(t, stream)
	assert.Equal(t, service.EventTypeStatus, name)
	assert.Equal(t, domain.IngestStatusProcessing, first.Status)
	require.Equal(t, 1, bus.SubscriberCount("m1"))

	playback := domain.NewTranscodeResult(domain.DefaultLadder(), "stream")
	bus.Publish("m1", service.Event{Type: service.EventTypeStatus, Status: domain.IngestStatusReady, JobID: 7, Playback: playback})

	_, ready := readEvent(t, stream)
	assert.Equal(t, domain.IngestStatusReady, ready.Status)
	assert.Equal(t, int64(7), ready.JobID)
	require.NotNil(t, ready.Playback)
	assert.Equal(t, playback.MasterPlaylist, ready.Playback.MasterPlaylist)

	// The stream stays open after a settled status until the client leaves.
	assert.Equal(t, 1, bus.SubscriberCount("m1"))
	cancel()
	assert.Eventually(t, func() bool { return bus.SubscriberCount("m1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestSSE_SettledMediaSendsSnapshot(t *testing.T) {
	bus := service.NewEventBus()
	media := stubMedia{"m1": {ID: "m1", IngestStatus: domain.IngestStatusFailed, IngestError: "encode 720p: exit status 1"}}
	srv := newSSEServer(t, bus, media)

	stream, cancel := openStream(t, srv, "m1")
	defer cancel()

	_, event := readEvent(t, stream)
	assert.Equal(t, domain.IngestStatusFailed, event.Status)
	assert.Equal(t, "encode 720p: exit status 1", event.Message)
}

func TestSSE_KeepAlive(t *testing.T) {
	bus := service.NewEventBus()
	media := stubMedia{"m1": {ID: "m1", IngestStatus: domain.IngestStatusPending}}
	mux := http.NewServeMux()
	h := NewSSEHandler(bus, media)
	h.keepAlive = 10 * time.Millisecond
	mux.HandleFunc("GET /media/{id}/events", h.Events())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	stream, cancel := openStream(t, srv, "m1")
	defer cancel()
	readEvent(t, stream)

	line, err := stream.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": keep-alive\n", line)
}

func TestSSE_UnknownMedia(t *testing.T) {
	bus := service.NewEventBus()
	srv := newSSEServer(t, bus, stubMedia{})

	res, err := http.Get(srv.URL + "/media/nope/events")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, 0, bus.SubscriberCount("nope"))
}
