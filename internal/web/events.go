// Package web provides the live room update stream for browser clients
package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/navikt/zhotel/internal/service"
	"github.com/r3labs/sse/v2"
)

const (
	// EventsPath is where clients subscribe to room updates
	EventsPath = "/events"
	// RoomsStream is the name of the stream carrying room changes
	RoomsStream = "rooms"
)

// EventStream publishes room changes as server-sent events
type EventStream struct {
	server *sse.Server
}

// NewEventStream creates the event server with the rooms stream registered.
// Events are not replayed; clients load the current state from /api/rooms.
func NewEventStream() *EventStream {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(RoomsStream)

	return &EventStream{
		server: server,
	}
}

// ServeHTTP subscribes the client to the rooms stream
func (e *EventStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := r
	if r.URL.Query().Get("stream") == "" {
		req = r.Clone(r.Context())
		q := req.URL.Query()
		q.Set("stream", RoomsStream)
		req.URL.RawQuery = q.Encode()
	}

	log.Printf("Event stream client connected from %s", r.RemoteAddr)
	e.server.ServeHTTP(w, req)
	log.Printf("Event stream client from %s disconnected", r.RemoteAddr)
}

// NotifyRoomChange publishes the change to every subscriber.
// It matches service.RoomUpdateCallback.
func (e *EventStream) NotifyRoomChange(change service.RoomChange) {
	data, err := json.Marshal(change)
	if err != nil {
		log.Printf("Error marshalling room change: %v", err)
		return
	}

	e.server.Publish(RoomsStream, &sse.Event{
		Event: []byte("room-" + change.Type),
		Data:  data,
	})
}

// SetupRoutes registers the event stream on the mux
func (e *EventStream) SetupRoutes(mux *http.ServeMux) {
	mux.Handle(EventsPath, e)
}

// Shutdown closes all subscriber connections
func (e *EventStream) Shutdown() {
	e.server.Close()
}
