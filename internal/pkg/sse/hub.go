package sse

import (
	"sync"
)

// Board event names published by the mark and report services.
const (
	EventMarkCreated   = "mark.created"
	EventMarkClosed    = "mark.closed"
	EventReportUpdated = "report.updated"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Event string
	Data  interface{}
}

// Hub manages SSE subscribers and event broadcasting. Every terminal sees
// the same board, so events are broadcast to all subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and cleanup function
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Publish sends an event to every subscriber
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// TotalSubscribers returns the number of active subscribers
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
