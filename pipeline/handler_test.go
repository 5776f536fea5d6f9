package pipeline

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Waridley/rapier/geometry"
)

func TestNoopEventHandler(t *testing.T) {
	var handler NoopEventHandler

	h1, h2 := handlePair(1, 2)

	// any number of calls, any events, no observable effect
	for range 100 {
		handler.HandleIntersectionEvent(geometry.IntersectionEvent{Collider1: h1, Collider2: h2, Intersecting: true})
		handler.HandleContactEvent(geometry.ContactStoppedEvent(h1, h2), &geometry.ContactPair{})
		handler.HandleContactEvent(geometry.ContactStartedEvent(h1, h2), nil)
	}
}

type countingHandler struct {
	mu            sync.Mutex
	intersections int
	contacts      int
}

func (c *countingHandler) HandleIntersectionEvent(geometry.IntersectionEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.intersections += 1
}

func (c *countingHandler) HandleContactEvent(geometry.ContactEvent, *geometry.ContactPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contacts += 1
}

func TestTeeForwardsToAllHandlers(t *testing.T) {
	first := &countingHandler{}
	second := &countingHandler{}

	handler := Tee(first, second, NoopEventHandler{})

	h1, h2 := handlePair(1, 2)

	handler.HandleIntersectionEvent(geometry.IntersectionEvent{Collider1: h1, Collider2: h2, Intersecting: true})
	handler.HandleContactEvent(geometry.ContactStartedEvent(h1, h2), &geometry.ContactPair{})
	handler.HandleContactEvent(geometry.ContactStoppedEvent(h1, h2), &geometry.ContactPair{})

	for _, counting := range []*countingHandler{first, second} {
		require.Equal(t, 1, counting.intersections)
		require.Equal(t, 2, counting.contacts)
	}
}

func TestLogEventCollector(t *testing.T) {
	collector := NewLogEventCollector(zerolog.Nop())

	h1, h2 := handlePair(1, 2)

	// must not panic, also with a disabled logger
	collector.HandleIntersectionEvent(geometry.IntersectionEvent{Collider1: h1, Collider2: h2, Intersecting: true})
	collector.HandleContactEvent(geometry.ContactStartedEvent(h1, h2), &geometry.ContactPair{})
}
