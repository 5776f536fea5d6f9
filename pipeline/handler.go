// Package pipeline contains the event-reporting boundary of the collision
// simulation: the EventHandler capability the narrow phase notifies, and a
// set of ready-made handler implementations that collect, log or forward
// those notifications.
package pipeline

import "github.com/Waridley/rapier/geometry"

// EventHandler is notified of events generated by the physics pipeline.
//
// Implementations will typically collect these events for future
// processing. The simulation invokes the handler from several worker
// goroutines at once, so every implementation must be safe for concurrent
// use without external locking. Handler methods must not block the
// simulation and must not panic; there is nothing to report back, a
// delivery that cannot happen is simply dropped.
type EventHandler interface {
	// HandleIntersectionEvent is called when the intersection state of two
	// colliders changes. The event is owned by the handler.
	HandleIntersectionEvent(event geometry.IntersectionEvent)

	// HandleContactEvent is called when two colliders start or stop
	// touching. The pair describes the contact in detail and is only valid
	// for the duration of this call; handlers that keep any of it must
	// copy it out (see geometry.ContactPair.Clone).
	HandleContactEvent(event geometry.ContactEvent, pair *geometry.ContactPair)
}

// NoopEventHandler discards every event. It is the handler to use when no
// consumer is attached.
type NoopEventHandler struct{}

var _ EventHandler = NoopEventHandler{}

func (NoopEventHandler) HandleIntersectionEvent(geometry.IntersectionEvent) {}

func (NoopEventHandler) HandleContactEvent(geometry.ContactEvent, *geometry.ContactPair) {}

// Tee fans every event out to each of the given handlers, in order.
func Tee(handlers ...EventHandler) EventHandler {
	return teeEventHandler(handlers)
}

type teeEventHandler []EventHandler

func (t teeEventHandler) HandleIntersectionEvent(event geometry.IntersectionEvent) {
	for _, handler := range t {
		handler.HandleIntersectionEvent(event)
	}
}

func (t teeEventHandler) HandleContactEvent(event geometry.ContactEvent, pair *geometry.ContactPair) {
	for _, handler := range t {
		handler.HandleContactEvent(event, pair)
	}
}
