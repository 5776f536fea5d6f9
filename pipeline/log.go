package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/Waridley/rapier/geometry"
)

// LogEventCollector writes every event to a structured logger at debug
// level. Useful to trace what the narrow phase reports without wiring up a
// consumer.
type LogEventCollector struct {
	log zerolog.Logger
}

var _ EventHandler = &LogEventCollector{}

func NewLogEventCollector(log zerolog.Logger) *LogEventCollector {
	return &LogEventCollector{log: log}
}

func (c *LogEventCollector) HandleIntersectionEvent(event geometry.IntersectionEvent) {
	c.log.Debug().
		Stringer("collider1", event.Collider1).
		Stringer("collider2", event.Collider2).
		Bool("intersecting", event.Intersecting).
		Msg("intersection event")
}

func (c *LogEventCollector) HandleContactEvent(event geometry.ContactEvent, pair *geometry.ContactPair) {
	c.log.Debug().
		Stringer("kind", event.Kind).
		Stringer("collider1", event.Collider1).
		Stringer("collider2", event.Collider2).
		Int("manifolds", len(pair.Manifolds)).
		Msg("contact event")
}
