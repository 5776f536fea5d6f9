package pipeline

import (
	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"github.com/Waridley/rapier/geometry"
)

// NATSEventCollector publishes events as JSON on two NATS subjects, one per
// event category. Like every event handler it is fire and forget: publish
// and marshalling failures are dropped so that a broken connection can
// never stall or destabilize the simulation.
type NATSEventCollector struct {
	conn *nats.Conn

	intersectionSubject string
	contactSubject      string
}

var _ EventHandler = &NATSEventCollector{}

// NewNATSEventCollector builds a collector publishing on
// "<prefix>.intersections" and "<prefix>.contacts".
func NewNATSEventCollector(conn *nats.Conn, prefix string) *NATSEventCollector {
	return &NATSEventCollector{
		conn:                conn,
		intersectionSubject: prefix + ".intersections",
		contactSubject:      prefix + ".contacts",
	}
}

func (c *NATSEventCollector) HandleIntersectionEvent(event geometry.IntersectionEvent) {
	c.publish(c.intersectionSubject, event)
}

func (c *NATSEventCollector) HandleContactEvent(event geometry.ContactEvent, _ *geometry.ContactPair) {
	c.publish(c.contactSubject, event)
}

func (c *NATSEventCollector) publish(subject string, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	// nats.Conn.Publish buffers without waiting for the server
	_ = c.conn.Publish(subject, payload)
}
