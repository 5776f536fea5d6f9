package pipeline

import (
	"github.com/Waridley/rapier/geometry"
	"github.com/Waridley/rapier/mpsc"
)

// ChannelEventCollector collects events into a pair of mpsc queues, one per
// event category. The two queues are fully independent: a stalled consumer
// of one category never delays delivery on the other, and delivering
// different categories from different worker goroutines does not contend on
// a shared lock.
//
// The collector only holds the sending endpoints. The matching receivers
// stay with whoever built the queues and are drained there.
type ChannelEventCollector struct {
	intersectionEvents *mpsc.Sender[geometry.IntersectionEvent]
	contactEvents      *mpsc.Sender[geometry.ContactEvent]
}

var _ EventHandler = &ChannelEventCollector{}

// NewChannelEventCollector builds an event handler from the sending
// endpoints of two queues.
func NewChannelEventCollector(
	intersectionEvents *mpsc.Sender[geometry.IntersectionEvent],
	contactEvents *mpsc.Sender[geometry.ContactEvent],
) *ChannelEventCollector {
	return &ChannelEventCollector{
		intersectionEvents: intersectionEvents,
		contactEvents:      contactEvents,
	}
}

func (c *ChannelEventCollector) HandleIntersectionEvent(event geometry.IntersectionEvent) {
	// a closed receiver just means nobody listens anymore
	_ = c.intersectionEvents.Send(event)
}

func (c *ChannelEventCollector) HandleContactEvent(event geometry.ContactEvent, _ *geometry.ContactPair) {
	// the borrowed pair is not valid beyond this call and is not forwarded
	_ = c.contactEvents.Send(event)
}
