package pipeline

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/Waridley/rapier/geometry"
)

func TestNATSEventCollector(t *testing.T) {
	nc, err := nats.Connect(nats.DefaultURL)
	if err != nil {
		t.Skipf("no nats server available: %v", err)
	}
	t.Cleanup(nc.Close)

	sub, err := nc.SubscribeSync("events.test.intersections")
	require.NoError(t, err)
	t.Cleanup(func() { _ = sub.Unsubscribe() })

	collector := NewNATSEventCollector(nc, "events.test")

	h1, h2 := handlePair(1, 2)
	collector.HandleIntersectionEvent(geometry.IntersectionEvent{Collider1: h1, Collider2: h2, Intersecting: true})

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var event geometry.IntersectionEvent
	require.NoError(t, json.Unmarshal(msg.Data, &event))
	require.Equal(t, h1, event.Collider1)
	require.Equal(t, h2, event.Collider2)
	require.True(t, event.Intersecting)
}
