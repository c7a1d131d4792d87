package events

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestHubPublishOrder(t *testing.T) {
	t.Parallel()

	hub := NewHub[int](testLogger())

	var order []string
	first := hub.Subscribe(func(v int) { order = append(order, "first") })
	second := hub.Subscribe(func(v int) { order = append(order, "second") })
	defer first.Cancel()
	defer second.Cancel()

	hub.Publish(1)

	// Subscribers run synchronously in subscription order.
	require.Equal(t, []string{"first", "second"}, order)
}

func TestHubCancel(t *testing.T) {
	t.Parallel()

	hub := NewHub[string](testLogger())

	var got []string
	sub := hub.Subscribe(func(v string) { got = append(got, v) })

	hub.Publish("a")
	sub.Cancel()
	hub.Publish("b")

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, 0, hub.Len())
}

func TestHubCancelIsIdempotent(t *testing.T) {
	t.Parallel()

	hub := NewHub[int](testLogger())
	sub := hub.Subscribe(func(int) {})

	sub.Cancel()
	sub.Cancel()

	assert.Equal(t, 0, hub.Len())
}

func TestHubSubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	hub := NewHub[int](testLogger())

	var lateCalls int
	sub := hub.Subscribe(func(v int) {
		// A subscription added mid-publish must not see the current event.
		hub.Subscribe(func(int) { lateCalls++ })
	})
	defer sub.Cancel()

	hub.Publish(1)
	assert.Equal(t, 0, lateCalls)

	hub.Publish(2)
	assert.Equal(t, 1, lateCalls)
}
