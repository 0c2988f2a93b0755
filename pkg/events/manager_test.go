package events

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStagePercent(t *testing.T) {
	assert.Equal(t, 0, StagePercent("post_fetching"))
	assert.Equal(t, 15, StagePercent("post_fetched"))
	assert.Equal(t, 30, StagePercent("product_designed"))
	assert.Equal(t, 45, StagePercent("image_generation_started"))
	assert.Equal(t, 70, StagePercent("image_generated"))
	assert.Equal(t, 80, StagePercent("image_stamped"))
	assert.Equal(t, 100, StagePercent("commission_complete"))
	assert.Equal(t, -1, StagePercent("retrying"))
	assert.Equal(t, -1, StagePercent("failed"))
}

func TestConnectionEnqueue_DropsOldestOnOverflow(t *testing.T) {
	c := &Connection{sendCh: make(chan []byte, sendQueueSize)}

	for i := 0; i < sendQueueSize; i++ {
		c.enqueue([]byte(fmt.Sprintf("event-%d", i)))
	}
	assert.False(t, c.lossy)
	assert.Len(t, c.sendCh, sendQueueSize)

	c.enqueue([]byte("overflow"))
	assert.True(t, c.lossy)
	assert.Len(t, c.sendCh, sendQueueSize)

	// The oldest event was dropped; event-1 is now at the head and the
	// overflow event is at the tail.
	first := <-c.sendCh
	assert.Equal(t, "event-1", string(first))

	var last []byte
	for len(c.sendCh) > 0 {
		last = <-c.sendCh
	}
	assert.Equal(t, "overflow", string(last))
}

func TestSubscriberTracking(t *testing.T) {
	m := NewConnectionManager(nil, 0)

	c1 := &Connection{ID: "c1", subscriptions: make(map[string]bool), sendCh: make(chan []byte, sendQueueSize)}
	c2 := &Connection{ID: "c2", subscriptions: make(map[string]bool), sendCh: make(chan []byte, sendQueueSize)}

	m.mu.Lock()
	m.connections[c1.ID] = c1
	m.connections[c2.ID] = c2
	m.mu.Unlock()

	// No NotifyListener wired, so subscribe only touches in-memory maps.
	require.NoError(t, m.subscribe(c1, "tasks"))
	require.NoError(t, m.subscribe(c2, "tasks"))
	require.NoError(t, m.subscribe(c1, "task:t1"))
	assert.Equal(t, 2, m.subscriberCount("tasks"))
	assert.Equal(t, 1, m.subscriberCount("task:t1"))

	m.Broadcast("task:t1", []byte("hello"))
	assert.Len(t, c1.sendCh, 1)
	assert.Len(t, c2.sendCh, 0)

	m.Broadcast("tasks", []byte("global"))
	assert.Len(t, c1.sendCh, 2)
	assert.Len(t, c2.sendCh, 1)

	// Broadcast to a channel with no subscribers is a no-op.
	m.Broadcast("task:unknown", []byte("nobody"))

	m.unsubscribe(c1, "tasks")
	assert.Equal(t, 1, m.subscriberCount("tasks"))
	m.unsubscribe(c2, "tasks")
	assert.Equal(t, 0, m.subscriberCount("tasks"))
}
