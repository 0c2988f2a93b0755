package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
	assert.Equal(t, "tasks", GlobalTasksChannel)
}

func TestInjectDBEventID(t *testing.T) {
	payload := TaskUpdatePayload{
		Type:   EventTypeTaskUpdate,
		TaskID: "t1",
		Data:   TaskData{Status: "in_progress", Stage: "post_fetched", Progress: 15},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(raw, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, EventTypeTaskUpdate, m["type"])
	assert.Equal(t, "t1", m["task_id"])
}

func TestTruncateIfNeeded_SmallPayloadUnchanged(t *testing.T) {
	in := `{"type":"task_update","task_id":"t1"}`
	out, err := truncateIfNeeded(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTruncateIfNeeded_LargePayloadKeepsRoutingFields(t *testing.T) {
	big := map[string]any{
		"type":        EventTypeTaskUpdate,
		"task_id":     "t1",
		"db_event_id": 7,
		"data":        map[string]any{"message": strings.Repeat("x", 10000)},
	}
	raw, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(raw))
	require.NoError(t, err)
	assert.Less(t, len(out), 8000)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, EventTypeTaskUpdate, m["type"])
	assert.Equal(t, "t1", m["task_id"])
	assert.Equal(t, true, m["truncated"])
	assert.Equal(t, float64(7), m["db_event_id"])
	assert.NotContains(t, m, "data")
}

func TestClientMessageUnmarshal(t *testing.T) {
	var msg ClientMessage
	err := json.Unmarshal([]byte(`{"action":"catchup","channel":"task:t1","last_event_id":12}`), &msg)
	require.NoError(t, err)
	assert.Equal(t, "catchup", msg.Action)
	assert.Equal(t, "task:t1", msg.Channel)
	require.NotNil(t, msg.LastEventID)
	assert.Equal(t, 12, *msg.LastEventID)

	msg = ClientMessage{}
	err = json.Unmarshal([]byte(`{"action":"subscribe","channel":"tasks"}`), &msg)
	require.NoError(t, err)
	assert.Nil(t, msg.LastEventID)
}
