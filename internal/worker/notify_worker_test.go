package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Process must swallow bad payloads without touching the mailer: the worker
// pool has no retry, so a panic here would kill the goroutine.
func TestNotifyWorker_IgnoresBadPayloads(t *testing.T) {
	w := NewNotifyWorker(nil)

	assert.NotPanics(t, func() {
		w.Process(context.Background(), json.RawMessage(`{invalid`))
		w.Process(context.Background(), json.RawMessage(`{"subject":"no recipient"}`))
	})
}

// The dispatcher and the worker agree on the job envelope shape.
func TestJobEnvelope(t *testing.T) {
	payload, err := json.Marshal(OrderNoticePayload{ToEmail: "a@b.c", Subject: "s", Body: "b"})
	require.NoError(t, err)

	encoded, err := json.Marshal(Job{Type: "order-notice", Payload: payload})
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "order-notice", decoded.Type)

	var got OrderNoticePayload
	require.NoError(t, json.Unmarshal(decoded.Payload, &got))
	assert.Equal(t, "a@b.c", got.ToEmail)
}
