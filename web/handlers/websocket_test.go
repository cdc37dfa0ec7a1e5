package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func TestWebSocketHub_BroadcastWithoutClients(t *testing.T) {
	hub := NewWebSocketHub()

	// Must not panic or block.
	hub.Broadcast(ReloadEvent{Type: "dataset_reloaded"})
	assert.Equal(t, 0, hub.ClientCount())
}

// TestWSHandler_QueryRoundTrip runs a live query over a WebSocket
// connection against an httptest server.
func TestWSHandler_QueryRoundTrip(t *testing.T) {
	hub := NewWebSocketHub()
	srv := httptest.NewServer(NewWSHandler(newTestSource(t), hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, wsjson.Write(ctx, conn, WSQuery{Start: 1, Finish: 6}))

	var resp PathResponse
	require.NoError(t, wsjson.Read(ctx, conn, &resp))

	assert.True(t, resp.Found)
	require.Len(t, resp.Steps, 2)
	assert.EqualValues(t, 6, resp.Steps[0].ID)
	assert.Equal(t, "Martha(6) is Mother of\nAnna(1)", resp.Rendered)
}

// TestWSHandler_UnknownPersonReply verifies query errors come back as
// error payloads on the same connection instead of closing it.
func TestWSHandler_UnknownPersonReply(t *testing.T) {
	hub := NewWebSocketHub()
	srv := httptest.NewServer(NewWSHandler(newTestSource(t), hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, wsjson.Write(ctx, conn, WSQuery{Start: 42, Finish: 1}))

	var resp ErrorResponse
	require.NoError(t, wsjson.Read(ctx, conn, &resp))
	assert.Equal(t, "UNKNOWN_PERSON", resp.Code)

	// The connection stays usable for the next query.
	require.NoError(t, wsjson.Write(ctx, conn, WSQuery{Start: 1, Finish: 6}))
	var ok PathResponse
	require.NoError(t, wsjson.Read(ctx, conn, &ok))
	assert.True(t, ok.Found)
}
