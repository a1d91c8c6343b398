package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionLog records join and close callbacks in the order they ran.
type sessionLog struct {
	mu      sync.Mutex
	ids     []string
	events  []string
	joinErr error
}

func (c *sessionLog) join(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, "join:"+id)
	return c.joinErr
}

func (c *sessionLog) add(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = append(c.ids, id)
	c.events = append(c.events, "close:"+id)
}

func (c *sessionLog) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.ids...)
}

func (c *sessionLog) history() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.events...)
}

// startHub serves websocket connections registered on a running hub and
// reports the session id of each connection on the returned channel.
func startHub(t *testing.T) (*Hub, *httptest.Server, chan string, *sessionLog) {
	t.Helper()

	return startHubWith(t, &sessionLog{})
}

func startHubWith(t *testing.T, closed *sessionLog) (*Hub, *httptest.Server, chan string, *sessionLog) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	sessions := make(chan string, 4)
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client, err := hub.Connect(conn, 7, closed.join, closed.add)
		if err != nil {
			sessions <- ""
			return
		}
		sessions <- client.SessionID()
	}))

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})

	return hub, srv, sessions, closed
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	return conn
}

func TestHub_EmitDeliversToSession(t *testing.T) {
	hub, srv, sessions, _ := startHub(t)

	conn := dial(t, srv)
	defer conn.Close()
	sessionID := <-sessions

	require.Eventually(t, func() bool { return hub.Sessions() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, hub.Emit(sessionID, "new-order", map[string]int{"id": 42}))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(message, &got))
	assert.Equal(t, "new-order", got.Event)
	assert.Equal(t, 42, got.Data["id"])
}

func TestHub_EmitUnknownSession(t *testing.T) {
	hub, _, _, _ := startHub(t)

	assert.ErrorIs(t, hub.Emit("missing", "new-order", nil), ErrSessionNotFound)
}

func TestHub_CloseUnregistersAndCallsBack(t *testing.T) {
	hub, srv, sessions, closed := startHub(t)

	conn := dial(t, srv)
	sessionID := <-sessions
	require.Eventually(t, func() bool { return hub.Sessions() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool { return hub.Sessions() == 0 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return len(closed.list()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{sessionID}, closed.list())
	assert.ErrorIs(t, hub.Emit(sessionID, "new-order", nil), ErrSessionNotFound)
}

func TestHub_SessionsAreDistinct(t *testing.T) {
	hub, srv, sessions, _ := startHub(t)

	first := dial(t, srv)
	defer first.Close()
	second := dial(t, srv)
	defer second.Close()

	a, b := <-sessions, <-sessions
	assert.NotEqual(t, a, b)
	require.Eventually(t, func() bool { return hub.Sessions() == 2 }, time.Second, 10*time.Millisecond)
}

func TestHub_JoinCompletesBeforeClose(t *testing.T) {
	hub, srv, sessions, log := startHub(t)

	conn := dial(t, srv)
	require.NoError(t, conn.Close())
	sessionID := <-sessions

	require.Eventually(t, func() bool { return len(log.list()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"join:" + sessionID, "close:" + sessionID}, log.history())
	require.Eventually(t, func() bool { return hub.Sessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_FailedJoinClosesConnection(t *testing.T) {
	hub, srv, sessions, log := startHubWith(t, &sessionLog{joinErr: errors.New("database down")})

	conn := dial(t, srv)
	defer conn.Close()
	assert.Empty(t, <-sessions)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "the server side closes the connection")

	assert.Zero(t, hub.Sessions())
	assert.Empty(t, log.list(), "no close callback without a session")
	assert.Len(t, log.history(), 1)
}
