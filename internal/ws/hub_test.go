package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startHub(t *testing.T) (*Hub, func()) {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	return h, func() {
		cancel()
		<-done
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func TestHub_NotifyTargetsUser(t *testing.T) {
	h, stop := startHub(t)
	defer stop()

	alice, bob := uuid.New(), uuid.New()
	ca := &Client{hub: h, userID: alice, send: make(chan []byte, 4)}
	cb := &Client{hub: h, userID: bob, send: make(chan []byte, 4)}
	h.Register(ca)
	h.Register(cb)
	waitForClients(t, h, 2)

	h.Notify(alice, "sport_selected", map[string]string{"sport": "mma"})

	select {
	case msg := <-ca.send:
		var evt Event
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, "sport_selected", evt.Type)
		assert.NotEmpty(t, evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("alice did not receive the event")
	}

	select {
	case <-cb.send:
		t.Fatal("bob received alice's event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h, stop := startHub(t)
	defer stop()

	c := &Client{hub: h, userID: uuid.New(), send: make(chan []byte, 1)}
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_StopClosesClients(t *testing.T) {
	h, stop := startHub(t)

	c := &Client{hub: h, userID: uuid.New(), send: make(chan []byte, 1)}
	h.Register(c)
	waitForClients(t, h, 1)

	stop()

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, h.ClientCount())
}

func TestHub_CallsAfterStopDoNotBlock(t *testing.T) {
	h, stop := startHub(t)
	stop()

	finished := make(chan struct{})
	late := &Client{hub: h, userID: uuid.New(), send: make(chan []byte, 1)}
	go func() {
		defer close(finished)
		for i := 0; i < 200; i++ {
			h.Unregister(&Client{hub: h, userID: uuid.New(), send: make(chan []byte)})
		}
		h.Register(late)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("unregister blocked on a stopped hub")
	}

	_, ok := <-late.send
	assert.False(t, ok)
}

func TestHub_NilSafe(t *testing.T) {
	var h *Hub
	h.Notify(uuid.New(), "intake_submitted", nil)
	h.Register(nil)
	assert.Equal(t, 0, h.ClientCount())
}

func TestOriginChecker(t *testing.T) {
	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "https://app.example")

	assert.True(t, originChecker(nil)(req))
	assert.True(t, originChecker([]string{"*"})(req))
	assert.True(t, originChecker([]string{"https://app.example"})(req))
	assert.False(t, originChecker([]string{"https://other.example"})(req))
}
