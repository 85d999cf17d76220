package api

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.messages...)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// stalledConn blocks every write until it is closed.
type stalledConn struct {
	release chan struct{}
	once    sync.Once
}

func newStalledConn() *stalledConn {
	return &stalledConn{release: make(chan struct{})}
}

func (s *stalledConn) WriteMessage(int, []byte) error {
	<-s.release
	return errors.New("connection closed")
}

func (s *stalledConn) SetWriteDeadline(time.Time) error { return nil }

func (s *stalledConn) Close() error {
	s.once.Do(func() { close(s.release) })
	return nil
}

func (s *stalledConn) isClosed() bool {
	select {
	case <-s.release:
		return true
	default:
		return false
	}
}

func startHub(t *testing.T) (*CartHub, context.CancelFunc) {
	t.Helper()

	hub := NewCartHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		hub.Wait()
	})
	return hub, cancel
}

func TestCartHub_SendsOnlyToSession(t *testing.T) {
	hub, _ := startHub(t)

	a1, a2, b := &fakeConn{}, &fakeConn{}, &fakeConn{}
	hub.Register(&feedClient{id: "a1", sessionID: "A", conn: a1})
	hub.Register(&feedClient{id: "a2", sessionID: "A", conn: a2})
	hub.Register(&feedClient{id: "b", sessionID: "B", conn: b})
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 10*time.Millisecond)

	hub.Send("A", CartFeedMessage{Type: "cart", SessionID: "A", ItemCount: 2})

	require.Eventually(t, func() bool {
		return len(a1.received()) == 1 && len(a2.received()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, b.received())

	var msg CartFeedMessage
	require.NoError(t, json.Unmarshal(a1.received()[0], &msg))
	assert.Equal(t, 2, msg.ItemCount)
}

func TestCartHub_Unregister(t *testing.T) {
	hub, _ := startHub(t)

	conn := &fakeConn{}
	client := &feedClient{id: "c", sessionID: "A", conn: conn}
	hub.Register(client)
	hub.Unregister(client)
	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	hub.Send("A", CartFeedMessage{Type: "cart"})
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, conn.received())
}

func TestCartHub_StopClosesFeeds(t *testing.T) {
	hub, cancel := startHub(t)

	conn := &fakeConn{}
	hub.Register(&feedClient{id: "c", sessionID: "A", conn: conn})
	cancel()
	hub.Wait()

	assert.True(t, conn.isClosed())
	assert.Zero(t, hub.ClientCount())

	// Registration after stop must not block.
	hub.Register(&feedClient{id: "late", sessionID: "A", conn: &fakeConn{}})
}

func TestHandleCartChanged(t *testing.T) {
	m := NewModule(Config{}, &mockLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	go m.hub.Run(ctx)
	t.Cleanup(func() {
		cancel()
		m.hub.Wait()
	})

	conn := &fakeConn{}
	m.hub.Register(&feedClient{id: "c", sessionID: "S", conn: conn})

	require.NoError(t, m.handleCartChanged(context.Background(), events.CartChangedEvent{
		SessionID: "S",
		Lines: []events.CartLineInfo{
			{Key: "2-dc-white-500", ProductID: 2, VariantID: "dc-white-500", Price: 250, Quantity: 3},
		},
		Total:     750,
		ItemCount: 3,
	}, nil))

	require.Eventually(t, func() bool { return len(conn.received()) == 1 }, time.Second, 10*time.Millisecond)

	var msg CartFeedMessage
	require.NoError(t, json.Unmarshal(conn.received()[0], &msg))
	assert.Equal(t, "cart", msg.Type)
	assert.Equal(t, "₹750.00", msg.DisplayTotal)
	require.Len(t, msg.Lines, 1)
	assert.Equal(t, 3, msg.Lines[0].Quantity)
}

func TestCartHub_StalledFeedDoesNotBlockOthers(t *testing.T) {
	hub, _ := startHub(t)

	stalled, healthy := newStalledConn(), &fakeConn{}
	hub.Register(&feedClient{id: "slow", sessionID: "A", conn: stalled})
	hub.Register(&feedClient{id: "ok", sessionID: "B", conn: healthy})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	for i := range feedBufferSize + 4 {
		hub.Send("A", CartFeedMessage{Type: "cart", SessionID: "A", ItemCount: i})
	}
	for i := range 3 {
		hub.Send("B", CartFeedMessage{Type: "cart", SessionID: "B", ItemCount: i})
	}

	require.Eventually(t, func() bool {
		return len(healthy.received()) == 3
	}, time.Second, 10*time.Millisecond)

	// The feed that fell too far behind is dropped and closed.
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.True(t, stalled.isClosed())
}
