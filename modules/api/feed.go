package api

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
)

// handleCartFeed handles GET /ws/cart. The current cart is sent on
// connect; later changes arrive through the hub.
func (m *APIModule) handleCartFeed(conn *websocket.Conn) {
	session, _ := conn.Locals(SessionContextKey).(string)
	if session == "" {
		_ = conn.Close()
		return
	}

	client := &feedClient{
		id:        uuid.New().String(),
		sessionID: session,
		conn:      conn,
	}

	current, err := m.cartPort.GetCart(context.Background(), session)
	if err != nil {
		log.Printf("[api] Failed to load cart for feed %s: %v", client.id, err)
		_ = conn.Close()
		return
	}
	if err := writeFeed(conn, snapshotMessage(current)); err != nil {
		_ = conn.Close()
		return
	}

	m.hub.Register(client)
	defer m.hub.Unregister(client)

	// Clients only listen; reads detect disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// snapshotMessage converts a cart to the feed format.
func snapshotMessage(c *cart.CartResponse) CartFeedMessage {
	lines := make([]CartFeedLine, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartFeedLine{
			Key:         l.Key,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			VariantID:   l.VariantID,
			Price:       l.Price,
			Quantity:    l.Quantity,
		}
	}
	return CartFeedMessage{
		Type:         "snapshot",
		SessionID:    c.SessionID,
		Lines:        lines,
		Total:        c.Total,
		DisplayTotal: c.DisplayTotal,
		ItemCount:    c.ItemCount,
	}
}

func writeFeed(conn feedConn, msg CartFeedMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(feedWriteWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}
