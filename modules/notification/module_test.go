package notification

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlers_RecordNewestFirst(t *testing.T) {
	m := NewModule()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, m.handleOrderPlaced(ctx, events.OrderPlacedEvent{
		OrderNumber: "AT-ABCDEFGHIJ", Email: "a@b.example", Total: 327.95, ItemCount: 3, PlacedAt: now,
	}, nil))
	require.NoError(t, m.handleEnquiryReceived(ctx, events.EnquiryReceivedEvent{
		EnquiryID: "e1", Name: "Sunita", Email: "s@x.example", Mobile: "9876543210", ReceivedAt: now,
	}, nil))
	require.NoError(t, m.handleProductSaved(ctx, events.ProductSavedEvent{
		ProductID: 7, Name: "Mesh Bag", Category: "Woven Sacks", Created: true,
	}, nil))
	require.NoError(t, m.handleProductRemoved(ctx, events.ProductRemovedEvent{ProductID: 7}, nil))
	require.NoError(t, m.handleHeroImageChanged(ctx, events.HeroImageChangedEvent{ImageURL: "x.jpg"}, nil))

	got := m.GetNotifications()
	require.Len(t, got, 5)
	assert.Equal(t, "hero_image_changed", got[0].Type)
	assert.Equal(t, "product_removed", got[1].Type)
	assert.Equal(t, "Product 'Mesh Bag' added in Woven Sacks", got[2].Message)
	assert.Equal(t, "enquiry_received", got[3].Type)
	assert.Equal(t, "AT-ABCDEFGHIJ", got[4].ID)
	assert.Contains(t, got[4].Message, "327.95")
	assert.False(t, got[0].Timestamp.IsZero())
}

func TestRecord_CapsEntries(t *testing.T) {
	m := NewModule()
	for i := range maxEntries + 10 {
		m.record(fmt.Sprint(i), "test", "msg", time.Time{})
	}

	got := m.GetNotifications()
	require.Len(t, got, maxEntries)
	assert.Equal(t, fmt.Sprint(maxEntries+9), got[0].ID)
	assert.Equal(t, "10", got[len(got)-1].ID)
}

func TestListNotifications_Limit(t *testing.T) {
	m := NewModule()
	for i := range 5 {
		m.record(fmt.Sprint(i), "test", "msg", time.Now())
	}

	resp, err := m.listNotifications(context.Background(), ListNotificationsRequest{Limit: 2}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	assert.Equal(t, "4", resp.Notifications[0].ID)

	resp, err = m.listNotifications(context.Background(), ListNotificationsRequest{}, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 5)
}
