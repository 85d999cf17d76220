package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
)

// maxEntries caps the in-memory activity log.
const maxEntries = 200

// Entry is one logged storefront event.
type Entry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ListNotificationsRequest asks for the newest entries.
type ListNotificationsRequest struct {
	Limit int `json:"limit"`
}

// ListNotificationsResponse lists entries newest first.
type ListNotificationsResponse struct {
	Notifications []Entry `json:"notifications"`
}

// NotificationModule logs orders, enquiries and catalog edits for the
// shop owner.
type NotificationModule struct {
	entries []Entry
	mu      sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)
var _ mono.ServiceProviderModule = (*NotificationModule)(nil)

func NewModule() *NotificationModule {
	return &NotificationModule{
		entries: make([]Entry, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderPlacedV1, m.handleOrderPlaced, m); err != nil {
		return fmt.Errorf("failed to register OrderPlaced consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.EnquiryReceivedV1, m.handleEnquiryReceived, m); err != nil {
		return fmt.Errorf("failed to register EnquiryReceived consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductSavedV1, m.handleProductSaved, m); err != nil {
		return fmt.Errorf("failed to register ProductSaved consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductRemovedV1, m.handleProductRemoved, m); err != nil {
		return fmt.Errorf("failed to register ProductRemoved consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.HeroImageChangedV1, m.handleHeroImageChanged, m); err != nil {
		return fmt.Errorf("failed to register HeroImageChanged consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: OrderPlaced, EnquiryReceived, ProductSaved, ProductRemoved, HeroImageChanged")
	return nil
}

func (m *NotificationModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "list-notifications", json.Unmarshal, json.Marshal, m.listNotifications,
	); err != nil {
		return fmt.Errorf("failed to register list-notifications service: %w", err)
	}
	return nil
}

func (m *NotificationModule) handleOrderPlaced(_ context.Context, event events.OrderPlacedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order placed: %s (%d items)", event.OrderNumber, event.ItemCount)
	m.record(event.OrderNumber, "order_placed",
		fmt.Sprintf("Order %s placed by %s for %d items, total %.2f", event.OrderNumber, event.Email, event.ItemCount, event.Total),
		event.PlacedAt)
	return nil
}

func (m *NotificationModule) handleEnquiryReceived(_ context.Context, event events.EnquiryReceivedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Enquiry received: %s from %s", event.EnquiryID, event.Email)
	m.record(event.EnquiryID, "enquiry_received",
		fmt.Sprintf("Enquiry from %s (%s, %s)", event.Name, event.Email, event.Mobile),
		event.ReceivedAt)
	return nil
}

func (m *NotificationModule) handleProductSaved(_ context.Context, event events.ProductSavedEvent, _ *mono.Msg) error {
	verb := "updated"
	if event.Created {
		verb = "added"
	}
	log.Printf("[notification] Product %s: %d", verb, event.ProductID)
	m.record(fmt.Sprint(event.ProductID), "product_saved",
		fmt.Sprintf("Product '%s' %s in %s", event.Name, verb, event.Category),
		event.SavedAt)
	return nil
}

func (m *NotificationModule) handleProductRemoved(_ context.Context, event events.ProductRemovedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Product removed: %d", event.ProductID)
	m.record(fmt.Sprint(event.ProductID), "product_removed",
		fmt.Sprintf("Product %d removed", event.ProductID),
		event.RemovedAt)
	return nil
}

func (m *NotificationModule) handleHeroImageChanged(_ context.Context, event events.HeroImageChangedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Hero image changed")
	m.record("hero", "hero_image_changed", "Homepage banner changed", event.ChangedAt)
	return nil
}

func (m *NotificationModule) listNotifications(_ context.Context, req ListNotificationsRequest, _ *mono.Msg) (ListNotificationsResponse, error) {
	all := m.GetNotifications()
	if req.Limit > 0 && req.Limit < len(all) {
		all = all[:req.Limit]
	}
	return ListNotificationsResponse{Notifications: all}, nil
}

func (m *NotificationModule) record(id, entryType, message string, at time.Time) {
	if at.IsZero() {
		at = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, Entry{
		ID:        id,
		Type:      entryType,
		Message:   message,
		Timestamp: at,
	})
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
}

// GetNotifications returns the logged entries, newest first.
func (m *NotificationModule) GetNotifications() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		result[len(m.entries)-1-i] = e
	}
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for storefront events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
