package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// OrderPlacedEvent is emitted when checkout completes.
type OrderPlacedEvent struct {
	OrderNumber string    `json:"order_number"`
	SessionID   string    `json:"session_id"`
	Email       string    `json:"email"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"item_count"`
	PlacedAt    time.Time `json:"placed_at"`
}

// OrderPlacedV1 is the typed event definition for placed orders.
// Subject: events.checkout.v1.order-placed
var OrderPlacedV1 = helper.EventDefinition[OrderPlacedEvent](
	"checkout", "OrderPlaced", "v1",
)

// EnquiryReceivedEvent is emitted when the contact form is submitted.
type EnquiryReceivedEvent struct {
	EnquiryID  string    `json:"enquiry_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	ReceivedAt time.Time `json:"received_at"`
}

// EnquiryReceivedV1 is the typed event definition for enquiries.
// Subject: events.enquiry.v1.enquiry-received
var EnquiryReceivedV1 = helper.EventDefinition[EnquiryReceivedEvent](
	"enquiry", "EnquiryReceived", "v1",
)
