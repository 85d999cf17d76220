package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ProductSavedEvent is emitted when an admin adds or edits a product.
type ProductSavedEvent struct {
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Created   bool      `json:"created"`
	SavedAt   time.Time `json:"saved_at"`
}

// ProductSavedV1 is the typed event definition for product saves.
// Subject: events.catalog.v1.product-saved
var ProductSavedV1 = helper.EventDefinition[ProductSavedEvent](
	"catalog", "ProductSaved", "v1",
)

// ProductRemovedEvent is emitted when an admin deletes a product.
type ProductRemovedEvent struct {
	ProductID int64     `json:"product_id"`
	RemovedAt time.Time `json:"removed_at"`
}

// ProductRemovedV1 is the typed event definition for product removal.
// Subject: events.catalog.v1.product-removed
var ProductRemovedV1 = helper.EventDefinition[ProductRemovedEvent](
	"catalog", "ProductRemoved", "v1",
)

// HeroImageChangedEvent is emitted when the homepage banner changes.
type HeroImageChangedEvent struct {
	ImageURL  string    `json:"image_url"`
	ChangedAt time.Time `json:"changed_at"`
}

// HeroImageChangedV1 is the typed event definition for banner changes.
// Subject: events.catalog.v1.hero-image-changed
var HeroImageChangedV1 = helper.EventDefinition[HeroImageChangedEvent](
	"catalog", "HeroImageChanged", "v1",
)
