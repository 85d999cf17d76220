package page

import "strings"

// SiteName is appended to every page title.
const SiteName = "Arvind Trader"

// DefaultDescription is used when a page has none of its own.
const DefaultDescription = "Arvind Trader supplies PP woven sacks, non-woven carry bags, laminated and bulk bags at wholesale prices."

// DefaultImage is the share image for pages without a product image.
const DefaultImage = "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?q=80&w=1200&auto=format&fit=crop"

// Meta is the document metadata for one page view.
type Meta struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Tags        map[string]string `json:"tags"`
}

// NewMeta builds metadata for a page. Empty description and image fall back
// to the site defaults; inline data URIs are not shareable and are replaced too.
func NewMeta(title, description, image string) Meta {
	full := SiteName
	if title != "" && title != SiteName {
		full = title + " | " + SiteName
	}
	if description == "" {
		description = DefaultDescription
	}
	if image == "" || strings.HasPrefix(image, "data:") {
		image = DefaultImage
	}

	return Meta{
		Title:       full,
		Description: description,
		Image:       image,
		Tags: map[string]string{
			"description":         description,
			"og:title":            full,
			"og:description":      description,
			"og:image":            image,
			"og:site_name":        SiteName,
			"twitter:card":        "summary_large_image",
			"twitter:title":       full,
			"twitter:description": description,
			"twitter:image":       image,
		},
	}
}

// Title is the page heading used in metadata for pages without their own
// content title.
func (k Kind) Title() string {
	switch k {
	case Cart:
		return "Your Cart"
	case Checkout:
		return "Checkout"
	case Confirmation:
		return "Order Confirmed"
	case Contact:
		return "Contact Us"
	case Admin:
		return "Admin"
	default:
		return "Wholesale PP Bags & Sacks"
	}
}
