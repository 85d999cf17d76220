package catalog

// PlaceholderImageURL is used for products saved without an image.
const PlaceholderImageURL = "https://placehold.co/600x400?text=Arvind+Trader"

// DefaultHeroImageURL is the homepage banner used until an admin sets one.
const DefaultHeroImageURL = "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?q=80&w=2070&auto=format&fit=crop"

// DefaultProducts returns the seed catalog used when nothing is persisted.
// Each call returns fresh slices.
func DefaultProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "PP Woven Sack",
			Description: "Heavy-duty woven polypropylene sack for grain, sugar and cement. UV stabilised, stitched bottom.",
			Category:    "Woven Sacks",
			ImageURL:    "https://images.unsplash.com/photo-1605600659908-0ef719419d41?q=80&w=1974&auto=format&fit=crop",
			Variants: []Variant{
				{ID: "ws-white-25", Size: "25kg", Color: "White", Price: 18, SKU: "WS-WH-25"},
				{ID: "ws-white-50", Size: "50kg", Color: "White", Price: 26, SKU: "WS-WH-50"},
				{ID: "ws-green-50", Size: "50kg", Color: "Green", Price: 28, SKU: "WS-GR-50"},
			},
		},
		{
			ID:          2,
			Name:        "Non-Woven D-Cut Bag",
			Description: "Reusable non-woven carry bag with D-cut handle. Custom printing available on bulk orders.",
			Category:    "Carry Bags",
			ImageURL:    "https://images.unsplash.com/photo-1597484661643-2f5fef640dd1?q=80&w=1974&auto=format&fit=crop",
			Variants: []Variant{
				{ID: "dc-white-500", Size: "500g", Color: "White", Price: 250, SKU: "DC-WH-500"},
				{ID: "dc-black-500", Size: "500g", Color: "Black", Price: 160, SKU: "DC-BK-500"},
				{ID: "dc-white-1kg", Size: "1kg", Color: "White", Price: 420, SKU: "DC-WH-1K"},
			},
		},
		{
			ID:          3,
			Name:        "BOPP Laminated Bag",
			Description: "Glossy multicolour printed laminated bag for rice, flour and pet food retail packs.",
			Category:    "Laminated Bags",
			ImageURL:    "https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?q=80&w=1974&auto=format&fit=crop",
			Variants: []Variant{
				{ID: "bopp-5", Size: "5kg", Color: "Printed", Price: 14.5, SKU: "BOPP-5"},
				{ID: "bopp-10", Size: "10kg", Color: "Printed", Price: 19.75, SKU: "BOPP-10"},
			},
		},
		{
			ID:          4,
			Name:        "Loop Handle Shopping Bag",
			Description: "Soft loop handle bag for garment and footwear stores. Sold per hundred pieces.",
			Category:    "Carry Bags",
			ImageURL:    "https://images.unsplash.com/photo-1591085686350-798c0f9faa7f?q=80&w=1974&auto=format&fit=crop",
			Price:       PriceOf(899),
		},
		{
			ID:          5,
			Name:        "FIBC Jumbo Bag",
			Description: "One-tonne bulk bag with four lifting loops and discharge spout for industrial material.",
			Category:    "Bulk Bags",
			ImageURL:    "https://images.unsplash.com/photo-1586528116493-a029325540fa?q=80&w=1974&auto=format&fit=crop",
			Price:       PriceOf(549.99),
		},
		{
			ID:          6,
			Name:        "Leno Mesh Bag",
			Description: "Breathable leno mesh bag for onions, potatoes and fresh produce with drawstring closure.",
			Category:    "Woven Sacks",
			ImageURL:    "https://images.unsplash.com/photo-1518977676601-b53f82aba655?q=80&w=1974&auto=format&fit=crop",
			Price:       PriceOf(7.95),
		},
	}
}
