package catalog

import "fmt"

// BaseVariantID identifies the synthesized variant of a simple product.
const BaseVariantID = "base"

// Variant is a purchasable size/color combination of a product.
type Variant struct {
	ID       string  `json:"id" validate:"required"`
	Size     string  `json:"size"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku"`
	ImageURL string  `json:"image_url,omitempty"`
}

// Product is the core catalog entity. Products with variants are priced
// from their variants; Price is only meaningful for simple products.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Price       *float64  `json:"price,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Draft is the admin form payload for a new or edited product.
type Draft struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=5000"`
	Category    string    `json:"category" validate:"required,max=100"`
	ImageURL    string    `json:"image_url"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Variants    []Variant `json:"variants,omitempty" validate:"dive"`
}

// HasVariants reports whether the product is sold through variants.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant returns the variant with the given id. Simple products expose a
// single synthesized variant under BaseVariantID.
func (p Product) Variant(id string) (Variant, bool) {
	if !p.HasVariants() {
		if id == BaseVariantID || id == "" {
			return p.baseVariant(), true
		}
		return Variant{}, false
	}
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func (p Product) baseVariant() Variant {
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	return Variant{
		ID:       BaseVariantID,
		Price:    price,
		ImageURL: p.ImageURL,
	}
}

// DuplicateVariantPairs returns "size/color" labels that occur more than once.
func (p Product) DuplicateVariantPairs() []string {
	seen := make(map[string]int, len(p.Variants))
	var dups []string
	for _, v := range p.Variants {
		k := fmt.Sprintf("%s/%s", v.Size, v.Color)
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (p Product) Clone() Product {
	out := p
	if p.Price != nil {
		price := *p.Price
		out.Price = &price
	}
	if p.Variants != nil {
		out.Variants = make([]Variant, len(p.Variants))
		copy(out.Variants, p.Variants)
	}
	return out
}

// Product builds a Product from the draft with the given id.
func (d Draft) Product(id int64) Product {
	return Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		Price:       d.Price,
		Variants:    d.Variants,
	}.Clone()
}

// PriceOf is a convenience for building simple products.
func PriceOf(v float64) *float64 {
	return &v
}
