package catalog

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₹"

// ResolvePrice returns the minimum variant price, or the simple price
// (zero when unset) for products without variants.
func ResolvePrice(p Product) float64 {
	if !p.HasVariants() {
		if p.Price == nil {
			return 0
		}
		return *p.Price
	}
	lowest := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}
	return lowest
}

// ResolveDisplayImage prefers the selected variant's image over the product image.
func ResolveDisplayImage(p Product, selected *Variant) string {
	if selected != nil && selected.ImageURL != "" {
		return selected.ImageURL
	}
	return p.ImageURL
}

// DisplayPrice formats an amount with two decimals. Stored amounts are
// never rounded; rounding happens only here.
func DisplayPrice(amount float64) string {
	return CurrencySymbol + decimal.NewFromFloat(amount).StringFixed(2)
}

// PriceLabel is the list-page label: "From ₹X" for variant products.
func PriceLabel(p Product) string {
	if p.HasVariants() {
		return "From " + DisplayPrice(ResolvePrice(p))
	}
	return DisplayPrice(ResolvePrice(p))
}
