package catalog

// Selection is the shopper's current color/size choice on a product page.
// A zero Selection means nothing is selected.
type Selection struct {
	Color   string   `json:"color"`
	Size    string   `json:"size"`
	Variant *Variant `json:"variant,omitempty"`
}

// Valid reports whether the selection points at an existing variant.
func (s Selection) Valid() bool {
	return s.Variant != nil
}

// Colors lists distinct variant colors in first-seen order.
func Colors(p Product) []string {
	return distinct(p.Variants, func(v Variant) string { return v.Color })
}

// SizesFor lists distinct sizes available in the given color.
func SizesFor(p Product, color string) []string {
	var vs []Variant
	for _, v := range p.Variants {
		if v.Color == color {
			vs = append(vs, v)
		}
	}
	return distinct(vs, func(v Variant) string { return v.Size })
}

// InitialSelection selects the first variant, or nothing for simple products.
func InitialSelection(p Product) Selection {
	if !p.HasVariants() {
		return Selection{}
	}
	first := p.Variants[0]
	return Selection{Color: first.Color, Size: first.Size, Variant: &first}
}

// SelectVariant resolves a color/size request against the product's variants.
// Empty color or size keep the current value. When the requested color has
// no variant in the requested size, the first size available in that color
// is chosen. The result is either a matching variant or the zero Selection.
func SelectVariant(p Product, current Selection, color, size string) Selection {
	if !p.HasVariants() {
		return Selection{}
	}
	if color == "" {
		color = current.Color
	}
	if size == "" {
		size = current.Size
	}

	if v, ok := findVariant(p, color, size); ok {
		return Selection{Color: color, Size: size, Variant: &v}
	}

	sizes := SizesFor(p, color)
	if len(sizes) == 0 {
		return Selection{}
	}
	v, _ := findVariant(p, color, sizes[0])
	return Selection{Color: color, Size: sizes[0], Variant: &v}
}

// findVariant returns the first variant matching both fields.
func findVariant(p Product, color, size string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Color == color && v.Size == size {
			return v, true
		}
	}
	return Variant{}, false
}

func distinct(vs []Variant, field func(Variant) string) []string {
	seen := make(map[string]struct{}, len(vs))
	var out []string
	for _, v := range vs {
		f := field(v)
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
