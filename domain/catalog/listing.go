package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the number of products shown per listing page.
const PageSize = 5

// AllCategories is the category filter wildcard.
const AllCategories = "all"

// SortOrder selects the listing order.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortNameAsc   SortOrder = "name-asc"
	SortNameDesc  SortOrder = "name-desc"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// ParseSortOrder maps unknown or empty values to SortDefault.
func ParseSortOrder(s string) SortOrder {
	switch o := SortOrder(s); o {
	case SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc:
		return o
	default:
		return SortDefault
	}
}

// Query is the shopper's filter and sort input.
type Query struct {
	Search   string    `json:"search"`
	Category string    `json:"category"`
	Sort     SortOrder `json:"sort"`
}

func (q Query) normalized() Query {
	if q.Category == "" {
		q.Category = AllCategories
	}
	q.Sort = ParseSortOrder(string(q.Sort))
	return q
}

// FilterAndSort returns the products whose name contains search
// (case-insensitive) and whose category matches, in the requested order.
// Sorting is stable; the input slice is not modified.
func FilterAndSort(products []Product, q Query) []Product {
	q = q.normalized()
	needle := strings.ToLower(q.Search)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if q.Category != AllCategories && p.Category != q.Category {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortNameAsc, SortNameDesc:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b Product) int {
			c := col.CompareString(a.Name, b.Name)
			if q.Sort == SortNameDesc {
				return -c
			}
			return c
		})
	case SortPriceAsc, SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			c := compareFloat(ResolvePrice(a), ResolvePrice(b))
			if q.Sort == SortPriceDesc {
				return -c
			}
			return c
		})
	}
	return out
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Categories returns the distinct product categories in first-seen order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Page is one page of a listing.
type Page struct {
	Items      []Product `json:"items"`
	Number     int       `json:"number"`
	TotalPages int       `json:"total_pages"`
	TotalItems int       `json:"total_items"`
}

// Paginate slices products into PageSize pages. The page number is
// clamped into [1, TotalPages].
func Paginate(products []Product, page int) Page {
	total := len(products)
	pages := (total + PageSize - 1) / PageSize
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, total)
	items := []Product{}
	if start < total {
		items = products[start:end]
	}
	return Page{Items: items, Number: page, TotalPages: pages, TotalItems: total}
}

// Browse tracks a shopper's listing state. Any change to the query sends
// the shopper back to the first page.
type Browse struct {
	Query Query `json:"query"`
	Page  int   `json:"page"`
}

// NewBrowse returns the initial listing state.
func NewBrowse() Browse {
	return Browse{Query: Query{}.normalized(), Page: 1}
}

// Apply sets the query and reports whether it changed. A change resets the page.
func (b *Browse) Apply(q Query) bool {
	q = q.normalized()
	if q == b.Query {
		return false
	}
	b.Query = q
	b.Page = 1
	return true
}

// GoTo moves to the given page; values below 1 are ignored.
func (b *Browse) GoTo(page int) {
	if page >= 1 {
		b.Page = page
	}
}

// View filters, sorts and paginates products for the current state.
// The stored page is clamped to what the result actually has.
func (b *Browse) View(products []Product) Page {
	page := Paginate(FilterAndSort(products, b.Query), b.Page)
	b.Page = page.Number
	return page
}
