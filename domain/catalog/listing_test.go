package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func listingFixture() []Product {
	return []Product{
		{ID: 1, Name: "zipper pouch", Category: "Pouches", Price: PriceOf(30)},
		{ID: 2, Name: "Woven Sack", Category: "Sacks", Variants: []Variant{{ID: "a", Price: 26}, {ID: "b", Price: 18}}},
		{ID: 3, Name: "Apple Crate Liner", Category: "Sacks", Price: PriceOf(18)},
		{ID: 4, Name: "Mesh Sack", Category: "Sacks", Price: PriceOf(7.95)},
		{ID: 5, Name: "Éclair Box Bag", Category: "Pouches"},
	}
}

func TestFilterAndSort_Filter(t *testing.T) {
	products := listingFixture()

	got := FilterAndSort(products, Query{Search: "SACK"})
	assert.Equal(t, []string{"Woven Sack", "Mesh Sack"}, names(got))

	got = FilterAndSort(products, Query{Category: "Pouches"})
	assert.Equal(t, []string{"zipper pouch", "Éclair Box Bag"}, names(got))

	got = FilterAndSort(products, Query{Search: "sack", Category: "Pouches"})
	assert.Empty(t, got)

	got = FilterAndSort(products, Query{Category: AllCategories})
	assert.Len(t, got, len(products))
}

func TestFilterAndSort_Sort(t *testing.T) {
	products := listingFixture()

	tests := []struct {
		sort SortOrder
		want []string
	}{
		{SortDefault, []string{"zipper pouch", "Woven Sack", "Apple Crate Liner", "Mesh Sack", "Éclair Box Bag"}},
		{SortNameAsc, []string{"Apple Crate Liner", "Éclair Box Bag", "Mesh Sack", "Woven Sack", "zipper pouch"}},
		{SortNameDesc, []string{"zipper pouch", "Woven Sack", "Mesh Sack", "Éclair Box Bag", "Apple Crate Liner"}},
		// Woven Sack and Apple Crate Liner tie at 18 and keep insertion order.
		{SortPriceAsc, []string{"Éclair Box Bag", "Mesh Sack", "Woven Sack", "Apple Crate Liner", "zipper pouch"}},
		{SortPriceDesc, []string{"zipper pouch", "Woven Sack", "Apple Crate Liner", "Mesh Sack", "Éclair Box Bag"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterAndSort(products, Query{Sort: tt.sort})))
		})
	}

	assert.Equal(t, "zipper pouch", products[0].Name, "input must not be reordered")
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortOrder("price-asc"))
	assert.Equal(t, SortDefault, ParseSortOrder(""))
	assert.Equal(t, SortDefault, ParseSortOrder("random"))
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Pouches", "Sacks"}, Categories(listingFixture()))
}

func numbered(n int) []Product {
	out := make([]Product, n)
	for i := range out {
		out[i] = Product{ID: int64(i + 1), Name: fmt.Sprintf("Bag %02d", i+1), Category: "Bags"}
	}
	return out
}

func TestPaginate(t *testing.T) {
	products := numbered(12)

	first := Paginate(products, 1)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 12, first.TotalItems)
	require.Len(t, first.Items, 5)
	assert.Equal(t, int64(1), first.Items[0].ID)
	assert.Equal(t, int64(5), first.Items[4].ID)

	last := Paginate(products, 3)
	require.Len(t, last.Items, 2)
	assert.Equal(t, int64(11), last.Items[0].ID)
	assert.Equal(t, int64(12), last.Items[1].ID)

	assert.Equal(t, 3, Paginate(products, 99).Number)
	assert.Equal(t, 1, Paginate(products, -2).Number)

	empty := Paginate(nil, 1)
	assert.Equal(t, 0, empty.TotalPages)
	assert.Equal(t, 1, empty.Number)
	assert.Empty(t, empty.Items)
}

func TestBrowse_ResetsPageOnQueryChange(t *testing.T) {
	products := numbered(12)
	b := NewBrowse()

	b.GoTo(3)
	page := b.View(products)
	assert.Equal(t, 3, page.Number)

	changed := b.Apply(Query{Search: "bag"})
	assert.True(t, changed)
	assert.Equal(t, 1, b.Page)

	b.GoTo(2)
	assert.False(t, b.Apply(Query{Search: "bag", Category: AllCategories, Sort: SortDefault}))
	assert.Equal(t, 2, b.Page)

	assert.True(t, b.Apply(Query{Search: "bag", Sort: SortNameDesc}))
	assert.Equal(t, 1, b.Page)

	b.GoTo(3)
	assert.True(t, b.Apply(Query{Search: "bag", Sort: SortNameDesc, Category: "Bags"}))
	assert.Equal(t, 1, b.Page)
}

func TestBrowse_ClampsPage(t *testing.T) {
	b := NewBrowse()
	b.GoTo(3)
	page := b.View(numbered(6))
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, b.Page)
}
