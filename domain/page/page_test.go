package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"/", Route{Page: Home}},
		{"", Route{Page: Home}},
		{"#/", Route{Page: Home}},
		{"/product/12", Route{Page: ProductPage, ProductID: 12}},
		{"#/product/1700000000123", Route{Page: ProductPage, ProductID: 1700000000123}},
		{"/product/", Route{Page: Home}},
		{"/product/abc", Route{Page: Home}},
		{"/product/-3", Route{Page: Home}},
		{"/cart", Route{Page: Cart}},
		{"/checkout/", Route{Page: Checkout}},
		{"#/confirmation", Route{Page: Confirmation}},
		{"/contact", Route{Page: Contact}},
		{"/admin", Route{Page: Admin}},
		{"/unknown/page", Route{Page: Home}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRoute(tt.path))
		})
	}
}

func TestRoute_Path(t *testing.T) {
	assert.Equal(t, "/", Route{Page: Home}.Path())
	assert.Equal(t, "/product/7", Route{Page: ProductPage, ProductID: 7}.Path())
	assert.Equal(t, "/cart", Route{Page: Cart}.Path())
	assert.Equal(t, ParseRoute("/product/7"), ParseRoute(Route{Page: ProductPage, ProductID: 7}.Path()))
}

func TestNewMeta(t *testing.T) {
	m := NewMeta("PP Woven Sack", "Heavy-duty sack", "https://img/sack.jpg")
	assert.Equal(t, "PP Woven Sack | Arvind Trader", m.Title)
	assert.Equal(t, "Heavy-duty sack", m.Tags["og:description"])
	assert.Equal(t, "https://img/sack.jpg", m.Tags["twitter:image"])

	home := NewMeta("", "", "")
	assert.Equal(t, SiteName, home.Title)
	assert.Equal(t, DefaultDescription, home.Description)
	assert.Equal(t, DefaultImage, home.Image)

	uploaded := NewMeta("Bag", "d", "data:image/png;base64,AAAA")
	assert.Equal(t, DefaultImage, uploaded.Image)
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Your Cart", Cart.Title())
	assert.Equal(t, "Contact Us", Contact.Title())
	assert.Equal(t, "Wholesale PP Bags & Sacks", Home.Title())
	assert.Equal(t, "Wholesale PP Bags & Sacks | Arvind Trader", NewMeta(Home.Title(), "", "").Title)
}
