package page

import (
	"strconv"
	"strings"
)

// Kind names a storefront page.
type Kind string

const (
	Home         Kind = "home"
	ProductPage  Kind = "product"
	Cart         Kind = "cart"
	Checkout     Kind = "checkout"
	Confirmation Kind = "confirmation"
	Contact      Kind = "contact"
	Admin        Kind = "admin"
)

// Route is a parsed storefront path.
type Route struct {
	Page      Kind  `json:"page"`
	ProductID int64 `json:"product_id,omitempty"`
}

// ParseRoute maps a path such as "/product/12" or "#/cart" to a Route.
// Anything unrecognised, including a product path without a numeric id,
// is the home page.
func ParseRoute(path string) Route {
	path = strings.TrimPrefix(path, "#")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch Kind(parts[0]) {
	case ProductPage:
		if len(parts) > 1 {
			if id, err := strconv.ParseInt(parts[1], 10, 64); err == nil && id > 0 {
				return Route{Page: ProductPage, ProductID: id}
			}
		}
	case Cart, Checkout, Confirmation, Contact, Admin:
		return Route{Page: Kind(parts[0])}
	}
	return Route{Page: Home}
}

// Path renders the route back to a path.
func (r Route) Path() string {
	switch r.Page {
	case Home:
		return "/"
	case ProductPage:
		return "/product/" + strconv.FormatInt(r.ProductID, 10)
	default:
		return "/" + string(r.Page)
	}
}
