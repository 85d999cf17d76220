package api

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/page"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
	catalogmod "github.com/rohit-kumar-in/Arvind-Trader/modules/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/checkout"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/enquiry"
)

// maxUploadSize caps admin image uploads.
const maxUploadSize = 5 << 20

// handleHealth handles GET /health.
func (m *APIModule) handleHealth(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module":     "api",
			"addr":       m.cfg.Addr,
			"cart_feeds": m.hub.ClientCount(),
		},
	})
}

// handlePage handles GET /api/v1/pages?path=.
func (m *APIModule) handlePage(c *fiber.Ctx) error {
	route := page.ParseRoute(c.Query("path", "/"))
	resp := PageResponse{Route: route, Path: route.Path()}

	if route.Page != page.ProductPage {
		resp.Meta = page.NewMeta(route.Page.Title(), "", "")
		return c.JSON(resp)
	}

	detail, err := m.catalogPort.GetProduct(c.UserContext(), route.ProductID)
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		resp.Meta = page.NewMeta("Product Not Found", "", "")
	case err != nil:
		return err
	default:
		resp.Meta = page.NewMeta(detail.Product.Name, detail.Product.Description, detail.DisplayImage)
	}
	return c.JSON(resp)
}

// handleGetHero handles GET /api/v1/hero.
func (m *APIModule) handleGetHero(c *fiber.Ctx) error {
	url, err := m.catalogPort.HeroImage(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(HeroResponse{ImageURL: url})
}

// handleListProducts handles GET /api/v1/products.
func (m *APIModule) handleListProducts(c *fiber.Ctx) error {
	resp, err := m.catalogPort.ListProducts(c.UserContext(), &catalogmod.ListProductsRequest{
		SessionID: sessionID(c),
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Sort:      c.Query("sort"),
		Page:      c.QueryInt("page", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleGetProduct handles GET /api/v1/products/:id.
func (m *APIModule) handleGetProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	resp, err := m.catalogPort.GetProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleSelectVariant handles GET /api/v1/products/:id/selection.
func (m *APIModule) handleSelectVariant(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	resp, err := m.catalogPort.SelectVariant(c.UserContext(), &catalogmod.SelectVariantRequest{
		ProductID:    id,
		CurrentColor: c.Query("current_color"),
		CurrentSize:  c.Query("current_size"),
		Color:        c.Query("color"),
		Size:         c.Query("size"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleGetCart handles GET /api/v1/cart.
func (m *APIModule) handleGetCart(c *fiber.Ctx) error {
	resp, err := m.cartPort.GetCart(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleAddCartItem handles POST /api/v1/cart/items.
func (m *APIModule) handleAddCartItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ProductID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Product ID is required")
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Quantity must be at least 1")
	}

	resp, err := m.cartPort.AddItem(c.UserContext(), &cart.AddItemRequest{
		SessionID: sessionID(c),
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// handleUpdateCartItem handles PATCH /api/v1/cart/items/:key.
func (m *APIModule) handleUpdateCartItem(c *fiber.Ctx) error {
	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.cartPort.UpdateQuantity(c.UserContext(), &cart.UpdateQuantityRequest{
		SessionID: sessionID(c),
		Key:       c.Params("key"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleRemoveCartItem handles DELETE /api/v1/cart/items/:key.
func (m *APIModule) handleRemoveCartItem(c *fiber.Ctx) error {
	resp, err := m.cartPort.RemoveItem(c.UserContext(), &cart.RemoveItemRequest{
		SessionID: sessionID(c),
		Key:       c.Params("key"),
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleClearCart handles DELETE /api/v1/cart.
func (m *APIModule) handleClearCart(c *fiber.Ctx) error {
	resp, err := m.cartPort.Clear(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleCheckout handles POST /api/v1/checkout.
func (m *APIModule) handleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.checkoutPort.PlaceOrder(c.UserContext(), &checkout.PlaceOrderRequest{
		SessionID: sessionID(c),
		Name:      req.Name,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// handleGetOrder handles GET /api/v1/orders/:number.
func (m *APIModule) handleGetOrder(c *fiber.Ctx) error {
	resp, err := m.checkoutPort.GetOrder(c.UserContext(), c.Params("number"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleContact handles POST /api/v1/contact.
func (m *APIModule) handleContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.enquiryPort.Submit(c.UserContext(), &enquiry.SubmitEnquiryRequest{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		Requirement: req.Requirement,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// handleAdminLogin handles POST /api/v1/admin/login.
func (m *APIModule) handleAdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.adminPort.Login(c.UserContext(), req.Secret)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleAddProduct handles POST /api/v1/admin/products.
func (m *APIModule) handleAddProduct(c *fiber.Ctx) error {
	var draft catalog.Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.catalogPort.AddProduct(c.UserContext(), draft)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// handleUpdateProduct handles PUT /api/v1/admin/products/:id.
func (m *APIModule) handleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	var draft catalog.Draft
	if err := c.BodyParser(&draft); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := m.catalogPort.UpdateProduct(c.UserContext(), id, draft)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleRemoveProduct handles DELETE /api/v1/admin/products/:id.
func (m *APIModule) handleRemoveProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	removed, err := m.catalogPort.RemoveProduct(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(catalogmod.RemoveProductResponse{Removed: removed})
}

// handleSetHero handles PUT /api/v1/admin/hero.
func (m *APIModule) handleSetHero(c *fiber.Ctx) error {
	var req HeroRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	url, err := m.catalogPort.SetHeroImage(c.UserContext(), req.ImageURL)
	if err != nil {
		return err
	}
	return c.JSON(HeroResponse{ImageURL: url})
}

// handleUpload handles POST /api/v1/admin/uploads. The image is returned
// inline as a data URI for use as a product or banner image.
func (m *APIModule) handleUpload(c *fiber.Ctx) error {
	header, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No image provided")
	}
	if header.Size > maxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image must be 5MB or smaller")
	}

	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return err
	}
	if len(data) > maxUploadSize {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "Image must be 5MB or smaller")
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "File must be an image")
	}

	return c.Status(fiber.StatusCreated).JSON(UploadResponse{
		ImageURL:    "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
		Size:        len(data),
	})
}

// handleListEnquiries handles GET /api/v1/admin/enquiries.
func (m *APIModule) handleListEnquiries(c *fiber.Ctx) error {
	resp, err := m.enquiryPort.List(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// handleListNotifications handles GET /api/v1/admin/notifications.
func (m *APIModule) handleListNotifications(c *fiber.Ctx) error {
	resp, err := m.notificationPort.List(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func productID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid product ID")
	}
	return id, nil
}
