package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/cart"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/domain/order"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/admin"
	cartmod "github.com/rohit-kumar-in/Arvind-Trader/modules/cart"
	catalogmod "github.com/rohit-kumar-in/Arvind-Trader/modules/catalog"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/checkout"
	"github.com/rohit-kumar-in/Arvind-Trader/modules/enquiry"
)

// errorMapping ties a sentinel error to an HTTP status and error code.
type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{catalog.ErrProductNotFound, fiber.StatusNotFound, "product_not_found"},
	{order.ErrOrderNotFound, fiber.StatusNotFound, "order_not_found"},
	{catalog.ErrVariantNotFound, fiber.StatusBadRequest, "variant_not_found"},
	{catalogmod.ErrInvalidProduct, fiber.StatusBadRequest, "validation_error"},
	{catalogmod.ErrInvalidImage, fiber.StatusBadRequest, "validation_error"},
	{checkout.ErrInvalidOrder, fiber.StatusBadRequest, "validation_error"},
	{enquiry.ErrInvalidEnquiry, fiber.StatusBadRequest, "validation_error"},
	{cartmod.ErrMissingSession, fiber.StatusBadRequest, "missing_session"},
	{checkout.ErrEmptyCart, fiber.StatusConflict, "empty_cart"},
	{admin.ErrInvalidSecret, fiber.StatusUnauthorized, "unauthorized"},
	{cart.ErrStoreNotProvided, fiber.StatusInternalServerError, "cart_unavailable"},
}

// customErrorHandler maps service errors to HTTP responses.
func customErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorResponse{
			Error:   errorCode(fe.Code),
			Message: fe.Message,
		})
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(ErrorResponse{
				Error:   m.code,
				Message: err.Error(),
			})
		}
	}

	log.Printf("[api] Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "server_error",
		Message: "Internal Server Error",
	})
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "invalid_request"
	case fiber.StatusUnauthorized:
		return "unauthorized"
	case fiber.StatusNotFound:
		return "not_found"
	case fiber.StatusRequestEntityTooLarge:
		return "file_too_large"
	case fiber.StatusUpgradeRequired:
		return "upgrade_required"
	case fiber.StatusForbidden:
		return "forbidden"
	case fiber.StatusTooManyRequests:
		return "rate_limited"
	default:
		return "server_error"
	}
}
