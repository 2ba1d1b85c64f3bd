package cartValidator

import (
	"docseva/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddToCart validates the add-to-cart payload
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductID uint `json:"productId"`
			Quantity  int  `json:"quantity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProductID == 0 {
			errors["productId"] = "Product ID is required!"
		}
		if reqData.Quantity < 1 {
			errors["quantity"] = "Quantity must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddToCart", reqData)
		return c.Next()
	}
}

// UpdateQuantity validates the quantity-change payload
func UpdateQuantity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ItemID   uint `json:"itemId"`
			Quantity int  `json:"quantity"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ItemID == 0 {
			errors["itemId"] = "Item ID is required!"
		}
		if reqData.Quantity < 0 {
			errors["quantity"] = "Quantity cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateQuantity", reqData)
		return c.Next()
	}
}
