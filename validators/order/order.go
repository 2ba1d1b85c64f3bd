package orderValidator

import (
	"docseva/middleware"
	"docseva/models"

	"github.com/gofiber/fiber/v2"
)

// SetStatus validates the admin status-change payload
func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidOrderStatus(reqData.Status) {
			errors["status"] = "Status must be one of pending, confirmed, processing, shipped, delivered, cancelled!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetStatus", reqData)
		return c.Next()
	}
}
