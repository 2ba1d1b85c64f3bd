package checkoutValidator

import (
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
)

// IdentityLink validates the identity-link payload
func IdentityLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IdentityFormID uint `json:"identityFormId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.IdentityFormID == 0 {
			errors["identityFormId"] = "Identity form ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIdentityLink", reqData)
		return c.Next()
	}
}

// Delivery validates the shipping address payload
func Delivery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.ShippingAddress)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FullName == "" {
			errors["fullName"] = "Full name is required!"
		}
		if reqData.Line1 == "" {
			errors["line1"] = "Address line is required!"
		}
		if reqData.City == "" {
			errors["city"] = "City is required!"
		}
		if reqData.State == "" {
			errors["state"] = "State is required!"
		}
		if len(reqData.PinCode) != 6 {
			errors["pinCode"] = "A 6-digit PIN code is required!"
		}
		if reqData.Mobile != "" {
			if len(utils.NormalizeMobile(reqData.Mobile)) != 10 {
				errors["mobile"] = "Mobile must be a 10-digit number!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDelivery", reqData)
		return c.Next()
	}
}
