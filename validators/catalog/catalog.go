package catalogValidator

import (
	"docseva/middleware"
	"docseva/models"

	"github.com/gofiber/fiber/v2"
)

// Category validates the create-category payload
func Category() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Image       string `json:"image"`
			SortOrder   int    `json:"sortOrder"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Category name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// SubCategory validates the create-sub-category payload
func SubCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID  uint   `json:"categoryId"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Image       string `json:"image"`
			SortOrder   int    `json:"sortOrder"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CategoryID == 0 {
			errors["categoryId"] = "Category ID is required!"
		}
		if reqData.Name == "" {
			errors["name"] = "Sub-category name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubCategory", reqData)
		return c.Next()
	}
}

// Product validates the create/update product payload
func Product() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CategoryID      uint    `json:"categoryId"`
			SubCategoryID   uint    `json:"subCategoryId"`
			Title           string  `json:"title"`
			Description     string  `json:"description"`
			Image           string  `json:"image"`
			Price           float64 `json:"price"`
			DiscountPercent float64 `json:"discountPercent"`
			ProductType     string  `json:"productType"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Product title is required!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}
		if reqData.DiscountPercent < 0 || reqData.DiscountPercent > 100 {
			errors["discountPercent"] = "Discount must be between 0 and 100!"
		}
		switch reqData.ProductType {
		case "", models.ProductTypeAadhaar, models.ProductTypePan, models.ProductTypeBoth, models.ProductTypeNone:
		default:
			errors["productType"] = "Product type must be aadhaar, pan, both or none!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}
