package catalogController

import (
	"docseva/database"
	"docseva/middleware"
	"docseva/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCategory creates a catalog category (Admin only)
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
		SortOrder   int    `json:"sortOrder"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("name = ? AND is_deleted = false", reqData.Name).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
		Image:       reqData.Image,
		SortOrder:   reqData.SortOrder,
	}

	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created!", category)
}

// CreateSubCategory creates a sub-category under a category (Admin only)
func CreateSubCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubCategory").(*struct {
		CategoryID  uint   `json:"categoryId"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Image       string `json:"image"`
		SortOrder   int    `json:"sortOrder"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("id = ? AND is_deleted = false", reqData.CategoryID).First(&models.Category{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	sub := models.SubCategory{
		CategoryID:  reqData.CategoryID,
		Name:        reqData.Name,
		Description: reqData.Description,
		Image:       reqData.Image,
		SortOrder:   reqData.SortOrder,
	}

	if err := db.Create(&sub).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sub-category created!", sub)
}

// CreateProduct creates a product (Admin only)
func CreateProduct(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProduct").(*struct {
		CategoryID      uint    `json:"categoryId"`
		SubCategoryID   uint    `json:"subCategoryId"`
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		Image           string  `json:"image"`
		Price           float64 `json:"price"`
		DiscountPercent float64 `json:"discountPercent"`
		ProductType     string  `json:"productType"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	product := models.Product{
		CategoryID:      reqData.CategoryID,
		SubCategoryID:   reqData.SubCategoryID,
		Title:           reqData.Title,
		Description:     reqData.Description,
		Image:           reqData.Image,
		Price:           reqData.Price,
		DiscountPercent: reqData.DiscountPercent,
		ProductType:     reqData.ProductType,
	}

	if err := database.Database.Db.Create(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product created!", product)
}

// UpdateProduct updates a product in place (Admin only)
func UpdateProduct(c *fiber.Ctx) error {
	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	reqData, ok := c.Locals("validatedProduct").(*struct {
		CategoryID      uint    `json:"categoryId"`
		SubCategoryID   uint    `json:"subCategoryId"`
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		Image           string  `json:"image"`
		Price           float64 `json:"price"`
		DiscountPercent float64 `json:"discountPercent"`
		ProductType     string  `json:"productType"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = false", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	product.CategoryID = reqData.CategoryID
	product.SubCategoryID = reqData.SubCategoryID
	product.Title = reqData.Title
	product.Description = reqData.Description
	product.Image = reqData.Image
	product.Price = reqData.Price
	product.DiscountPercent = reqData.DiscountPercent
	product.ProductType = reqData.ProductType

	if err := db.Save(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated!", product)
}

// DeleteProduct soft-deletes a product (Admin only)
func DeleteProduct(c *fiber.Ctx) error {
	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_deleted = false", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	if err := db.Model(&product).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted!", nil)
}
