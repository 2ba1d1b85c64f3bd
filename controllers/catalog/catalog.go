package catalogController

import (
	"docseva/database"
	"docseva/middleware"
	"docseva/models"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns all active categories with their sub-categories
func ListCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	var categories []models.Category
	if err := db.Where("is_active = true AND is_deleted = false").
		Order("sort_order asc, name asc").
		Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	type categoryWithSubs struct {
		models.Category
		SubCategories []models.SubCategory `json:"subCategories"`
	}

	result := make([]categoryWithSubs, 0, len(categories))
	for _, cat := range categories {
		var subs []models.SubCategory
		db.Where("category_id = ? AND is_active = true AND is_deleted = false", cat.ID).
			Order("sort_order asc, name asc").
			Find(&subs)
		result = append(result, categoryWithSubs{Category: cat, SubCategories: subs})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", result)
}

// ListProducts returns active products, optionally filtered by category or sub-category
func ListProducts(c *fiber.Ctx) error {
	db := database.Database.Db

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	categoryId := c.QueryInt("categoryId", 0)
	subCategoryId := c.QueryInt("subCategoryId", 0)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Product{}).Where("is_active = true AND is_deleted = false")
	if categoryId > 0 {
		query = query.Where("category_id = ?", categoryId)
	}
	if subCategoryId > 0 {
		query = query.Where("sub_category_id = ?", subCategoryId)
	}

	var total int64
	query.Count(&total)

	var products []models.Product
	if err := query.
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched!", fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetProduct returns a single product by id
func GetProduct(c *fiber.Ctx) error {
	productId, err := c.ParamsInt("id")
	if err != nil || productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product id!", nil)
	}

	var product models.Product
	if err := database.Database.Db.
		Where("id = ? AND is_active = true AND is_deleted = false", productId).
		First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched!", product)
}
