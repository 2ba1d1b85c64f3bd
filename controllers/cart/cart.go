package cartController

import (
	"docseva/database"
	"docseva/middleware"
	"docseva/models"
	"docseva/utils"

	"github.com/gofiber/fiber/v2"
)

// GetCart returns the user's cart along with the derived identity requirement
// so clients know whether checkout must pass through the identity step.
func GetCart(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var items []models.CartItem
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userId).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched!", fiber.Map{
		"items":        items,
		"subtotal":     subtotal,
		"requiredForm": utils.ResolveIdentityRequirement(items),
	})
}

// AddToCart adds a product to the cart, or bumps its quantity if present.
// Product title, price, type and category names are snapshotted onto the row.
func AddToCart(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedAddToCart").(*struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ? AND is_active = true AND is_deleted = false", reqData.ProductID).
		First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}
	if !product.InStock {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Product is out of stock!", nil)
	}

	// Existing row: bump quantity
	var existing models.CartItem
	if err := db.Where("user_id = ? AND product_id = ? AND is_deleted = false", userId, reqData.ProductID).
		First(&existing).Error; err == nil {
		existing.Quantity += reqData.Quantity
		if err := db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart updated!", existing)
	}

	var categoryName, subCategoryName string
	var category models.Category
	if err := db.Where("id = ?", product.CategoryID).First(&category).Error; err == nil {
		categoryName = category.Name
	}
	var sub models.SubCategory
	if err := db.Where("id = ?", product.SubCategoryID).First(&sub).Error; err == nil {
		subCategoryName = sub.Name
	}

	item := models.CartItem{
		UserID:          userId,
		ProductID:       product.ID,
		Title:           product.Title,
		Price:           product.Price,
		Quantity:        reqData.Quantity,
		ProductType:     product.ProductType,
		CategoryName:    categoryName,
		SubCategoryName: subCategoryName,
	}

	if err := db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Added to cart!", item)
}

// UpdateQuantity sets the quantity of a cart item; 0 removes it
func UpdateQuantity(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedUpdateQuantity").(*struct {
		ItemID   uint `json:"itemId"`
		Quantity int  `json:"quantity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", reqData.ItemID, userId).
		First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	if reqData.Quantity == 0 {
		if err := db.Model(&item).Update("is_deleted", true).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove item!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Item removed!", nil)
	}

	item.Quantity = reqData.Quantity
	if err := db.Save(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quantity!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quantity updated!", item)
}

// RemoveItem soft-deletes one cart row
func RemoveItem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	itemId, err := c.ParamsInt("id")
	if err != nil || itemId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	db := database.Database.Db

	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ? AND is_deleted = false", itemId, userId).
		First(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	if err := db.Model(&item).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Item removed!", nil)
}

// ClearCart empties the user's cart
func ClearCart(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	if err := database.Database.Db.Model(&models.CartItem{}).
		Where("user_id = ? AND is_deleted = false", userId).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart cleared!", nil)
}
