package orderController

import (
	"docseva/database"
	"docseva/middleware"
	"docseva/models"

	"github.com/gofiber/fiber/v2"
)

// ListMyOrders returns the user's orders, newest first
func ListMyOrders(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Order{}).Where("user_id = ? AND is_deleted = false", userId)

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.
		Order("order_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetOrder returns one of the user's own orders
func GetOrder(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	orderId, err := c.ParamsInt("id")
	if err != nil || orderId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order id!", nil)
	}

	var order models.Order
	if err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = false", orderId, userId).
		First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched!", order)
}
